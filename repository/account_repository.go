package repository

import (
	"currency-exchange-api/logger"
	"currency-exchange-api/model"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// IAccountRepository defines the contract for account database operations.
// The ForUpdate/UpdateBalance pair runs inside a caller-owned transaction so
// both balance writes of an exchange commit as one unit of work.
type IAccountRepository interface {
	CreateAccount(account *model.Account) error
	GetAccountByID(id uuid.UUID) (*model.Account, error)
	GetBalance(accountID uuid.UUID, symbol model.Symbol) (*model.CurrencyBalance, error)
	GetBalanceForUpdate(tx *sql.Tx, accountID uuid.UUID, symbol model.Symbol) (*model.CurrencyBalance, error)
	UpdateBalance(tx *sql.Tx, balanceID int64, newBalance decimal.Decimal) error
}

// AccountRepository implements IAccountRepository.
type AccountRepository struct {
	DB *sql.DB
}

func NewAccountRepository(db *sql.DB) *AccountRepository {
	return &AccountRepository{DB: db}
}

// CreateAccount inserts the account and all of its currency balances in a
// single transaction.
func (r *AccountRepository) CreateAccount(account *model.Account) error {
	log := logger.Log.WithFields(logrus.Fields{
		"account_id": account.ID,
		"balances":   len(account.Balances),
	})
	log.Info("Executing queries to create a new account")

	tx, err := r.DB.Begin()
	if err != nil {
		log.WithError(err).Error("Failed to begin create account transaction")
		return err
	}
	defer tx.Rollback()

	query := `INSERT INTO accounts (id, first_name, last_name) VALUES ($1, $2, $3) RETURNING created_at`
	if err := tx.QueryRow(query, account.ID, account.FirstName, account.LastName).Scan(&account.CreatedAt); err != nil {
		log.WithError(err).Error("Failed to execute create account query")
		return err
	}

	balanceQuery := `INSERT INTO currency_balances (account_id, symbol, balance) VALUES ($1, $2, $3) RETURNING id, created_at`
	for i := range account.Balances {
		balance := &account.Balances[i]
		if err := tx.QueryRow(balanceQuery, account.ID, balance.Symbol, balance.Balance).Scan(&balance.ID, &balance.CreatedAt); err != nil {
			log.WithError(err).WithField("symbol", balance.Symbol).Error("Failed to execute create currency balance query")
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		log.WithError(err).Error("Failed to commit create account transaction")
		return err
	}
	return nil
}

// GetAccountByID retrieves an account together with all of its balances.
func (r *AccountRepository) GetAccountByID(id uuid.UUID) (*model.Account, error) {
	log := logger.Log.WithField("account_id", id)
	log.Info("Executing query to get account by ID")

	account := &model.Account{}
	query := `SELECT id, first_name, last_name, created_at FROM accounts WHERE id = $1`
	err := r.DB.QueryRow(query, id).Scan(&account.ID, &account.FirstName, &account.LastName, &account.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			log.Info("Account not found")
		} else {
			log.WithError(err).Error("Failed to execute get account query")
		}
		return nil, err
	}

	balanceQuery := `SELECT id, account_id, symbol, balance, created_at FROM currency_balances WHERE account_id = $1`
	rows, err := r.DB.Query(balanceQuery, id)
	if err != nil {
		log.WithError(err).Error("Failed to execute query for account balances")
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var b model.CurrencyBalance
		if err := rows.Scan(&b.ID, &b.AccountID, &b.Symbol, &b.Balance, &b.CreatedAt); err != nil {
			log.WithError(err).Error("Failed to scan currency balance row")
			return nil, err
		}
		account.Balances = append(account.Balances, b)
	}
	return account, rows.Err()
}

// GetBalance retrieves a single currency balance without locking it.
func (r *AccountRepository) GetBalance(accountID uuid.UUID, symbol model.Symbol) (*model.CurrencyBalance, error) {
	log := logger.Log.WithFields(logrus.Fields{
		"account_id": accountID,
		"symbol":     symbol,
	})
	log.Info("Executing query to get currency balance")

	balance := &model.CurrencyBalance{}
	query := `SELECT id, account_id, symbol, balance, created_at FROM currency_balances WHERE account_id = $1 AND symbol = $2`
	err := r.DB.QueryRow(query, accountID, symbol).Scan(&balance.ID, &balance.AccountID, &balance.Symbol, &balance.Balance, &balance.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			log.Info("Currency balance not found")
		} else {
			log.WithError(err).Error("Failed to execute get currency balance query")
		}
		return nil, err
	}
	return balance, nil
}

// GetBalanceForUpdate locks the balance row for the duration of the caller's
// transaction, so two concurrent exchanges on the same account serialize
// instead of losing an update.
func (r *AccountRepository) GetBalanceForUpdate(tx *sql.Tx, accountID uuid.UUID, symbol model.Symbol) (*model.CurrencyBalance, error) {
	log := logger.Log.WithFields(logrus.Fields{
		"account_id": accountID,
		"symbol":     symbol,
	})
	log.Info("Executing query to get currency balance for update")

	balance := &model.CurrencyBalance{}
	query := `SELECT id, account_id, symbol, balance FROM currency_balances WHERE account_id = $1 AND symbol = $2 FOR UPDATE`
	err := tx.QueryRow(query, accountID, symbol).Scan(&balance.ID, &balance.AccountID, &balance.Symbol, &balance.Balance)
	if err != nil {
		if err == sql.ErrNoRows {
			log.Info("Currency balance not found for update")
		} else {
			log.WithError(err).Error("Failed to execute get currency balance for update query")
		}
		return nil, err
	}
	return balance, nil
}

func (r *AccountRepository) UpdateBalance(tx *sql.Tx, balanceID int64, newBalance decimal.Decimal) error {
	log := logger.Log.WithFields(logrus.Fields{
		"balance_id":  balanceID,
		"new_balance": newBalance,
	})
	log.Info("Executing query to update currency balance")

	query := `UPDATE currency_balances SET balance = $1 WHERE id = $2`
	result, err := tx.Exec(query, newBalance, balanceID)
	if err != nil {
		log.WithError(err).Error("Failed to execute update currency balance query")
		return err
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return fmt.Errorf("no currency balance with id %d", balanceID)
	}
	return nil
}
