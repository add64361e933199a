package service

import (
	"context"
	"currency-exchange-api/logger"
	"currency-exchange-api/model"
	"currency-exchange-api/repository"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var (
	ErrSameCurrencyExchange = errors.New("cannot exchange identical currencies")
	ErrAccountNotFound      = errors.New("account not found")
	ErrBalanceNotFound      = errors.New("currency balance not found")
	ErrInsufficientFunds    = errors.New("insufficient funds in the account")
	ErrInvalidAmount        = errors.New("exchange amount must be greater than zero")
)

func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

// RateProvider supplies the current PLN-per-USD mid rate. The rate is valid
// for a single exchange operation and never cached across calls.
type RateProvider interface {
	GetUSDMidRate(ctx context.Context) (decimal.Decimal, error)
}

// ExchangeService moves funds between two currency balances of one account
// at the current NBP mid rate. Both balance writes commit in one database
// transaction; on any failure neither balance changes.
type ExchangeService struct {
	db          *sql.DB
	accountRepo repository.IAccountRepository
	rates       RateProvider
	cache       ICacheClient
}

func NewExchangeService(db *sql.DB, accountRepo repository.IAccountRepository, rates RateProvider, cache ICacheClient) *ExchangeService {
	return &ExchangeService{
		db:          db,
		accountRepo: accountRepo,
		rates:       rates,
		cache:       cache,
	}
}

// Exchange converts amount from fromCurrency into toCurrency within the
// given account. The rate is fetched before the transaction begins, so the
// transfer arithmetic is a pure function of the balances, the amount and
// the rate.
func (s *ExchangeService) Exchange(ctx context.Context, accountID uuid.UUID, amount decimal.Decimal, fromCurrency, toCurrency model.Symbol) error {
	log := logger.Log.WithFields(logrus.Fields{
		"account_id":    accountID,
		"amount":        amount,
		"from_currency": fromCurrency,
		"to_currency":   toCurrency,
	})
	log.Info("Starting currency exchange")

	if fromCurrency == toCurrency {
		return ErrSameCurrencyExchange
	}
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}

	if _, err := s.accountRepo.GetAccountByID(accountID); err != nil {
		if isNoRows(err) {
			return fmt.Errorf("there is no account with id '%s': %w", accountID, ErrAccountNotFound)
		}
		return err
	}

	// Fetched outside the transaction boundary; rate failures leave no trace.
	usdMidRate, err := s.rates.GetUSDMidRate(ctx)
	if err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}
	defer tx.Rollback()

	fromBalance, err := s.getBalanceForUpdate(tx, accountID, fromCurrency)
	if err != nil {
		return err
	}
	toBalance, err := s.getBalanceForUpdate(tx, accountID, toCurrency)
	if err != nil {
		return err
	}

	if fromBalance.Balance.LessThan(amount) {
		return ErrInsufficientFunds
	}

	effectiveRate := model.EffectiveRate(fromCurrency, usdMidRate)
	converted := model.Convert(amount, effectiveRate)

	if err := s.accountRepo.UpdateBalance(tx, fromBalance.ID, fromBalance.Balance.Sub(amount).Round(2)); err != nil {
		return fmt.Errorf("could not update source balance: %w", err)
	}
	if err := s.accountRepo.UpdateBalance(tx, toBalance.ID, toBalance.Balance.Add(converted).Round(2)); err != nil {
		return fmt.Errorf("could not update target balance: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("could not commit transaction: %w", err)
	}

	s.cache.Del(ctx, accountCacheKey(accountID))

	log.WithField("converted_amount", converted).Info("Currency exchange completed successfully")
	return nil
}

// GetBalance returns the current balance of one currency within an account.
func (s *ExchangeService) GetBalance(ctx context.Context, accountID uuid.UUID, symbol model.Symbol) (decimal.Decimal, error) {
	balance, err := s.accountRepo.GetBalance(accountID, symbol)
	if err != nil {
		if isNoRows(err) {
			return decimal.Decimal{}, balanceNotFound(accountID, symbol)
		}
		return decimal.Decimal{}, err
	}
	return balance.Balance, nil
}

func (s *ExchangeService) getBalanceForUpdate(tx *sql.Tx, accountID uuid.UUID, symbol model.Symbol) (*model.CurrencyBalance, error) {
	balance, err := s.accountRepo.GetBalanceForUpdate(tx, accountID, symbol)
	if err != nil {
		if isNoRows(err) {
			return nil, balanceNotFound(accountID, symbol)
		}
		return nil, err
	}
	return balance, nil
}

func balanceNotFound(accountID uuid.UUID, symbol model.Symbol) error {
	return fmt.Errorf("there is no currency balance for account '%s' and symbol '%s': %w", accountID, symbol, ErrBalanceNotFound)
}
