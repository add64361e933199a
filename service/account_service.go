// file: service/account_service.go

package service

import (
	"context"
	"currency-exchange-api/model"
	"currency-exchange-api/repository"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const accountCacheTTL = 10 * time.Minute

func accountCacheKey(accountID uuid.UUID) string {
	return fmt.Sprintf("account:%s", accountID)
}

// AccountService creates accounts and serves account details, utilizing a
// cache-aside strategy for reads.
type AccountService struct {
	repo  repository.IAccountRepository
	cache ICacheClient
}

func NewAccountService(repo repository.IAccountRepository, cache ICacheClient) *AccountService {
	return &AccountService{
		repo:  repo,
		cache: cache,
	}
}

// CreateAccount validates the request, normalizes every initial balance to
// 2 decimal places and persists the account with its balances atomically.
// It returns the id of the created account.
func (s *AccountService) CreateAccount(req *model.CreateAccountRequest) (uuid.UUID, error) {
	if err := ValidateCreateAccountRequest(req); err != nil {
		return uuid.Nil, err
	}

	account := &model.Account{
		ID:        uuid.New(),
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}
	for _, b := range req.Balances {
		account.Balances = append(account.Balances, model.CurrencyBalance{
			AccountID: account.ID,
			Symbol:    b.Symbol,
			Balance:   b.Balance.Round(2),
		})
	}

	if err := s.repo.CreateAccount(account); err != nil {
		return uuid.Nil, err
	}
	return account.ID, nil
}

// GetAccountDetails returns an account with all of its balances.
// Reads go through the cache; the exchange service invalidates the entry
// whenever it mutates the account's balances.
func (s *AccountService) GetAccountDetails(ctx context.Context, accountID uuid.UUID) (*model.Account, error) {
	cacheKey := accountCacheKey(accountID)

	// 1. Try to get data from Redis.
	cached, err := s.cache.Get(ctx, cacheKey).Result()
	if err == nil {
		// Cache hit.
		var account model.Account
		if err := json.Unmarshal([]byte(cached), &account); err == nil {
			return &account, nil
		}
	}

	// 2. Cache miss. Fetch from the database.
	account, err := s.repo.GetAccountByID(accountID)
	if err != nil {
		if isNoRows(err) {
			return nil, fmt.Errorf("there is no account with id '%s': %w", accountID, ErrAccountNotFound)
		}
		return nil, err
	}

	// 3. Store the result in Redis for future requests.
	if data, err := json.Marshal(account); err == nil {
		s.cache.Set(ctx, cacheKey, data, accountCacheTTL)
	}

	return account, nil
}
