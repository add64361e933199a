package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Account is the aggregate root: an owner plus one balance per held currency.
// Balances are never shared between accounts.
type Account struct {
	ID        uuid.UUID         `json:"id"`
	FirstName string            `json:"first_name"`
	LastName  string            `json:"last_name"`
	Balances  []CurrencyBalance `json:"balances"`
	CreatedAt time.Time         `json:"created_at"`
}

// CurrencyBalance is a single currency's balance within one account.
// Committed balances are non-negative with exactly 2 fractional digits.
type CurrencyBalance struct {
	ID        int64           `json:"id"`
	AccountID uuid.UUID       `json:"account_id"`
	Symbol    Symbol          `json:"symbol"`
	Balance   decimal.Decimal `json:"balance"`
	CreatedAt time.Time       `json:"created_at"`
}
