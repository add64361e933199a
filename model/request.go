// file: model/request.go

package model

import "github.com/shopspring/decimal"

// CurrencyBalanceRequest is a single (symbol, initial balance) pair of a
// create-account request. The Symbol type rejects unknown codes at decode time.
type CurrencyBalanceRequest struct {
	Symbol  Symbol          `json:"symbol" validate:"required"`
	Balance decimal.Decimal `json:"balance"`
}

// CreateAccountRequest defines the payload for creating a new account.
type CreateAccountRequest struct {
	FirstName string                   `json:"first_name" validate:"required"`
	LastName  string                   `json:"last_name" validate:"required"`
	Balances  []CurrencyBalanceRequest `json:"balances" validate:"dive"`
}

// ExchangeRequest defines the payload for a currency exchange within one
// account. Amount positivity is checked at the handler boundary; the
// exchange service treats it as a precondition and re-checks.
type ExchangeRequest struct {
	Amount       decimal.Decimal `json:"amount" validate:"required"`
	FromCurrency Symbol          `json:"from_currency" validate:"required"`
	ToCurrency   Symbol          `json:"to_currency" validate:"required"`
}
