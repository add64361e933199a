// file: service/account_validator.go

package service

import (
	"currency-exchange-api/model"
	"errors"
)

// Validation failures for account creation. Messages are client-facing and
// surfaced verbatim through the API.
var (
	ErrNoBalances        = errors.New("at least one currency balance is required.")
	ErrMissingPLNBalance = errors.New("account must include an initial balance in PLN.")
	ErrNegativeBalance   = errors.New("balance cannot be negative.")
	ErrDuplicateCurrency = errors.New("duplicate currency entries found.")
)

// ValidateCreateAccountRequest enforces the structural invariants the exchange
// logic relies on: at least one balance, a balance in the base currency, no
// negative balances and no duplicate symbols. The first violated check wins.
func ValidateCreateAccountRequest(req *model.CreateAccountRequest) error {
	if err := checkAtLeastOneBalance(req); err != nil {
		return err
	}
	if err := checkContainsBaseCurrency(req); err != nil {
		return err
	}
	if err := checkNoNegativeBalances(req); err != nil {
		return err
	}
	return checkNoDuplicateCurrencies(req)
}

func checkAtLeastOneBalance(req *model.CreateAccountRequest) error {
	if len(req.Balances) == 0 {
		return ErrNoBalances
	}
	return nil
}

func checkContainsBaseCurrency(req *model.CreateAccountRequest) error {
	for _, b := range req.Balances {
		if b.Symbol == model.BaseCurrency {
			return nil
		}
	}
	return ErrMissingPLNBalance
}

func checkNoNegativeBalances(req *model.CreateAccountRequest) error {
	for _, b := range req.Balances {
		if b.Balance.IsNegative() {
			return ErrNegativeBalance
		}
	}
	return nil
}

func checkNoDuplicateCurrencies(req *model.CreateAccountRequest) error {
	seen := make(map[model.Symbol]bool, len(req.Balances))
	for _, b := range req.Balances {
		if seen[b.Symbol] {
			return ErrDuplicateCurrency
		}
		seen[b.Symbol] = true
	}
	return nil
}
