package model

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Symbol is a currency code drawn from the closed set of supported currencies.
type Symbol string

const (
	PLN Symbol = "PLN"
	USD Symbol = "USD"
)

// BaseCurrency is the currency every account must hold a balance in.
const BaseCurrency = PLN

func ParseSymbol(s string) (Symbol, error) {
	switch Symbol(strings.ToUpper(s)) {
	case PLN:
		return PLN, nil
	case USD:
		return USD, nil
	default:
		return "", fmt.Errorf("unknown currency symbol: '%s'", s)
	}
}

func (s Symbol) String() string {
	return string(s)
}

func (s Symbol) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(s))
}

// UnmarshalJSON rejects any code outside the supported set, so an invalid
// symbol never gets past request decoding.
func (s *Symbol) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseSymbol(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
