// file: model/rate.go

package model

import "github.com/shopspring/decimal"

// CurrencyRateResponse mirrors the NBP exchange-rate API payload for
// GET /api/exchangerates/rates/A/USD?format=json.
type CurrencyRateResponse struct {
	Table    string         `json:"table"`
	Currency string         `json:"currency"`
	Code     string         `json:"code"`
	Rates    []CurrencyRate `json:"rates"`
}

// CurrencyRate is one published quotation; Mid is the PLN-per-USD mid rate.
type CurrencyRate struct {
	No            string          `json:"no"`
	EffectiveDate string          `json:"effectiveDate"`
	Mid           decimal.Decimal `json:"mid"`
}
