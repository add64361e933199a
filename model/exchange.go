package model

import "github.com/shopspring/decimal"

// The NBP publishes a single direction: PLN per 1 USD (the mid rate).
// Exchanging out of PLN divides by that rate directly; exchanging out of USD
// divides by its reciprocal, derived at 10 fractional digits so the inversion
// does not compound rounding error before the final 2-digit rounding.

const (
	rateScale    = 10
	balanceScale = 2
)

var one = decimal.NewFromInt(1)

// EffectiveRate returns the direction-adjusted divisor for a transfer leaving
// fromCurrency, given the published PLN-per-USD mid rate.
func EffectiveRate(fromCurrency Symbol, usdMidRate decimal.Decimal) decimal.Decimal {
	if fromCurrency == PLN {
		return usdMidRate
	}
	return one.DivRound(usdMidRate, rateScale)
}

// Convert computes the target-currency amount for a transfer: amount divided
// by the effective rate at 10 fractional digits, then rounded half-up to 2.
func Convert(amount, effectiveRate decimal.Decimal) decimal.Decimal {
	return amount.DivRound(effectiveRate, rateScale).Round(balanceScale)
}
