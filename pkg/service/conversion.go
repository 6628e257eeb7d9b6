package service

import (
	"strings"

	"github.com/shopspring/decimal"
)

// settledPlaces is the fractional precision of every settled amount.
const settledPlaces = 8

// Settle computes the counter-amount of a trade. The rate is always quoted
// as reference units per one traded unit, so selling the traded currency
// multiplies and buying it divides; applying the reciprocal direction to the
// result returns the original amount up to rounding. Pure: no state, same
// inputs always give the same output.
func Settle(amount, rate decimal.Decimal, sellingTraded bool) decimal.Decimal {
	if sellingTraded {
		return amount.Mul(rate).Round(settledPlaces)
	}
	return amount.DivRound(rate, settledPlaces)
}

// SettleFromInput is the live form derivation. It takes the amount exactly
// as typed and reports ok=false while the amount is empty, non-numeric, or
// not positive, or while the rate is unknown. That is a pending state, not
// an error: the caller shows nothing and blocks submission.
func SettleFromInput(amount string, rate decimal.Decimal, rateKnown, sellingTraded bool) (decimal.Decimal, bool) {
	if !rateKnown || !rate.IsPositive() {
		return decimal.Decimal{}, false
	}

	parsed, err := decimal.NewFromString(strings.TrimSpace(amount))
	if err != nil || !parsed.IsPositive() {
		return decimal.Decimal{}, false
	}

	return Settle(parsed, rate, sellingTraded), true
}
