package helpers

import (
	"errors"
	"math"

	"github.com/shopspring/decimal"
)

var ErrInvalidAmount = errors.New("amount must be a finite non-negative number")

// ParseMoney validates an operator-entered amount and rounds it to cents
// (half-up). Rounding happens at every write, not only at display time, so
// repeated additions stay cent-exact.
func ParseMoney(raw float64, allowZero bool) (decimal.Decimal, error) {
	if math.IsNaN(raw) || math.IsInf(raw, 0) {
		return decimal.Zero, ErrInvalidAmount
	}
	if raw < 0 {
		return decimal.Zero, ErrInvalidAmount
	}
	if raw == 0 && !allowZero {
		return decimal.Zero, ErrInvalidAmount
	}
	return decimal.NewFromFloat(raw).Round(2), nil
}

// ClampZero floors a balance at zero. Pending balances never go negative.
func ClampZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
