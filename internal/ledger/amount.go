package ledger

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// AmountScale is the number of fraction digits every normalized amount and
// every mutated balance carries.
const AmountScale = 2

// MaxIntegerDigits bounds the integer part of amounts and balances to what a
// NUMERIC(20, 2) column holds.
const MaxIntegerDigits = 18

// maxFractionDigits bounds how many fraction digits an input may carry before
// it is rounded.
const maxFractionDigits = 18

// Amount is a strictly positive value already rounded to AmountScale digits.
// The zero Amount is not valid; obtain one through NormalizeAmount.
type Amount struct {
	value decimal.Decimal
}

// NormalizeAmount rounds raw half-up to two fraction digits and rejects
// anything that is not strictly positive, before or after rounding, or that
// falls outside WithinPrecision.
func NormalizeAmount(raw decimal.Decimal) (Amount, error) {
	if !raw.IsPositive() || !WithinPrecision(raw) {
		return Amount{}, ErrInvalidAmount
	}

	// Round is half away from zero, which is half-up for positive values.
	rounded := raw.Round(AmountScale)
	if !rounded.IsPositive() || !WithinPrecision(rounded) {
		return Amount{}, ErrInvalidAmount
	}

	return Amount{value: rounded}, nil
}

// WithinPrecision reports whether d has at most MaxIntegerDigits integer
// digits and at most maxFractionDigits fraction digits. It inspects the
// coefficient and exponent only, so it never expands d.
func WithinPrecision(d decimal.Decimal) bool {
	exp := int(d.Exponent())
	if exp < -maxFractionDigits {
		return false
	}
	if d.IsZero() {
		return true
	}
	digits := len(new(big.Int).Abs(d.Coefficient()).String())
	return digits+exp <= MaxIntegerDigits
}

func (a Amount) Decimal() decimal.Decimal {
	return a.value
}

func (a Amount) String() string {
	return a.value.StringFixed(AmountScale)
}
