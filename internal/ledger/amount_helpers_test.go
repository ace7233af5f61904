package ledger

import (
	"github.com/shopspring/decimal"
)

// MustAmount is NormalizeAmount for literals.
func MustAmount(raw string) Amount {
	a, err := NormalizeAmount(decimal.RequireFromString(raw))
	if err != nil {
		panic(err)
	}
	return a
}
