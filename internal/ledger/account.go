package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountKind is the account modality, fixed when the account is opened.
type AccountKind int8

const (
	AccountKindChecking AccountKind = iota
	AccountKindSavings
)

func (k AccountKind) Valid() bool {
	return k == AccountKindChecking || k == AccountKindSavings
}

func (k AccountKind) String() string {
	switch k {
	case AccountKindChecking:
		return "checking"
	case AccountKindSavings:
		return "savings"
	default:
		return "unknown"
	}
}

// Account holds a balance that never goes below zero. Balance changes only
// through Credit and Debit.
type Account struct {
	ID      int64
	Kind    AccountKind
	OwnerID *int64
	Balance decimal.Decimal
}

// NewAccount returns an unsaved account with a zero balance.
func NewAccount(kind AccountKind, ownerID *int64) *Account {
	return &Account{
		Kind:    kind,
		OwnerID: ownerID,
		Balance: decimal.Zero,
	}
}

// Credit adds amount to the balance.
func (a *Account) Credit(amount Amount) {
	a.Balance = a.Balance.Add(amount.value)
}

// Debit subtracts amount from the balance. The account is left untouched
// when the balance does not cover the amount.
func (a *Account) Debit(amount Amount) error {
	if !a.Covers(amount) {
		return ErrInsufficientBalance
	}
	a.Balance = a.Balance.Sub(amount.value)
	return nil
}

// Covers reports whether the balance is at least amount.
func (a *Account) Covers(amount Amount) bool {
	return a.Balance.GreaterThanOrEqual(amount.value)
}

// Person is the owner an account may reference.
type Person struct {
	ID        int64
	Name      string
	CPF       string
	BirthDate time.Time
}
