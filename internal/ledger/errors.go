package ledger

import (
	"errors"
)

var (
	ErrInvalidAmount       = errors.New("amount is invalid")
	ErrAccountNotFound     = errors.New("resource not found")
	ErrInsufficientBalance = errors.New("balance insufficient for requested amount")
	ErrSameAccount         = errors.New("source and destination accounts must differ")
)

// Kind enumerates the failure classes a balance operation can end with.
type Kind int8

const (
	KindNone Kind = iota
	KindInvalidAmount
	KindAccountNotFound
	KindInsufficientBalance
	KindSameAccount
	KindStorage
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "None"
	case KindInvalidAmount:
		return "InvalidAmount"
	case KindAccountNotFound:
		return "AccountNotFound"
	case KindInsufficientBalance:
		return "InsufficientBalance"
	case KindSameAccount:
		return "SameAccount"
	default:
		return "StorageFailure"
	}
}

// KindOf classifies err. Anything that is not one of the ledger sentinels came
// from the store and is reported as KindStorage.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrInvalidAmount):
		return KindInvalidAmount
	case errors.Is(err, ErrAccountNotFound):
		return KindAccountNotFound
	case errors.Is(err, ErrInsufficientBalance):
		return KindInsufficientBalance
	case errors.Is(err, ErrSameAccount):
		return KindSameAccount
	default:
		return KindStorage
	}
}
