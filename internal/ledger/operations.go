package ledger

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
)

// AccountStore is the persistence the balance operations run against.
//
// FindByID returns nil and no error when the account does not exist. Errors
// from either method are returned to the caller unchanged. Implementations are
// responsible for serializing concurrent writers of the same account.
type AccountStore interface {
	FindByID(ctx context.Context, id int64) (*Account, error)
	Save(ctx context.Context, account *Account) error
}

// Deposit credits raw to the account and returns the new balance.
func Deposit(ctx context.Context, store AccountStore, accountID int64, raw decimal.Decimal) (decimal.Decimal, error) {
	account, err := findAccount(ctx, store, accountID)
	if err != nil {
		return decimal.Decimal{}, err
	}

	amount, err := NormalizeAmount(raw)
	if err != nil {
		return decimal.Decimal{}, err
	}

	account.Credit(amount)
	if err := store.Save(ctx, account); err != nil {
		return decimal.Decimal{}, err
	}

	return account.Balance, nil
}

// Withdraw debits raw from the account and returns the new balance. Nothing
// is written when the balance does not cover the amount.
func Withdraw(ctx context.Context, store AccountStore, accountID int64, raw decimal.Decimal) (decimal.Decimal, error) {
	account, err := findAccount(ctx, store, accountID)
	if err != nil {
		return decimal.Decimal{}, err
	}

	amount, err := NormalizeAmount(raw)
	if err != nil {
		return decimal.Decimal{}, err
	}

	if err := account.Debit(amount); err != nil {
		return decimal.Decimal{}, err
	}
	if err := store.Save(ctx, account); err != nil {
		return decimal.Decimal{}, err
	}

	return account.Balance, nil
}

// Transfer moves raw from the source account to the destination account and
// returns the source's new balance.
//
// The source is saved before the destination. Transfer does not compensate a
// saved source when saving the destination fails; callers that need both
// writes to land together must run it inside a store transaction.
func Transfer(ctx context.Context, store AccountStore, sourceID, destinationID int64, raw decimal.Decimal) (decimal.Decimal, error) {
	source, err := findAccount(ctx, store, sourceID)
	if err != nil {
		return decimal.Decimal{}, err
	}
	destination, err := findAccount(ctx, store, destinationID)
	if err != nil {
		return decimal.Decimal{}, err
	}
	if source.ID == destination.ID {
		return decimal.Decimal{}, ErrSameAccount
	}

	amount, err := NormalizeAmount(raw)
	if err != nil {
		return decimal.Decimal{}, err
	}

	if err := source.Debit(amount); err != nil {
		return decimal.Decimal{}, err
	}
	destination.Credit(amount)

	if err := store.Save(ctx, source); err != nil {
		return decimal.Decimal{}, err
	}
	if err := store.Save(ctx, destination); err != nil {
		return decimal.Decimal{}, err
	}

	return source.Balance, nil
}

func findAccount(ctx context.Context, store AccountStore, id int64) (*Account, error) {
	account, err := store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, fmt.Errorf("account %d: %w", id, ErrAccountNotFound)
	}
	return account, nil
}
