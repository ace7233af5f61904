package actions

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/pix-ledger/internal/ledger"
	"github.com/carson-networks/pix-ledger/internal/storage"
	"github.com/carson-networks/pix-ledger/internal/storage/sqlconfig"
)

// CreateAccount opens an account with a zero balance. ID is set once Perform
// succeeds.
type CreateAccount struct {
	Kind    ledger.AccountKind
	OwnerID *int64

	ID int64
}

func (c *CreateAccount) AccountIDs() []int64 {
	return nil
}

func (c *CreateAccount) Perform(ctx context.Context, writer *storage.Writer) error {
	if !c.Kind.Valid() {
		return ErrInvalidKind
	}

	if c.OwnerID != nil {
		owner, err := writer.People.FindByID(ctx, *c.OwnerID)
		if err != nil {
			return err
		}
		if owner == nil {
			return fmt.Errorf("person %d: %w", *c.OwnerID, ErrOwnerNotFound)
		}
	}

	account := ledger.NewAccount(c.Kind, c.OwnerID)
	id, err := writer.Accounts.Insert(ctx, &sqlconfig.AccountCreate{
		Kind:    sqlconfig.AccountKind(account.Kind),
		OwnerID: account.OwnerID,
		Balance: decimal.Zero,
	})
	if err != nil {
		return err
	}

	c.ID = id
	return nil
}
