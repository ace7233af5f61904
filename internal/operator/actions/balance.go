package actions

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/pix-ledger/internal/ledger"
	"github.com/carson-networks/pix-ledger/internal/storage"
)

// Deposit credits Amount to AccountID. Balance is set once Perform succeeds.
type Deposit struct {
	AccountID int64
	Amount    decimal.Decimal

	Balance decimal.Decimal
}

func (d *Deposit) AccountIDs() []int64 {
	return []int64{d.AccountID}
}

func (d *Deposit) Perform(ctx context.Context, writer *storage.Writer) error {
	balance, err := ledger.Deposit(ctx, writer.AccountStore(), d.AccountID, d.Amount)
	if err != nil {
		return err
	}
	d.Balance = balance
	return nil
}

// Withdraw debits Amount from AccountID.
type Withdraw struct {
	AccountID int64
	Amount    decimal.Decimal

	Balance decimal.Decimal
}

func (w *Withdraw) AccountIDs() []int64 {
	return []int64{w.AccountID}
}

func (w *Withdraw) Perform(ctx context.Context, writer *storage.Writer) error {
	balance, err := ledger.Withdraw(ctx, writer.AccountStore(), w.AccountID, w.Amount)
	if err != nil {
		return err
	}
	w.Balance = balance
	return nil
}

// Transfer is a Pix transfer. Balance is the source's balance afterwards.
type Transfer struct {
	SourceID      int64
	DestinationID int64
	Amount        decimal.Decimal

	Balance decimal.Decimal
}

func (t *Transfer) AccountIDs() []int64 {
	return []int64{t.SourceID, t.DestinationID}
}

func (t *Transfer) Perform(ctx context.Context, writer *storage.Writer) error {
	balance, err := ledger.Transfer(ctx, writer.AccountStore(), t.SourceID, t.DestinationID, t.Amount)
	if err != nil {
		return err
	}
	t.Balance = balance
	return nil
}
