package storage

import (
	"context"

	"github.com/carson-networks/pix-ledger/internal/ledger"
	"github.com/carson-networks/pix-ledger/internal/storage/sqlconfig"
)

type accountStore struct {
	table sqlconfig.IAccountTable
}

// FindByID locks the row for the rest of the transaction.
func (s *accountStore) FindByID(ctx context.Context, id int64) (*ledger.Account, error) {
	row, err := s.table.FindByIDForUpdate(ctx, id)
	if err != nil || row == nil {
		return nil, err
	}
	return AccountFromRow(row), nil
}

// Save persists the balance. Kind and owner never change after creation.
func (s *accountStore) Save(ctx context.Context, account *ledger.Account) error {
	return s.table.UpdateBalance(ctx, account.ID, account.Balance)
}

func AccountFromRow(row *sqlconfig.Account) *ledger.Account {
	return &ledger.Account{
		ID:      row.ID,
		Kind:    ledger.AccountKind(row.Kind),
		OwnerID: row.OwnerID,
		Balance: row.Balance,
	}
}
