package storage

import (
	"context"

	"github.com/carson-networks/pix-ledger/internal/ledger"
	"github.com/carson-networks/pix-ledger/internal/storage/sqlconfig"
)

// Tx is the transaction a Writer runs inside.
type Tx interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

type Writer struct {
	tx       Tx
	Accounts sqlconfig.IAccountTable
	People   sqlconfig.IPersonTable
}

func NewWriter(tx Tx, accounts sqlconfig.IAccountTable, people sqlconfig.IPersonTable) *Writer {
	return &Writer{
		tx:       tx,
		Accounts: accounts,
		People:   people,
	}
}

func (w *Writer) Commit() error {
	return w.tx.Commit(context.Background())
}

func (w *Writer) Rollback() error {
	return w.tx.Rollback(context.Background())
}

// AccountStore runs the ledger operations against this transaction.
func (w *Writer) AccountStore() ledger.AccountStore {
	return &accountStore{table: w.Accounts}
}
