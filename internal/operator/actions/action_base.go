package actions

import (
	"context"
	"strconv"

	"github.com/carson-networks/pix-ledger/internal/storage"
)

// IAction is a unit of work the operator runs inside one storage transaction.
// AccountIDs names the accounts the operator must lock first.
type IAction interface {
	AccountIDs() []int64
	Perform(ctx context.Context, writer *storage.Writer) error
}

// AccountLockKey is the lock key guarding one account.
func AccountLockKey(id int64) string {
	return "account:" + strconv.FormatInt(id, 10)
}
