package service

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/pix-ledger/internal/ledger"
	"github.com/carson-networks/pix-ledger/internal/storage/sqlconfig"
)

// Account represents an account in the service layer.
type Account struct {
	ID        int64
	Kind      ledger.AccountKind
	OwnerID   *int64
	Balance   decimal.Decimal
	CreatedAt time.Time
}

// AccountCursor identifies a position in a paginated result set.
type AccountCursor struct {
	Position int
	Limit    int
}

func accountKindFromStorage(k sqlconfig.AccountKind) ledger.AccountKind {
	return ledger.AccountKind(k)
}

func accountFromStorage(row *sqlconfig.Account) Account {
	return Account{
		ID:        row.ID,
		Kind:      accountKindFromStorage(row.Kind),
		OwnerID:   row.OwnerID,
		Balance:   row.Balance,
		CreatedAt: row.CreatedAt,
	}
}
