package sqlconfig

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type AccountKind int8

const (
	AccountKindChecking AccountKind = iota
	AccountKindSavings
)

// Account represents an accounts row.
type Account struct {
	ID        int64           `db:"id"`
	Kind      AccountKind     `db:"kind"`
	OwnerID   *int64          `db:"owner_id"`
	Balance   decimal.Decimal `db:"balance"`
	CreatedAt time.Time       `db:"created_at"`
}

// AccountCreate is the input for creating a new account.
type AccountCreate struct {
	Kind    AccountKind
	OwnerID *int64
	Balance decimal.Decimal
}

// AccountFilter specifies filters for listing accounts.
type AccountFilter struct {
	Limit  int
	Offset int
}

// IAccountTable defines the interface for account storage operations.
// FindByID and FindByIDForUpdate return nil and no error for a missing row.
//
//go:generate mockery --name IAccountTable --output mock_IAccountTable.go
type IAccountTable interface {
	FindByID(ctx context.Context, id int64) (*Account, error)
	FindByIDForUpdate(ctx context.Context, id int64) (*Account, error)
	Insert(ctx context.Context, create *AccountCreate) (int64, error)
	List(ctx context.Context, filter *AccountFilter) ([]*Account, error)
	UpdateBalance(ctx context.Context, id int64, balance decimal.Decimal) error
}
