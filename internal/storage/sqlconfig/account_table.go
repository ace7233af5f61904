package sqlconfig

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

const accountsTableName = "accounts"

var accountColumns = []any{"id", "kind", "owner_id", "balance", "created_at"}

// AccountsTable provides access to the accounts table.
type AccountsTable struct {
	exec bob.Executor
}

// Ensure AccountsTable implements IAccountTable at compile time.
var _ IAccountTable = (*AccountsTable)(nil)

// NewAccountsTable creates an AccountsTable on a bob.DB or bob.Tx.
func NewAccountsTable(exec bob.Executor) *AccountsTable {
	return &AccountsTable{exec: exec}
}

// FindByID retrieves an account by primary key.
func (t *AccountsTable) FindByID(ctx context.Context, id int64) (*Account, error) {
	return t.findByID(ctx, id)
}

// FindByIDForUpdate retrieves an account and holds its row lock until the
// surrounding transaction ends.
func (t *AccountsTable) FindByIDForUpdate(ctx context.Context, id int64) (*Account, error) {
	return t.findByID(ctx, id, sm.ForUpdate())
}

func (t *AccountsTable) findByID(ctx context.Context, id int64, extra ...bob.Mod[*dialect.SelectQuery]) (*Account, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(accountColumns...),
		sm.From(accountsTableName),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	}
	queryMods = append(queryMods, extra...)

	row, err := bob.One(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[*Account]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return row, nil
}

// Insert creates a new account and returns its generated ID.
func (t *AccountsTable) Insert(ctx context.Context, create *AccountCreate) (int64, error) {
	query := psql.Insert(
		im.Into(accountsTableName, "kind", "owner_id", "balance"),
		im.Values(psql.Arg(create.Kind), psql.Arg(create.OwnerID), psql.Arg(create.Balance)),
		im.Returning("id"),
	)
	return bob.One(ctx, t.exec, query, scan.SingleColumnMapper[int64])
}

// List returns accounts ordered by ID. A positive Limit fetches one extra
// row so callers can tell whether another page exists.
func (t *AccountsTable) List(ctx context.Context, filter *AccountFilter) ([]*Account, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(accountColumns...),
		sm.From(accountsTableName),
	}
	if filter != nil {
		if filter.Limit > 0 {
			queryMods = append(queryMods, sm.Limit(filter.Limit+1))
		}
		if filter.Offset > 0 {
			queryMods = append(queryMods, sm.Offset(filter.Offset))
		}
	}
	queryMods = append(queryMods, sm.OrderBy(psql.Quote("id")).Asc())

	return bob.All(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[*Account]())
}

// UpdateBalance updates the balance for a given account.
func (t *AccountsTable) UpdateBalance(ctx context.Context, id int64, balance decimal.Decimal) error {
	query := psql.Update(
		um.Table(accountsTableName),
		um.SetCol("balance").ToArg(balance),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	result, err := bob.Exec(ctx, t.exec, query)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("account %d: %w", id, ErrNoRowUpdated)
	}
	return nil
}
