package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/pix-ledger/internal/ledger"
	"github.com/carson-networks/pix-ledger/internal/storage"
	"github.com/carson-networks/pix-ledger/internal/storage/sqlconfig"
)

func newAccountTestService(t *testing.T) (*AccountService, *sqlconfig.MockIAccountTable) {
	t.Helper()
	mockTable := sqlconfig.NewMockIAccountTable(t)
	store := &storage.Storage{Accounts: mockTable}
	svc := NewAccountService(store)
	return svc, mockTable
}

func makeStorageAccounts(n int, createdAt time.Time) []*sqlconfig.Account {
	rows := make([]*sqlconfig.Account, n)
	for i := range rows {
		rows[i] = &sqlconfig.Account{
			ID:        int64(i + 1),
			Kind:      sqlconfig.AccountKindChecking,
			Balance:   decimal.RequireFromString("100.00"),
			CreatedAt: createdAt,
		}
	}
	return rows
}

// -- GetAccount tests --

func TestGetAccount_Success(t *testing.T) {
	svc, mockTable := newAccountTestService(t)

	owner := int64(3)
	createdAt := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)
	row := &sqlconfig.Account{
		ID:        8,
		Kind:      sqlconfig.AccountKindSavings,
		OwnerID:   &owner,
		Balance:   decimal.RequireFromString("750.00"),
		CreatedAt: createdAt,
	}

	mockTable.EXPECT().FindByID(mock.Anything, int64(8)).Return(row, nil)

	account, err := svc.GetAccount(context.Background(), 8)

	assert.NoError(t, err)
	assert.NotNil(t, account)
	assert.Equal(t, int64(8), account.ID)
	assert.Equal(t, ledger.AccountKindSavings, account.Kind)
	assert.Equal(t, &owner, account.OwnerID)
	assert.True(t, row.Balance.Equal(account.Balance))
	assert.Equal(t, row.CreatedAt, account.CreatedAt)
}

func TestGetAccount_NotFound(t *testing.T) {
	svc, mockTable := newAccountTestService(t)

	mockTable.EXPECT().FindByID(mock.Anything, int64(8)).Return(nil, nil)

	account, err := svc.GetAccount(context.Background(), 8)

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, account)
}

func TestGetAccount_StorageError(t *testing.T) {
	svc, mockTable := newAccountTestService(t)

	mockTable.EXPECT().FindByID(mock.Anything, int64(8)).
		Return(nil, errors.New("connection refused"))

	account, err := svc.GetAccount(context.Background(), 8)

	assert.Error(t, err)
	assert.Equal(t, "connection refused", err.Error())
	assert.Nil(t, account)
}

// -- ListAccounts tests --

func TestListAccounts_NoResults(t *testing.T) {
	svc, mockTable := newAccountTestService(t)

	mockTable.EXPECT().List(mock.Anything, mock.Anything).
		Return([]*sqlconfig.Account{}, nil)

	accounts, next, err := svc.ListAccounts(context.Background(), nil)

	assert.NoError(t, err)
	assert.Nil(t, accounts)
	assert.Nil(t, next)
}

func TestListAccounts_SinglePage(t *testing.T) {
	svc, mockTable := newAccountTestService(t)

	now := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)
	rows := makeStorageAccounts(2, now)

	mockTable.EXPECT().List(mock.Anything, mock.MatchedBy(func(f *sqlconfig.AccountFilter) bool {
		return f.Limit == defaultAccountLimit && f.Offset == 0
	})).Return(rows, nil)

	accounts, next, err := svc.ListAccounts(context.Background(), nil)

	assert.NoError(t, err)
	assert.Len(t, accounts, 2)
	assert.Nil(t, next)

	account := accounts[0]
	assert.Equal(t, rows[0].ID, account.ID)
	assert.Equal(t, accountKindFromStorage(rows[0].Kind), account.Kind)
	assert.True(t, rows[0].Balance.Equal(account.Balance))
	assert.Equal(t, rows[0].CreatedAt, account.CreatedAt)
}

func TestListAccounts_HasNextPage(t *testing.T) {
	svc, mockTable := newAccountTestService(t)

	now := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)
	rows := makeStorageAccounts(defaultAccountLimit+1, now)

	mockTable.EXPECT().List(mock.Anything, mock.Anything).Return(rows, nil)

	accounts, next, err := svc.ListAccounts(context.Background(), nil)

	assert.NoError(t, err)
	assert.Len(t, accounts, defaultAccountLimit, "truncated to default account limit")
	assert.NotNil(t, next)
	assert.Equal(t, defaultAccountLimit, next.Position)
	assert.Equal(t, defaultAccountLimit, next.Limit)
}

func TestListAccounts_WithCursor(t *testing.T) {
	svc, mockTable := newAccountTestService(t)

	rows := makeStorageAccounts(3, time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC))

	mockTable.EXPECT().List(mock.Anything, mock.MatchedBy(func(f *sqlconfig.AccountFilter) bool {
		return f.Limit == 2 && f.Offset == 20
	})).Return(rows, nil)

	accounts, next, err := svc.ListAccounts(context.Background(), &AccountCursor{
		Position: 20,
		Limit:    2,
	})

	assert.NoError(t, err)
	assert.Len(t, accounts, 2)
	assert.NotNil(t, next)
	assert.Equal(t, 22, next.Position)
	assert.Equal(t, 2, next.Limit)
}

func TestListAccounts_ZeroLimitUsesDefault(t *testing.T) {
	svc, mockTable := newAccountTestService(t)

	mockTable.EXPECT().List(mock.Anything, mock.MatchedBy(func(f *sqlconfig.AccountFilter) bool {
		return f.Limit == defaultAccountLimit && f.Offset == 5
	})).Return(nil, nil)

	_, _, err := svc.ListAccounts(context.Background(), &AccountCursor{Position: 5})

	assert.NoError(t, err)
}

func TestListAccounts_StorageError(t *testing.T) {
	svc, mockTable := newAccountTestService(t)

	mockTable.EXPECT().List(mock.Anything, mock.Anything).
		Return(nil, errors.New("database unavailable"))

	accounts, next, err := svc.ListAccounts(context.Background(), nil)

	assert.Error(t, err)
	assert.Equal(t, "database unavailable", err.Error())
	assert.Nil(t, accounts)
	assert.Nil(t, next)
}
