package service

import (
	"context"
	"errors"

	"github.com/carson-networks/pix-ledger/internal/storage"
	"github.com/carson-networks/pix-ledger/internal/storage/sqlconfig"
)

const defaultAccountLimit = 20

var ErrNotFound = errors.New("resource not found")

// AccountService answers account reads. Balance changes go through the operator.
type AccountService struct {
	storage *storage.Storage
}

// NewAccountService creates a new AccountService.
func NewAccountService(store *storage.Storage) *AccountService {
	return &AccountService{storage: store}
}

// GetAccount retrieves an account by ID.
func (s *AccountService) GetAccount(ctx context.Context, id int64) (*Account, error) {
	row, err := s.storage.Accounts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, ErrNotFound
	}
	account := accountFromStorage(row)
	return &account, nil
}

// ListAccounts returns a page of accounts using cursor pagination.
func (s *AccountService) ListAccounts(ctx context.Context, cursor *AccountCursor) ([]Account, *AccountCursor, error) {
	limit := defaultAccountLimit
	offset := 0
	if cursor != nil {
		if cursor.Limit > 0 {
			limit = cursor.Limit
		}
		offset = cursor.Position
	}

	filter := &sqlconfig.AccountFilter{
		Limit:  limit,
		Offset: offset,
	}

	var nextCursor *AccountCursor
	accounts, err := s.storage.Accounts.List(ctx, filter)
	if err != nil {
		return nil, nil, err
	}

	if len(accounts) == 0 {
		return nil, nil, nil
	}

	if len(accounts) > limit {
		accounts = accounts[:limit]
		nextCursor = &AccountCursor{
			Position: offset + limit,
			Limit:    limit,
		}
	}

	convertedAccounts := make([]Account, len(accounts))
	for i, account := range accounts {
		convertedAccounts[i] = accountFromStorage(account)
	}

	return convertedAccounts, nextCursor, nil
}
