package service

import (
	"github.com/carson-networks/pix-ledger/internal/storage"
)

// Service holds all read services.
type Service struct {
	Account *AccountService
	Person  *PersonService
}

// NewService creates a new Service with the given storage.
func NewService(store *storage.Storage) *Service {
	return &Service{
		Account: NewAccountService(store),
		Person:  NewPersonService(store),
	}
}
