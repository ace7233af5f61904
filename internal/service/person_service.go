package service

import (
	"context"
	"time"

	"github.com/carson-networks/pix-ledger/internal/storage"
)

// Person represents an account owner in the service layer.
type Person struct {
	ID        int64
	Name      string
	CPF       string
	BirthDate time.Time
}

type PersonService struct {
	storage *storage.Storage
}

func NewPersonService(store *storage.Storage) *PersonService {
	return &PersonService{storage: store}
}

// GetPersonByCPF returns ErrNotFound when nobody holds the CPF.
func (s *PersonService) GetPersonByCPF(ctx context.Context, cpf string) (*Person, error) {
	row, err := s.storage.People.FindByCPF(ctx, cpf)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, ErrNotFound
	}
	return &Person{
		ID:        row.ID,
		Name:      row.Name,
		CPF:       row.CPF,
		BirthDate: row.BirthDate,
	}, nil
}
