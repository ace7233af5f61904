package actions

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/carson-networks/pix-ledger/internal/storage"
	"github.com/carson-networks/pix-ledger/internal/storage/sqlconfig"
)

// CreatePerson registers an account owner. CPF is unique.
type CreatePerson struct {
	Name      string
	CPF       string
	BirthDate time.Time

	ID int64
}

func (c *CreatePerson) AccountIDs() []int64 {
	return nil
}

func (c *CreatePerson) Perform(ctx context.Context, writer *storage.Writer) error {
	name := strings.TrimSpace(c.Name)
	cpf := strings.TrimSpace(c.CPF)
	if name == "" || cpf == "" {
		return ErrInvalidPerson
	}

	existing, err := writer.People.FindByCPF(ctx, cpf)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrPersonExists
	}

	id, err := writer.People.Insert(ctx, &sqlconfig.PersonCreate{
		Name:      name,
		CPF:       cpf,
		BirthDate: c.BirthDate,
	})
	if errors.Is(err, sqlconfig.ErrDuplicate) {
		return ErrPersonExists
	}
	if err != nil {
		return err
	}

	c.ID = id
	return nil
}
