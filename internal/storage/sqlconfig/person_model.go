package sqlconfig

import (
	"context"
	"time"
)

// Person represents a people row.
type Person struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	CPF       string    `db:"cpf"`
	BirthDate time.Time `db:"birth_date"`
	CreatedAt time.Time `db:"created_at"`
}

// PersonCreate is the input for registering a person.
type PersonCreate struct {
	Name      string
	CPF       string
	BirthDate time.Time
}

// IPersonTable defines the interface for person storage operations.
// Insert returns ErrDuplicate when the CPF is already registered.
//
//go:generate mockery --name IPersonTable --output mock_IPersonTable.go
type IPersonTable interface {
	FindByID(ctx context.Context, id int64) (*Person, error)
	FindByCPF(ctx context.Context, cpf string) (*Person, error)
	Insert(ctx context.Context, create *PersonCreate) (int64, error)
}
