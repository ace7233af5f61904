package person

import (
	"context"

	"github.com/carson-networks/pix-ledger/internal/operator/actions"
	"github.com/carson-networks/pix-ledger/internal/service"
)

const birthDateLayout = "2006-01-02"

// Person is the API response model for a person.
type Person struct {
	ID        int64  `json:"id" doc:"Person ID"`
	Name      string `json:"name" doc:"Full name"`
	CPF       string `json:"cpf" doc:"CPF, digits only"`
	BirthDate string `json:"birthDate" doc:"Birth date, YYYY-MM-DD"`
}

type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

type personGetter interface {
	GetPersonByCPF(ctx context.Context, cpf string) (*service.Person, error)
}
