package person

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/pix-ledger/internal/service"
)

type GetPersonInput struct {
	CPF string `path:"cpf" doc:"CPF, digits only"`
}

type GetPersonOutput struct {
	Body Person
}

// GetPersonHandler handles GET /v1/person/{cpf}.
type GetPersonHandler struct {
	PersonService personGetter
}

func NewGetPersonHandler(svc personGetter) *GetPersonHandler {
	return &GetPersonHandler{PersonService: svc}
}

func (h *GetPersonHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-person",
		Method:      http.MethodGet,
		Path:        "/v1/person/{cpf}",
		Summary:     "Find a person by CPF",
		Tags:        []string{"People"},
	}, h.handle)
}

func (h *GetPersonHandler) handle(ctx context.Context, input *GetPersonInput) (*GetPersonOutput, error) {
	p, err := h.PersonService.GetPersonByCPF(ctx, input.CPF)
	if errors.Is(err, service.ErrNotFound) {
		return nil, huma.NewError(http.StatusNotFound, "resource not found", err)
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to get person", err)
	}

	return &GetPersonOutput{Body: Person{
		ID:        p.ID,
		Name:      p.Name,
		CPF:       p.CPF,
		BirthDate: p.BirthDate.Format(birthDateLayout),
	}}, nil
}
