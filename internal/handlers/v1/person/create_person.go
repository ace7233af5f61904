package person

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/pix-ledger/internal/logging"
	"github.com/carson-networks/pix-ledger/internal/operator/actions"
)

type CreatePersonInput struct {
	Body CreatePersonBody
}

type CreatePersonBody struct {
	Name      string `json:"name" minLength:"1" doc:"Full name"`
	CPF       string `json:"cpf" pattern:"^[0-9]{11}$" doc:"CPF, eleven digits"`
	BirthDate string `json:"birthDate" format:"date" doc:"Birth date, YYYY-MM-DD"`
}

type CreatePersonResponse struct {
	ID int64 `json:"id" doc:"Created person ID"`
}

type CreatePersonOutput struct {
	Status int
	Body   CreatePersonResponse
}

// CreatePersonHandler handles POST /v1/person.
type CreatePersonHandler struct {
	Operator actionProcessor
}

func NewCreatePersonHandler(op actionProcessor) *CreatePersonHandler {
	return &CreatePersonHandler{Operator: op}
}

func (h *CreatePersonHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-person",
		Method:      http.MethodPost,
		Path:        "/v1/person",
		Summary:     "Register a person",
		Tags:        []string{"People"},
	}, h.handle)
}

func (h *CreatePersonHandler) handle(ctx context.Context, input *CreatePersonInput) (*CreatePersonOutput, error) {
	logData := logging.GetLogData(ctx)

	birthDate, err := time.Parse(birthDateLayout, input.Body.BirthDate)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid birthDate", err)
	}

	action := &actions.CreatePerson{
		Name:      input.Body.Name,
		CPF:       input.Body.CPF,
		BirthDate: birthDate,
	}

	stopTimer := logging.StartTiming(logData, "createPersonMs")
	err = h.Operator.Process(ctx, action)
	stopTimer()
	switch {
	case errors.Is(err, actions.ErrPersonExists):
		return nil, huma.NewError(http.StatusConflict, "person already registered", err)
	case errors.Is(err, actions.ErrInvalidPerson):
		return nil, huma.NewError(http.StatusBadRequest, "name and cpf are required", err)
	case err != nil:
		return nil, huma.NewError(http.StatusInternalServerError, "failed to register person", err)
	}

	if logData != nil {
		logData.AddData("personID", action.ID)
	}

	return &CreatePersonOutput{
		Status: http.StatusCreated,
		Body:   CreatePersonResponse{ID: action.ID},
	}, nil
}
