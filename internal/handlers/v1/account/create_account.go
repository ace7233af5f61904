package account

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/pix-ledger/internal/ledger"
	"github.com/carson-networks/pix-ledger/internal/logging"
	"github.com/carson-networks/pix-ledger/internal/operator/actions"
)

// CreateAccountInput is the Huma input for creating an account.
type CreateAccountInput struct {
	Body CreateAccountBody
}

// CreateAccountBody is the request body fields for creating an account.
type CreateAccountBody struct {
	Kind    int    `json:"kind" minimum:"0" maximum:"1" doc:"Account kind: 0=checking, 1=savings"`
	OwnerID *int64 `json:"ownerId,omitempty" doc:"Registered person owning the account"`
}

// CreateAccountResponse is the response body for creating an account.
type CreateAccountResponse struct {
	ID int64 `json:"id" doc:"Created account ID"`
}

// CreateAccountOutput is the response for creating an account.
type CreateAccountOutput struct {
	Status int
	Body   CreateAccountResponse
}

// actionProcessor runs actions on the operator.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// CreateAccountHandler handles POST /v1/account.
type CreateAccountHandler struct {
	Operator actionProcessor
}

// NewCreateAccountHandler creates a new CreateAccountHandler.
func NewCreateAccountHandler(op actionProcessor) *CreateAccountHandler {
	return &CreateAccountHandler{Operator: op}
}

// Register registers the create account endpoint with the Huma API.
func (h *CreateAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-account",
		Method:      http.MethodPost,
		Path:        "/v1/account",
		Summary:     "Create an account",
		Description: "Opens an account with a zero balance, optionally owned by a registered person.",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func (h *CreateAccountHandler) handle(ctx context.Context, input *CreateAccountInput) (*CreateAccountOutput, error) {
	logData := logging.GetLogData(ctx)

	action := &actions.CreateAccount{
		Kind:    ledger.AccountKind(input.Body.Kind),
		OwnerID: input.Body.OwnerID,
	}

	stopTimer := logging.StartTiming(logData, "createAccountMs")
	err := h.Operator.Process(ctx, action)
	stopTimer()
	switch {
	case errors.Is(err, actions.ErrInvalidKind):
		return nil, huma.NewError(http.StatusBadRequest, "kind must be 0 or 1", err)
	case errors.Is(err, actions.ErrOwnerNotFound):
		return nil, huma.NewError(http.StatusNotFound, "owner not found", err)
	case err != nil:
		return nil, huma.NewError(http.StatusInternalServerError, "failed to create account", err)
	}

	if logData != nil {
		logData.AddData("accountID", action.ID)
	}

	return &CreateAccountOutput{
		Status: http.StatusCreated,
		Body:   CreateAccountResponse{ID: action.ID},
	}, nil
}
