package account

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/pix-ledger/internal/service"
)

type GetAccountInput struct {
	ID int64 `path:"id" doc:"Account ID"`
}

type GetAccountOutput struct {
	Body Account
}

type accountGetter interface {
	GetAccount(ctx context.Context, id int64) (*service.Account, error)
}

// GetAccountHandler handles GET /v1/account/{id}.
type GetAccountHandler struct {
	AccountService accountGetter
}

func NewGetAccountHandler(svc accountGetter) *GetAccountHandler {
	return &GetAccountHandler{AccountService: svc}
}

func (h *GetAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-account",
		Method:      http.MethodGet,
		Path:        "/v1/account/{id}",
		Summary:     "Get an account",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func (h *GetAccountHandler) handle(ctx context.Context, input *GetAccountInput) (*GetAccountOutput, error) {
	acc, err := h.AccountService.GetAccount(ctx, input.ID)
	if errors.Is(err, service.ErrNotFound) {
		return nil, huma.NewError(http.StatusNotFound, "resource not found", err)
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to get account", err)
	}

	return &GetAccountOutput{Body: accountFromService(*acc)}, nil
}
