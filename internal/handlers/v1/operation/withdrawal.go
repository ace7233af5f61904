package operation

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/pix-ledger/internal/logging"
	"github.com/carson-networks/pix-ledger/internal/operator/actions"
)

// WithdrawalInput is the Huma input for a withdrawal.
type WithdrawalInput struct {
	AccountID int64  `path:"accountID" doc:"Account to debit"`
	Amount    string `query:"amount" required:"true" example:"2.10" doc:"Decimal amount, rounded half-up to two places"`
}

// WithdrawalHandler handles POST /v1/withdrawal/{accountID}.
type WithdrawalHandler struct {
	Operator actionProcessor
}

func NewWithdrawalHandler(op actionProcessor) *WithdrawalHandler {
	return &WithdrawalHandler{Operator: op}
}

func (h *WithdrawalHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "withdrawal",
		Method:      http.MethodPost,
		Path:        "/v1/withdrawal/{accountID}",
		Summary:     "Withdraw from an account",
		Tags:        []string{"Operations"},
	}, h.handle)
}

func (h *WithdrawalHandler) handle(ctx context.Context, input *WithdrawalInput) (*BalanceOutput, error) {
	logData := logging.GetLogData(ctx)

	amount, err := parseAmount(input.Amount)
	if err != nil {
		return nil, err
	}
	if logData != nil {
		logData.AddData("accountID", input.AccountID)
	}

	action := &actions.Withdraw{AccountID: input.AccountID, Amount: amount}
	stopTimer := logging.StartTiming(logData, "withdrawalMs")
	err = h.Operator.Process(ctx, action)
	stopTimer()
	if err != nil {
		return nil, toHumaError(err)
	}

	return newBalanceOutput(action.Balance), nil
}
