package operation

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/pix-ledger/internal/logging"
	"github.com/carson-networks/pix-ledger/internal/operator/actions"
)

// DepositInput is the Huma input for a deposit.
type DepositInput struct {
	AccountID int64  `path:"accountID" doc:"Account to credit"`
	Amount    string `query:"amount" required:"true" example:"10.00" doc:"Decimal amount, rounded half-up to two places"`
}

// DepositHandler handles POST /v1/deposit/{accountID}.
type DepositHandler struct {
	Operator actionProcessor
}

func NewDepositHandler(op actionProcessor) *DepositHandler {
	return &DepositHandler{Operator: op}
}

// Register registers the deposit endpoint with the Huma API.
func (h *DepositHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "deposit",
		Method:      http.MethodPost,
		Path:        "/v1/deposit/{accountID}",
		Summary:     "Deposit into an account",
		Tags:        []string{"Operations"},
	}, h.handle)
}

func (h *DepositHandler) handle(ctx context.Context, input *DepositInput) (*BalanceOutput, error) {
	logData := logging.GetLogData(ctx)

	amount, err := parseAmount(input.Amount)
	if err != nil {
		return nil, err
	}
	if logData != nil {
		logData.AddData("accountID", input.AccountID)
	}

	action := &actions.Deposit{AccountID: input.AccountID, Amount: amount}
	stopTimer := logging.StartTiming(logData, "depositMs")
	err = h.Operator.Process(ctx, action)
	stopTimer()
	if err != nil {
		return nil, toHumaError(err)
	}

	return newBalanceOutput(action.Balance), nil
}
