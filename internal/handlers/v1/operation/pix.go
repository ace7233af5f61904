package operation

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/pix-ledger/internal/logging"
	"github.com/carson-networks/pix-ledger/internal/operator/actions"
)

// PixInput is the Huma input for a Pix transfer.
type PixInput struct {
	SourceID      int64  `path:"sourceID" doc:"Account to debit"`
	DestinationID int64  `query:"destination" required:"true" doc:"Account to credit"`
	Amount        string `query:"amount" required:"true" example:"1.43" doc:"Decimal amount, rounded half-up to two places"`
}

// PixHandler handles POST /v1/pix/{sourceID}.
type PixHandler struct {
	Operator actionProcessor
}

func NewPixHandler(op actionProcessor) *PixHandler {
	return &PixHandler{Operator: op}
}

func (h *PixHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "pix",
		Method:      http.MethodPost,
		Path:        "/v1/pix/{sourceID}",
		Summary:     "Transfer between accounts",
		Description: "Moves the amount from the source account to the destination. Returns the source balance.",
		Tags:        []string{"Operations"},
	}, h.handle)
}

func (h *PixHandler) handle(ctx context.Context, input *PixInput) (*BalanceOutput, error) {
	logData := logging.GetLogData(ctx)

	amount, err := parseAmount(input.Amount)
	if err != nil {
		return nil, err
	}
	if logData != nil {
		logData.AddData("sourceID", input.SourceID)
		logData.AddData("destinationID", input.DestinationID)
	}

	action := &actions.Transfer{
		SourceID:      input.SourceID,
		DestinationID: input.DestinationID,
		Amount:        amount,
	}
	stopTimer := logging.StartTiming(logData, "pixMs")
	err = h.Operator.Process(ctx, action)
	stopTimer()
	if err != nil {
		return nil, toHumaError(err)
	}

	return newBalanceOutput(action.Balance), nil
}
