package operation

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/pix-ledger/internal/ledger"
	"github.com/carson-networks/pix-ledger/internal/operator/actions"
)

// BalanceResponse is the response body of every balance operation.
type BalanceResponse struct {
	Balance string `json:"balance" example:"11.00" doc:"Balance after the operation, two decimal places"`
}

// BalanceOutput is the Huma output for balance operations.
type BalanceOutput struct {
	Body BalanceResponse
}

// actionProcessor runs actions on the operator.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

func newBalanceOutput(balance decimal.Decimal) *BalanceOutput {
	return &BalanceOutput{Body: BalanceResponse{Balance: balance.StringFixed(ledger.AmountScale)}}
}

// maxAmountLength caps the raw amount before it is parsed.
const maxAmountLength = 64

func parseAmount(raw string) (decimal.Decimal, error) {
	if len(raw) > maxAmountLength {
		return decimal.Decimal{}, huma.NewError(http.StatusBadRequest, ledger.ErrInvalidAmount.Error())
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, huma.NewError(http.StatusBadRequest, ledger.ErrInvalidAmount.Error(), err)
	}
	if !ledger.WithinPrecision(amount) {
		return decimal.Decimal{}, huma.NewError(http.StatusBadRequest, ledger.ErrInvalidAmount.Error(), ledger.ErrInvalidAmount)
	}
	return amount, nil
}

// toHumaError maps a ledger failure to its HTTP status.
func toHumaError(err error) error {
	switch ledger.KindOf(err) {
	case ledger.KindInvalidAmount:
		return huma.NewError(http.StatusBadRequest, ledger.ErrInvalidAmount.Error(), err)
	case ledger.KindAccountNotFound:
		return huma.NewError(http.StatusNotFound, ledger.ErrAccountNotFound.Error(), err)
	case ledger.KindInsufficientBalance:
		return huma.NewError(http.StatusBadRequest, ledger.ErrInsufficientBalance.Error(), err)
	case ledger.KindSameAccount:
		return huma.NewError(http.StatusBadRequest, ledger.ErrSameAccount.Error(), err)
	default:
		return huma.NewError(http.StatusInternalServerError, "failed to apply operation", err)
	}
}
