package operation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/pix-ledger/internal/ledger"
	"github.com/carson-networks/pix-ledger/internal/operator/actions"
)

// mockProcessor is a mock for actionProcessor.
type mockProcessor struct {
	mock.Mock
}

func (m *mockProcessor) Process(ctx context.Context, action actions.IAction) error {
	return m.Called(ctx, action).Error(0)
}

// newTestAPI registers all operation handlers against a humatest API.
func newTestAPI(t *testing.T, op actionProcessor) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewDepositHandler(op).Register(api)
	NewWithdrawalHandler(op).Register(api)
	NewPixHandler(op).Register(api)
	return api
}

func decodeBalance(t *testing.T, body []byte) string {
	t.Helper()
	var resp BalanceResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	return resp.Balance
}

func decodeDetail(t *testing.T, body []byte) string {
	t.Helper()
	var resp struct {
		Detail string `json:"detail"`
	}
	require.NoError(t, json.Unmarshal(body, &resp))
	return resp.Detail
}

// -- Deposit tests --

func TestHTTP_Deposit_Success(t *testing.T) {
	op := new(mockProcessor)
	op.On("Process", mock.Anything, mock.MatchedBy(func(a *actions.Deposit) bool {
		return a.AccountID == 1 && a.Amount.Equal(decimal.NewFromInt(10))
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*actions.Deposit).Balance = decimal.RequireFromString("10.00")
	}).Return(nil)

	resp := newTestAPI(t, op).Post("/v1/deposit/1?amount=10")

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "10.00", decodeBalance(t, resp.Body.Bytes()))
	op.AssertExpectations(t)
}

func TestHTTP_Deposit_UnparseableAmount(t *testing.T) {
	op := new(mockProcessor)

	resp := newTestAPI(t, op).Post("/v1/deposit/1?amount=ten")

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Equal(t, "amount is invalid", decodeDetail(t, resp.Body.Bytes()))
	op.AssertNotCalled(t, "Process", mock.Anything, mock.Anything)
}

func TestHTTP_Deposit_AmountBeyondPrecision(t *testing.T) {
	for _, raw := range []string{
		"1e50000000",
		"1e-50000000",
		"1000000000000000000",
		"1" + strings.Repeat("0", 80),
	} {
		t.Run(raw[:min(len(raw), 16)], func(t *testing.T) {
			op := new(mockProcessor)

			resp := newTestAPI(t, op).Post("/v1/deposit/1?amount=" + raw)

			assert.Equal(t, http.StatusBadRequest, resp.Code)
			assert.Equal(t, "amount is invalid", decodeDetail(t, resp.Body.Bytes()))
			op.AssertNotCalled(t, "Process", mock.Anything, mock.Anything)
		})
	}
}

func TestHTTP_Deposit_MissingAmount(t *testing.T) {
	op := new(mockProcessor)

	resp := newTestAPI(t, op).Post("/v1/deposit/1")

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	op.AssertNotCalled(t, "Process", mock.Anything, mock.Anything)
}

func TestHTTP_Deposit_ErrorMapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
		detail string
	}{
		{ledger.ErrInvalidAmount, http.StatusBadRequest, "amount is invalid"},
		{fmt.Errorf("account 1: %w", ledger.ErrAccountNotFound), http.StatusNotFound, "resource not found"},
		{errors.New("connection reset"), http.StatusInternalServerError, "failed to apply operation"},
	}

	for _, tc := range cases {
		t.Run(tc.detail, func(t *testing.T) {
			op := new(mockProcessor)
			op.On("Process", mock.Anything, mock.Anything).Return(tc.err)

			resp := newTestAPI(t, op).Post("/v1/deposit/1?amount=0")

			assert.Equal(t, tc.status, resp.Code)
			assert.Equal(t, tc.detail, decodeDetail(t, resp.Body.Bytes()))
		})
	}
}

// -- Withdrawal tests --

func TestHTTP_Withdrawal_Success(t *testing.T) {
	op := new(mockProcessor)
	op.On("Process", mock.Anything, mock.MatchedBy(func(a *actions.Withdraw) bool {
		return a.AccountID == 3 && a.Amount.Equal(decimal.RequireFromString("2.1"))
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*actions.Withdraw).Balance = decimal.RequireFromString("7.9")
	}).Return(nil)

	resp := newTestAPI(t, op).Post("/v1/withdrawal/3?amount=2.1")

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "7.90", decodeBalance(t, resp.Body.Bytes()))
}

func TestHTTP_Withdrawal_Insufficient(t *testing.T) {
	op := new(mockProcessor)
	op.On("Process", mock.Anything, mock.Anything).Return(ledger.ErrInsufficientBalance)

	resp := newTestAPI(t, op).Post("/v1/withdrawal/3?amount=5.01")

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Equal(t, "balance insufficient for requested amount", decodeDetail(t, resp.Body.Bytes()))
}

// -- Pix tests --

func TestHTTP_Pix_Success(t *testing.T) {
	op := new(mockProcessor)
	op.On("Process", mock.Anything, mock.MatchedBy(func(a *actions.Transfer) bool {
		return a.SourceID == 1 && a.DestinationID == 2 && a.Amount.Equal(decimal.RequireFromString("1.425"))
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*actions.Transfer).Balance = decimal.RequireFromString("8.57")
	}).Return(nil)

	resp := newTestAPI(t, op).Post("/v1/pix/1?destination=2&amount=1.425")

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "8.57", decodeBalance(t, resp.Body.Bytes()))
}

func TestHTTP_Pix_SameAccount(t *testing.T) {
	op := new(mockProcessor)
	op.On("Process", mock.Anything, mock.Anything).Return(ledger.ErrSameAccount)

	resp := newTestAPI(t, op).Post("/v1/pix/1?destination=1&amount=1")

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestHTTP_Pix_DestinationNotFound(t *testing.T) {
	op := new(mockProcessor)
	op.On("Process", mock.Anything, mock.Anything).Return(fmt.Errorf("account 9: %w", ledger.ErrAccountNotFound))

	resp := newTestAPI(t, op).Post("/v1/pix/1?destination=9&amount=1")

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestHTTP_Pix_MissingDestination(t *testing.T) {
	op := new(mockProcessor)

	resp := newTestAPI(t, op).Post("/v1/pix/1?amount=1")

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	op.AssertNotCalled(t, "Process", mock.Anything, mock.Anything)
}
