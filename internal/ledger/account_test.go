package ledger

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNewAccount_StartsAtZero(t *testing.T) {
	account := NewAccount(AccountKindChecking, nil)

	assert.True(t, account.Balance.IsZero())
	assert.Equal(t, AccountKindChecking, account.Kind)
	assert.Nil(t, account.OwnerID)
}

func TestAccount_CreditFixesScale(t *testing.T) {
	account := NewAccount(AccountKindChecking, nil)

	account.Credit(MustAmount("10"))

	assert.Equal(t, "10.00", account.Balance.StringFixed(AmountScale))
	assert.Equal(t, int32(-AmountScale), account.Balance.Exponent())
}

func TestAccount_DebitWholeBalance(t *testing.T) {
	account := NewAccount(AccountKindChecking, nil)
	account.Credit(MustAmount("10"))

	err := account.Debit(MustAmount("10"))

	assert.NoError(t, err)
	assert.True(t, account.Balance.Equal(decimal.Zero))
	assert.Equal(t, "0.00", account.Balance.StringFixed(AmountScale))
}

func TestAccount_DebitPartialDecimal(t *testing.T) {
	account := NewAccount(AccountKindChecking, nil)
	account.Credit(MustAmount("10"))

	err := account.Debit(MustAmount("2.1"))

	assert.NoError(t, err)
	assert.Equal(t, "7.90", account.Balance.StringFixed(AmountScale))
}

func TestAccount_DebitInsufficientLeavesBalance(t *testing.T) {
	account := NewAccount(AccountKindChecking, nil)
	account.Credit(MustAmount("5"))

	err := account.Debit(MustAmount("5.01"))

	assert.ErrorIs(t, err, ErrInsufficientBalance)
	assert.Equal(t, "5.00", account.Balance.StringFixed(AmountScale))
}

func TestAccountKind_Valid(t *testing.T) {
	assert.True(t, AccountKindChecking.Valid())
	assert.True(t, AccountKindSavings.Valid())
	assert.False(t, AccountKind(7).Valid())
	assert.Equal(t, "unknown", AccountKind(7).String())
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindNone, KindOf(nil))
	assert.Equal(t, KindInvalidAmount, KindOf(ErrInvalidAmount))
	assert.Equal(t, KindAccountNotFound, KindOf(findAccountErr(3)))
	assert.Equal(t, KindInsufficientBalance, KindOf(ErrInsufficientBalance))
	assert.Equal(t, KindSameAccount, KindOf(ErrSameAccount))
	assert.Equal(t, KindStorage, KindOf(assert.AnError))
	assert.Equal(t, "StorageFailure", KindStorage.String())
}

func findAccountErr(id int64) error {
	_, err := findAccount(context.Background(), newFakeStore(), id)
	return err
}
