package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/pix-ledger/internal/storage"
	"github.com/carson-networks/pix-ledger/internal/storage/sqlconfig"
)

func newPersonTestService(t *testing.T) (*PersonService, *sqlconfig.MockIPersonTable) {
	t.Helper()
	mockTable := sqlconfig.NewMockIPersonTable(t)
	return NewPersonService(&storage.Storage{People: mockTable}), mockTable
}

func TestGetPersonByCPF_Success(t *testing.T) {
	svc, mockTable := newPersonTestService(t)
	birth := time.Date(1990, 5, 17, 0, 0, 0, 0, time.UTC)

	mockTable.EXPECT().FindByCPF(mock.Anything, "12345678901").Return(&sqlconfig.Person{
		ID:        2,
		Name:      "Maria",
		CPF:       "12345678901",
		BirthDate: birth,
	}, nil)

	person, err := svc.GetPersonByCPF(context.Background(), "12345678901")

	assert.NoError(t, err)
	assert.Equal(t, &Person{ID: 2, Name: "Maria", CPF: "12345678901", BirthDate: birth}, person)
}

func TestGetPersonByCPF_NotFound(t *testing.T) {
	svc, mockTable := newPersonTestService(t)
	mockTable.EXPECT().FindByCPF(mock.Anything, "1").Return(nil, nil)

	person, err := svc.GetPersonByCPF(context.Background(), "1")

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, person)
}

func TestGetPersonByCPF_StorageError(t *testing.T) {
	svc, mockTable := newPersonTestService(t)
	mockTable.EXPECT().FindByCPF(mock.Anything, "1").Return(nil, errors.New("timeout"))

	_, err := svc.GetPersonByCPF(context.Background(), "1")

	assert.EqualError(t, err, "timeout")
}
