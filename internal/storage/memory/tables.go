package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/pix-ledger/internal/ledger"
	"github.com/carson-networks/pix-ledger/internal/storage/sqlconfig"
)

type accountTable struct {
	view *view
}

var _ sqlconfig.IAccountTable = (*accountTable)(nil)

func (t *accountTable) FindByID(_ context.Context, id int64) (*sqlconfig.Account, error) {
	var found *sqlconfig.Account
	t.view.read(func(s *state) {
		if account, ok := s.accounts[id]; ok {
			found = &account
		}
	})
	return found, nil
}

// FindByIDForUpdate is FindByID: a Tx already excludes other writers.
func (t *accountTable) FindByIDForUpdate(ctx context.Context, id int64) (*sqlconfig.Account, error) {
	return t.FindByID(ctx, id)
}

func (t *accountTable) Insert(_ context.Context, create *sqlconfig.AccountCreate) (int64, error) {
	var id int64
	err := t.view.write(func(s *state) error {
		if create.OwnerID != nil {
			if _, ok := s.people[*create.OwnerID]; !ok {
				return fmt.Errorf("owner %d does not exist", *create.OwnerID)
			}
		}
		if err := checkBalance(create.Balance); err != nil {
			return err
		}

		s.nextAccountID++
		id = s.nextAccountID
		s.accounts[id] = sqlconfig.Account{
			ID:        id,
			Kind:      create.Kind,
			OwnerID:   create.OwnerID,
			Balance:   create.Balance,
			CreatedAt: t.view.now(),
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (t *accountTable) List(_ context.Context, filter *sqlconfig.AccountFilter) ([]*sqlconfig.Account, error) {
	var rows []*sqlconfig.Account
	t.view.read(func(s *state) {
		rows = make([]*sqlconfig.Account, 0, len(s.accounts))
		for _, account := range s.accounts {
			account := account
			rows = append(rows, &account)
		}
	})
	sort.Slice(rows, func(i, j int) bool { return rows[i].ID < rows[j].ID })

	if filter == nil {
		return rows, nil
	}
	if filter.Offset > 0 {
		if filter.Offset >= len(rows) {
			return []*sqlconfig.Account{}, nil
		}
		rows = rows[filter.Offset:]
	}
	if filter.Limit > 0 && len(rows) > filter.Limit+1 {
		rows = rows[:filter.Limit+1]
	}
	return rows, nil
}

func (t *accountTable) UpdateBalance(_ context.Context, id int64, balance decimal.Decimal) error {
	return t.view.write(func(s *state) error {
		account, ok := s.accounts[id]
		if !ok {
			return fmt.Errorf("account %d: %w", id, sqlconfig.ErrNoRowUpdated)
		}
		if err := checkBalance(balance); err != nil {
			return err
		}
		account.Balance = balance
		s.accounts[id] = account
		return nil
	})
}

// checkBalance mirrors the accounts.balance column: NUMERIC(20, 2), never negative.
func checkBalance(balance decimal.Decimal) error {
	if balance.IsNegative() {
		return fmt.Errorf("balance %s is negative", balance)
	}
	if !ledger.WithinPrecision(balance) {
		return fmt.Errorf("balance exceeds %d integer digits", ledger.MaxIntegerDigits)
	}
	return nil
}

type personTable struct {
	view *view
}

var _ sqlconfig.IPersonTable = (*personTable)(nil)

func (t *personTable) FindByID(_ context.Context, id int64) (*sqlconfig.Person, error) {
	var found *sqlconfig.Person
	t.view.read(func(s *state) {
		if person, ok := s.people[id]; ok {
			found = &person
		}
	})
	return found, nil
}

func (t *personTable) FindByCPF(_ context.Context, cpf string) (*sqlconfig.Person, error) {
	var found *sqlconfig.Person
	t.view.read(func(s *state) {
		found = findPersonByCPF(s, cpf)
	})
	return found, nil
}

func (t *personTable) Insert(_ context.Context, create *sqlconfig.PersonCreate) (int64, error) {
	var id int64
	err := t.view.write(func(s *state) error {
		if findPersonByCPF(s, create.CPF) != nil {
			return sqlconfig.ErrDuplicate
		}

		s.nextPersonID++
		id = s.nextPersonID
		s.people[id] = sqlconfig.Person{
			ID:        id,
			Name:      create.Name,
			CPF:       create.CPF,
			BirthDate: create.BirthDate,
			CreatedAt: t.view.now(),
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

func findPersonByCPF(s *state, cpf string) *sqlconfig.Person {
	for _, person := range s.people {
		if person.CPF == cpf {
			return &person
		}
	}
	return nil
}
