// Package memory is an in-process storage backend with the same table
// contracts as the postgres one. Write transactions are exclusive: one
// runs at a time and works on a private copy that Commit publishes.
package memory

import (
	"context"
	"database/sql"
	"sync"
	"time"

	"github.com/carson-networks/pix-ledger/internal/storage/sqlconfig"
)

type state struct {
	accounts      map[int64]sqlconfig.Account
	people        map[int64]sqlconfig.Person
	nextAccountID int64
	nextPersonID  int64
}

func newState() *state {
	return &state{
		accounts: make(map[int64]sqlconfig.Account),
		people:   make(map[int64]sqlconfig.Person),
	}
}

func (s *state) clone() *state {
	c := &state{
		accounts:      make(map[int64]sqlconfig.Account, len(s.accounts)),
		people:        make(map[int64]sqlconfig.Person, len(s.people)),
		nextAccountID: s.nextAccountID,
		nextPersonID:  s.nextPersonID,
	}
	for id, account := range s.accounts {
		c.accounts[id] = account
	}
	for id, person := range s.people {
		c.people[id] = person
	}
	return c
}

// Store holds the committed state.
type Store struct {
	mu        sync.RWMutex
	committed *state
	writeSlot chan struct{}
	now       func() time.Time
}

func New() *Store {
	return &Store{
		committed: newState(),
		writeSlot: make(chan struct{}, 1),
		now:       time.Now,
	}
}

// Accounts reads and writes committed state directly.
func (s *Store) Accounts() sqlconfig.IAccountTable {
	return &accountTable{view: s.committedView()}
}

func (s *Store) People() sqlconfig.IPersonTable {
	return &personTable{view: s.committedView()}
}

// Begin waits for the write slot and opens a transaction on a copy of the
// committed state.
func (s *Store) Begin(ctx context.Context) (*Tx, error) {
	select {
	case s.writeSlot <- struct{}{}:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	s.mu.RLock()
	staged := s.committed.clone()
	s.mu.RUnlock()

	tx := &Tx{store: s, staged: staged}
	tx.view = &view{
		now:   s.now,
		read:  func(fn func(*state)) { fn(tx.staged) },
		write: func(fn func(*state) error) error { return fn(tx.staged) },
	}
	return tx, nil
}

func (s *Store) committedView() *view {
	return &view{
		now: s.now,
		read: func(fn func(*state)) {
			s.mu.RLock()
			defer s.mu.RUnlock()
			fn(s.committed)
		},
		write: func(fn func(*state) error) error {
			s.mu.Lock()
			defer s.mu.Unlock()
			return fn(s.committed)
		},
	}
}

// Tx is a write transaction. Exactly one of Commit or Rollback releases it.
type Tx struct {
	store  *Store
	staged *state
	view   *view
	done   bool
}

func (tx *Tx) Accounts() sqlconfig.IAccountTable {
	return &accountTable{view: tx.view}
}

func (tx *Tx) People() sqlconfig.IPersonTable {
	return &personTable{view: tx.view}
}

func (tx *Tx) Commit(_ context.Context) error {
	if tx.done {
		return sql.ErrTxDone
	}
	tx.done = true

	tx.store.mu.Lock()
	tx.store.committed = tx.staged
	tx.store.mu.Unlock()

	<-tx.store.writeSlot
	return nil
}

func (tx *Tx) Rollback(_ context.Context) error {
	if tx.done {
		return sql.ErrTxDone
	}
	tx.done = true

	<-tx.store.writeSlot
	return nil
}

type view struct {
	now   func() time.Time
	read  func(fn func(*state))
	write func(fn func(*state) error) error
}
