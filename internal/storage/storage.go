package storage

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/pix-ledger/internal/config"
	"github.com/carson-networks/pix-ledger/internal/storage/memory"
	"github.com/carson-networks/pix-ledger/internal/storage/sqlconfig"
)

// Storage exposes committed reads through its tables and serialized writes
// through Write.
type Storage struct {
	Accounts sqlconfig.IAccountTable
	People   sqlconfig.IPersonTable

	begin   func(ctx context.Context) (*Writer, error)
	closeFn func() error
}

// Open builds the backend named by STORAGE_DRIVER.
func Open(ctx context.Context, env *config.Config) (*Storage, error) {
	switch env.StorageDriver {
	case config.StorageDriverMemory:
		return NewMemoryStorage(), nil
	case config.StorageDriverPostgres:
		return NewStorage(ctx, env)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", env.StorageDriver)
	}
}

// NewStorage connects to postgres.
func NewStorage(ctx context.Context, env *config.Config) (*Storage, error) {
	db, err := sql.Open("postgres", env.PostgresURL())
	if err != nil {
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	bobDB := bob.NewDB(db)
	return &Storage{
		Accounts: sqlconfig.NewAccountsTable(bobDB),
		People:   sqlconfig.NewPeopleTable(bobDB),
		begin: func(ctx context.Context) (*Writer, error) {
			tx, err := bobDB.BeginTx(ctx, nil)
			if err != nil {
				return nil, err
			}
			return NewWriter(tx, sqlconfig.NewAccountsTable(tx), sqlconfig.NewPeopleTable(tx)), nil
		},
		closeFn: db.Close,
	}, nil
}

// NewMemoryStorage returns a process-local backend.
func NewMemoryStorage() *Storage {
	store := memory.New()
	return &Storage{
		Accounts: store.Accounts(),
		People:   store.People(),
		begin: func(ctx context.Context) (*Writer, error) {
			tx, err := store.Begin(ctx)
			if err != nil {
				return nil, err
			}
			return NewWriter(tx, tx.Accounts(), tx.People()), nil
		},
		closeFn: func() error { return nil },
	}
}

// Write opens a transaction. The caller must Commit or Rollback the Writer.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	if s.begin == nil {
		return nil, fmt.Errorf("storage: writes not configured")
	}
	return s.begin(ctx)
}

func (s *Storage) Close() error {
	if s.closeFn == nil {
		return nil
	}
	return s.closeFn()
}
