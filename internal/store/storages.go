package store

import (
	"context"
	"strings"

	"github.com/coinkeep/coin-keeper/internal/config"
	"github.com/coinkeep/coin-keeper/internal/logger"
)

// Storages aggregates all repositories over the shared database connection.
type Storages struct {
	UserRepository        UserRepository
	SessionRepository     SessionRepository
	TransactionRepository TransactionRepository

	db *DB
}

// NewStorages opens the database backend selected by the DSN scheme
// (PostgreSQL for postgres:// URIs, SQLite otherwise), applies pending
// migrations, and wires all repositories over the shared connection.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	var db *DB
	var err error

	if isPostgresDSN(cfg.DB.DSN) {
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
	} else {
		db, err = NewConnectSQLite(ctx, cfg.DB, log)
	}
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		return nil, err
	}

	return &Storages{
		UserRepository:        NewUserRepository(db, log),
		SessionRepository:     NewSessionRepository(db, log),
		TransactionRepository: NewTransactionRepository(db, log),
		db:                    db,
	}, nil
}

// Close releases the shared database connection pool.
func (s *Storages) Close() error {
	return s.db.Close()
}

func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}
