package store

import (
	"database/sql"

	"github.com/coinkeep/coin-keeper/internal/logger"
	"github.com/coinkeep/coin-keeper/migrations"
)

// DB wraps the shared *sql.DB connection pool together with the
// backend-specific error classifier and the goose dialect name used to run
// migrations. A single DB instance is shared by all repositories.
type DB struct {
	*sql.DB
	errorClassifier ErrorClassifier
	dialect         string
	logger          *logger.Logger
}

// Migrate applies all pending schema migrations for the configured dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}
