// Package migrations embeds the SQL schema migrations and applies them with
// goose. Each supported backend has its own migration directory because the
// auto-increment and timestamp syntax differ between PostgreSQL and SQLite.
package migrations

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

// Migrate applies all pending migrations to db. Dialect must be one of the
// goose dialect names "pgx" or "sqlite3"; it selects both the goose dialect
// and the migration directory.
func Migrate(db *sql.DB, dialect string) error {
	goose.SetBaseFS(embedMigrations)

	dir := "postgres"
	if dialect == "sqlite3" {
		dir = "sqlite"
	}

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
