// Package migrations embeds the database schema and applies it with goose.
// Top-level files describe the PostgreSQL server schema, files under client/
// describe the SQLite schema of the terminal client.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql client/*.sql
var embedMigrations embed.FS

// ErrNilDB is returned when a migration is requested without a connection.
var ErrNilDB = errors.New("migration error: db is nil")

// Migrate applies the server schema using the pgx dialect.
func Migrate(db *sql.DB) error {
	return up(db, "pgx", ".")
}

// MigrateClient applies the client session schema using the sqlite3 dialect.
func MigrateClient(db *sql.DB) error {
	return up(db, "sqlite3", "client")
}

func up(db *sql.DB, dialect, dir string) error {
	if db == nil {
		return ErrNilDB
	}

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
