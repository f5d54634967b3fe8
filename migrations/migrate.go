// Package migrations embeds the goose migrations for the server database
// (PostgreSQL) and the client's local session database (SQLite).
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql
var postgresMigrations embed.FS

//go:embed sqlite/*.sql
var sqliteMigrations embed.FS

var errNilDB = errors.New("db is nil")

// Migrate applies the server schema (users, folders, decks, cards).
func Migrate(db *sql.DB) error {
	return up(db, postgresMigrations, "postgres", "pgx")
}

// MigrateClient applies the client schema (local_session).
func MigrateClient(db *sql.DB) error {
	return up(db, sqliteMigrations, "sqlite", "sqlite3")
}

// up is not safe for concurrent use: goose keeps its base FS and dialect in
// package state.
func up(db *sql.DB, fsys fs.FS, dir, dialect string) error {
	if db == nil {
		return fmt.Errorf("migration error: %w", errNilDB)
	}

	goose.SetBaseFS(fsys)
	defer goose.SetBaseFS(nil)

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
