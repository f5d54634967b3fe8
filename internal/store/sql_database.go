package store

import (
	"context"
	"database/sql"

	"github.com/MKhiriev/go-flashcards/internal/logger"
	"github.com/MKhiriev/go-flashcards/migrations"
)

// DB is a database handle shared by all repositories of one process.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
	migrate            func(*sql.DB) error
}

// Migrate applies the embedded migrations for this handle's dialect.
func (db *DB) Migrate() error {
	return db.migrate(db.DB)
}

// Ping reports whether the database answers. Used by the health worker.
func (db *DB) Ping(ctx context.Context) error {
	return db.PingContext(ctx)
}

func newPostgresDB(conn *sql.DB, log *logger.Logger) *DB {
	return &DB{
		DB:                 conn,
		logger:             log,
		errorClassificator: NewPostgresErrorClassifier(),
		migrate:            migrations.Migrate,
	}
}
