package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-flashcards/internal/config"
	"github.com/MKhiriev/go-flashcards/internal/logger"
)

// ClientStorages groups the terminal client's local storages.
type ClientStorages struct {
	Sessions LocalSessionStorage

	db *DB
}

// NewClientStorages opens the SQLite file from cfg.DB.DSN, creating it if
// needed, and applies the client migrations.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating client storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		Sessions: NewLocalSessionStorage(db, logger),
		db:       db,
	}, nil
}

// Close releases the database handle.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
