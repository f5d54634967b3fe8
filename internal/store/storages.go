// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-flashcards/internal/config"
	"github.com/MKhiriev/go-flashcards/internal/logger"
)

// Storages groups everything the server persists.
type Storages struct {
	UserRepository   UserRepository
	FolderRepository FolderRepository
	DeckRepository   DeckRepository
	CardRepository   CardRepository
	ImageStorage     ImageStorage

	// DB is exposed for the health worker and for closing at shutdown.
	DB *DB
}

// NewStorages connects to PostgreSQL, runs migrations and builds the
// repositories and the configured image storage.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	log.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	images, err := NewImageStorage(ctx, cfg.Images, log)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("image storage: %w", err)
	}

	return &Storages{
		UserRepository:   NewUserRepository(db, log),
		FolderRepository: NewFolderRepository(db, log),
		DeckRepository:   NewDeckRepository(db, log),
		CardRepository:   NewCardRepository(db, log),
		ImageStorage:     images,
		DB:               db,
	}, nil
}

// Close releases the database pool.
func (s *Storages) Close() error {
	if s.DB == nil {
		return nil
	}
	return s.DB.Close()
}
