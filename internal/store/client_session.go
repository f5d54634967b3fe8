package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-flashcards/internal/logger"
	"github.com/MKhiriev/go-flashcards/models"
)

const (
	saveLocalSession = `INSERT INTO local_session (id, user_id, username, email, token, saved_at)
		VALUES (1, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			user_id = excluded.user_id,
			username = excluded.username,
			email = excluded.email,
			token = excluded.token,
			saved_at = excluded.saved_at;`

	getLocalSession = `SELECT user_id, username, email, token, saved_at
		FROM local_session
		WHERE id = 1;`

	clearLocalSession = `DELETE FROM local_session;`
)

// localSessionStorage is the SQLite-backed [LocalSessionStorage].
type localSessionStorage struct {
	db     *DB
	logger *logger.Logger
}

func NewLocalSessionStorage(db *DB, logger *logger.Logger) LocalSessionStorage {
	return &localSessionStorage{db: db, logger: logger}
}

// SaveSession replaces the stored session.
func (s *localSessionStorage) SaveSession(ctx context.Context, session models.LocalSession) error {
	_, err := s.db.ExecContext(ctx, saveLocalSession,
		session.UserID, session.Username, session.Email, session.Token, session.SavedAt.UTC())
	if err != nil {
		s.logger.Err(err).Str("func", "*localSessionStorage.SaveSession").Msg("failed to save session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// GetSession returns the stored session or [ErrLocalSessionNotFound].
func (s *localSessionStorage) GetSession(ctx context.Context) (models.LocalSession, error) {
	var session models.LocalSession
	err := s.db.QueryRowContext(ctx, getLocalSession).
		Scan(&session.UserID, &session.Username, &session.Email, &session.Token, &session.SavedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.LocalSession{}, ErrLocalSessionNotFound
	}
	if err != nil {
		s.logger.Err(err).Str("func", "*localSessionStorage.GetSession").Msg("failed to read session")
		return models.LocalSession{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return session, nil
}

// ClearSession forgets the stored session. Clearing an empty store is not an error.
func (s *localSessionStorage) ClearSession(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, clearLocalSession); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}
