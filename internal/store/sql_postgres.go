package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-flashcards/internal/config"
	"github.com/MKhiriev/go-flashcards/internal/logger"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/sethvargo/go-retry"
)

const connectBackoffBase = 500 * time.Millisecond

// NewConnectPostgres opens a pgx-backed pool and pings it, retrying with
// exponential backoff up to cfg.ConnectRetries times. Errors the classifier
// marks as non-retryable (bad password, unknown database) fail immediately.
func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occurred during database connection")
		return nil, fmt.Errorf("error occurred during database connection: %w", err)
	}

	if cfg.MaxOpenConns > 0 {
		conn.SetMaxOpenConns(cfg.MaxOpenConns)
		conn.SetMaxIdleConns(cfg.MaxOpenConns)
	}

	db := newPostgresDB(conn, log)

	if err = db.pingWithRetry(ctx, cfg.ConnectRetries); err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, fmt.Errorf("error connecting database: %w", err)
	}
	log.Info().Str("func", "NewConnectPostgres").Msg("connected to database successfully")

	return db, nil
}

func (db *DB) pingWithRetry(ctx context.Context, retries int) error {
	if retries < 0 {
		retries = 0
	}
	backoff := retry.WithMaxRetries(uint64(retries), retry.NewExponential(connectBackoffBase))

	attempt := 0
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		err := db.PingContext(ctx)
		if err == nil {
			return nil
		}

		if postgresError(err) != "" && db.errorClassificator.Classify(err) == NonRetryable {
			return err
		}

		db.logger.Warn().Err(err).Int("attempt", attempt).Msg("database is not ready, retrying")
		return retry.RetryableError(err)
	})
}

// postgresError returns the SQLSTATE code of a PostgreSQL error, or "".
func postgresError(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}
