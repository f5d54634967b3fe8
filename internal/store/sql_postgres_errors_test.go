package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestPostgresErrorClassifier_Classify(t *testing.T) {
	c := NewPostgresErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{name: "nil", err: nil, want: NonRetryable},
		{name: "plain error", err: errors.New("boom"), want: NonRetryable},
		{name: "connection failure", err: pgError(pgerrcode.ConnectionFailure), want: Retryable},
		{name: "cannot connect now", err: pgError(pgerrcode.CannotConnectNow), want: Retryable},
		{name: "deadlock", err: pgError(pgerrcode.DeadlockDetected), want: Retryable},
		{name: "too many connections", err: pgError(pgerrcode.TooManyConnections), want: Retryable},
		{name: "wrapped serialization failure", err: fmt.Errorf("tx: %w", pgError(pgerrcode.SerializationFailure)), want: Retryable},
		{name: "bad password", err: pgError(pgerrcode.InvalidPassword), want: NonRetryable},
		{name: "unknown database", err: pgError(pgerrcode.InvalidCatalogName), want: NonRetryable},
		{name: "unique violation", err: pgError(pgerrcode.UniqueViolation), want: NonRetryable},
		{name: "undefined table", err: pgError(pgerrcode.UndefinedTable), want: NonRetryable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}

func TestPostgresError(t *testing.T) {
	assert.Equal(t, pgerrcode.UniqueViolation, postgresError(fmt.Errorf("wrap: %w", pgError(pgerrcode.UniqueViolation))))
	assert.Empty(t, postgresError(errors.New("not a pg error")))
	assert.Empty(t, postgresError(nil))
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}
