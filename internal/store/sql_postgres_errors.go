package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification tells whether a failed call is worth retrying.
type ErrorClassification int

const (
	// NonRetryable is the default for unknown errors.
	NonRetryable ErrorClassification = iota

	// Retryable marks transient failures: lost connections, deadlocks,
	// serialization failures, a server still starting up.
	Retryable
)

// PostgresErrorClassifier implements [ErrorClassificator] for SQLSTATE codes
// reported by pgx.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify unwraps err to a *pgconn.PgError and classifies its code.
// Errors that carry no SQLSTATE are NonRetryable.
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return NonRetryable
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return ClassifyPgError(pgErr)
	}

	return NonRetryable
}

// ClassifyPgError maps a SQLSTATE to an [ErrorClassification].
// See https://www.postgresql.org/docs/current/errcodes-appendix.html.
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	switch pgErr.Code {
	// Class 08: connection exceptions
	case pgerrcode.ConnectionException,
		pgerrcode.ConnectionDoesNotExist,
		pgerrcode.ConnectionFailure,
		pgerrcode.SQLClientUnableToEstablishSQLConnection:
		return Retryable

	// Class 40: transaction rollback
	case pgerrcode.TransactionRollback,
		pgerrcode.SerializationFailure,
		pgerrcode.DeadlockDetected:
		return Retryable

	// Class 57: the server is starting or shutting down
	case pgerrcode.CannotConnectNow,
		pgerrcode.AdminShutdown,
		pgerrcode.CrashShutdown:
		return Retryable

	// Class 53: out of connections
	case pgerrcode.TooManyConnections:
		return Retryable
	}

	// Authentication failures (class 28), unknown databases (3D000),
	// constraint violations (class 23) and syntax errors (class 42) all land here.
	return NonRetryable
}
