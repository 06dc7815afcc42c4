package store

import (
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification tells a repository whether a failed statement may
// succeed on a second attempt.
type ErrorClassification int

const (
	NonRetryable ErrorClassification = iota
	Retryable
)

// PostgresErrorClassifier classifies pgx driver errors by SQLSTATE.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify reports [Retryable] for lost connections, serialization failures
// and deadlocks. Two concurrent logins of the same user upsert the same
// refresh-token row and can deadlock on it. Everything else, constraint
// violations included, is [NonRetryable].
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return NonRetryable
	}
	return ClassifyPgError(postgresError(err))
}

// ClassifyPgError classifies a bare SQLSTATE code.
func ClassifyPgError(code string) ErrorClassification {
	switch code {
	case pgerrcode.ConnectionException,
		pgerrcode.ConnectionDoesNotExist,
		pgerrcode.ConnectionFailure,
		pgerrcode.CannotConnectNow,
		pgerrcode.TransactionRollback,
		pgerrcode.SerializationFailure,
		pgerrcode.DeadlockDetected:
		return Retryable
	}
	return NonRetryable
}

// pgCode extracts the SQLSTATE of a driver error.
func pgCode(pgErr *pgconn.PgError) string {
	if pgErr == nil {
		return ""
	}
	return pgErr.Code
}
