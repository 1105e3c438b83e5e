// Package pgerr classifies PostgreSQL failures into the errors of the
// procurement core.
package pgerr

import (
	"context"
	"errors"

	"procurement/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE codes that mean "try again later".
const (
	LockNotAvailable     = "55P03"
	DeadlockDetected     = "40P01"
	SerializationFailure = "40001"
	UniqueViolation      = "23505"
)

// IsContention reports whether err is a lock wait timeout, a deadlock, a
// serialization failure or an expired context deadline.
func IsContention(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case LockNotAvailable, DeadlockDetected, SerializationFailure:
			return true
		}
	}
	return false
}

// IsUniqueViolation reports whether err is a duplicate key error.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == UniqueViolation
}

// Classify wraps contention failures on resource into a
// TransientContentionError and returns every other error unchanged.
func Classify(err error, resource string) error {
	if IsContention(err) {
		return errs.NewTransientContentionErrorWithCause(resource, err)
	}
	return err
}
