package pgerr_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"procurement/internal/adapters/out/postgres/pgerr"
	"procurement/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name      string
		err       error
		transient bool
	}{
		{name: "lock timeout", err: &pgconn.PgError{Code: pgerr.LockNotAvailable}, transient: true},
		{name: "deadlock", err: &pgconn.PgError{Code: pgerr.DeadlockDetected}, transient: true},
		{name: "serialization", err: &pgconn.PgError{Code: pgerr.SerializationFailure}, transient: true},
		{name: "wrapped lock timeout", err: fmt.Errorf("select: %w", &pgconn.PgError{Code: pgerr.LockNotAvailable}), transient: true},
		{name: "deadline", err: context.DeadlineExceeded, transient: true},
		{name: "unique violation", err: &pgconn.PgError{Code: pgerr.UniqueViolation}},
		{name: "plain error", err: errors.New("connection refused")},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := pgerr.Classify(tc.err, "purchase order PO1")

			if tc.transient {
				require.ErrorIs(t, got, errs.ErrTransientContention)
				var contention *errs.TransientContentionError
				require.ErrorAs(t, got, &contention)
				assert.Equal(t, tc.err, contention.Cause)
				return
			}
			assert.Same(t, tc.err, got)
		})
	}
}

func TestClassify_Nil(t *testing.T) {
	assert.NoError(t, pgerr.Classify(nil, "x"))
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, pgerr.IsUniqueViolation(&pgconn.PgError{Code: pgerr.UniqueViolation}))
	assert.False(t, pgerr.IsUniqueViolation(errors.New("boom")))
}
