// Package retry re-runs whole business operations that failed with
// errs.ErrTransientContention. Any other error stops the loop immediately:
// retrying an illegal transition or a validation failure cannot change the
// outcome.
package retry

import (
	"context"
	"errors"
	"time"

	"procurement/internal/pkg/errs"

	"github.com/cenkalti/backoff/v4"
)

// Policy bounds the retry loop.
type Policy struct {
	MaxAttempts     uint64
	InitialInterval time.Duration
	MaxInterval     time.Duration
}

// DefaultPolicy tries an operation up to three times.
func DefaultPolicy() Policy {
	return Policy{
		MaxAttempts:     3,
		InitialInterval: 50 * time.Millisecond,
		MaxInterval:     500 * time.Millisecond,
	}
}

// OnContention runs op until it succeeds, fails with a non-transient error,
// the attempts are exhausted or ctx is done. The last error is returned.
func OnContention(ctx context.Context, policy Policy, op func(ctx context.Context) error) error {
	attempts := policy.MaxAttempts
	if attempts == 0 {
		attempts = 1
	}

	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = policy.InitialInterval
	exp.MaxInterval = policy.MaxInterval
	exp.MaxElapsedTime = 0

	b := backoff.WithContext(backoff.WithMaxRetries(exp, attempts-1), ctx)

	return backoff.Retry(func() error {
		err := op(ctx)
		if err == nil || errors.Is(err, errs.ErrTransientContention) {
			return err
		}
		return backoff.Permanent(err)
	}, b)
}
