package ports

import (
	"context"
	"time"

	"procurement/internal/core/domain/model/docnumber"
)

// DocNumberAllocator hands out document numbers.
//
// Allocate runs in its own transaction and commits before it returns, whether
// or not the caller's unit of work later commits. A number once returned is
// never returned again. Allocations for the same document type and reset
// period are strictly sequential.
//
// Errors:
//   - ValueIsInvalidError / ValueIsRequiredError for an unknown type or a zero
//     business date
//   - TransientContentionError when the counter row could not be locked in
//     time; nothing was allocated and the call may be retried
type DocNumberAllocator interface {
	Allocate(ctx context.Context, docType docnumber.DocType, businessDate time.Time) (docnumber.Number, error)
}
