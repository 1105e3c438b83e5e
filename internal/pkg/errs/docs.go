// Package errs provides the error types shared by the procurement service.
// Every type follows the same pattern:
//   - a sentinel error variable (e.g. ErrValueIsRequired) used with errors.Is
//   - a struct carrying the details of the failure
//   - constructor functions with and without a cause
//   - Error() for formatting and Unwrap() returning the sentinel
//
// The sentinels double as the error taxonomy of the service core:
//
//   - ErrValueIsRequired, ErrValueIsInvalid, ErrValueIsOutOfRange: invalid
//     arguments, a caller bug, never retried
//   - ErrObjectNotFound: the addressed document does not exist
//   - ErrIllegalTransition: the requested state change is not permitted from
//     the current state, surfaced as a business-rule violation
//   - ErrNotOwner: the actor may not change the document
//   - ErrStaleState: the caller acted on an outdated view, refresh and retry
//   - ErrTransientContention: a row lock could not be acquired in time; no
//     partial state was committed and the whole operation may be retried
//   - ErrConsistencyViolation: an internal invariant is broken
package errs
