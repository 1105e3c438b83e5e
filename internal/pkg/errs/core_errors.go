package errs

import "fmt"

// IllegalTransitionError reports a state change that the document's
// transition table does not allow from its current state.
type IllegalTransitionError struct {
	Entity string
	ID     string
	From   string
	To     string
}

// NewIllegalTransitionError creates a IllegalTransitionError.
func NewIllegalTransitionError(entity, id string, from, to fmt.Stringer) *IllegalTransitionError {
	return &IllegalTransitionError{Entity: entity, ID: id, From: from.String(), To: to.String()}
}

// Error implements the error interface.
func (e *IllegalTransitionError) Error() string {
	return fmt.Sprintf("%s: %s %s: %s -> %s", ErrIllegalTransition, e.Entity, e.ID, e.From, e.To)
}

// Unwrap returns the sentinel so errors.Is matches the error kind.
func (e *IllegalTransitionError) Unwrap() error {
	return ErrIllegalTransition
}

// NotOwnerError reports an actor that is neither the owner of the document
// nor the system actor.
type NotOwnerError struct {
	Entity string
	ID     string
	Actor  string
}

// NewNotOwnerError creates a NotOwnerError.
func NewNotOwnerError(entity, id, actor string) *NotOwnerError {
	return &NotOwnerError{Entity: entity, ID: id, Actor: actor}
}

// Error implements the error interface.
func (e *NotOwnerError) Error() string {
	return fmt.Sprintf("%s: %s may not change %s %s", ErrNotOwner, e.Actor, e.Entity, e.ID)
}

// Unwrap returns the sentinel so errors.Is matches the error kind.
func (e *NotOwnerError) Unwrap() error {
	return ErrNotOwner
}

// StaleStateError reports that the caller's view of a document no longer
// matches what is persisted.
type StaleStateError struct {
	Entity string
	ID     string
	Cause  error
}

// NewStaleStateError creates a StaleStateError.
func NewStaleStateError(entity, id string) *StaleStateError {
	return &StaleStateError{Entity: entity, ID: id}
}

// NewStaleStateErrorWithCause also records cause in the message. The
// cause is not part of the unwrap chain.
func NewStaleStateErrorWithCause(entity, id string, cause error) *StaleStateError {
	return &StaleStateError{Entity: entity, ID: id, Cause: cause}
}

// Error implements the error interface.
func (e *StaleStateError) Error() string {
	return withCause(fmt.Sprintf("%s: %s %s", ErrStaleState, e.Entity, e.ID), e.Cause)
}

// Unwrap returns the sentinel so errors.Is matches the error kind.
func (e *StaleStateError) Unwrap() error {
	return ErrStaleState
}

// TransientContentionError reports a lock that could not be acquired within
// the configured wait. Nothing was committed.
type TransientContentionError struct {
	Resource string
	Cause    error
}

// NewTransientContentionError creates a TransientContentionError.
func NewTransientContentionError(resource string) *TransientContentionError {
	return &TransientContentionError{Resource: resource}
}

// NewTransientContentionErrorWithCause also records cause in the message. The
// cause is not part of the unwrap chain.
func NewTransientContentionErrorWithCause(resource string, cause error) *TransientContentionError {
	return &TransientContentionError{Resource: resource, Cause: cause}
}

// Error implements the error interface.
func (e *TransientContentionError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrTransientContention, e.Resource), e.Cause)
}

// Unwrap returns the sentinel so errors.Is matches the error kind.
func (e *TransientContentionError) Unwrap() error {
	return ErrTransientContention
}

// ConsistencyViolationError reports a broken internal invariant. It is never
// the caller's fault.
type ConsistencyViolationError struct {
	Entity string
	ID     string
	Reason string
}

// NewConsistencyViolationError creates a ConsistencyViolationError.
func NewConsistencyViolationError(entity, id, reason string) *ConsistencyViolationError {
	return &ConsistencyViolationError{Entity: entity, ID: id, Reason: reason}
}

// Error implements the error interface.
func (e *ConsistencyViolationError) Error() string {
	return fmt.Sprintf("%s: %s %s: %s", ErrConsistencyViolation, e.Entity, e.ID, e.Reason)
}

// Unwrap returns the sentinel so errors.Is matches the error kind.
func (e *ConsistencyViolationError) Unwrap() error {
	return ErrConsistencyViolation
}
