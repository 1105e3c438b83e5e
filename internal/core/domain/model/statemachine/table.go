// Package statemachine provides the transition-guarded state shared by the
// document state machines. Each document type declares its legal edges once
// as a static Table; aggregates hold a Guarded value and change state only
// through it.
package statemachine

import (
	"fmt"
	"slices"

	"procurement/internal/pkg/errs"
)

// State is a finite state identifier.
type State interface {
	comparable
	fmt.Stringer
}

// Table is a directed graph of legal transitions. A state that is a key with
// no outgoing edges is terminal; a state that is not a key is unknown.
//
// Example:
//
//	var Transitions = statemachine.NewTable("receipt", map[Status][]Status{
//	    Active:    {Cancelled},
//	    Cancelled: nil,
//	})
//
//	status := Transitions.Start(Active)
//	if err := status.Transition("GR202610140001", Cancelled); err != nil {
//	    // IllegalTransitionError
//	}
type Table[S State] struct {
	entity string
	edges  map[S][]S
}

// NewTable declares the graph of entity. edges must list every state,
// including terminal ones with a nil slice.
func NewTable[S State](entity string, edges map[S][]S) *Table[S] {
	return &Table[S]{entity: entity, edges: edges}
}

// Entity names the documents governed by the table, for error messages.
func (t *Table[S]) Entity() string {
	return t.entity
}

// Knows reports whether s is a state of the graph.
func (t *Table[S]) Knows(s S) bool {
	_, ok := t.edges[s]
	return ok
}

// CanTransition reports whether from -> to is an edge of the graph.
func (t *Table[S]) CanTransition(from, to S) bool {
	return slices.Contains(t.edges[from], to)
}

// Next returns the legal next states of from.
func (t *Table[S]) Next(from S) []S {
	return slices.Clone(t.edges[from])
}

// IsTerminal reports whether s is known and has no outgoing edges.
func (t *Table[S]) IsTerminal(s S) bool {
	next, ok := t.edges[s]
	return ok && len(next) == 0
}

// Check returns an IllegalTransitionError unless from -> to is legal.
func (t *Table[S]) Check(id string, from, to S) error {
	if !t.CanTransition(from, to) {
		return errs.NewIllegalTransitionError(t.entity, id, from, to)
	}
	return nil
}

// Start returns a guarded state positioned at initial.
func (t *Table[S]) Start(initial S) Guarded[S] {
	return Guarded[S]{table: t, current: initial}
}

// Restore returns a guarded state positioned at a persisted state. Unknown
// states are rejected.
func (t *Table[S]) Restore(current S) (Guarded[S], error) {
	if !t.Knows(current) {
		return Guarded[S]{}, errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%s is not a valid %s status", current, t.entity))
	}
	return Guarded[S]{table: t, current: current}, nil
}

// Operation names a non-transition action refused in the current state,
// such as receiving goods against an unsent order.
type Operation string

// String returns the operation name.
func (o Operation) String() string {
	return string(o)
}
