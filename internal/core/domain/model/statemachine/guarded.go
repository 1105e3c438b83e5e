package statemachine

import "procurement/internal/pkg/errs"

// Guarded is the current state of one document together with the table that
// governs it. Its zero value has no table and refuses every transition.
//
// Guarded values are copied with their aggregate. Transition has a pointer
// receiver, so a change on a copy never reaches the original; aggregates
// that must roll back on error transition a copy and assign it last.
type Guarded[S State] struct {
	table   *Table[S]
	current S
}

// Current returns the current state.
func (g Guarded[S]) Current() S {
	return g.current
}

// CanTransition reports whether the current state may move to next.
func (g Guarded[S]) CanTransition(next S) bool {
	return g.table != nil && g.table.CanTransition(g.current, next)
}

// Check fails as Transition would, without changing state.
func (g Guarded[S]) Check(id string, next S) error {
	if g.table == nil {
		return errs.NewIllegalTransitionError("document", id, g.current, next)
	}
	return g.table.Check(id, g.current, next)
}

// Transition moves to next, or returns an IllegalTransitionError and leaves
// the state unchanged. id names the document in the error.
func (g *Guarded[S]) Transition(id string, next S) error {
	if err := g.Check(id, next); err != nil {
		return err
	}
	g.current = next
	return nil
}

// IsTerminal reports whether no further transition is possible.
func (g Guarded[S]) IsTerminal() bool {
	return g.table != nil && g.table.IsTerminal(g.current)
}

// Refuse reports op as illegal in the current state.
func (g Guarded[S]) Refuse(id string, op Operation) error {
	entity := "document"
	if g.table != nil {
		entity = g.table.Entity()
	}
	return errs.NewIllegalTransitionError(entity, id, g.current, op)
}
