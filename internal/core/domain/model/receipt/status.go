package receipt

import (
	"fmt"

	"procurement/internal/core/domain/model/statemachine"
	"procurement/internal/pkg/errs"
)

// Status applies to both receipt headers and receipt lines.
type Status int

const (
	Unknown Status = iota
	Active
	Cancelled
)

var statusNames = map[Status]string{
	Unknown:   "UNKNOWN",
	Active:    "ACTIVE",
	Cancelled: "CANCELLED",
}

// Transitions: ACTIVE -> CANCELLED, nothing else.
var Transitions = statemachine.NewTable("goods receipt", map[Status][]Status{
	Active:    {Cancelled},
	Cancelled: nil,
})

var lineTransitions = statemachine.NewTable("goods receipt line", map[Status][]Status{
	Active:    {Cancelled},
	Cancelled: nil,
})

// String returns the wire name.
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return statusNames[Unknown]
}

// ParseStatus maps a wire name back to a Status.
// Returns a ValueIsInvalidError for any other name.
func ParseStatus(name string) (Status, error) {
	switch name {
	case "ACTIVE":
		return Active, nil
	case "CANCELLED":
		return Cancelled, nil
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a receipt status", name))
}
