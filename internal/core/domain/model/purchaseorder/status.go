package purchaseorder

import (
	"fmt"

	"procurement/internal/core/domain/model/statemachine"
	"procurement/internal/pkg/errs"
)

// Status is the lifecycle state of a purchase order.
type Status int

const (
	// Unknown catches uninitialized values.
	Unknown Status = iota
	Saved
	Confirmed
	Approved
	Rejected
	Sent
	Delivered
	Closed
)

var statusNames = map[Status]string{
	Unknown:   "UNKNOWN",
	Saved:     "SAVED",
	Confirmed: "CONFIRMED",
	Approved:  "APPROVED",
	Rejected:  "REJECTED",
	Sent:      "SENT",
	Delivered: "DELIVERED",
	Closed:    "CLOSED",
}

// Transitions is the purchase order graph. CLOSED is terminal.
var Transitions = statemachine.NewTable("purchase order", map[Status][]Status{
	Saved:     {Confirmed},
	Confirmed: {Approved, Rejected},
	Rejected:  {Saved},
	Approved:  {Sent},
	Sent:      {Delivered},
	Delivered: {Closed},
	Closed:    nil,
})

// String returns the wire name, for example SENT.
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return statusNames[Unknown]
}

// Validate rejects Unknown and out-of-range values.
func (s Status) Validate() error {
	if !Transitions.Knows(s) {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// ParseStatus maps a status name back to its value.
func ParseStatus(name string) (Status, error) {
	for s, n := range statusNames {
		if n == name && s != Unknown {
			return s, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", name))
}
