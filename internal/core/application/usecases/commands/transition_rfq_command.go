package commands

import (
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/rfq"
	"procurement/internal/pkg/errs"
	"procurement/internal/pkg/guard"
)

// ErrTransitionRfqCommandIsNotConstructed is returned by Validate on a zero value.
var ErrTransitionRfqCommandIsNotConstructed = errors.New(
	"TransitionRfqCommand must be created via NewTransitionRfqCommand constructor",
)

// TransitionRfqCommand closes, opens or awards a request. Sending has its own
// command because it carries the vendor list. vendorID is required for
// SELECTED only.
//
// Example:
//
//	cmd, err := NewTransitionRfqCommand("RFQ202610140001", requester, rfq.Closed, "")
type TransitionRfqCommand struct { //nolint:recvcheck //using for validation
	number   string
	actor    kernel.Actor
	next     rfq.Status
	vendorID string

	guard guard.ConstructorGuard
}

// NewTransitionRfqCommand validates the request. next must be CLOSED,
// OPENED or SELECTED.
func NewTransitionRfqCommand(number string, actor kernel.Actor, next rfq.Status, vendorID string) (TransitionRfqCommand, error) {
	errList := []error{requireNumber(number), requireActor(actor)}
	switch next {
	case rfq.Closed, rfq.Opened:
	case rfq.Selected:
		if vendorID == "" {
			errList = append(errList, errs.NewValueIsRequiredError("vendorID"))
		}
	default:
		errList = append(errList, errs.NewValueIsOutOfRangeError("next", next.String(), rfq.Closed.String(), rfq.Selected.String()))
	}
	if err := errors.Join(errList...); err != nil {
		return TransitionRfqCommand{}, err
	}

	return TransitionRfqCommand{
		number:   number,
		actor:    actor,
		next:     next,
		vendorID: vendorID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrTransitionRfqCommandIsNotConstructed if validation fails.
func (c TransitionRfqCommand) Validate() error {
	return c.guard.Validate(ErrTransitionRfqCommandIsNotConstructed)
}

// Number returns the request number.
func (c TransitionRfqCommand) Number() string { return c.number }

// Actor returns the user asking for the move.
func (c TransitionRfqCommand) Actor() kernel.Actor { return c.actor }

// Next returns the target status.
func (c TransitionRfqCommand) Next() rfq.Status { return c.next }

// VendorID returns the selected vendor, empty unless Next is SELECTED.
func (c TransitionRfqCommand) VendorID() string { return c.vendorID }
