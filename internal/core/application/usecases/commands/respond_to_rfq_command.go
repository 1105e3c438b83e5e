package commands

import (
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/rfq"
	"procurement/internal/pkg/errs"
	"procurement/internal/pkg/guard"
)

// ErrRespondToRfqCommandIsNotConstructed is returned by Validate on a zero value.
var ErrRespondToRfqCommandIsNotConstructed = errors.New(
	"RespondToRfqCommand must be created via NewRespondToRfqCommand constructor",
)

// RespondToRfqCommand moves the sub-state of one invited vendor: accept,
// decline, start or submit a quote.
//
// Example:
//
//	cmd, err := NewRespondToRfqCommand("RFQ202610140001", actor, "V1", rfq.QuoteSubmitted)
//	if err != nil {
//	    return err
//	}
//	status, err := handler.Handle(ctx, cmd)
type RespondToRfqCommand struct { //nolint:recvcheck //using for validation
	number   string
	actor    kernel.Actor
	vendorID string
	next     rfq.VendorStatus

	guard guard.ConstructorGuard
}

// NewRespondToRfqCommand validates the response. The vendor is required and
// next must be a known vendor sub-state.
func NewRespondToRfqCommand(number string, actor kernel.Actor, vendorID string, next rfq.VendorStatus) (RespondToRfqCommand, error) {
	errList := []error{requireNumber(number), requireActor(actor)}
	if vendorID == "" {
		errList = append(errList, errs.NewValueIsRequiredError("vendorID"))
	}
	if !rfq.VendorTransitions.Knows(next) {
		errList = append(errList, errs.NewValueIsInvalidError("next vendor status"))
	}
	if err := errors.Join(errList...); err != nil {
		return RespondToRfqCommand{}, err
	}

	return RespondToRfqCommand{
		number:   number,
		actor:    actor,
		vendorID: vendorID,
		next:     next,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRespondToRfqCommandIsNotConstructed if validation fails.
func (c RespondToRfqCommand) Validate() error {
	return c.guard.Validate(ErrRespondToRfqCommandIsNotConstructed)
}

// Number returns the request number.
func (c RespondToRfqCommand) Number() string { return c.number }

// Actor returns the user recording the response.
func (c RespondToRfqCommand) Actor() kernel.Actor { return c.actor }

// VendorID returns the responding vendor.
func (c RespondToRfqCommand) VendorID() string { return c.vendorID }

// Next returns the requested vendor sub-state.
func (c RespondToRfqCommand) Next() rfq.VendorStatus { return c.next }
