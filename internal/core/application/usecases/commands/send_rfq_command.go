package commands

import (
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/guard"
)

// ErrSendRfqCommandIsNotConstructed is returned by Validate on a zero value.
var ErrSendRfqCommandIsNotConstructed = errors.New(
	"SendRfqCommand must be created via NewSendRfqCommand constructor",
)

// SendRfqCommand sends a DRAFT request. vendorIDs is the vendor list the
// caller displayed when deciding to send.
//
// Example:
//
//	cmd, err := NewSendRfqCommand("RFQ202610140001", requester, shownVendors)
//	if err != nil {
//	    return err
//	}
//	status, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrStaleState) {
//	    // reload the vendor list and ask again
//	}
type SendRfqCommand struct { //nolint:recvcheck //using for validation
	number    string
	actor     kernel.Actor
	vendorIDs []string

	guard guard.ConstructorGuard
}

// NewSendRfqCommand creates the command. Number and actor are required.
func NewSendRfqCommand(number string, actor kernel.Actor, vendorIDs []string) (SendRfqCommand, error) {
	if err := errors.Join(requireNumber(number), requireActor(actor)); err != nil {
		return SendRfqCommand{}, err
	}
	return SendRfqCommand{
		number:    number,
		actor:     actor,
		vendorIDs: append([]string(nil), vendorIDs...),
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSendRfqCommandIsNotConstructed if validation fails.
func (c SendRfqCommand) Validate() error {
	return c.guard.Validate(ErrSendRfqCommandIsNotConstructed)
}

// Number returns the request number.
func (c SendRfqCommand) Number() string { return c.number }

// Actor returns the user sending the request.
func (c SendRfqCommand) Actor() kernel.Actor { return c.actor }

// VendorIDs returns a copy of the vendor list the caller saw.
func (c SendRfqCommand) VendorIDs() []string { return append([]string(nil), c.vendorIDs...) }
