package commands

import (
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/errs"
	"procurement/internal/pkg/guard"
)

// ErrUpdateRfqVendorsCommandIsNotConstructed is returned by Validate on a zero value.
var ErrUpdateRfqVendorsCommandIsNotConstructed = errors.New(
	"UpdateRfqVendorsCommand must be created via NewUpdateRfqVendorsCommand constructor",
)

// UpdateRfqVendorsCommand replaces the invited vendors of a DRAFT request.
//
// Example:
//
//	cmd, err := NewUpdateRfqVendorsCommand("RFQ202610140001", requester, []string{"V1", "V3"})
//	if err != nil {
//	    return err
//	}
//	vendors, err := handler.Handle(ctx, cmd)
type UpdateRfqVendorsCommand struct { //nolint:recvcheck //using for validation
	number    string
	actor     kernel.Actor
	vendorIDs []string

	guard guard.ConstructorGuard
}

// NewUpdateRfqVendorsCommand creates the command. Number and actor are required.
func NewUpdateRfqVendorsCommand(number string, actor kernel.Actor, vendorIDs []string) (UpdateRfqVendorsCommand, error) {
	if err := errors.Join(requireNumber(number), requireActor(actor)); err != nil {
		return UpdateRfqVendorsCommand{}, err
	}
	return UpdateRfqVendorsCommand{
		number:    number,
		actor:     actor,
		vendorIDs: append([]string(nil), vendorIDs...),
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateRfqVendorsCommandIsNotConstructed if validation fails.
func (c UpdateRfqVendorsCommand) Validate() error {
	return c.guard.Validate(ErrUpdateRfqVendorsCommandIsNotConstructed)
}

// Number returns the request number.
func (c UpdateRfqVendorsCommand) Number() string { return c.number }

// Actor returns the user editing the draft.
func (c UpdateRfqVendorsCommand) Actor() kernel.Actor { return c.actor }

// VendorIDs returns a copy of the new vendor list.
func (c UpdateRfqVendorsCommand) VendorIDs() []string { return append([]string(nil), c.vendorIDs...) }

func requireNumber(number string) error {
	if number == "" {
		return errs.NewValueIsRequiredError("number")
	}
	return nil
}

func requireActor(actor kernel.Actor) error {
	if actor == "" {
		return errs.NewValueIsRequiredError("actor")
	}
	return nil
}
