package commands

import (
	"errors"
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/errs"
	"procurement/internal/pkg/guard"
)

// ErrCreateRfqCommandIsNotConstructed is returned by Validate on a zero value.
var ErrCreateRfqCommandIsNotConstructed = errors.New(
	"CreateRfqCommand must be created via NewCreateRfqCommand constructor",
)

// CreateRfqCommand opens a DRAFT request for quotation owned by requester.
//
// Example:
//
//	cmd, err := NewCreateRfqCommand(requester, "Steel bolts Q4", []string{"V1", "V2"}, time.Now())
//	if err != nil {
//	    return err
//	}
//	number, err := handler.Handle(ctx, cmd)
type CreateRfqCommand struct { //nolint:recvcheck //using for validation
	requester    kernel.Actor
	title        string
	vendorIDs    []string
	businessDate time.Time

	guard guard.ConstructorGuard
}

// NewCreateRfqCommand validates the draft. The requester must be a real
// user; title and business date are required. The vendor list may be empty
// while drafting.
func NewCreateRfqCommand(requester kernel.Actor, title string, vendorIDs []string, businessDate time.Time) (CreateRfqCommand, error) {
	var errList []error
	if requester == "" || requester.IsSystem() {
		errList = append(errList, errs.NewValueIsRequiredError("requester"))
	}
	if title == "" {
		errList = append(errList, errs.NewValueIsRequiredError("title"))
	}
	if businessDate.IsZero() {
		errList = append(errList, errs.NewValueIsRequiredError("businessDate"))
	}
	if err := errors.Join(errList...); err != nil {
		return CreateRfqCommand{}, err
	}

	return CreateRfqCommand{
		requester:    requester,
		title:        title,
		vendorIDs:    append([]string(nil), vendorIDs...),
		businessDate: businessDate,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateRfqCommandIsNotConstructed if validation fails.
func (c CreateRfqCommand) Validate() error {
	return c.guard.Validate(ErrCreateRfqCommandIsNotConstructed)
}

// Requester returns the owner of the draft.
func (c CreateRfqCommand) Requester() kernel.Actor {
	return c.requester
}

// Title returns the free text title.
func (c CreateRfqCommand) Title() string {
	return c.title
}

// VendorIDs returns a copy of the vendors to invite.
func (c CreateRfqCommand) VendorIDs() []string {
	return append([]string(nil), c.vendorIDs...)
}

// BusinessDate returns the date the RFQ number is allocated for.
func (c CreateRfqCommand) BusinessDate() time.Time {
	return c.businessDate
}
