package commands

import (
	"errors"
	"fmt"
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/errs"
	"procurement/internal/pkg/guard"

	"github.com/samber/lo"
)

// ErrCreatePurchaseOrderCommandIsNotConstructed is returned by Validate on a
// zero value.
var ErrCreatePurchaseOrderCommandIsNotConstructed = errors.New(
	"CreatePurchaseOrderCommand must be created via NewCreatePurchaseOrderCommand constructor",
)

// CreatePurchaseOrderCommand represents a request to place a new purchase
// order. The controller is the user who will drive the order through
// approval and sending.
//
// Example:
//
//	cmd, err := NewCreatePurchaseOrderCommand(controller, "V1", time.Now(), []LineInput{
//	    {ItemCode: "BOLT-M8", Quantity: decimal.RequireFromString("250")},
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//	number, err := handler.Handle(ctx, cmd)
type CreatePurchaseOrderCommand struct { //nolint:recvcheck //using for validation
	controllerID kernel.Actor
	vendorID     string
	businessDate time.Time
	lines        []LineInput

	guard guard.ConstructorGuard
}

// NewCreatePurchaseOrderCommand validates the order data. The controller
// must be a real user, the vendor and business date are required, and there
// must be at least one line with a non-empty item code. Every problem found
// is reported in the joined error.
func NewCreatePurchaseOrderCommand(
	controllerID kernel.Actor,
	vendorID string,
	businessDate time.Time,
	lines []LineInput,
) (CreatePurchaseOrderCommand, error) {
	cmd := CreatePurchaseOrderCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setControllerID(controllerID),
		cmd.setVendorID(vendorID),
		cmd.setBusinessDate(businessDate),
		cmd.setLines(lines),
	); err != nil {
		return CreatePurchaseOrderCommand{}, err
	}
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreatePurchaseOrderCommandIsNotConstructed if validation fails.
func (c CreatePurchaseOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreatePurchaseOrderCommandIsNotConstructed)
}

// ControllerID returns the user who will control the order.
func (c CreatePurchaseOrderCommand) ControllerID() kernel.Actor {
	return c.controllerID
}

// VendorID returns the supplier the order is placed with.
func (c CreatePurchaseOrderCommand) VendorID() string {
	return c.vendorID
}

// BusinessDate returns the date the order number is allocated for.
func (c CreatePurchaseOrderCommand) BusinessDate() time.Time {
	return c.businessDate
}

// Lines returns a copy of the ordered lines.
func (c CreatePurchaseOrderCommand) Lines() []LineInput {
	return append([]LineInput(nil), c.lines...)
}

func (c *CreatePurchaseOrderCommand) setControllerID(controllerID kernel.Actor) error {
	if controllerID == "" || controllerID.IsSystem() {
		return errs.NewValueIsRequiredError("controllerID")
	}
	c.controllerID = controllerID
	return nil
}

func (c *CreatePurchaseOrderCommand) setVendorID(vendorID string) error {
	if vendorID == "" {
		return errs.NewValueIsRequiredError("vendorID")
	}
	c.vendorID = vendorID
	return nil
}

func (c *CreatePurchaseOrderCommand) setBusinessDate(businessDate time.Time) error {
	if businessDate.IsZero() {
		return errs.NewValueIsRequiredError("businessDate")
	}
	c.businessDate = businessDate
	return nil
}

func (c *CreatePurchaseOrderCommand) setLines(lines []LineInput) error {
	copied, err := copyLines(lines)
	if err != nil {
		return err
	}
	if dup := lo.FindDuplicatesBy(copied, func(l LineInput) string { return l.ItemCode }); len(dup) > 0 {
		return errs.NewValueIsInvalidErrorWithCause("lines", fmt.Errorf("item %s is ordered more than once", dup[0].ItemCode))
	}
	c.lines = copied
	return nil
}
