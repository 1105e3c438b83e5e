package commands

import (
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/purchaseorder"
	"procurement/internal/pkg/errs"
	"procurement/internal/pkg/guard"
)

// ErrTransitionPurchaseOrderCommandIsNotConstructed is returned by Validate on a zero value.
var ErrTransitionPurchaseOrderCommandIsNotConstructed = errors.New(
	"TransitionPurchaseOrderCommand must be created via NewTransitionPurchaseOrderCommand constructor",
)

// TransitionPurchaseOrderCommand asks to move an order to another status on
// behalf of actor.
//
// Example:
//
//	cmd, err := NewTransitionPurchaseOrderCommand("PO202610140001", purchaseorder.Approved, controller)
//	if err != nil {
//	    return err
//	}
//	status, err := handler.Handle(ctx, cmd)
type TransitionPurchaseOrderCommand struct { //nolint:recvcheck //using for validation
	number string
	next   purchaseorder.Status
	actor  kernel.Actor

	guard guard.ConstructorGuard
}

// NewTransitionPurchaseOrderCommand validates the request. Whether the move
// is allowed from the current status is decided by the handler.
func NewTransitionPurchaseOrderCommand(
	number string,
	next purchaseorder.Status,
	actor kernel.Actor,
) (TransitionPurchaseOrderCommand, error) {
	if number == "" {
		return TransitionPurchaseOrderCommand{}, errs.NewValueIsRequiredError("number")
	}
	if err := next.Validate(); err != nil {
		return TransitionPurchaseOrderCommand{}, err
	}
	if actor == "" {
		return TransitionPurchaseOrderCommand{}, errs.NewValueIsRequiredError("actor")
	}

	return TransitionPurchaseOrderCommand{
		number: number,
		next:   next,
		actor:  actor,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrTransitionPurchaseOrderCommandIsNotConstructed if validation fails.
func (c TransitionPurchaseOrderCommand) Validate() error {
	return c.guard.Validate(ErrTransitionPurchaseOrderCommandIsNotConstructed)
}

// Number returns the order number.
func (c TransitionPurchaseOrderCommand) Number() string {
	return c.number
}

// Next returns the target status.
func (c TransitionPurchaseOrderCommand) Next() purchaseorder.Status {
	return c.next
}

// Actor returns the user asking for the move.
func (c TransitionPurchaseOrderCommand) Actor() kernel.Actor {
	return c.actor
}
