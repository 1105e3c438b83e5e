package commands

import (
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/errs"
	"procurement/internal/pkg/guard"
)

// ErrCancelReceiptLineCommandIsNotConstructed is returned by Validate on a
// zero value.
var ErrCancelReceiptLineCommandIsNotConstructed = errors.New(
	"CancelReceiptLineCommand must be created via NewCancelReceiptLineCommand constructor",
)

// CancelReceiptLineCommand withdraws one line of a posted goods receipt.
// The actor must be the clerk who posted it or the controller of the order.
//
// Example:
//
//	lineID, _ := kernel.UUIDFromString("7c9e6679-7425-40de-944b-e07fc1f90ae7")
//	cmd, err := NewCancelReceiptLineCommand("GR202610140001", lineID, actor)
//	if err != nil {
//	    return err
//	}
//	outcome, err := handler.Handle(ctx, cmd)
type CancelReceiptLineCommand struct { //nolint:recvcheck //using for validation
	receiptNo string
	lineID    kernel.UUID
	actor     kernel.Actor

	guard guard.ConstructorGuard
}

// NewCancelReceiptLineCommand creates the command. receiptNo and actor are
// required and lineID must not be the nil UUID.
func NewCancelReceiptLineCommand(receiptNo string, lineID kernel.UUID, actor kernel.Actor) (CancelReceiptLineCommand, error) {
	var errList []error
	if receiptNo == "" {
		errList = append(errList, errs.NewValueIsRequiredError("receiptNo"))
	}
	errList = append(errList, lineID.Validate())
	if actor == "" {
		errList = append(errList, errs.NewValueIsRequiredError("actor"))
	}
	if err := errors.Join(errList...); err != nil {
		return CancelReceiptLineCommand{}, err
	}

	return CancelReceiptLineCommand{
		receiptNo: receiptNo,
		lineID:    lineID,
		actor:     actor,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCancelReceiptLineCommandIsNotConstructed if validation fails.
func (c CancelReceiptLineCommand) Validate() error {
	return c.guard.Validate(ErrCancelReceiptLineCommandIsNotConstructed)
}

// ReceiptNo returns the number of the receipt holding the line.
func (c CancelReceiptLineCommand) ReceiptNo() string {
	return c.receiptNo
}

// LineID returns the identifier of the line to cancel.
func (c CancelReceiptLineCommand) LineID() kernel.UUID {
	return c.lineID
}

// Actor returns the user asking for the cancellation.
func (c CancelReceiptLineCommand) Actor() kernel.Actor {
	return c.actor
}
