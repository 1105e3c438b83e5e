package commands

import (
	"errors"

	"procurement/internal/pkg/errs"
	"procurement/internal/pkg/guard"
)

// ErrRecomputeFulfillmentCommandIsNotConstructed is returned by Validate on a zero value.
var ErrRecomputeFulfillmentCommandIsNotConstructed = errors.New(
	"RecomputeFulfillmentCommand must be created via NewRecomputeFulfillmentCommand constructor",
)

// RecomputeFulfillmentCommand rebuilds the received quantities of one order
// from its receipts.
type RecomputeFulfillmentCommand struct { //nolint:recvcheck //using for validation
	purchaseOrderNo string

	guard guard.ConstructorGuard
}

// NewRecomputeFulfillmentCommand creates the command.
// Returns a ValueIsRequiredError when purchaseOrderNo is empty.
func NewRecomputeFulfillmentCommand(purchaseOrderNo string) (RecomputeFulfillmentCommand, error) {
	if purchaseOrderNo == "" {
		return RecomputeFulfillmentCommand{}, errs.NewValueIsRequiredError("purchaseOrderNo")
	}
	return RecomputeFulfillmentCommand{purchaseOrderNo: purchaseOrderNo, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRecomputeFulfillmentCommandIsNotConstructed if validation fails.
func (c RecomputeFulfillmentCommand) Validate() error {
	return c.guard.Validate(ErrRecomputeFulfillmentCommandIsNotConstructed)
}

// PurchaseOrderNo returns the order to recompute.
func (c RecomputeFulfillmentCommand) PurchaseOrderNo() string {
	return c.purchaseOrderNo
}
