package commands

import (
	"errors"
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/errs"
	"procurement/internal/pkg/guard"
)

// ErrPostGoodsReceiptCommandIsNotConstructed is returned by Validate on a zero value.
var ErrPostGoodsReceiptCommandIsNotConstructed = errors.New(
	"PostGoodsReceiptCommand must be created via NewPostGoodsReceiptCommand constructor",
)

// PostGoodsReceiptCommand records goods received against a purchase order.
// The same item may appear on several lines.
//
// Example:
//
//	cmd, err := NewPostGoodsReceiptCommand("PO202610140001", clerk, time.Now(), []LineInput{
//	    {ItemCode: "BOLT-M8", Quantity: decimal.RequireFromString("100")},
//	    {ItemCode: "BOLT-M8", Quantity: decimal.RequireFromString("20")},
//	})
//	if err != nil {
//	    return err
//	}
//	outcome, err := handler.Handle(ctx, cmd)
type PostGoodsReceiptCommand struct { //nolint:recvcheck //using for validation
	purchaseOrderNo string
	postedBy        kernel.Actor
	businessDate    time.Time
	lines           []LineInput

	guard guard.ConstructorGuard
}

// NewPostGoodsReceiptCommand validates the receipt data. The order number,
// clerk and business date are required and every line needs an item code.
// Quantities are checked when the receipt is built.
func NewPostGoodsReceiptCommand(
	purchaseOrderNo string,
	postedBy kernel.Actor,
	businessDate time.Time,
	lines []LineInput,
) (PostGoodsReceiptCommand, error) {
	var errList []error
	if purchaseOrderNo == "" {
		errList = append(errList, errs.NewValueIsRequiredError("purchaseOrderNo"))
	}
	if postedBy == "" {
		errList = append(errList, errs.NewValueIsRequiredError("postedBy"))
	}
	if businessDate.IsZero() {
		errList = append(errList, errs.NewValueIsRequiredError("businessDate"))
	}
	copied, err := copyLines(lines)
	errList = append(errList, err)
	if err := errors.Join(errList...); err != nil {
		return PostGoodsReceiptCommand{}, err
	}

	return PostGoodsReceiptCommand{
		purchaseOrderNo: purchaseOrderNo,
		postedBy:        postedBy,
		businessDate:    businessDate,
		lines:           copied,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrPostGoodsReceiptCommandIsNotConstructed if validation fails.
func (c PostGoodsReceiptCommand) Validate() error {
	return c.guard.Validate(ErrPostGoodsReceiptCommandIsNotConstructed)
}

// PurchaseOrderNo returns the order the goods were delivered for.
func (c PostGoodsReceiptCommand) PurchaseOrderNo() string {
	return c.purchaseOrderNo
}

// PostedBy returns the receiving clerk.
func (c PostGoodsReceiptCommand) PostedBy() kernel.Actor {
	return c.postedBy
}

// BusinessDate returns the date the receipt number is allocated for.
func (c PostGoodsReceiptCommand) BusinessDate() time.Time {
	return c.businessDate
}

// Lines returns a copy of the received lines.
func (c PostGoodsReceiptCommand) Lines() []LineInput {
	return append([]LineInput(nil), c.lines...)
}
