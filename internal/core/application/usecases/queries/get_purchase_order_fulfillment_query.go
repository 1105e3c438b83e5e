package queries

import (
	"errors"

	"procurement/internal/core/domain/model/purchaseorder"
	"procurement/internal/pkg/errs"
	"procurement/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	// ErrGetPurchaseOrderFulfillmentQueryIsNotConstructed is returned by Validate
	// on a zero value.
	ErrGetPurchaseOrderFulfillmentQueryIsNotConstructed = errors.New(
		"GetPurchaseOrderFulfillmentQuery must be created via NewGetPurchaseOrderFulfillmentQuery constructor",
	)
)

// GetPurchaseOrderFulfillmentQuery reads the ordered and received quantities
// of one purchase order.
//
// Example:
//
//	query, err := NewGetPurchaseOrderFulfillmentQuery("PO202610140007")
//	if err != nil {
//	    return err
//	}
//	view, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%s is %s\n", view.Number, view.Fulfillment)
type GetPurchaseOrderFulfillmentQuery struct {
	number string

	guard guard.ConstructorGuard
}

// NewGetPurchaseOrderFulfillmentQuery creates the query.
// Returns a ValueIsRequiredError when number is empty.
func NewGetPurchaseOrderFulfillmentQuery(number string) (GetPurchaseOrderFulfillmentQuery, error) {
	if number == "" {
		return GetPurchaseOrderFulfillmentQuery{}, errs.NewValueIsRequiredError("number")
	}
	return GetPurchaseOrderFulfillmentQuery{number: number, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPurchaseOrderFulfillmentQuery) Validate() error {
	return q.guard.Validate(ErrGetPurchaseOrderFulfillmentQueryIsNotConstructed)
}

// Number returns the order to read.
func (q GetPurchaseOrderFulfillmentQuery) Number() string {
	return q.number
}

// GetPurchaseOrderFulfillmentQueryResponse is the fulfillment view of an
// order. Lines keep their order of entry.
type GetPurchaseOrderFulfillmentQueryResponse struct {
	Number      string
	VendorID    string
	Status      purchaseorder.Status
	Fulfillment purchaseorder.Fulfillment
	Lines       []FulfillmentLine
}

// FulfillmentLine holds the figures of one ordered item.
type FulfillmentLine struct {
	ItemCode string
	Ordered  decimal.Decimal
	Received decimal.Decimal
}

// Outstanding is the quantity still to be received, never negative.
func (l FulfillmentLine) Outstanding() decimal.Decimal {
	rest := l.Ordered.Sub(l.Received)
	if rest.IsNegative() {
		return decimal.Zero
	}
	return rest
}
