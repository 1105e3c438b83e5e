package queries

import (
	"errors"

	"procurement/internal/core/domain/model/purchaseorder"
	"procurement/internal/pkg/guard"
)

var (
	// ErrGetOpenPurchaseOrdersQueryIsNotConstructed is returned by Validate on a
	// zero value.
	ErrGetOpenPurchaseOrdersQueryIsNotConstructed = errors.New(
		"GetOpenPurchaseOrdersQuery must be created via NewGetOpenPurchaseOrdersQuery constructor",
	)
)

// GetOpenPurchaseOrdersQuery lists the orders a receiving clerk can still
// post against: SENT or DELIVERED and not completely received. An empty
// vendor ID lists every vendor.
//
// Example:
//
//	query := NewGetOpenPurchaseOrdersQuery("V000001")
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	for _, order := range orders {
//	    fmt.Println(order.Number, order.Fulfillment)
//	}
type GetOpenPurchaseOrdersQuery struct {
	vendorID string

	guard guard.ConstructorGuard
}

// NewGetOpenPurchaseOrdersQuery creates the query. It never fails.
func NewGetOpenPurchaseOrdersQuery(vendorID string) GetOpenPurchaseOrdersQuery {
	return GetOpenPurchaseOrdersQuery{vendorID: vendorID, guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOpenPurchaseOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOpenPurchaseOrdersQueryIsNotConstructed)
}

// VendorID returns the vendor filter, empty for all vendors.
func (q GetOpenPurchaseOrdersQuery) VendorID() string {
	return q.vendorID
}

// GetOpenPurchaseOrdersQueryResponse is one receivable order.
type GetOpenPurchaseOrdersQueryResponse struct {
	Number      string
	VendorID    string
	Status      purchaseorder.Status
	Fulfillment purchaseorder.Fulfillment
}
