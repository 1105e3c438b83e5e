package queries

import (
	"context"

	"procurement/internal/core/domain/model/purchaseorder"

	"gorm.io/gorm"
)

// GetOpenPurchaseOrdersQueryHandler lists receivable orders sorted by number.
type GetOpenPurchaseOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOpenPurchaseOrdersQueryHandler creates a handler reading through db.
func NewGetOpenPurchaseOrdersQueryHandler(db *gorm.DB) GetOpenPurchaseOrdersQueryHandler {
	return GetOpenPurchaseOrdersQueryHandler{db: db}
}

// Handle returns an empty slice, never nil, when nothing is open. Rows are
// read without locks, so an order posted to concurrently may show the figures
// from before that posting.
func (h GetOpenPurchaseOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOpenPurchaseOrdersQuery,
) ([]GetOpenPurchaseOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetOpenPurchaseOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			number,
			vendor_id,
			status,
			fulfillment
		FROM purchase_orders
		WHERE status IN (?, ?)
			AND fulfillment != ?
			AND (CAST(? AS text) = '' OR vendor_id = ?)
		ORDER BY number
	`, int(purchaseorder.Sent), int(purchaseorder.Delivered), int(purchaseorder.Completed),
		query.VendorID(), query.VendorID()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var order GetOpenPurchaseOrdersQueryResponse
		var status, fulfillment int

		if err = rows.Scan(&order.Number, &order.VendorID, &status, &fulfillment); err != nil {
			return nil, err
		}
		order.Status = purchaseorder.Status(status)
		order.Fulfillment = purchaseorder.Fulfillment(fulfillment)
		orders = append(orders, order)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
