package queries

import (
	"context"

	"procurement/internal/core/domain/model/purchaseorder"
	"procurement/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetPurchaseOrderFulfillmentQueryHandler reads the fulfillment view straight
// from the order tables without loading the aggregate.
type GetPurchaseOrderFulfillmentQueryHandler struct {
	db *gorm.DB
}

// NewGetPurchaseOrderFulfillmentQueryHandler creates a handler reading through db.
func NewGetPurchaseOrderFulfillmentQueryHandler(db *gorm.DB) GetPurchaseOrderFulfillmentQueryHandler {
	return GetPurchaseOrderFulfillmentQueryHandler{db: db}
}

// Handle returns an ObjectNotFoundError for an unknown number.
func (h GetPurchaseOrderFulfillmentQueryHandler) Handle(
	ctx context.Context,
	query GetPurchaseOrderFulfillmentQuery,
) (GetPurchaseOrderFulfillmentQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetPurchaseOrderFulfillmentQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			po.number,
			po.vendor_id,
			po.status,
			po.fulfillment,
			l.item_code,
			l.ordered_quantity,
			l.received_quantity
		FROM purchase_orders po
		JOIN purchase_order_lines l ON l.purchase_order_no = po.number
		WHERE po.number = ?
		ORDER BY l.position
	`, query.Number()).Rows()
	if err != nil {
		return GetPurchaseOrderFulfillmentQueryResponse{}, err
	}
	defer rows.Close()

	var response GetPurchaseOrderFulfillmentQueryResponse
	for rows.Next() {
		var line FulfillmentLine
		var status, fulfillment int

		err = rows.Scan(
			&response.Number,
			&response.VendorID,
			&status,
			&fulfillment,
			&line.ItemCode,
			&line.Ordered,
			&line.Received,
		)
		if err != nil {
			return GetPurchaseOrderFulfillmentQueryResponse{}, err
		}

		response.Status = purchaseorder.Status(status)
		response.Fulfillment = purchaseorder.Fulfillment(fulfillment)
		response.Lines = append(response.Lines, line)
	}

	if err = rows.Err(); err != nil {
		return GetPurchaseOrderFulfillmentQueryResponse{}, err
	}

	if response.Number == "" {
		return GetPurchaseOrderFulfillmentQueryResponse{}, errs.NewObjectNotFoundError("purchase order", query.Number())
	}

	return response, nil
}
