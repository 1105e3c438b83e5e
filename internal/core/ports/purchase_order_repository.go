// Package ports defines the contracts between the procurement core and its
// infrastructure: repositories, the document number allocator and the
// session registry.
package ports

import (
	"context"

	"procurement/internal/core/domain/model/purchaseorder"
)

// PurchaseOrderRepository defines the persistence contract for purchase
// order aggregates, header and lines together.
type PurchaseOrderRepository interface {
	// Add persists a new order. The number must not exist yet.
	Add(ctx context.Context, aggregate *purchaseorder.PurchaseOrder) error

	// Update persists status, fulfillment and received quantities.
	Update(ctx context.Context, aggregate *purchaseorder.PurchaseOrder) error

	// Get reads an order without locking it.
	Get(ctx context.Context, number string) (*purchaseorder.PurchaseOrder, error)

	// GetForUpdate reads an order and holds an exclusive lock on its header
	// row until the surrounding transaction ends. Concurrent callers for the
	// same number wait; a wait longer than the lock timeout fails with a
	// TransientContentionError.
	GetForUpdate(ctx context.Context, number string) (*purchaseorder.PurchaseOrder, error)
}
