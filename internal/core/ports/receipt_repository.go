package ports

import (
	"context"

	"procurement/internal/core/domain/model/receipt"
)

// ReceiptRepository defines the persistence contract for goods receipts.
// Receipts are never deleted.
type ReceiptRepository interface {
	// Add persists a new receipt with its lines. A duplicate number fails
	// with ValueIsInvalidError.
	Add(ctx context.Context, aggregate *receipt.Receipt) error

	// Update persists the header status and the cancelled flags of lines.
	Update(ctx context.Context, aggregate *receipt.Receipt) error

	// Get reads one receipt. An unknown number fails with
	// ObjectNotFoundError.
	Get(ctx context.Context, number string) (*receipt.Receipt, error)

	// GetAllByPurchaseOrder returns every receipt posted against poNo,
	// cancelled ones included, oldest first.
	GetAllByPurchaseOrder(ctx context.Context, poNo string) ([]*receipt.Receipt, error)
}
