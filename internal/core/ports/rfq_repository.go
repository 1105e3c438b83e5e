package ports

import (
	"context"

	"procurement/internal/core/domain/model/rfq"
)

// RfqRepository defines the persistence contract for requests for quotation
// and their invited vendors.
type RfqRepository interface {
	// Add persists a new request with its vendors.
	Add(ctx context.Context, aggregate *rfq.Rfq) error
	// Update persists the status, the selected vendor and the vendor list.
	// It must run inside the transaction that locked the row.
	Update(ctx context.Context, aggregate *rfq.Rfq) error
	// Get reads a request without locking it.
	Get(ctx context.Context, number string) (*rfq.Rfq, error)

	// GetForUpdate locks the header row like PurchaseOrderRepository.GetForUpdate.
	GetForUpdate(ctx context.Context, number string) (*rfq.Rfq, error)
}
