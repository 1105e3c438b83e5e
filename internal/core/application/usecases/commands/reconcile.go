package commands

import (
	"context"
	"errors"
	"log/slog"

	"procurement/internal/core/domain/model/purchaseorder"
	"procurement/internal/core/domain/model/receipt"
	"procurement/internal/core/domain/services"
	"procurement/internal/pkg/errs"
)

// ReconcileOutcome is returned by every operation that recomputes the
// fulfillment of a purchase order.
type ReconcileOutcome struct {
	// PurchaseOrderNo is the order that was recomputed.
	PurchaseOrderNo string
	// ReceiptNo is the receipt posted or changed, empty for a plain recompute.
	ReceiptNo string
	// Fulfillment is the receiving state after the recompute.
	Fulfillment purchaseorder.Fulfillment
	// Status is the order status after the recompute. A SENT order that
	// became COMPLETED is reported as DELIVERED.
	Status purchaseorder.Status
}

// reconcileLocked recomputes order from receipts and persists the order.
// The caller holds the order row lock.
func reconcileLocked(
	ctx context.Context,
	logger *slog.Logger,
	reconciler services.QuantityReconciler,
	repo PurchaseOrderRepoFactory,
	order *purchaseorder.PurchaseOrder,
	receipts []*receipt.Receipt,
) (ReconcileOutcome, error) {
	result, err := reconciler.Recompute(order, receipts)
	if err != nil {
		if errors.Is(err, errs.ErrConsistencyViolation) {
			logger.ErrorContext(ctx, "receipt reconciliation found inconsistent data",
				"purchase_order", order.Number(), "error", err)
		}
		return ReconcileOutcome{}, err
	}

	if err = repo.PurchaseOrderRepository().Update(ctx, order); err != nil {
		return ReconcileOutcome{}, err
	}

	if result.Fulfillment != result.Previous || result.Delivered {
		logger.InfoContext(ctx, "purchase order fulfillment changed",
			"purchase_order", order.Number(),
			"from", result.Previous.String(),
			"to", result.Fulfillment.String(),
			"status", order.Status().String())
	}

	return ReconcileOutcome{
		PurchaseOrderNo: order.Number(),
		Fulfillment:     result.Fulfillment,
		Status:          order.Status(),
	}, nil
}
