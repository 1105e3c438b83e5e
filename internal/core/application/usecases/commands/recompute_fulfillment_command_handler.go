package commands

import (
	"context"
	"log/slog"

	"procurement/internal/core/domain/services"
)

// RecomputeFulfillmentCommandHandler repairs received quantities that drifted
// from the receipts, for example after a manual data fix.
//
// Example:
//
//	handler := NewRecomputeFulfillmentCommandHandler(uowFactory, logger)
//	cmd, _ := NewRecomputeFulfillmentCommand("PO202610140001")
//	outcome, err := handler.Handle(ctx, cmd)
type RecomputeFulfillmentCommandHandler struct {
	uowFactory ReceivingUoWFactory
	reconciler services.QuantityReconciler
	logger     *slog.Logger
}

// NewRecomputeFulfillmentCommandHandler creates a handler.
func NewRecomputeFulfillmentCommandHandler(uowFactory ReceivingUoWFactory, logger *slog.Logger) RecomputeFulfillmentCommandHandler {
	return RecomputeFulfillmentCommandHandler{
		uowFactory: uowFactory,
		reconciler: services.NewQuantityReconciler(),
		logger:     logger.With("component", "goods-receipt"),
	}
}

// Handle locks the order, recomputes and persists. An order without lines
// fails with ConsistencyViolationError.
func (h RecomputeFulfillmentCommandHandler) Handle(ctx context.Context, cmd RecomputeFulfillmentCommand) (ReconcileOutcome, error) {
	if err := cmd.Validate(); err != nil {
		return ReconcileOutcome{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ReconcileOutcome{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	order, err := uow.PurchaseOrderRepository().GetForUpdate(ctx, cmd.PurchaseOrderNo())
	if err != nil {
		return ReconcileOutcome{}, err
	}

	receipts, err := uow.ReceiptRepository().GetAllByPurchaseOrder(ctx, order.Number())
	if err != nil {
		return ReconcileOutcome{}, err
	}

	outcome, err := reconcileLocked(ctx, h.logger, h.reconciler, uow, order, receipts)
	if err != nil {
		return ReconcileOutcome{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ReconcileOutcome{}, err
	}
	return outcome, nil
}
