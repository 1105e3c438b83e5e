package commands

import (
	"context"
	"log/slog"
	"slices"

	"procurement/internal/core/domain/model/receipt"
	"procurement/internal/core/domain/services"
	"procurement/internal/pkg/errs"
)

// CancelReceiptLineCommandHandler flags one receipt line as cancelled and
// recomputes the fulfillment of the purchase order, which may move back from
// COMPLETED to PARTIAL or NOT_RECEIVED. The order status is left as it is.
//
// Locks are taken in the same order as when posting: the purchase order row
// first, then the receipts of that order are read. Two cancellations on one
// order therefore serialize instead of deadlocking.
//
// Example:
//
//	handler := NewCancelReceiptLineCommandHandler(uowFactory, logger)
//	outcome, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(outcome.PurchaseOrderNo, outcome.Fulfillment)
type CancelReceiptLineCommandHandler struct {
	uowFactory ReceivingUoWFactory
	reconciler services.QuantityReconciler
	logger     *slog.Logger
}

// NewCancelReceiptLineCommandHandler creates a handler. The logger is
// tagged with component=goods-receipt.
func NewCancelReceiptLineCommandHandler(uowFactory ReceivingUoWFactory, logger *slog.Logger) CancelReceiptLineCommandHandler {
	return CancelReceiptLineCommandHandler{
		uowFactory: uowFactory,
		reconciler: services.NewQuantityReconciler(),
		logger:     logger.With("component", "goods-receipt"),
	}
}

// Handle cancels the line and returns the recomputed fulfillment of its
// order, with ReceiptNo set to the receipt that changed.
func (h CancelReceiptLineCommandHandler) Handle(ctx context.Context, cmd CancelReceiptLineCommand) (ReconcileOutcome, error) {
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

	receiptRepo := uow.ReceiptRepository()

	// The receipt is read once unlocked to find its order; it is read again
	// with the others after the order lock is held.
	unlocked, err := receiptRepo.Get(ctx, cmd.ReceiptNo())
	if err != nil {
		return ReconcileOutcome{}, err
	}

	order, err := uow.PurchaseOrderRepository().GetForUpdate(ctx, unlocked.PurchaseOrderNo())
	if err != nil {
		return ReconcileOutcome{}, err
	}

	receipts, err := receiptRepo.GetAllByPurchaseOrder(ctx, order.Number())
	if err != nil {
		return ReconcileOutcome{}, err
	}
	i := slices.IndexFunc(receipts, func(r *receipt.Receipt) bool { return r.Number() == cmd.ReceiptNo() })
	if i < 0 {
		return ReconcileOutcome{}, errs.NewObjectNotFoundError("receiptNo", cmd.ReceiptNo())
	}
	target := receipts[i]

	if err = target.CancelLine(cmd.LineID(), cmd.Actor(), order.ControllerID()); err != nil {
		return ReconcileOutcome{}, err
	}

	outcome, err := reconcileLocked(ctx, h.logger, h.reconciler, uow, order, receipts)
	if err != nil {
		return ReconcileOutcome{}, err
	}

	if err = receiptRepo.Update(ctx, target); err != nil {
		return ReconcileOutcome{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ReconcileOutcome{}, err
	}

	outcome.ReceiptNo = target.Number()
	return outcome, nil
}
