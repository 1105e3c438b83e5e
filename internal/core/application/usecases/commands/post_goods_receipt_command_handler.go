package commands

import (
	"context"
	"fmt"
	"log/slog"

	"procurement/internal/core/domain/model/docnumber"
	"procurement/internal/core/domain/model/purchaseorder"
	"procurement/internal/core/domain/model/receipt"
	"procurement/internal/core/domain/services"
	"procurement/internal/core/ports"
	"procurement/internal/pkg/errs"
)

// PostGoodsReceiptCommandHandler appends a goods receipt to a purchase order
// and recomputes its fulfillment.
//
// Flow:
//  1. check the order without locking, so that an obviously bad request does
//     not burn a GR number
//  2. allocate the GR number in its own transaction
//  3. lock the order row, check again, read all receipts, append, recompute,
//     persist and commit
//
// Concurrent postings against one order serialize on step 3. A lock wait
// longer than the configured timeout fails with TransientContentionError and
// nothing of step 3 is kept; the caller may retry the whole command.
//
// Example:
//
//	handler := NewPostGoodsReceiptCommandHandler(allocator, uowFactory, logger)
//	outcome, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrTransientContention) {
//	    // another posting held the order; retry
//	}
type PostGoodsReceiptCommandHandler struct {
	allocator  ports.DocNumberAllocator
	uowFactory ReceivingUoWFactory
	reconciler services.QuantityReconciler
	logger     *slog.Logger
}

// NewPostGoodsReceiptCommandHandler creates a handler. The logger is tagged
// with component=goods-receipt.
func NewPostGoodsReceiptCommandHandler(
	allocator ports.DocNumberAllocator,
	uowFactory ReceivingUoWFactory,
	logger *slog.Logger,
) PostGoodsReceiptCommandHandler {
	return PostGoodsReceiptCommandHandler{
		allocator:  allocator,
		uowFactory: uowFactory,
		reconciler: services.NewQuantityReconciler(),
		logger:     logger.With("component", "goods-receipt"),
	}
}

// Handle posts the receipt and returns its number together with the new
// fulfillment of the order.
func (h PostGoodsReceiptCommandHandler) Handle(ctx context.Context, cmd PostGoodsReceiptCommand) (ReconcileOutcome, error) {
	if err := cmd.Validate(); err != nil {
		return ReconcileOutcome{}, err
	}

	lines, err := h.receiptLines(cmd)
	if err != nil {
		return ReconcileOutcome{}, err
	}

	if err = h.precheck(ctx, cmd.PurchaseOrderNo(), lines); err != nil {
		return ReconcileOutcome{}, err
	}

	number, err := h.allocator.Allocate(ctx, docnumber.GoodsReceipt, cmd.BusinessDate())
	if err != nil {
		return ReconcileOutcome{}, err
	}

	gr, err := receipt.NewReceipt(number, cmd.PurchaseOrderNo(), cmd.PostedBy(), lines)
	if err != nil {
		return ReconcileOutcome{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return ReconcileOutcome{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	order, err := uow.PurchaseOrderRepository().GetForUpdate(ctx, cmd.PurchaseOrderNo())
	if err != nil {
		return ReconcileOutcome{}, err
	}
	if err = checkReceivable(order, lines); err != nil {
		return ReconcileOutcome{}, err
	}

	receipts, err := uow.ReceiptRepository().GetAllByPurchaseOrder(ctx, order.Number())
	if err != nil {
		return ReconcileOutcome{}, err
	}

	outcome, err := reconcileLocked(ctx, h.logger, h.reconciler, uow, order, append(receipts, gr))
	if err != nil {
		return ReconcileOutcome{}, err
	}

	if err = uow.ReceiptRepository().Add(ctx, gr); err != nil {
		return ReconcileOutcome{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ReconcileOutcome{}, err
	}

	outcome.ReceiptNo = gr.Number()
	return outcome, nil
}

func (h PostGoodsReceiptCommandHandler) receiptLines(cmd PostGoodsReceiptCommand) ([]receipt.Line, error) {
	lines := make([]receipt.Line, 0, len(cmd.Lines()))
	for _, in := range cmd.Lines() {
		qty, err := in.quantity()
		if err != nil {
			return nil, err
		}
		line, err := receipt.NewLine(in.ItemCode, qty)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}

func (h PostGoodsReceiptCommandHandler) precheck(ctx context.Context, poNo string, lines []receipt.Line) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	order, err := uow.PurchaseOrderRepository().Get(ctx, poNo)
	if err != nil {
		return err
	}
	return checkReceivable(order, lines)
}

func checkReceivable(order *purchaseorder.PurchaseOrder, lines []receipt.Line) error {
	if err := order.CheckReceivable(); err != nil {
		return err
	}
	for _, line := range lines {
		if _, ok := order.Line(line.ItemCode()); !ok {
			return errs.NewValueIsInvalidErrorWithCause("lines",
				fmt.Errorf("item %s is not ordered on %s", line.ItemCode(), order.Number()))
		}
	}
	return nil
}
