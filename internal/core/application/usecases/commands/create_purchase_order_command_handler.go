package commands

import (
	"context"

	"procurement/internal/core/domain/model/docnumber"
	"procurement/internal/core/domain/model/purchaseorder"
	"procurement/internal/core/ports"
)

// CreatePurchaseOrderCommandHandler allocates a PO number and persists a new
// order in SAVED status.
//
// The number is allocated before the unit of work begins. A failed allocation
// aborts the command before any row exists; a failure after allocation
// leaves the number burned.
//
// Example:
//
//	handler := NewCreatePurchaseOrderCommandHandler(allocator, uowFactory)
//	number, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return err
//	}
//	// number looks like PO202610140001
type CreatePurchaseOrderCommandHandler struct {
	allocator  ports.DocNumberAllocator
	uowFactory PurchaseOrderUoWFactory
}

// NewCreatePurchaseOrderCommandHandler creates a handler that takes numbers
// from allocator and stores orders through uowFactory.
func NewCreatePurchaseOrderCommandHandler(
	allocator ports.DocNumberAllocator,
	uowFactory PurchaseOrderUoWFactory,
) CreatePurchaseOrderCommandHandler {
	return CreatePurchaseOrderCommandHandler{allocator: allocator, uowFactory: uowFactory}
}

// Handle returns the number of the created order.
func (h CreatePurchaseOrderCommandHandler) Handle(ctx context.Context, cmd CreatePurchaseOrderCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	lines := make([]purchaseorder.Line, 0, len(cmd.Lines()))
	for _, in := range cmd.Lines() {
		qty, err := in.quantity()
		if err != nil {
			return "", err
		}
		line, err := purchaseorder.NewLine(in.ItemCode, qty)
		if err != nil {
			return "", err
		}
		lines = append(lines, line)
	}

	number, err := h.allocator.Allocate(ctx, docnumber.PurchaseOrder, cmd.BusinessDate())
	if err != nil {
		return "", err
	}

	order, err := purchaseorder.NewPurchaseOrder(number, cmd.ControllerID().String(), cmd.VendorID(), lines)
	if err != nil {
		return "", err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return "", err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.PurchaseOrderRepository().Add(ctx, order); err != nil {
		return "", err
	}

	if err = uow.Commit(ctx); err != nil {
		return "", err
	}

	return order.Number(), nil
}
