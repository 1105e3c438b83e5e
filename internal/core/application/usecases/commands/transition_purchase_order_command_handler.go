package commands

import (
	"context"

	"procurement/internal/core/domain/model/purchaseorder"
)

// TransitionPurchaseOrderCommandHandler applies a status change under the
// order row lock, so two concurrent transitions of one order serialize and
// the second sees the result of the first.
type TransitionPurchaseOrderCommandHandler struct {
	uowFactory PurchaseOrderUoWFactory
}

// NewTransitionPurchaseOrderCommandHandler creates a handler.
func NewTransitionPurchaseOrderCommandHandler(uowFactory PurchaseOrderUoWFactory) TransitionPurchaseOrderCommandHandler {
	return TransitionPurchaseOrderCommandHandler{uowFactory: uowFactory}
}

// Handle returns the status after the transition.
func (h TransitionPurchaseOrderCommandHandler) Handle(
	ctx context.Context,
	cmd TransitionPurchaseOrderCommand,
) (purchaseorder.Status, error) {
	if err := cmd.Validate(); err != nil {
		return purchaseorder.Unknown, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return purchaseorder.Unknown, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.PurchaseOrderRepository()
	order, err := repo.GetForUpdate(ctx, cmd.Number())
	if err != nil {
		return purchaseorder.Unknown, err
	}

	if err = order.Transition(cmd.Next(), cmd.Actor()); err != nil {
		return purchaseorder.Unknown, err
	}

	if err = repo.Update(ctx, order); err != nil {
		return purchaseorder.Unknown, err
	}

	if err = uow.Commit(ctx); err != nil {
		return purchaseorder.Unknown, err
	}

	return order.Status(), nil
}
