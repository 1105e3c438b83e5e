// Package commands contains business operations that modify system state.
// Every handler follows the same shape: validate the command, open a unit of
// work, load (and lock) the aggregate, apply the domain operation, persist,
// commit. A deferred Rollback releases locks on every error path.
package commands

import (
	"context"

	"procurement/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	PurchaseOrderRepoFactory interface {
		PurchaseOrderRepository() ports.PurchaseOrderRepository
	}

	ReceiptRepoFactory interface {
		ReceiptRepository() ports.ReceiptRepository
	}

	RfqRepoFactory interface {
		RfqRepository() ports.RfqRepository
	}

	// PurchaseOrderUoW manages transactions for purchase order lifecycle
	// operations.
	PurchaseOrderUoW interface {
		TxManager
		PurchaseOrderRepoFactory
	}

	PurchaseOrderUoWFactory interface {
		Create() PurchaseOrderUoW
	}

	// ReceivingUoW spans a purchase order and its receipts. Used by every
	// operation that recomputes fulfillment.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   order, err := uow.PurchaseOrderRepository().GetForUpdate(ctx, poNo)
	//   receipts, err := uow.ReceiptRepository().GetAllByPurchaseOrder(ctx, poNo)
	//   // ... recompute and persist
	//
	//   err = uow.Commit(ctx)
	ReceivingUoW interface {
		TxManager
		PurchaseOrderRepoFactory
		ReceiptRepoFactory
	}

	ReceivingUoWFactory interface {
		Create() ReceivingUoW
	}

	RfqUoW interface {
		TxManager
		RfqRepoFactory
	}

	RfqUoWFactory interface {
		Create() RfqUoW
	}
)
