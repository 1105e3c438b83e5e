package services

import (
	"fmt"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/purchaseorder"
	"procurement/internal/core/domain/model/receipt"
	"procurement/internal/pkg/errs"
)

// ReconcileResult describes what Recompute changed on the order.
type ReconcileResult struct {
	Previous    purchaseorder.Fulfillment
	Fulfillment purchaseorder.Fulfillment
	// Delivered is true when this recompute moved the order from SENT to
	// DELIVERED.
	Delivered bool
}

// QuantityReconciler sums received quantities over the active lines of every
// receipt of an order and compares them with the ordered quantities.
//
// Business rules:
//   - cancelled lines, and every line of a cancelled receipt, count as zero
//   - an item is fulfilled when received >= ordered; over-receipt is allowed
//   - NOT_RECEIVED when nothing was received, COMPLETED when every item is
//     fulfilled, PARTIAL otherwise
//   - reaching COMPLETED while SENT moves the order to DELIVERED as the
//     system actor; the order status never moves back
type QuantityReconciler struct{}

// NewQuantityReconciler creates a stateless reconciler.
func NewQuantityReconciler() QuantityReconciler {
	return QuantityReconciler{}
}

// Recompute writes the accumulated received quantities onto order and
// returns the derived fulfillment.
//
// Parameters:
//   - order: the locked purchase order; it is modified in place
//   - receipts: every receipt posted against order, cancelled ones included
//
// Returns:
//   - ReconcileResult: the previous and new fulfillment, and whether the
//    order was moved to DELIVERED
//   - error: ConsistencyViolationError when the order has no lines, a receipt
//    belongs to another order, a receipt header disagrees with its lines, or
//    a receipt line names an item the order does not carry
//
// The result depends only on the persisted receipts, so calling Recompute
// twice in a row changes nothing the second time.
//
// Example:
//
//	receipts, _ := receiptRepo.GetAllByPurchaseOrder(ctx, order.Number())
//	result, err := reconciler.Recompute(order, receipts)
//	if err != nil {
//	    return err
//	}
//	if result.Delivered {
//	    // the posting completed the order
//	}
func (QuantityReconciler) Recompute(order *purchaseorder.PurchaseOrder, receipts []*receipt.Receipt) (ReconcileResult, error) {
	if err := order.Validate(); err != nil {
		return ReconcileResult{}, err
	}
	lines := order.Lines()
	if len(lines) == 0 {
		return ReconcileResult{}, errs.NewConsistencyViolationError("purchase order", order.Number(), "order has no lines")
	}

	received := make(map[string]kernel.Quantity, len(lines))
	for _, r := range receipts {
		if err := r.Validate(); err != nil {
			return ReconcileResult{}, err
		}
		if r.PurchaseOrderNo() != order.Number() {
			return ReconcileResult{}, errs.NewConsistencyViolationError("goods receipt", r.Number(),
				fmt.Sprintf("receipt belongs to %s, not %s", r.PurchaseOrderNo(), order.Number()))
		}
		if err := r.CheckConsistency(); err != nil {
			return ReconcileResult{}, err
		}
		for _, line := range r.ActiveLines() {
			if _, ok := order.Line(line.ItemCode()); !ok {
				return ReconcileResult{}, errs.NewConsistencyViolationError("goods receipt", r.Number(),
					fmt.Sprintf("item %s is not ordered on %s", line.ItemCode(), order.Number()))
			}
			total, ok := received[line.ItemCode()]
			if !ok {
				total = kernel.ZeroQuantity()
			}
			received[line.ItemCode()] = total.Add(line.Quantity())
		}
	}

	result := ReconcileResult{Previous: order.Fulfillment(), Fulfillment: derive(lines, received)}
	if err := order.RecordReceipts(received, result.Fulfillment); err != nil {
		return ReconcileResult{}, err
	}

	if result.Fulfillment == purchaseorder.Completed && order.Status() == purchaseorder.Sent {
		if err := order.Transition(purchaseorder.Delivered, kernel.SystemActor); err != nil {
			return ReconcileResult{}, err
		}
		result.Delivered = true
	}
	return result, nil
}

// derive maps line totals to a fulfillment. Items absent from received
// count as zero.
func derive(lines []purchaseorder.Line, received map[string]kernel.Quantity) purchaseorder.Fulfillment {
	anything := false
	complete := true
	for _, line := range lines {
		qty, ok := received[line.ItemCode()]
		if !ok {
			qty = kernel.ZeroQuantity()
		}
		if !qty.IsZero() {
			anything = true
		}
		if !qty.GreaterThanOrEqual(line.Ordered()) {
			complete = false
		}
	}

	switch {
	case !anything:
		return purchaseorder.NotReceived
	case complete:
		return purchaseorder.Completed
	default:
		return purchaseorder.Partial
	}
}
