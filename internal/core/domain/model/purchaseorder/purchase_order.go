package purchaseorder

import (
	"errors"
	"fmt"
	"slices"

	"procurement/internal/core/domain/model/docnumber"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/statemachine"
	"procurement/internal/pkg/errs"
)

var (
	// ErrPurchaseOrderIsNotConstructed is returned when a PurchaseOrder was not
	// created through NewPurchaseOrder or RestorePurchaseOrder.
	ErrPurchaseOrderIsNotConstructed = errors.New(
		"PurchaseOrder must be created via NewPurchaseOrder or RestorePurchaseOrder constructor")
)

// OperationReceive is refused when the order is not SENT or DELIVERED.
const OperationReceive = statemachine.Operation("receive")

// PurchaseOrder is the aggregate root of an order placed with one vendor.
//
// Invariants:
//   - the number is a PURCHASE_ORDER document number
//   - a new order has at least one line and item codes are unique
//   - status changes only through the Transitions table
//   - received quantities and fulfillment are written only by RecordReceipts
//
// Business rules:
//   - only the controller or the system actor may change the status
//   - goods are received only while the order is SENT or DELIVERED
//   - over-receipt is allowed and never fails a posting
//
// Example usage:
//
//	number, _ := docnumber.NewNumber(docnumber.PurchaseOrder, businessDate, 1)
//	qty, _ := kernel.QuantityFromInt(250)
//	line, _ := NewLine("BOLT-M8", qty)
//	order, err := NewPurchaseOrder(number, "ctrl-1", "V000001", []Line{line})
//	if err != nil {
//	    // Handle construction error
//	}
//	// order is SAVED and NOT_RECEIVED
type PurchaseOrder struct {
	// number is the formatted PO document number, unique across orders
	number string
	// controllerID is the user who owns the order lifecycle
	controllerID string
	// vendorID is the supplier the goods are ordered from
	vendorID string
	// status is the lifecycle state, changed only through Transitions
	status statemachine.Guarded[Status]
	// fulfillment is derived from the active receipt lines
	fulfillment Fulfillment
	// lines are the ordered items in order of entry
	lines []Line

	isConstructed bool
}

// NewPurchaseOrder creates an order in SAVED status with nothing received.
//
// Parameters:
//   - number: a number allocated for docnumber.PurchaseOrder
//   - controllerID: the user who will own the order lifecycle
//   - vendorID: the supplier, must be non-empty
//   - lines: at least one line; item codes must be unique
//
// Returns:
//   - *PurchaseOrder: the new aggregate, not yet persisted
//   - error: ValueIsRequiredError or ValueIsInvalidError naming the first
//    problem found
//
// Example:
//
//	order, err := NewPurchaseOrder(number, "ctrl-1", "V000001", lines)
//	if err != nil {
//	    return nil, fmt.Errorf("build order: %w", err)
//	}
func NewPurchaseOrder(number docnumber.Number, controllerID, vendorID string, lines []Line) (*PurchaseOrder, error) {
	if err := number.ValidateType(docnumber.PurchaseOrder); err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, errs.NewValueIsRequiredError("lines")
	}

	return newPurchaseOrder(number.String(), controllerID, vendorID, Transitions.Start(Saved), NotReceived, lines)
}

// RestorePurchaseOrder rebuilds a persisted order. Unlike NewPurchaseOrder it
// accepts any known status and a stored fulfillment, and an order without
// lines is accepted so that the reconciler can report it.
//
// Returns a ValueIsInvalidError for an unknown status or fulfillment.
func RestorePurchaseOrder(
	number, controllerID, vendorID string,
	status Status,
	fulfillment Fulfillment,
	lines []Line,
) (*PurchaseOrder, error) {
	if number == "" {
		return nil, errs.NewValueIsRequiredError("number")
	}
	guarded, err := Transitions.Restore(status)
	if err != nil {
		return nil, err
	}
	if err := fulfillment.Validate(); err != nil {
		return nil, err
	}

	return newPurchaseOrder(number, controllerID, vendorID, guarded, fulfillment, lines)
}

func newPurchaseOrder(
	number, controllerID, vendorID string,
	status statemachine.Guarded[Status],
	fulfillment Fulfillment,
	lines []Line,
) (*PurchaseOrder, error) {
	if controllerID == "" {
		return nil, errs.NewValueIsRequiredError("controllerID")
	}
	if vendorID == "" {
		return nil, errs.NewValueIsRequiredError("vendorID")
	}

	seen := make(map[string]struct{}, len(lines))
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return nil, err
		}
		if _, ok := seen[line.ItemCode()]; ok {
			return nil, errs.NewValueIsInvalidErrorWithCause("lines",
				fmt.Errorf("item %s is ordered more than once", line.ItemCode()))
		}
		seen[line.ItemCode()] = struct{}{}
	}

	return &PurchaseOrder{
		number:        number,
		controllerID:  controllerID,
		vendorID:      vendorID,
		status:        status,
		fulfillment:   fulfillment,
		lines:         slices.Clone(lines),
		isConstructed: true,
	}, nil
}

// Validate ensures o was created through NewPurchaseOrder or
// RestorePurchaseOrder.
func (o *PurchaseOrder) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrPurchaseOrderIsNotConstructed
	}
	return nil
}

// Number returns the formatted order number.
func (o *PurchaseOrder) Number() string {
	return o.number
}

// ControllerID is the user allowed to move the order through its lifecycle.
func (o *PurchaseOrder) ControllerID() string {
	return o.controllerID
}

// VendorID returns the supplier the order is placed with.
func (o *PurchaseOrder) VendorID() string {
	return o.vendorID
}

// Status returns the current lifecycle state.
func (o *PurchaseOrder) Status() Status {
	return o.status.Current()
}

// Fulfillment returns the receiving state as of the last reconciliation.
func (o *PurchaseOrder) Fulfillment() Fulfillment {
	return o.fulfillment
}

// Lines returns a copy of the order lines.
func (o *PurchaseOrder) Lines() []Line {
	return slices.Clone(o.lines)
}

// Line looks up the line ordering itemCode.
func (o *PurchaseOrder) Line(itemCode string) (Line, bool) {
	i := slices.IndexFunc(o.lines, func(l Line) bool { return l.itemCode == itemCode })
	if i < 0 {
		return Line{}, false
	}
	return o.lines[i], true
}

// CanTransition reports whether next is reachable from the current status.
// It does not check ownership.
func (o *PurchaseOrder) CanTransition(next Status) bool {
	return o.status.CanTransition(next)
}

// Transition moves the order to next on behalf of actor.
//
// Business rules:
//   - only the controlling user or the system may move the order
//   - next must be reachable from the current status in Transitions
//   - on error the status is unchanged
//
// Returns NotOwnerError for any other actor and IllegalTransitionError for a
// move the table does not allow.
//
// Example:
//
//	if err := order.Transition(Confirmed, kernel.Actor("ctrl-1")); err != nil {
//	    return err
//	}
func (o *PurchaseOrder) Transition(next Status, actor kernel.Actor) error {
	if !actor.May(o.controllerID) {
		return errs.NewNotOwnerError("purchase order", o.number, actor.String())
	}
	return o.status.Transition(o.number, next)
}

// IsReceivable reports whether goods may be received against the order.
func (o *PurchaseOrder) IsReceivable() bool {
	s := o.status.Current()
	return s == Sent || s == Delivered
}

// CheckReceivable fails with an illegal transition when IsReceivable is false.
func (o *PurchaseOrder) CheckReceivable() error {
	if !o.IsReceivable() {
		return o.status.Refuse(o.number, OperationReceive)
	}
	return nil
}

// RecordReceipts replaces the received quantity of every line with the
// accumulated figure in received and stores fulfillment. Items absent from
// received are reset to zero, and items in received that the order does not
// carry are ignored.
//
// It is meant to be called by the quantity reconciler only. Returns a
// ValueIsInvalidError for an unknown fulfillment before anything changes.
func (o *PurchaseOrder) RecordReceipts(received map[string]kernel.Quantity, fulfillment Fulfillment) error {
	if err := fulfillment.Validate(); err != nil {
		return err
	}
	for i := range o.lines {
		qty, ok := received[o.lines[i].itemCode]
		if !ok {
			qty = kernel.ZeroQuantity()
		}
		if err := qty.Validate(); err != nil {
			return err
		}
		o.lines[i].received = qty
	}
	o.fulfillment = fulfillment
	return nil
}
