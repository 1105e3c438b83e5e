package receipt

import (
	"errors"
	"fmt"
	"slices"

	"procurement/internal/core/domain/model/docnumber"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/statemachine"
	"procurement/internal/pkg/errs"
)

// ErrReceiptIsNotConstructed is returned by Validate on a zero Receipt.
var ErrReceiptIsNotConstructed = errors.New("Receipt must be created via NewReceipt or RestoreReceipt constructor")

// Receipt is a goods receipt posted against one purchase order.
//
// Receipts are never deleted. Cancelling withdraws a line from the received
// quantity but keeps it, so the history of a purchase order can always be
// replayed from its receipts.
//
// Business rules:
//   - a receipt has at least one line
//   - only the clerk who posted it or the controller of the order may cancel
//   - a cancelled line cannot be reactivated
//
// Example usage:
//
//	qty, _ := kernel.QuantityFromInt(100)
//	line, _ := NewLine("BOLT-M8", qty)
//	gr, err := NewReceipt(number, "PO202610140001", kernel.Actor("clerk-1"), []Line{line})
//	if err != nil {
//	    // Handle construction error
//	}
//	_ = gr.CancelLine(line.ID(), kernel.Actor("clerk-1"), "ctrl-1")
//	// gr.Status() is now CANCELLED
type Receipt struct {
	// number is the formatted GR document number
	number string
	// purchaseOrderNo is the order the goods were received for
	purchaseOrderNo string
	// postedBy is the receiving clerk
	postedBy string
	// status is CANCELLED once no line is active
	status statemachine.Guarded[Status]
	// lines are kept after cancellation for the audit trail
	lines []Line

	isConstructed bool
}

// NewReceipt creates an ACTIVE receipt.
//
// Parameters:
//   - number: a number allocated for docnumber.GoodsReceipt
//   - purchaseOrderNo: the order the goods were delivered for
//   - postedBy: the receiving clerk
//   - lines: at least one constructed line
//
// Whether the order accepts the receipt is not checked here; that needs the
// order aggregate and is done by the posting use case.
func NewReceipt(number docnumber.Number, purchaseOrderNo string, postedBy kernel.Actor, lines []Line) (*Receipt, error) {
	if err := number.ValidateType(docnumber.GoodsReceipt); err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, errs.NewValueIsRequiredError("lines")
	}
	return newReceipt(number.String(), purchaseOrderNo, postedBy.String(), Transitions.Start(Active), lines)
}

// RestoreReceipt rebuilds a persisted receipt without checking its header
// against its lines; see CheckConsistency.
func RestoreReceipt(number, purchaseOrderNo, postedBy string, status Status, lines []Line) (*Receipt, error) {
	if number == "" {
		return nil, errs.NewValueIsRequiredError("number")
	}
	guarded, err := Transitions.Restore(status)
	if err != nil {
		return nil, err
	}
	return newReceipt(number, purchaseOrderNo, postedBy, guarded, lines)
}

func newReceipt(number, purchaseOrderNo, postedBy string, status statemachine.Guarded[Status], lines []Line) (*Receipt, error) {
	if purchaseOrderNo == "" {
		return nil, errs.NewValueIsRequiredError("purchaseOrderNo")
	}
	if postedBy == "" {
		return nil, errs.NewValueIsRequiredError("postedBy")
	}
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return nil, err
		}
	}

	return &Receipt{
		number:          number,
		purchaseOrderNo: purchaseOrderNo,
		postedBy:        postedBy,
		status:          status,
		lines:           slices.Clone(lines),
		isConstructed:   true,
	}, nil
}

// Validate ensures r was created through NewReceipt or RestoreReceipt.
func (r *Receipt) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrReceiptIsNotConstructed
	}
	return nil
}

// Number returns the formatted receipt number.
func (r *Receipt) Number() string {
	return r.number
}

// PurchaseOrderNo returns the order the receipt was posted against.
func (r *Receipt) PurchaseOrderNo() string {
	return r.purchaseOrderNo
}

// PostedBy returns the clerk who posted the receipt.
func (r *Receipt) PostedBy() string {
	return r.postedBy
}

// Status returns ACTIVE while at least one line is active and CANCELLED
// after the last active line is cancelled.
func (r *Receipt) Status() Status {
	return r.status.Current()
}

// Lines returns a copy of all lines, cancelled ones included.
func (r *Receipt) Lines() []Line {
	return slices.Clone(r.lines)
}

// ActiveLines returns the lines that count towards the received quantity.
// A cancelled receipt has none.
func (r *Receipt) ActiveLines() []Line {
	if r.status.Current() == Cancelled {
		return nil
	}
	active := make([]Line, 0, len(r.lines))
	for _, line := range r.lines {
		if !line.IsCancelled() {
			active = append(active, line)
		}
	}
	return active
}

// CancelLine flags the line as cancelled on behalf of actor.
//
// Business rules:
//   - actor must be the user who posted the receipt, the controller of the
//    purchase order, or the system
//   - cancelling the last active line makes the receipt CANCELLED
//   - cancelling an already cancelled line is an illegal transition
//
// Returns NotOwnerError, ObjectNotFoundError for an unknown line, or
// IllegalTransitionError. On error the receipt is unchanged.
func (r *Receipt) CancelLine(lineID kernel.UUID, actor kernel.Actor, controllerID string) error {
	if !actor.May(r.postedBy) && !actor.May(controllerID) {
		return errs.NewNotOwnerError("goods receipt", r.number, actor.String())
	}

	i := slices.IndexFunc(r.lines, func(l Line) bool { return l.id.IsEqual(lineID) })
	if i < 0 {
		return errs.NewObjectNotFoundError("receipt line", lineID.String())
	}

	line := r.lines[i]
	if err := line.status.Transition(lineID.String(), Cancelled); err != nil {
		return err
	}

	if len(r.activeLines(line.id)) == 0 {
		if err := r.status.Transition(r.number, Cancelled); err != nil {
			return err
		}
	}
	r.lines[i] = line
	return nil
}

func (r *Receipt) activeLines(except kernel.UUID) []Line {
	var active []Line
	for _, line := range r.lines {
		if !line.IsCancelled() && !line.id.IsEqual(except) {
			active = append(active, line)
		}
	}
	return active
}

// CheckConsistency reports a header whose status disagrees with its lines.
// It is run on every restored receipt before the reconciler trusts it.
//
// Returns ConsistencyViolationError for a receipt without lines, an ACTIVE
// receipt without active lines, or a CANCELLED receipt with active lines.
func (r *Receipt) CheckConsistency() error {
	active := len(r.activeLines(kernel.UUID{}))
	switch {
	case len(r.lines) == 0:
		return errs.NewConsistencyViolationError("goods receipt", r.number, "receipt has no lines")
	case r.status.Current() == Active && active == 0:
		return errs.NewConsistencyViolationError("goods receipt", r.number,
			"every line is cancelled but the receipt is ACTIVE")
	case r.status.Current() == Cancelled && active > 0:
		return errs.NewConsistencyViolationError("goods receipt", r.number,
			fmt.Sprintf("receipt is CANCELLED but %d lines are active", active))
	}
	return nil
}
