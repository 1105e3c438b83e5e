package receipt

import (
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/statemachine"
	"procurement/internal/pkg/errs"
)

// ErrLineIsNotConstructed is returned by Validate on a zero Line.
var ErrLineIsNotConstructed = errors.New("Line must be created via NewLine or RestoreLine constructor")

// Line is the quantity of one item received in one posting.
type Line struct {
	id       kernel.UUID
	itemCode string
	quantity kernel.Quantity
	status   statemachine.Guarded[Status]

	isConstructed bool
}

// NewLine creates an active line with a fresh id. quantity must be positive.
func NewLine(itemCode string, quantity kernel.Quantity) (Line, error) {
	return RestoreLine(kernel.NewUUID(), itemCode, quantity, false)
}

// RestoreLine rebuilds a persisted line. A cancelled line keeps its
// quantity for the audit trail.
func RestoreLine(id kernel.UUID, itemCode string, quantity kernel.Quantity, cancelled bool) (Line, error) {
	if err := errors.Join(id.Validate(), quantity.Validate()); err != nil {
		return Line{}, err
	}
	if itemCode == "" {
		return Line{}, errs.NewValueIsRequiredError("itemCode")
	}
	if quantity.IsZero() {
		return Line{}, errs.NewValueIsInvalidError("received quantity must be greater than 0")
	}

	status := lineTransitions.Start(Active)
	if cancelled {
		status = lineTransitions.Start(Cancelled)
	}
	return Line{id: id, itemCode: itemCode, quantity: quantity, status: status, isConstructed: true}, nil
}

// Validate ensures l was created through NewLine or RestoreLine.
func (l Line) Validate() error {
	if !l.isConstructed {
		return ErrLineIsNotConstructed
	}
	return nil
}

// ID returns the line identifier, unique across receipts.
func (l Line) ID() kernel.UUID {
	return l.id
}

// ItemCode returns the received item.
func (l Line) ItemCode() string {
	return l.itemCode
}

// Quantity returns the received quantity, also for a cancelled line.
func (l Line) Quantity() kernel.Quantity {
	return l.quantity
}

// IsCancelled reports whether the line no longer counts toward fulfillment.
func (l Line) IsCancelled() bool {
	return l.status.Current() == Cancelled
}
