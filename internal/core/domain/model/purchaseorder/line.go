package purchaseorder

import (
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/errs"
	"procurement/internal/pkg/guard"
)

// ErrLineIsNotConstructed is returned by Validate on a zero Line.
var ErrLineIsNotConstructed = errors.New("Line must be created via NewLine or RestoreLine constructor")

// Line is the ordered quantity of one item, plus the quantity received so
// far as last computed by the reconciler.
type Line struct { //nolint:recvcheck //using for validation
	itemCode string
	ordered  kernel.Quantity
	received kernel.Quantity
	guard    guard.ConstructorGuard
}

// NewLine creates a line with nothing received yet. ordered must be positive.
func NewLine(itemCode string, ordered kernel.Quantity) (Line, error) {
	return RestoreLine(itemCode, ordered, kernel.ZeroQuantity())
}

// RestoreLine rebuilds a persisted line.
func RestoreLine(itemCode string, ordered, received kernel.Quantity) (Line, error) {
	if itemCode == "" {
		return Line{}, errs.NewValueIsRequiredError("itemCode")
	}
	if err := errors.Join(ordered.Validate(), received.Validate()); err != nil {
		return Line{}, err
	}
	if ordered.IsZero() {
		return Line{}, errs.NewValueIsInvalidError("ordered quantity must be greater than 0")
	}
	return Line{itemCode: itemCode, ordered: ordered, received: received, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures l was created through NewLine or RestoreLine.
func (l Line) Validate() error {
	return l.guard.Validate(ErrLineIsNotConstructed)
}

// ItemCode returns the ordered item. It is unique within an order.
func (l Line) ItemCode() string {
	return l.itemCode
}

// Ordered returns the quantity ordered.
func (l Line) Ordered() kernel.Quantity {
	return l.ordered
}

// Received returns the active received quantity as of the last
// reconciliation. It may exceed Ordered on over-delivery.
func (l Line) Received() kernel.Quantity {
	return l.received
}

// IsFulfilled reports whether received >= ordered.
func (l Line) IsFulfilled() bool {
	return l.received.GreaterThanOrEqual(l.ordered)
}
