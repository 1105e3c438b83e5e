package kernel

import (
	"fmt"

	"procurement/internal/pkg/errs"
	"procurement/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrQuantityIsNotConstructed is returned when a Quantity was not created by
// one of its constructors.
var ErrQuantityIsNotConstructed = errs.NewValueIsRequiredError(
	"quantity must be created via NewQuantity, QuantityFromInt or ZeroQuantity")

// Quantity is an amount of goods in the item's unit of measure. It is backed
// by a decimal so fractional units (kg, m) add up exactly.
//
// A Quantity is never negative. Whether zero is acceptable depends on the
// caller: ordered and received line quantities must be positive, accumulated
// totals start at zero.
type Quantity struct { //nolint:recvcheck //using for validation
	value decimal.Decimal
	guard guard.ConstructorGuard
}

// NewQuantity validates that value is not negative.
func NewQuantity(value decimal.Decimal) (Quantity, error) {
	if value.IsNegative() {
		return Quantity{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity", fmt.Errorf("%s is negative", value.String()))
	}
	return Quantity{value: value, guard: guard.NewConstructorGuard()}, nil
}

// NewPositiveQuantity validates that value is greater than zero.
func NewPositiveQuantity(value decimal.Decimal) (Quantity, error) {
	if !value.IsPositive() {
		return Quantity{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity", fmt.Errorf("%s is not greater than 0", value.String()))
	}
	return Quantity{value: value, guard: guard.NewConstructorGuard()}, nil
}

// QuantityFromInt is a convenience for whole units.
func QuantityFromInt(value int64) (Quantity, error) {
	return NewQuantity(decimal.NewFromInt(value))
}

// ZeroQuantity is the starting point for accumulated totals.
func ZeroQuantity() Quantity {
	return Quantity{value: decimal.Zero, guard: guard.NewConstructorGuard()}
}

// Validate ensures q was created through NewQuantity, QuantityFromInt or
// ZeroQuantity.
// Returns ErrQuantityIsNotConstructed if validation fails.
func (q Quantity) Validate() error {
	return q.guard.Validate(ErrQuantityIsNotConstructed)
}

// Decimal returns the exact value for persistence and responses.
func (q Quantity) Decimal() decimal.Decimal {
	return q.value
}

// IsZero reports whether q is numerically zero.
func (q Quantity) IsZero() bool {
	return q.value.IsZero()
}

// Add returns q + other. The sum of two non-negative quantities is never
// negative, so no error path exists.
func (q Quantity) Add(other Quantity) Quantity {
	return Quantity{value: q.value.Add(other.value), guard: guard.NewConstructorGuard()}
}

// GreaterThanOrEqual reports whether q >= other.
func (q Quantity) GreaterThanOrEqual(other Quantity) bool {
	return q.value.GreaterThanOrEqual(other.value)
}

// Equal compares numerically, so 10 and 10.000 are equal.
func (q Quantity) Equal(other Quantity) bool {
	return q.value.Equal(other.value)
}

// String formats the value without trailing zeros, so 12.500 prints as
// 12.5.
func (q Quantity) String() string {
	return q.value.String()
}
