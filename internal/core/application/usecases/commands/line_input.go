package commands

import (
	"fmt"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// LineInput is one item and quantity as submitted by a user.
// Quantity must be positive; it is checked by the command constructors.
type LineInput struct {
	ItemCode string
	Quantity decimal.Decimal
}

func (l LineInput) quantity() (kernel.Quantity, error) {
	if l.ItemCode == "" {
		return kernel.Quantity{}, errs.NewValueIsRequiredError("itemCode")
	}
	q, err := kernel.NewPositiveQuantity(l.Quantity)
	if err != nil {
		return kernel.Quantity{}, fmt.Errorf("item %s: %w", l.ItemCode, err)
	}
	return q, nil
}

func copyLines(lines []LineInput) ([]LineInput, error) {
	if len(lines) == 0 {
		return nil, errs.NewValueIsRequiredError("lines")
	}
	for _, l := range lines {
		if _, err := l.quantity(); err != nil {
			return nil, err
		}
	}
	return append([]LineInput(nil), lines...), nil
}
