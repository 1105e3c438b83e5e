package docnumber

import (
	"errors"
	"fmt"
	"time"

	"procurement/internal/pkg/errs"
	"procurement/internal/pkg/guard"
)

// ErrNumberIsNotConstructed is returned by Validate on a zero Number.
var ErrNumberIsNotConstructed = errors.New("Number must be created via NewNumber constructor")

// Number is an allocated document number. It is an immutable value.
//
// Example:
//
//	n, err := docnumber.NewNumber(docnumber.PurchaseOrder, businessDate, 7)
//	n.String() // PO202610140007
type Number struct { //nolint:recvcheck //using for validation
	docType   DocType
	formatted string
	seqNo     int64
	keyDate   time.Time
	guard     guard.ConstructorGuard
}

// NewNumber formats seqNo for docType on businessDate.
func NewNumber(docType DocType, businessDate time.Time, seqNo int64) (Number, error) {
	keyDate, err := CounterKey(docType, businessDate)
	if err != nil {
		return Number{}, err
	}
	if seqNo <= 0 {
		return Number{}, errs.NewValueIsInvalidErrorWithCause("seqNo", fmt.Errorf("%d is not greater than 0", seqNo))
	}

	rule := rules[docType]
	return Number{
		docType:   docType,
		formatted: rule.Format(businessDate, seqNo),
		seqNo:     seqNo,
		keyDate:   keyDate,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures n was created through NewNumber.
func (n Number) Validate() error {
	return n.guard.Validate(ErrNumberIsNotConstructed)
}

// ValidateType checks that n was constructed and belongs to want.
func (n Number) ValidateType(want DocType) error {
	if err := n.Validate(); err != nil {
		return err
	}
	if n.docType != want {
		return errs.NewValueIsInvalidErrorWithCause(
			"document number", fmt.Errorf("%s is a %s number, not %s", n.formatted, n.docType, want))
	}
	return nil
}

// DocType returns the kind of document the number was allocated for.
func (n Number) DocType() DocType {
	return n.docType
}

// SeqNo returns the position of the number within its counter period,
// starting at 1.
func (n Number) SeqNo() int64 {
	return n.seqNo
}

// KeyDate returns the date the counter of this number is keyed by. Numbers
// sharing DocType and KeyDate come from the same sequence.
func (n Number) KeyDate() time.Time {
	return n.keyDate
}

// String returns the formatted number, for example PO202610140007.
func (n Number) String() string {
	return n.formatted
}
