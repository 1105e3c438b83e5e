package docnumber

import (
	"fmt"
	"time"

	"procurement/internal/pkg/errs"
)

// DocType identifies a numbered document type.
type DocType string

// Numbered document types. Each has exactly one Rule.
const (
	// PurchaseRequest numbers look like PR202610140001.
	PurchaseRequest DocType = "PURCHASE_REQUEST"
	// RequestForQuotation numbers look like RFQ202610140001.
	RequestForQuotation DocType = "RFQ"
	// PurchaseOrder numbers look like PO202610140001.
	PurchaseOrder DocType = "PURCHASE_ORDER"
	// GoodsReceipt numbers look like GR202610140001.
	GoodsReceipt DocType = "GOODS_RECEIPT"
	// Notice numbers restart every year and look like NT202600001.
	Notice DocType = "NOTICE"
	// Vendor numbers never restart and look like V000001.
	Vendor DocType = "VENDOR"
)

// ResetPolicy is the calendar granularity at which a sequence restarts from 1.
type ResetPolicy int

const (
	// ResetDaily keys the counter by calendar day.
	ResetDaily ResetPolicy = iota + 1
	// ResetYearly keys the counter by January 1 of the year.
	ResetYearly
	// ResetNone keeps one counter forever, keyed by NoResetKeyDate.
	ResetNone
)

// NoResetKeyDate is the key date of every sequence with ResetNone.
var NoResetKeyDate = time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)

// Rule holds the formatting rules of one document type.
type Rule struct {
	// Prefix is the fixed leading text of every number.
	Prefix string
	// Reset decides which counter a business date draws from.
	Reset ResetPolicy
	// DateLayout is a time layout for the date segment, empty when the
	// number carries none.
	DateLayout string
	// Width is the zero-padded width of the sequence segment. Larger
	// values are printed in full.
	Width int
}

var rules = map[DocType]Rule{
	PurchaseRequest:     {Prefix: "PR", Reset: ResetDaily, DateLayout: "20060102", Width: 4},
	RequestForQuotation: {Prefix: "RFQ", Reset: ResetDaily, DateLayout: "20060102", Width: 4},
	PurchaseOrder:       {Prefix: "PO", Reset: ResetDaily, DateLayout: "20060102", Width: 4},
	GoodsReceipt:        {Prefix: "GR", Reset: ResetDaily, DateLayout: "20060102", Width: 4},
	Notice:              {Prefix: "NT", Reset: ResetYearly, DateLayout: "2006", Width: 5},
	Vendor:              {Prefix: "V", Reset: ResetNone, Width: 6},
}

// Validate rejects empty and unknown document types.
func (t DocType) Validate() error {
	if t == "" {
		return errs.NewValueIsRequiredError("docType")
	}
	if _, ok := rules[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("docType", fmt.Errorf("%q is not a known document type", string(t)))
	}
	return nil
}

// Rule returns the formatting rule of t.
func (t DocType) Rule() (Rule, error) {
	if err := t.Validate(); err != nil {
		return Rule{}, err
	}
	return rules[t], nil
}

// String returns the type name, for example GOODS_RECEIPT.
func (t DocType) String() string {
	return string(t)
}

// KeyDate maps a business date to the date its counter is keyed by. Only the
// calendar day of businessDate in its own location is used.
func (p ResetPolicy) KeyDate(businessDate time.Time) time.Time {
	y, m, d := businessDate.Date()
	switch p {
	case ResetDaily:
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	case ResetYearly:
		return time.Date(y, time.January, 1, 0, 0, 0, 0, time.UTC)
	default:
		return NoResetKeyDate
	}
}

// Format renders a sequence number according to the rule.
//
// Example:
//
//	rule, _ := docnumber.PurchaseOrder.Rule()
//	rule.Format(time.Date(2026, 10, 14, 0, 0, 0, 0, time.UTC), 7) // PO202610140007
func (r Rule) Format(businessDate time.Time, seqNo int64) string {
	date := ""
	if r.DateLayout != "" {
		date = businessDate.Format(r.DateLayout)
	}
	return fmt.Sprintf("%s%s%0*d", r.Prefix, date, r.Width, seqNo)
}

// CounterKey computes the counter key of (t, businessDate): the day for
// daily types, January 1 for yearly types and NoResetKeyDate otherwise.
//
// Returns a ValueIsInvalidError for an unknown type and a
// ValueIsRequiredError for a zero business date.
//
// Example:
//
//	key, _ := docnumber.CounterKey(docnumber.Notice, time.Date(2026, 10, 14, 0, 0, 0, 0, time.UTC))
//	// key is 2026-01-01
func CounterKey(t DocType, businessDate time.Time) (time.Time, error) {
	rule, err := t.Rule()
	if err != nil {
		return time.Time{}, err
	}
	if businessDate.IsZero() {
		return time.Time{}, errs.NewValueIsRequiredError("businessDate")
	}
	return rule.Reset.KeyDate(businessDate), nil
}
