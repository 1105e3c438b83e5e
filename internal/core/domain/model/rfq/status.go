package rfq

import (
	"fmt"

	"procurement/internal/core/domain/model/statemachine"
	"procurement/internal/pkg/errs"
)

// Status is the header lifecycle state.
type Status int

const (
	// Unknown catches uninitialized values.
	Unknown Status = iota
	// Draft requests can still change their vendor list.
	Draft
	// Sent requests collect vendor responses.
	Sent
	// Closed requests accept no more responses; quotes stay sealed.
	Closed
	// Opened requests have their quotes unsealed for review.
	Opened
	// Selected requests are awarded to one vendor. Terminal.
	Selected
)

var statusNames = map[Status]string{
	Unknown:  "UNKNOWN",
	Draft:    "DRAFT",
	Sent:     "SENT",
	Closed:   "CLOSED",
	Opened:   "OPENED",
	Selected: "SELECTED",
}

// Transitions is the request graph. Editing the vendor list is only possible
// in DRAFT; SELECTED is terminal.
var Transitions = statemachine.NewTable("rfq", map[Status][]Status{
	Draft:    {Sent},
	Sent:     {Closed},
	Closed:   {Opened},
	Opened:   {Selected},
	Selected: nil,
})

// String returns the wire name.
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return statusNames[Unknown]
}

// ParseStatus maps a wire name back to a Status.
// Returns a ValueIsInvalidError for UNKNOWN and any other name.
func ParseStatus(name string) (Status, error) {
	for s, n := range statusNames {
		if n == name && s != Unknown {
			return s, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not an rfq status", name))
}

// VendorStatus is the state of one invited vendor.
type VendorStatus int

const (
	// VendorUnknown catches uninitialized values.
	VendorUnknown VendorStatus = iota
	// VendorDraft is the state of every vendor of a DRAFT request.
	VendorDraft
	// VendorSent is reached only by sending the request.
	VendorSent
	// Accepted vendors agreed to quote.
	Accepted
	// Declined vendors will not quote. Terminal.
	Declined
	// QuoteDraft vendors are preparing their quote.
	QuoteDraft
	// QuoteSubmitted vendors can be selected. Terminal.
	QuoteSubmitted
)

var vendorStatusNames = map[VendorStatus]string{
	VendorUnknown:  "UNKNOWN",
	VendorDraft:    "DRAFT",
	VendorSent:     "SENT",
	Accepted:       "ACCEPTED",
	Declined:       "DECLINED",
	QuoteDraft:     "QUOTE_DRAFT",
	QuoteSubmitted: "QUOTE_SUBMITTED",
}

// VendorTransitions. QUOTE_SUBMITTED and DECLINED are terminal.
var VendorTransitions = statemachine.NewTable("rfq vendor", map[VendorStatus][]VendorStatus{
	VendorDraft:    {VendorSent, Accepted, Declined},
	VendorSent:     {Accepted, Declined},
	Accepted:       {QuoteDraft},
	QuoteDraft:     {QuoteSubmitted},
	QuoteSubmitted: nil,
	Declined:       nil,
})

// String returns the wire name, for example QUOTE_SUBMITTED.
func (s VendorStatus) String() string {
	if name, ok := vendorStatusNames[s]; ok {
		return name
	}
	return vendorStatusNames[VendorUnknown]
}

// ParseVendorStatus maps a wire name back to a VendorStatus.
// Returns a ValueIsInvalidError for UNKNOWN and any other name.
func ParseVendorStatus(name string) (VendorStatus, error) {
	for s, n := range vendorStatusNames {
		if n == name && s != VendorUnknown {
			return s, nil
		}
	}
	return VendorUnknown, errs.NewValueIsInvalidErrorWithCause("vendor status",
		fmt.Errorf("%q is not an rfq vendor status", name))
}
