package rfq

import (
	"errors"
	"fmt"
	"slices"

	"procurement/internal/core/domain/model/docnumber"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/statemachine"
	"procurement/internal/pkg/errs"

	"github.com/samber/lo"
)

// ErrRfqIsNotConstructed is returned by Validate on a zero Rfq.
var ErrRfqIsNotConstructed = errors.New("Rfq must be created via NewRfq or RestoreRfq constructor")

// Operations refused outside the status that allows them.
const (
	OperationUpdateVendors = statemachine.Operation("update vendors")
	OperationRespond       = statemachine.Operation("respond")
	OperationSelect        = statemachine.Operation("select")
)

// Rfq is a solicitation of quotes from one or more vendors.
//
// Lifecycle: DRAFT -> SENT -> CLOSED -> OPENED -> SELECTED. Each invited
// vendor moves through its own sub-state while the request is SENT.
//
// Business rules:
//   - only the requester, or the system, moves the request
//   - the vendor list can be edited only in DRAFT
//   - sending requires the caller to confirm the vendor list it saw
//   - only a vendor with a submitted quote can be selected
//
// Example usage:
//
//	request, err := NewRfq(number, kernel.Actor("buyer-1"), "Steel bolts Q4", []string{"V1", "V2"})
//	if err != nil {
//	    // Handle construction error
//	}
//	if err := request.Send(kernel.Actor("buyer-1"), request.VendorIDs()); err != nil {
//	    // the list changed under the caller
//	}
type Rfq struct {
	// number is the formatted RFQ document number
	number string
	// requesterID owns the request and drives its lifecycle
	requesterID string
	// title is free text shown to vendors
	title string
	// status is changed only through Transitions
	status statemachine.Guarded[Status]
	// vendors are the invited vendors with their response state
	vendors []Vendor
	// selectedVendorID is set by Select and empty before
	selectedVendorID string

	isConstructed bool
}

// NewRfq creates a DRAFT request inviting vendorIDs. Duplicates are dropped.
func NewRfq(number docnumber.Number, requester kernel.Actor, title string, vendorIDs []string) (*Rfq, error) {
	if err := number.ValidateType(docnumber.RequestForQuotation); err != nil {
		return nil, err
	}
	if requester == "" {
		return nil, errs.NewValueIsRequiredError("requesterID")
	}
	if title == "" {
		return nil, errs.NewValueIsRequiredError("title")
	}
	vendors, err := draftVendors(vendorIDs)
	if err != nil {
		return nil, err
	}

	return &Rfq{
		number:        number.String(),
		requesterID:   requester.String(),
		title:         title,
		status:        Transitions.Start(Draft),
		vendors:       vendors,
		isConstructed: true,
	}, nil
}

// RestoreRfq rebuilds a persisted request. selectedVendorID is empty unless
// the request is SELECTED.
func RestoreRfq(number, requesterID, title string, status Status, vendors []Vendor, selectedVendorID string) (*Rfq, error) {
	if number == "" {
		return nil, errs.NewValueIsRequiredError("number")
	}
	if requesterID == "" {
		return nil, errs.NewValueIsRequiredError("requesterID")
	}
	guarded, err := Transitions.Restore(status)
	if err != nil {
		return nil, err
	}

	return &Rfq{
		number:           number,
		requesterID:      requesterID,
		title:            title,
		status:           guarded,
		vendors:          slices.Clone(vendors),
		selectedVendorID: selectedVendorID,
		isConstructed:    true,
	}, nil
}

func draftVendors(vendorIDs []string) ([]Vendor, error) {
	if slices.Contains(vendorIDs, "") {
		return nil, errs.NewValueIsInvalidError("vendorIDs must not contain empty ids")
	}
	return lo.Map(lo.Uniq(vendorIDs), func(id string, _ int) Vendor { return newVendor(id) }), nil
}

// Validate ensures r was created through NewRfq or RestoreRfq.
func (r *Rfq) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRfqIsNotConstructed
	}
	return nil
}

// Number returns the formatted request number.
func (r *Rfq) Number() string {
	return r.number
}

// RequesterID returns the owner of the request.
func (r *Rfq) RequesterID() string {
	return r.requesterID
}

// Title returns the free text title.
func (r *Rfq) Title() string {
	return r.title
}

// Status returns the current lifecycle state.
func (r *Rfq) Status() Status {
	return r.status.Current()
}

// Vendors returns a copy of the invited vendors in invitation order.
func (r *Rfq) Vendors() []Vendor {
	return slices.Clone(r.vendors)
}

// VendorIDs returns the invited vendors in ascending order.
func (r *Rfq) VendorIDs() []string {
	ids := lo.Map(r.vendors, func(v Vendor, _ int) string { return v.vendorID })
	slices.Sort(ids)
	return ids
}

// Vendor looks up one invited vendor.
func (r *Rfq) Vendor(vendorID string) (Vendor, bool) {
	return lo.Find(r.vendors, func(v Vendor) bool { return v.vendorID == vendorID })
}

// SelectedVendorID is empty until a vendor is selected.
func (r *Rfq) SelectedVendorID() string {
	return r.selectedVendorID
}

func (r *Rfq) checkRequester(actor kernel.Actor) error {
	if !actor.May(r.requesterID) {
		return errs.NewNotOwnerError("rfq", r.number, actor.String())
	}
	return nil
}

// ReplaceVendors sets the invited vendors. Allowed only while DRAFT.
func (r *Rfq) ReplaceVendors(actor kernel.Actor, vendorIDs []string) error {
	if err := r.checkRequester(actor); err != nil {
		return err
	}
	if r.status.Current() != Draft {
		return r.status.Refuse(r.number, OperationUpdateVendors)
	}
	vendors, err := draftVendors(vendorIDs)
	if err != nil {
		return err
	}
	r.vendors = vendors
	return nil
}

// Send moves the request to SENT and every DRAFT vendor to SENT with it.
//
// Parameters:
//   - actor: must be the requester or the system
//   - believedVendorIDs: the vendor list the caller showed to the user; it
//    must equal the persisted list as a set
//
// Returns StaleStateError when the lists differ, ValueIsRequiredError when no
// vendor is invited, and IllegalTransitionError outside DRAFT. On error
// nothing changes.
func (r *Rfq) Send(actor kernel.Actor, believedVendorIDs []string) error {
	if err := r.checkRequester(actor); err != nil {
		return err
	}
	if err := r.status.Check(r.number, Sent); err != nil {
		return err
	}
	if len(r.vendors) == 0 {
		return errs.NewValueIsRequiredError("vendors")
	}

	missing, unexpected := lo.Difference(r.VendorIDs(), lo.Uniq(believedVendorIDs))
	if len(missing) > 0 || len(unexpected) > 0 {
		return errs.NewStaleStateErrorWithCause("rfq", r.number,
			fmt.Errorf("vendor list changed: missing %v, unexpected %v", missing, unexpected))
	}

	vendors := slices.Clone(r.vendors)
	for i := range vendors {
		if vendors[i].status.Current() != VendorDraft {
			continue
		}
		if err := vendors[i].status.Transition(vendors[i].vendorID, VendorSent); err != nil {
			return err
		}
	}
	if err := r.status.Transition(r.number, Sent); err != nil {
		return err
	}
	r.vendors = vendors
	return nil
}

// Close stops accepting responses.
func (r *Rfq) Close(actor kernel.Actor) error {
	if err := r.checkRequester(actor); err != nil {
		return err
	}
	return r.status.Transition(r.number, Closed)
}

// Open unseals the submitted quotes.
func (r *Rfq) Open(actor kernel.Actor) error {
	if err := r.checkRequester(actor); err != nil {
		return err
	}
	return r.status.Transition(r.number, Opened)
}

// Select awards the request to vendorID and moves it to SELECTED.
//
// The request must be OPENED and the vendor's quote must be submitted;
// selecting any other vendor fails with IllegalTransitionError. An unknown
// vendor fails with ObjectNotFoundError.
func (r *Rfq) Select(actor kernel.Actor, vendorID string) error {
	if err := r.checkRequester(actor); err != nil {
		return err
	}
	if err := r.status.Check(r.number, Selected); err != nil {
		return err
	}
	i := slices.IndexFunc(r.vendors, func(v Vendor) bool { return v.vendorID == vendorID })
	if i < 0 {
		return errs.NewObjectNotFoundError("vendorID", vendorID)
	}
	if r.vendors[i].status.Current() != QuoteSubmitted {
		return r.vendors[i].status.Refuse(vendorID, OperationSelect)
	}

	if err := r.status.Transition(r.number, Selected); err != nil {
		return err
	}
	r.vendors[i].selected = true
	r.selectedVendorID = vendorID
	return nil
}

// Respond moves the sub-state of vendorID on behalf of that vendor.
//
// Business rules:
//   - actor must be the vendor itself or the system
//   - responses are accepted only while the request is SENT
//   - the SENT sub-state is reached only by sending the request
//   - QUOTE_SUBMITTED and DECLINED are terminal
func (r *Rfq) Respond(actor kernel.Actor, vendorID string, next VendorStatus) error {
	if !actor.May(vendorID) {
		return errs.NewNotOwnerError("rfq vendor", vendorID, actor.String())
	}
	i := slices.IndexFunc(r.vendors, func(v Vendor) bool { return v.vendorID == vendorID })
	if i < 0 {
		return errs.NewObjectNotFoundError("vendorID", vendorID)
	}
	if r.status.Current() != Sent {
		return r.status.Refuse(r.number, OperationRespond)
	}
	if next == VendorSent {
		return r.vendors[i].status.Refuse(vendorID, OperationRespond)
	}
	return r.vendors[i].status.Transition(vendorID, next)
}
