package rfq

import (
	"procurement/internal/core/domain/model/statemachine"
	"procurement/internal/pkg/errs"
)

// Vendor is one invited vendor and its response state.
type Vendor struct {
	vendorID string
	status   statemachine.Guarded[VendorStatus]
	selected bool
}

func newVendor(vendorID string) Vendor {
	return Vendor{vendorID: vendorID, status: VendorTransitions.Start(VendorDraft)}
}

// RestoreVendor rebuilds a persisted vendor entry.
func RestoreVendor(vendorID string, status VendorStatus, selected bool) (Vendor, error) {
	if vendorID == "" {
		return Vendor{}, errs.NewValueIsRequiredError("vendorID")
	}
	guarded, err := VendorTransitions.Restore(status)
	if err != nil {
		return Vendor{}, err
	}
	return Vendor{vendorID: vendorID, status: guarded, selected: selected}, nil
}

// VendorID returns the vendor identifier.
func (v Vendor) VendorID() string {
	return v.vendorID
}

// Status returns the response state of the vendor.
func (v Vendor) Status() VendorStatus {
	return v.status.Current()
}

// IsSelected reports whether the vendor won the request.
func (v Vendor) IsSelected() bool {
	return v.selected
}
