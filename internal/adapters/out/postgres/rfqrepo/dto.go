// Package rfqrepo persists requests for quotation with their invited vendors.
package rfqrepo

import (
	"time"

	"procurement/internal/core/domain/model/rfq"
)

// RfqDTO is the header row of a request. SelectedVendorID is empty until
// the request is SELECTED.
type RfqDTO struct {
	Number           string      `gorm:"type:varchar(32);primaryKey"`
	RequesterID      string      `gorm:"type:varchar(64);not null;index"`
	Title            string      `gorm:"type:varchar(255);not null"`
	Status           int         `gorm:"type:smallint;not null"`
	SelectedVendorID string      `gorm:"type:varchar(64)"`
	Vendors          []VendorDTO `gorm:"foreignKey:RfqNo;references:Number;constraint:OnDelete:CASCADE"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName overrides the table name used by RfqDTO.
func (RfqDTO) TableName() string {
	return "rfqs"
}

// VendorDTO is one invited vendor, keyed by request and vendor.
type VendorDTO struct {
	RfqNo    string `gorm:"type:varchar(32);primaryKey"`
	VendorID string `gorm:"type:varchar(64);primaryKey"`
	Status   int    `gorm:"type:smallint;not null"`
	Selected bool   `gorm:"not null;default:false"`
}

// TableName overrides the gorm table name.
func (VendorDTO) TableName() string {
	return "rfq_vendors"
}

func fromDomain(r *rfq.Rfq) RfqDTO {
	vendors := make([]VendorDTO, 0, len(r.Vendors()))
	for _, v := range r.Vendors() {
		vendors = append(vendors, VendorDTO{
			RfqNo:    r.Number(),
			VendorID: v.VendorID(),
			Status:   int(v.Status()),
			Selected: v.IsSelected(),
		})
	}

	return RfqDTO{
		Number:           r.Number(),
		RequesterID:      r.RequesterID(),
		Title:            r.Title(),
		Status:           int(r.Status()),
		SelectedVendorID: r.SelectedVendorID(),
		Vendors:          vendors,
	}
}

func toDomain(dto RfqDTO) (*rfq.Rfq, error) {
	vendors := make([]rfq.Vendor, 0, len(dto.Vendors))
	for _, v := range dto.Vendors {
		vendor, err := rfq.RestoreVendor(v.VendorID, rfq.VendorStatus(v.Status), v.Selected)
		if err != nil {
			return nil, err
		}
		vendors = append(vendors, vendor)
	}

	return rfq.RestoreRfq(dto.Number, dto.RequesterID, dto.Title, rfq.Status(dto.Status), vendors, dto.SelectedVendorID)
}
