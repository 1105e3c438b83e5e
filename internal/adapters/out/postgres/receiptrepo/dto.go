// Package receiptrepo persists goods receipts. Rows are inserted once and only
// their status columns change afterwards.
package receiptrepo

import (
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/receipt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReceiptDTO is the header row of a goods receipt.
type ReceiptDTO struct {
	Number          string    `gorm:"type:varchar(32);primaryKey"`
	PurchaseOrderNo string    `gorm:"type:varchar(32);not null;index"`
	PostedBy        string    `gorm:"type:varchar(64);not null"`
	Status          int       `gorm:"type:smallint;not null"`
	Lines           []LineDTO `gorm:"foreignKey:ReceiptNo;references:Number;constraint:OnDelete:CASCADE"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName overrides the table name used by ReceiptDTO.
func (ReceiptDTO) TableName() string {
	return "goods_receipts"
}

// LineDTO is one received line. Position keeps the order of entry; cancelled
// lines stay in the table.
type LineDTO struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ReceiptNo string          `gorm:"type:varchar(32);not null;index"`
	Position  int             `gorm:"type:int;not null"`
	ItemCode  string          `gorm:"type:varchar(64);not null"`
	Quantity  decimal.Decimal `gorm:"type:numeric(20,6);not null"`
	Cancelled bool            `gorm:"not null;default:false"`
}

// TableName overrides the gorm table name.
func (LineDTO) TableName() string {
	return "goods_receipt_lines"
}

func fromDomain(r *receipt.Receipt) ReceiptDTO {
	lines := make([]LineDTO, 0, len(r.Lines()))
	for i, l := range r.Lines() {
		lines = append(lines, LineDTO{
			ID:        l.ID().Bytes(),
			ReceiptNo: r.Number(),
			Position:  i,
			ItemCode:  l.ItemCode(),
			Quantity:  l.Quantity().Decimal(),
			Cancelled: l.IsCancelled(),
		})
	}

	return ReceiptDTO{
		Number:          r.Number(),
		PurchaseOrderNo: r.PurchaseOrderNo(),
		PostedBy:        r.PostedBy(),
		Status:          int(r.Status()),
		Lines:           lines,
	}
}

func toDomain(dto ReceiptDTO) (*receipt.Receipt, error) {
	lines := make([]receipt.Line, 0, len(dto.Lines))
	for _, l := range dto.Lines {
		id, err := kernel.UUIDFromBytes(l.ID[:])
		if err != nil {
			return nil, err
		}
		qty, err := kernel.NewQuantity(l.Quantity)
		if err != nil {
			return nil, err
		}
		line, err := receipt.RestoreLine(id, l.ItemCode, qty, l.Cancelled)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	return receipt.RestoreReceipt(dto.Number, dto.PurchaseOrderNo, dto.PostedBy, receipt.Status(dto.Status), lines)
}
