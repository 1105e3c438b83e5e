// Package purchaseorderrepo persists purchase order aggregates: one header row
// per order and one row per ordered item.
package purchaseorderrepo

import (
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/purchaseorder"

	"github.com/shopspring/decimal"
)

// PurchaseOrderDTO is the header row. Its row lock is the serialization point
// of every operation that changes the order or its receipts.
type PurchaseOrderDTO struct {
	Number       string    `gorm:"type:varchar(32);primaryKey"`
	ControllerID string    `gorm:"type:varchar(64);not null;index"`
	VendorID     string    `gorm:"type:varchar(64);not null"`
	Status       int       `gorm:"type:smallint;not null"`
	Fulfillment  int       `gorm:"type:smallint;not null"`
	Lines        []LineDTO `gorm:"foreignKey:PurchaseOrderNo;references:Number;constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName overrides the gorm table name.
func (PurchaseOrderDTO) TableName() string {
	return "purchase_orders"
}

// LineDTO holds the ordered and the accumulated received quantity of one item.
type LineDTO struct {
	PurchaseOrderNo  string          `gorm:"type:varchar(32);primaryKey"`
	ItemCode         string          `gorm:"type:varchar(64);primaryKey"`
	Position         int             `gorm:"type:int;not null"`
	OrderedQuantity  decimal.Decimal `gorm:"type:numeric(20,6);not null"`
	ReceivedQuantity decimal.Decimal `gorm:"type:numeric(20,6);not null"`
}

// TableName overrides the gorm table name.
func (LineDTO) TableName() string {
	return "purchase_order_lines"
}

func fromDomain(order *purchaseorder.PurchaseOrder) PurchaseOrderDTO {
	lines := make([]LineDTO, 0, len(order.Lines()))
	for i, l := range order.Lines() {
		lines = append(lines, LineDTO{
			PurchaseOrderNo:  order.Number(),
			ItemCode:         l.ItemCode(),
			Position:         i,
			OrderedQuantity:  l.Ordered().Decimal(),
			ReceivedQuantity: l.Received().Decimal(),
		})
	}

	return PurchaseOrderDTO{
		Number:       order.Number(),
		ControllerID: order.ControllerID(),
		VendorID:     order.VendorID(),
		Status:       int(order.Status()),
		Fulfillment:  int(order.Fulfillment()),
		Lines:        lines,
	}
}

func toDomain(dto PurchaseOrderDTO) (*purchaseorder.PurchaseOrder, error) {
	lines := make([]purchaseorder.Line, 0, len(dto.Lines))
	for _, l := range dto.Lines {
		line, err := lineToDomain(l)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	return purchaseorder.RestorePurchaseOrder(
		dto.Number,
		dto.ControllerID,
		dto.VendorID,
		purchaseorder.Status(dto.Status),
		purchaseorder.Fulfillment(dto.Fulfillment),
		lines,
	)
}

func lineToDomain(dto LineDTO) (purchaseorder.Line, error) {
	ordered, err := kernel.NewQuantity(dto.OrderedQuantity)
	if err != nil {
		return purchaseorder.Line{}, err
	}
	received, err := kernel.NewQuantity(dto.ReceivedQuantity)
	if err != nil {
		return purchaseorder.Line{}, err
	}
	return purchaseorder.RestoreLine(dto.ItemCode, ordered, received)
}
