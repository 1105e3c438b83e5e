package purchaseorderrepo

import (
	"context"
	"errors"

	"procurement/internal/adapters/out/postgres/pgerr"
	"procurement/internal/core/domain/model/purchaseorder"
	"procurement/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormPurchaseOrderRepository implements ports.PurchaseOrderRepository using
// GORM. It runs on whatever handle it is given, normally the transaction of a
// unit of work.
type GormPurchaseOrderRepository struct {
	db *gorm.DB
}

// NewGormPurchaseOrderRepository creates a repository on db.
func NewGormPurchaseOrderRepository(db *gorm.DB) *GormPurchaseOrderRepository {
	return &GormPurchaseOrderRepository{db: db}
}

// Add inserts the header and its lines.
func (r *GormPurchaseOrderRepository) Add(ctx context.Context, aggregate *purchaseorder.PurchaseOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if pgerr.IsUniqueViolation(err) {
			return errs.NewValueIsInvalidErrorWithCause("number", err)
		}
		return err
	}
	return nil
}

// Update writes status, fulfillment and the received quantity of every line.
// Ordered quantities and the set of lines never change after creation.
func (r *GormPurchaseOrderRepository) Update(ctx context.Context, aggregate *purchaseorder.PurchaseOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	result := db.Model(&PurchaseOrderDTO{}).Where("number = ?", dto.Number).Updates(map[string]any{
		"status":      dto.Status,
		"fulfillment": dto.Fulfillment,
	})
	if result.Error != nil {
		return pgerr.Classify(result.Error, "purchase order "+dto.Number)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("purchase order", dto.Number)
	}

	for _, line := range dto.Lines {
		err := db.Model(&LineDTO{}).
			Where("purchase_order_no = ? AND item_code = ?", line.PurchaseOrderNo, line.ItemCode).
			Update("received_quantity", line.ReceivedQuantity).Error
		if err != nil {
			return pgerr.Classify(err, "purchase order "+dto.Number)
		}
	}
	return nil
}

// Get reads an order without locking it.
func (r *GormPurchaseOrderRepository) Get(ctx context.Context, number string) (*purchaseorder.PurchaseOrder, error) {
	return r.get(ctx, r.db, number)
}

// GetForUpdate reads an order with SELECT ... FOR UPDATE on the header row.
// The wait is bounded by the lock_timeout of the surrounding transaction.
func (r *GormPurchaseOrderRepository) GetForUpdate(ctx context.Context, number string) (*purchaseorder.PurchaseOrder, error) {
	return r.get(ctx, r.db.Clauses(clause.Locking{Strength: "UPDATE"}), number)
}

func (r *GormPurchaseOrderRepository) get(ctx context.Context, db *gorm.DB, number string) (*purchaseorder.PurchaseOrder, error) {
	if number == "" {
		return nil, errs.NewValueIsRequiredError("number")
	}

	var dto PurchaseOrderDTO
	err := db.WithContext(ctx).
		Preload("Lines", func(tx *gorm.DB) *gorm.DB { return tx.Order("position") }).
		First(&dto, "number = ?", number).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("purchase order", number)
		}
		return nil, pgerr.Classify(err, "purchase order "+number)
	}

	return toDomain(dto)
}
