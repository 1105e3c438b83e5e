package receiptrepo

import (
	"context"
	"errors"

	"procurement/internal/adapters/out/postgres/pgerr"
	"procurement/internal/core/domain/model/receipt"
	"procurement/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormReceiptRepository stores goods receipts and their lines in
// goods_receipts and goods_receipt_lines. Lock contention is reported as
// errs.ErrTransientContention; every other database error is returned as is.
//
// Example:
//
//	repo := receiptrepo.NewGormReceiptRepository(tx)
//	if err := repo.Add(ctx, gr); err != nil {
//		return err
//	}
//	receipts, err := repo.GetAllByPurchaseOrder(ctx, gr.PurchaseOrderNo())
type GormReceiptRepository struct {
	db *gorm.DB
}

// NewGormReceiptRepository creates a repository on db, which is usually the
// transaction of a unit of work.
func NewGormReceiptRepository(db *gorm.DB) *GormReceiptRepository {
	return &GormReceiptRepository{db: db}
}

// Add inserts a new receipt with all its lines. A number that is already
// taken is reported as an invalid value.
func (r *GormReceiptRepository) Add(ctx context.Context, aggregate *receipt.Receipt) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if pgerr.IsUniqueViolation(err) {
			return errs.NewValueIsInvalidErrorWithCause("number", err)
		}
		return pgerr.Classify(err, "goods receipt "+dto.Number)
	}
	return nil
}

// Update writes the header status and the cancelled flag of every line.
func (r *GormReceiptRepository) Update(ctx context.Context, aggregate *receipt.Receipt) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	result := db.Model(&ReceiptDTO{}).Where("number = ?", dto.Number).Update("status", dto.Status)
	if result.Error != nil {
		return pgerr.Classify(result.Error, "goods receipt "+dto.Number)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("goods receipt", dto.Number)
	}

	for _, line := range dto.Lines {
		err := db.Model(&LineDTO{}).
			Where("id = ? AND receipt_no = ?", line.ID, dto.Number).
			Update("cancelled", line.Cancelled).Error
		if err != nil {
			return pgerr.Classify(err, "goods receipt "+dto.Number)
		}
	}
	return nil
}

// Get loads the receipt numbered number with its lines in posting order.
func (r *GormReceiptRepository) Get(ctx context.Context, number string) (*receipt.Receipt, error) {
	if number == "" {
		return nil, errs.NewValueIsRequiredError("number")
	}

	var dto ReceiptDTO
	err := r.db.WithContext(ctx).
		Preload("Lines", orderByPosition).
		First(&dto, "number = ?", number).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("goods receipt", number)
		}
		return nil, pgerr.Classify(err, "goods receipt "+number)
	}

	return toDomain(dto)
}

// GetAllByPurchaseOrder returns the receipts of poNo in posting order. The
// caller is expected to hold the purchase order row lock, which keeps the set
// stable until its transaction ends.
func (r *GormReceiptRepository) GetAllByPurchaseOrder(ctx context.Context, poNo string) ([]*receipt.Receipt, error) {
	if poNo == "" {
		return nil, errs.NewValueIsRequiredError("poNo")
	}

	var dtos []ReceiptDTO
	err := r.db.WithContext(ctx).
		Preload("Lines", orderByPosition).
		Where("purchase_order_no = ?", poNo).
		Order("created_at, number").
		Find(&dtos).Error
	if err != nil {
		return nil, pgerr.Classify(err, "goods receipts of "+poNo)
	}

	receipts := make([]*receipt.Receipt, 0, len(dtos))
	for _, dto := range dtos {
		gr, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		receipts = append(receipts, gr)
	}
	return receipts, nil
}

func orderByPosition(tx *gorm.DB) *gorm.DB {
	return tx.Order("position")
}
