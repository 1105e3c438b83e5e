package rfqrepo

import (
	"context"
	"errors"

	"procurement/internal/adapters/out/postgres/pgerr"
	"procurement/internal/core/domain/model/rfq"
	"procurement/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormRfqRepository implements ports.RfqRepository using GORM. Vendors are
// loaded sorted by vendor ID.
//
// Example:
//
//	repo := rfqrepo.NewGormRfqRepository(tx)
//	request, err := repo.GetForUpdate(ctx, "RFQ202610140001")
//	if err != nil {
//	    return err
//	}
//	if err := request.Send(requester, shownVendors); err != nil {
//	    return err
//	}
//	return repo.Update(ctx, request)
type GormRfqRepository struct {
	db *gorm.DB
}

// NewGormRfqRepository creates a repository on db.
func NewGormRfqRepository(db *gorm.DB) *GormRfqRepository {
	return &GormRfqRepository{db: db}
}

// Add inserts the header and its vendors. A duplicate number is returned as
// a ValueIsInvalidError.
func (r *GormRfqRepository) Add(ctx context.Context, aggregate *rfq.Rfq) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if pgerr.IsUniqueViolation(err) {
			return errs.NewValueIsInvalidErrorWithCause("number", err)
		}
		return pgerr.Classify(err, "rfq "+dto.Number)
	}
	return nil
}

// Update writes the header and replaces the vendor rows, since the vendor
// list of a DRAFT request may change. It must run inside a transaction.
func (r *GormRfqRepository) Update(ctx context.Context, aggregate *rfq.Rfq) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	result := db.Model(&RfqDTO{}).Where("number = ?", dto.Number).Updates(map[string]any{
		"status":             dto.Status,
		"selected_vendor_id": dto.SelectedVendorID,
	})
	if result.Error != nil {
		return pgerr.Classify(result.Error, "rfq "+dto.Number)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("rfq", dto.Number)
	}

	if err := db.Where("rfq_no = ?", dto.Number).Delete(&VendorDTO{}).Error; err != nil {
		return pgerr.Classify(err, "vendors of rfq "+dto.Number)
	}
	if len(dto.Vendors) == 0 {
		return nil
	}
	return pgerr.Classify(db.Create(&dto.Vendors).Error, "vendors of rfq "+dto.Number)
}

// Get loads a request without locking it.
func (r *GormRfqRepository) Get(ctx context.Context, number string) (*rfq.Rfq, error) {
	return r.get(ctx, r.db, number)
}

// GetForUpdate loads a request and holds its row lock until the transaction
// ends. A lock wait over lock_timeout fails with TransientContentionError.
func (r *GormRfqRepository) GetForUpdate(ctx context.Context, number string) (*rfq.Rfq, error) {
	return r.get(ctx, r.db.Clauses(clause.Locking{Strength: "UPDATE"}), number)
}

func (r *GormRfqRepository) get(ctx context.Context, db *gorm.DB, number string) (*rfq.Rfq, error) {
	if number == "" {
		return nil, errs.NewValueIsRequiredError("number")
	}

	var dto RfqDTO
	err := db.WithContext(ctx).
		Preload("Vendors", func(tx *gorm.DB) *gorm.DB { return tx.Order("vendor_id") }).
		First(&dto, "number = ?", number).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("rfq", number)
		}
		return nil, pgerr.Classify(err, "rfq "+number)
	}

	return toDomain(dto)
}
