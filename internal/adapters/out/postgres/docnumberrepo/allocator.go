// Package docnumberrepo allocates document numbers from per-type counters
// stored in PostgreSQL.
package docnumberrepo

import (
	"context"
	"fmt"
	"time"

	"procurement/internal/adapters/out/postgres/pgerr"
	"procurement/internal/core/domain/model/docnumber"

	"gorm.io/gorm"
)

// CounterDTO is one sequence: the last value handed out for a document type
// within one reset period. Rows are created on first use and never deleted.
type CounterDTO struct {
	DocType   string    `gorm:"type:varchar(32);primaryKey"`
	KeyDate   time.Time `gorm:"type:date;primaryKey"`
	LastValue int64     `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName overrides the gorm table name.
func (CounterDTO) TableName() string {
	return "document_sequence_counters"
}

const incrementSQL = `
	INSERT INTO document_sequence_counters (doc_type, key_date, last_value, updated_at)
	VALUES (?, ?, 1, now())
	ON CONFLICT (doc_type, key_date)
	DO UPDATE SET
		last_value = document_sequence_counters.last_value + 1,
		updated_at = now()
	RETURNING last_value
`

// GormAllocator implements ports.DocNumberAllocator.
//
// db must be the root handle, never the transaction of a unit of work: every
// allocation commits on its own so that a number stays burned when the
// caller rolls back.
type GormAllocator struct {
	db          *gorm.DB
	lockTimeout time.Duration
}

// NewGormAllocator creates an allocator. lockTimeout bounds the wait on a
// counter row that another allocation holds.
func NewGormAllocator(db *gorm.DB, lockTimeout time.Duration) *GormAllocator {
	return &GormAllocator{db: db, lockTimeout: lockTimeout}
}

// Allocate increments the counter of (docType, key date) in one statement and
// formats the new value.
func (a *GormAllocator) Allocate(ctx context.Context, docType docnumber.DocType, businessDate time.Time) (docnumber.Number, error) {
	keyDate, err := docnumber.CounterKey(docType, businessDate)
	if err != nil {
		return docnumber.Number{}, err
	}

	var seq int64
	err = a.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if a.lockTimeout > 0 {
			if err := tx.Exec(fmt.Sprintf("SET LOCAL lock_timeout = '%dms'", a.lockTimeout.Milliseconds())).Error; err != nil {
				return err
			}
		}
		return tx.Raw(incrementSQL, string(docType), keyDate).Scan(&seq).Error
	})
	if err != nil {
		return docnumber.Number{}, pgerr.Classify(err,
			fmt.Sprintf("document sequence %s/%s", docType, keyDate.Format(time.DateOnly)))
	}

	return docnumber.NewNumber(docType, businessDate, seq)
}
