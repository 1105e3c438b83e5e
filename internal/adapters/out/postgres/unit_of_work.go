// Package postgres provides the GORM-based Unit of Work of the procurement
// service. A unit of work owns one database transaction; repositories taken
// from it while the transaction is open read and write through it, so row
// locks acquired by GetForUpdate are held until Commit or Rollback.
//
// Usage:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	order, err := uow.PurchaseOrderRepository().GetForUpdate(ctx, poNo)
//	if err != nil {
//	    return err
//	}
//	receipts, err := uow.ReceiptRepository().GetAllByPurchaseOrder(ctx, poNo)
//	// ... recompute, Update, Add
//
//	return uow.Commit(ctx)
//
// Every transaction starts with SET LOCAL lock_timeout. A lock wait that
// exceeds it fails with SQLSTATE 55P03, which repositories report as
// errs.TransientContentionError.
//
// The document number allocator is not reachable from a unit of work; it
// commits on its own connection.
package postgres

import (
	"context"
	"fmt"
	"time"

	"procurement/internal/adapters/out/postgres/purchaseorderrepo"
	"procurement/internal/adapters/out/postgres/receiptrepo"
	"procurement/internal/adapters/out/postgres/rfqrepo"
	"procurement/internal/core/ports"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one connection
// pool.
type GormUnitOfWorkFactory struct {
	db          *gorm.DB
	lockTimeout time.Duration
}

// NewGormUnitOfWorkFactory creates a factory whose transactions wait at most
// lockTimeout for a row lock. Zero leaves the server default in place.
func NewGormUnitOfWorkFactory(db *gorm.DB, lockTimeout time.Duration) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db, lockTimeout: lockTimeout}
}

// Create produces a fresh unit of work. Instances must not be shared between
// goroutines.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{db: f.db, lockTimeout: f.lockTimeout}
}

// GormUnitOfWork coordinates one database transaction.
type GormUnitOfWork struct {
	// db is the shared pool
	db *gorm.DB
	// tx is the open transaction, nil before Begin and after Commit or
	// Rollback
	tx *gorm.DB
	// lockTimeout is applied with SET LOCAL at Begin
	lockTimeout time.Duration
}

// Begin starts the transaction. Calling Begin again while it is open is a
// no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}

	if uow.lockTimeout > 0 {
		stmt := fmt.Sprintf("SET LOCAL lock_timeout = '%dms'", uow.lockTimeout.Milliseconds())
		if err := tx.Exec(stmt).Error; err != nil {
			_ = tx.Rollback()
			return err
		}
	}

	uow.tx = tx
	return nil
}

// Commit makes the changes permanent and releases every lock. It returns
// gorm.ErrInvalidTransaction when no transaction is open.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards the changes and releases every lock. After Commit it
// returns gorm.ErrInvalidTransaction, which deferred callers ignore.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// PurchaseOrderRepository returns a repository bound to the open transaction,
// or to the pool when none is open.
func (uow *GormUnitOfWork) PurchaseOrderRepository() ports.PurchaseOrderRepository {
	return purchaseorderrepo.NewGormPurchaseOrderRepository(uow.conn())
}

// ReceiptRepository is like PurchaseOrderRepository for goods receipts.
func (uow *GormUnitOfWork) ReceiptRepository() ports.ReceiptRepository {
	return receiptrepo.NewGormReceiptRepository(uow.conn())
}

// RfqRepository is like PurchaseOrderRepository for requests for quotation.
func (uow *GormUnitOfWork) RfqRepository() ports.RfqRepository {
	return rfqrepo.NewGormRfqRepository(uow.conn())
}

// conn is the open transaction, or the pool outside of one.
func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
