package postgres

import (
	"procurement/internal/adapters/out/postgres/docnumberrepo"
	"procurement/internal/adapters/out/postgres/purchaseorderrepo"
	"procurement/internal/adapters/out/postgres/receiptrepo"
	"procurement/internal/adapters/out/postgres/rfqrepo"
	"procurement/internal/adapters/out/postgres/userrepo"

	"gorm.io/gorm"
)

// Migrate creates or extends every table of the service.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&purchaseorderrepo.PurchaseOrderDTO{},
		&purchaseorderrepo.LineDTO{},
		&receiptrepo.ReceiptDTO{},
		&receiptrepo.LineDTO{},
		&rfqrepo.RfqDTO{},
		&rfqrepo.VendorDTO{},
		&docnumberrepo.CounterDTO{},
		&userrepo.UserDTO{},
	)
}
