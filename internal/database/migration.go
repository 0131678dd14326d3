package database

import (
	"fmt"

	"shop-ledger/internal/models"

	"gorm.io/gorm"
)

// AutoMigrate runs database schema migrations for all models.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Party{},
		&models.Item{},
		&models.PurchaseSlip{},
		&models.Employee{},
		&models.Voucher{},
		&models.SalaryRecord{},
		&models.AppSetting{},
		&models.Log{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
