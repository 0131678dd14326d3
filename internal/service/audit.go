package service

import (
	"time"

	"shop-ledger/internal/models"

	"gorm.io/gorm"
)

// audit appends a write-only action row. A failed audit write never fails
// the business operation it describes.
func audit(db *gorm.DB, module, action string) {
	_ = db.Create(&models.Log{
		Timestamp: time.Now(),
		Module:    module,
		Action:    action,
		BranchID:  0,
	}).Error
}
