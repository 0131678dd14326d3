package models

import "time"

// Party represents a supplier/vendor we purchase from.
// Name is unique case-insensitively; the check happens at save time.
type Party struct {
	ID      uint   `gorm:"primaryKey"`
	Name    string `gorm:"size:128;uniqueIndex;not null"`
	TaxID   string `gorm:"size:32"`
	Phone   string `gorm:"size:32"`
	Address string `gorm:"size:255"`

	PurchaseSlips []PurchaseSlip `gorm:"foreignKey:PartyID"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
