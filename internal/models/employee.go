package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee with a fixed monthly salary and a running advance (borrow)
// balance owed back to the employer. Borrow is only changed together with
// the voucher or salary record that justifies the change.
type Employee struct {
	ID      uint            `gorm:"primaryKey"`
	Name    string          `gorm:"size:128;not null"`
	MobNo   string          `gorm:"size:32"`
	Address string          `gorm:"size:255"`
	Salary  decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Borrow  decimal.Decimal `gorm:"type:decimal(18,2);not null"`

	IDProofType string `gorm:"size:32"`
	IDProofPath string `gorm:"size:255"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
