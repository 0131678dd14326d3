package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Voucher is a cash advance issued to an employee. Issuing one adds its
// amount to the employee's borrow balance in the same transaction.
type Voucher struct {
	ID          uint            `gorm:"primaryKey"`
	EmployeeID  uint            `gorm:"index;not null"`
	Employee    Employee        `gorm:"constraint:OnDelete:CASCADE"`
	Amount      decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Reason      string          `gorm:"size:255"`
	VoucherDate time.Time       `gorm:"index;not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
