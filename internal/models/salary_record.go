package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalaryRecord is the immutable audit row written once per employee per
// calendar month by a payroll run. The unique index enforces the
// one-record-per-month rule at the database level too.
type SalaryRecord struct {
	ID         uint     `gorm:"primaryKey"`
	EmployeeID uint     `gorm:"not null;uniqueIndex:idx_salary_emp_month"`
	Employee   Employee `gorm:"constraint:OnDelete:CASCADE"`

	PaymentMonth int `gorm:"not null;uniqueIndex:idx_salary_emp_month"`
	PaymentYear  int `gorm:"not null;uniqueIndex:idx_salary_emp_month"`

	CalculationDate time.Time `gorm:"not null"`

	SalaryAmount    decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	PresentDays     int             `gorm:"not null"`
	AbsentDays      int             `gorm:"not null"`
	PerDayRate      decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	BorrowRepayment decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	TotalDeduction  decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	FinalSalary     decimal.Decimal `gorm:"type:decimal(18,2);not null"`

	CreatedAt time.Time
}
