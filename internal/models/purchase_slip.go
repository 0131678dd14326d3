package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Slip payment status derived from PaidAmount.
const (
	SlipPending = "PENDING"
	SlipPartial = "PARTIAL"
	SlipCleared = "CLEARED"
)

// PurchaseSlip is a single purchase from a party.
// Amounts are decimal(18,2); PaidAmount only ever increases.
type PurchaseSlip struct {
	ID         uint            `gorm:"primaryKey"`
	SlipDate   time.Time       `gorm:"index;not null"`
	ItemName   string          `gorm:"size:128;not null"`
	Amount     decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	PaidAmount decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	IsPaid     bool            `gorm:"index;not null"`

	PartyID uint  `gorm:"index;not null"`
	Party   Party `gorm:"constraint:OnDelete:RESTRICT"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Status maps the paid amount onto PENDING / PARTIAL / CLEARED.
func (s *PurchaseSlip) Status() string {
	switch {
	case s.IsPaid:
		return SlipCleared
	case s.PaidAmount.IsPositive():
		return SlipPartial
	default:
		return SlipPending
	}
}

// Remaining is the unpaid portion of the slip.
func (s *PurchaseSlip) Remaining() decimal.Decimal {
	return s.Amount.Sub(s.PaidAmount)
}
