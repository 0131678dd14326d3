package service

import (
	"fmt"
	"sort"

	"shop-ledger/internal/models"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// PartyBalance is one party's outstanding payable.
type PartyBalance struct {
	PartyID uint
	Name    string
	Balance decimal.Decimal
}

// EmployeeBalance is one employee's outstanding receivable (borrow).
type EmployeeBalance struct {
	EmployeeID uint
	Name       string
	Borrow     decimal.Decimal
}

// BalanceSheet is the read-only financial summary, recomputed per view.
type BalanceSheet struct {
	Payables        []PartyBalance
	Receivables     []EmployeeBalance
	TotalPayable    decimal.Decimal
	TotalReceivable decimal.Decimal
	NetPosition     decimal.Decimal // receivables - payables
}

// BalanceService aggregates the balance sheet.
type BalanceService struct {
	DB  *gorm.DB
	Log *zap.Logger
}

func NewBalanceService(db *gorm.DB, log *zap.Logger) *BalanceService {
	return &BalanceService{DB: db, Log: log}
}

// Compute sums payables over non-cleared slips grouped by party and
// receivables over employees with a positive borrow. The math happens
// in memory with decimals; SQLite never sees the currency arithmetic.
func (s *BalanceService) Compute() (*BalanceSheet, error) {
	var slips []models.PurchaseSlip
	if err := s.DB.Preload("Party").
		Where("is_paid = ?", false).
		Find(&slips).Error; err != nil {
		return nil, fmt.Errorf("load open slips: %w", err)
	}

	byParty := make(map[uint]*PartyBalance)
	for i := range slips {
		slip := &slips[i]
		pb, ok := byParty[slip.PartyID]
		if !ok {
			pb = &PartyBalance{PartyID: slip.PartyID, Name: slip.Party.Name, Balance: decimal.Zero}
			byParty[slip.PartyID] = pb
		}
		pb.Balance = pb.Balance.Add(slip.Remaining())
	}

	sheet := &BalanceSheet{
		TotalPayable:    decimal.Zero,
		TotalReceivable: decimal.Zero,
	}
	for _, pb := range byParty {
		sheet.Payables = append(sheet.Payables, *pb)
		sheet.TotalPayable = sheet.TotalPayable.Add(pb.Balance)
	}
	// largest debt first, ties by name for a stable view
	sort.Slice(sheet.Payables, func(i, j int) bool {
		if !sheet.Payables[i].Balance.Equal(sheet.Payables[j].Balance) {
			return sheet.Payables[i].Balance.GreaterThan(sheet.Payables[j].Balance)
		}
		return sheet.Payables[i].Name < sheet.Payables[j].Name
	})

	var employees []models.Employee
	if err := s.DB.Find(&employees).Error; err != nil {
		return nil, fmt.Errorf("load employees: %w", err)
	}
	for i := range employees {
		emp := &employees[i]
		if !emp.Borrow.IsPositive() {
			continue
		}
		sheet.Receivables = append(sheet.Receivables, EmployeeBalance{
			EmployeeID: emp.ID,
			Name:       emp.Name,
			Borrow:     emp.Borrow,
		})
		sheet.TotalReceivable = sheet.TotalReceivable.Add(emp.Borrow)
	}
	sort.Slice(sheet.Receivables, func(i, j int) bool {
		if !sheet.Receivables[i].Borrow.Equal(sheet.Receivables[j].Borrow) {
			return sheet.Receivables[i].Borrow.GreaterThan(sheet.Receivables[j].Borrow)
		}
		return sheet.Receivables[i].Name < sheet.Receivables[j].Name
	})

	sheet.NetPosition = sheet.TotalReceivable.Sub(sheet.TotalPayable)
	return sheet, nil
}
