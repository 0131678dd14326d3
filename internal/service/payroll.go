package service

import (
	"errors"
	"fmt"
	"time"

	"shop-ledger/internal/models"
	"shop-ledger/internal/util"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// thirtyDays is the fixed per-day-rate divisor. Salaries are quoted per
// 30-day month as a business convention, regardless of the actual month
// length; do not replace this with the calendar day count.
var thirtyDays = decimal.NewFromInt(30)

// Settlement is the outcome of one payroll calculation.
type Settlement struct {
	DaysInMonth int
	PresentDays int
	AbsentDays  int
	PerDayRate  decimal.Decimal
	Earned      decimal.Decimal
	Repayment   decimal.Decimal
	Payable     decimal.Decimal
	NewBorrow   decimal.Decimal
}

// Settle computes prorated pay and automatic advance repayment for one
// employee-month. Pure calculation, nothing persisted.
//
// perDayRate = salary / 30. A full month earns the monthly salary adjusted
// by (daysInMonth - 30) day-rates, so 31-day months pay slightly above the
// baseline and February slightly below. Any earned pay first repays the
// outstanding borrow; only the rest is payable.
func Settle(salary, borrow decimal.Decimal, presentDays, daysInMonth int) (*Settlement, error) {
	if salary.IsNegative() {
		return nil, Validationf("salary must not be negative")
	}
	if borrow.IsNegative() {
		return nil, Validationf("borrow must not be negative")
	}
	if daysInMonth < 28 || daysInMonth > 31 {
		return nil, Validationf("days in month out of range: %d", daysInMonth)
	}
	if presentDays < 0 || presentDays > daysInMonth {
		return nil, Validationf("present days out of range: %d of %d", presentDays, daysInMonth)
	}

	perDayRate := salary.Div(thirtyDays)

	var earned decimal.Decimal
	if presentDays == daysInMonth {
		diff := decimal.NewFromInt(int64(daysInMonth - 30))
		earned = salary.Add(diff.Mul(perDayRate))
	} else {
		earned = decimal.NewFromInt(int64(presentDays)).Mul(perDayRate)
	}

	repayment := decimal.Min(borrow, decimal.Max(decimal.Zero, earned))
	payable := earned.Sub(repayment)
	newBorrow := borrow.Sub(repayment)

	return &Settlement{
		DaysInMonth: daysInMonth,
		PresentDays: presentDays,
		AbsentDays:  daysInMonth - presentDays,
		PerDayRate:  perDayRate,
		Earned:      earned,
		Repayment:   repayment,
		Payable:     payable,
		NewBorrow:   newBorrow,
	}, nil
}

// PayrollService runs monthly settlements and keeps the salary history.
type PayrollService struct {
	DB  *gorm.DB
	Log *zap.Logger
}

func NewPayrollService(db *gorm.DB, log *zap.Logger) *PayrollService {
	return &PayrollService{DB: db, Log: log}
}

// Preview computes the settlement for an employee-month without saving
// anything. Used by the salary screen while the operator types.
func (s *PayrollService) Preview(employeeID uint, year int, month time.Month, presentDays int) (*Settlement, error) {
	var emp models.Employee
	if err := s.DB.First(&emp, employeeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get employee: %w", err)
	}
	return Settle(emp.Salary, emp.Borrow, presentDays, util.DaysInMonth(year, month))
}

// Run settles one employee-month: writes the immutable SalaryRecord and
// moves the borrow balance down by the repayment, both inside a single
// transaction. A month that already has a record is rejected untouched.
func (s *PayrollService) Run(employeeID uint, year int, month time.Month, presentDays int) (*models.SalaryRecord, error) {
	var record models.SalaryRecord
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var emp models.Employee
		if err := tx.First(&emp, employeeID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("get employee: %w", err)
		}

		var count int64
		if err := tx.Model(&models.SalaryRecord{}).
			Where("employee_id = ? AND payment_month = ? AND payment_year = ?",
				employeeID, int(month), year).
			Count(&count).Error; err != nil {
			return fmt.Errorf("check existing record: %w", err)
		}
		if count > 0 {
			return ErrAlreadyPaid
		}

		st, err := Settle(emp.Salary, emp.Borrow, presentDays, util.DaysInMonth(year, month))
		if err != nil {
			return err
		}

		record = models.SalaryRecord{
			EmployeeID:      employeeID,
			PaymentMonth:    int(month),
			PaymentYear:     year,
			CalculationDate: time.Now(),
			SalaryAmount:    emp.Salary,
			PresentDays:     st.PresentDays,
			AbsentDays:      st.AbsentDays,
			PerDayRate:      st.PerDayRate,
			BorrowRepayment: st.Repayment,
			TotalDeduction:  st.Repayment,
			FinalSalary:     st.Payable,
		}
		if err := tx.Create(&record).Error; err != nil {
			return fmt.Errorf("create salary record: %w", err)
		}

		emp.Borrow = st.NewBorrow
		if err := tx.Save(&emp).Error; err != nil {
			return fmt.Errorf("update borrow: %w", err)
		}

		audit(tx, "salary", fmt.Sprintf("paid %s to %s for %04d-%02d",
			st.Payable, emp.Name, year, int(month)))
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.Log.Info("salary processed",
		zap.Uint("employee", employeeID),
		zap.Int("year", year), zap.Int("month", int(month)),
		zap.String("payable", record.FinalSalary.String()))
	return &record, nil
}

// History returns an employee's salary records, newest month first.
func (s *PayrollService) History(employeeID uint) ([]models.SalaryRecord, error) {
	var records []models.SalaryRecord
	if err := s.DB.Where("employee_id = ?", employeeID).
		Order("payment_year DESC, payment_month DESC").
		Find(&records).Error; err != nil {
		return nil, fmt.Errorf("list salary records: %w", err)
	}
	return records, nil
}
