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

// VoucherService maintains cash advances and keeps Employee.Borrow in step
// with them. Every mutation pairs the voucher row change with the balance
// change inside one transaction; a half-applied pair would corrupt the
// ledger.
type VoucherService struct {
	DB  *gorm.DB
	Log *zap.Logger
}

func NewVoucherService(db *gorm.DB, log *zap.Logger) *VoucherService {
	return &VoucherService{DB: db, Log: log}
}

// ListByEmployee returns an employee's vouchers, newest first.
func (s *VoucherService) ListByEmployee(employeeID uint) ([]models.Voucher, error) {
	var vouchers []models.Voucher
	if err := s.DB.Where("employee_id = ?", employeeID).
		Order("voucher_date DESC, id DESC").
		Find(&vouchers).Error; err != nil {
		return nil, fmt.Errorf("list vouchers: %w", err)
	}
	return vouchers, nil
}

// Issue creates a voucher and increases the employee's borrow balance.
func (s *VoucherService) Issue(employeeID uint, amount decimal.Decimal, reason string, date time.Time) (*models.Voucher, error) {
	if err := util.ValidateAmount(amount); err != nil {
		return nil, Validationf("voucher amount: %v", err)
	}

	var voucher models.Voucher
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var emp models.Employee
		if err := tx.First(&emp, employeeID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("get employee: %w", err)
		}

		voucher = models.Voucher{
			EmployeeID:  employeeID,
			Amount:      amount,
			Reason:      reason,
			VoucherDate: date,
		}
		if err := tx.Create(&voucher).Error; err != nil {
			return fmt.Errorf("create voucher: %w", err)
		}

		emp.Borrow = emp.Borrow.Add(amount)
		if err := tx.Save(&emp).Error; err != nil {
			return fmt.Errorf("update borrow: %w", err)
		}

		audit(tx, "voucher", fmt.Sprintf("issued %s to %s", amount, emp.Name))
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.Log.Info("voucher issued",
		zap.Uint("employee", employeeID), zap.String("amount", amount.String()))
	return &voucher, nil
}

// Edit replaces a voucher's amount/reason/date. The borrow balance loses
// the old amount and gains the new one, net in one transaction.
func (s *VoucherService) Edit(voucherID uint, amount decimal.Decimal, reason string, date time.Time) error {
	if err := util.ValidateAmount(amount); err != nil {
		return Validationf("voucher amount: %v", err)
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var voucher models.Voucher
		if err := tx.First(&voucher, voucherID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("get voucher: %w", err)
		}

		var emp models.Employee
		if err := tx.First(&emp, voucher.EmployeeID).Error; err != nil {
			return fmt.Errorf("get employee: %w", err)
		}

		emp.Borrow = emp.Borrow.Sub(voucher.Amount).Add(amount)

		voucher.Amount = amount
		voucher.Reason = reason
		voucher.VoucherDate = date
		if err := tx.Save(&voucher).Error; err != nil {
			return fmt.Errorf("update voucher: %w", err)
		}
		if err := tx.Save(&emp).Error; err != nil {
			return fmt.Errorf("update borrow: %w", err)
		}

		audit(tx, "voucher", fmt.Sprintf("edited voucher %d to %s", voucherID, amount))
		return nil
	})
	if err != nil {
		return err
	}

	s.Log.Info("voucher edited", zap.Uint("voucher", voucherID))
	return nil
}

// Delete removes a voucher and gives its amount back to the borrow balance.
func (s *VoucherService) Delete(voucherID uint) error {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var voucher models.Voucher
		if err := tx.First(&voucher, voucherID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil // stale list
			}
			return fmt.Errorf("get voucher: %w", err)
		}

		var emp models.Employee
		if err := tx.First(&emp, voucher.EmployeeID).Error; err != nil {
			return fmt.Errorf("get employee: %w", err)
		}

		emp.Borrow = emp.Borrow.Sub(voucher.Amount)
		if err := tx.Save(&emp).Error; err != nil {
			return fmt.Errorf("update borrow: %w", err)
		}
		if err := tx.Delete(&voucher).Error; err != nil {
			return fmt.Errorf("delete voucher: %w", err)
		}

		audit(tx, "voucher", fmt.Sprintf("deleted voucher %d (%s)", voucherID, voucher.Amount))
		return nil
	})
	if err != nil {
		return err
	}

	s.Log.Info("voucher deleted", zap.Uint("voucher", voucherID))
	return nil
}
