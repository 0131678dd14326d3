package service

import (
	"errors"
	"fmt"
	"strings"

	"shop-ledger/internal/models"
	"shop-ledger/internal/util"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// EmployeeService manages employee records. The borrow balance is never
// touched here; only vouchers and payroll runs may move it.
type EmployeeService struct {
	DB  *gorm.DB
	Log *zap.Logger
}

func NewEmployeeService(db *gorm.DB, log *zap.Logger) *EmployeeService {
	return &EmployeeService{DB: db, Log: log}
}

func (s *EmployeeService) List() ([]models.Employee, error) {
	var employees []models.Employee
	if err := s.DB.Order("name ASC").Find(&employees).Error; err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	return employees, nil
}

func (s *EmployeeService) Get(id uint) (*models.Employee, error) {
	var emp models.Employee
	if err := s.DB.First(&emp, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get employee: %w", err)
	}
	return &emp, nil
}

func (s *EmployeeService) Create(name, mobNo, address string, salary decimal.Decimal, idProofType, idProofPath string) (*models.Employee, error) {
	name = strings.TrimSpace(name)
	if err := util.ValidateName(name); err != nil {
		return nil, Validationf("employee name: %v", err)
	}
	if salary.IsNegative() {
		return nil, Validationf("salary must not be negative")
	}

	emp := models.Employee{
		Name:        name,
		MobNo:       mobNo,
		Address:     address,
		Salary:      salary,
		Borrow:      decimal.Zero,
		IDProofType: idProofType,
		IDProofPath: idProofPath,
	}
	if err := s.DB.Create(&emp).Error; err != nil {
		return nil, fmt.Errorf("create employee: %w", err)
	}

	audit(s.DB, "employee", "created "+name)
	s.Log.Info("employee created", zap.Uint("id", emp.ID), zap.String("name", name))
	return &emp, nil
}

// Update changes employee details other than the borrow balance.
func (s *EmployeeService) Update(id uint, name, mobNo, address string, salary decimal.Decimal, idProofType, idProofPath string) error {
	name = strings.TrimSpace(name)
	if err := util.ValidateName(name); err != nil {
		return Validationf("employee name: %v", err)
	}
	if salary.IsNegative() {
		return Validationf("salary must not be negative")
	}

	emp, err := s.Get(id)
	if err != nil {
		return err
	}

	emp.Name = name
	emp.MobNo = mobNo
	emp.Address = address
	emp.Salary = salary
	emp.IDProofType = idProofType
	emp.IDProofPath = idProofPath
	if err := s.DB.Save(emp).Error; err != nil {
		return fmt.Errorf("update employee: %w", err)
	}

	audit(s.DB, "employee", "updated "+name)
	return nil
}

// Delete removes an employee. Rejected while a borrow balance is open or
// salary history exists, so the books stay reconstructible.
func (s *EmployeeService) Delete(id uint) error {
	emp, err := s.Get(id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil // stale list
		}
		return err
	}

	if emp.Borrow.IsPositive() {
		return ErrEmployeeInUse
	}
	var records int64
	if err := s.DB.Model(&models.SalaryRecord{}).
		Where("employee_id = ?", id).
		Count(&records).Error; err != nil {
		return fmt.Errorf("count salary records: %w", err)
	}
	if records > 0 {
		return ErrEmployeeInUse
	}

	if err := s.DB.Delete(&models.Employee{}, id).Error; err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}

	audit(s.DB, "employee", "deleted "+emp.Name)
	s.Log.Info("employee deleted", zap.Uint("id", id), zap.String("name", emp.Name))
	return nil
}
