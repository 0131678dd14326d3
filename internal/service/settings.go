package service

import (
	"errors"
	"fmt"

	"shop-ledger/internal/models"
	"shop-ledger/internal/util"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const pinSettingKey = "login_pin"

// bcrypt cost for the PIN hash
const pinHashCost = 12

// SettingsService owns the AppSetting table, in practice the login PIN.
// Only the bcrypt hash is ever stored.
type SettingsService struct {
	DB        *gorm.DB
	Log       *zap.Logger
	PinMinLen int
	PinMaxLen int
}

func NewSettingsService(db *gorm.DB, log *zap.Logger, pinMinLen, pinMaxLen int) *SettingsService {
	if pinMinLen <= 0 {
		pinMinLen = 4
	}
	if pinMaxLen < pinMinLen {
		pinMaxLen = 8
	}
	return &SettingsService{DB: db, Log: log, PinMinLen: pinMinLen, PinMaxLen: pinMaxLen}
}

// HasPin reports whether a login PIN has been set up (first-run check).
func (s *SettingsService) HasPin() (bool, error) {
	var count int64
	if err := s.DB.Model(&models.AppSetting{}).
		Where("key = ?", pinSettingKey).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("check pin setting: %w", err)
	}
	return count > 0, nil
}

// SetupPin stores the initial PIN. Rejected when one already exists.
func (s *SettingsService) SetupPin(pin, confirm string) error {
	if err := util.ValidatePin(pin, s.PinMinLen, s.PinMaxLen); err != nil {
		return Validationf("%v", err)
	}
	if pin != confirm {
		return Validationf("PINs do not match")
	}

	has, err := s.HasPin()
	if err != nil {
		return err
	}
	if has {
		return Validationf("PIN already set, use change instead")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(pin), pinHashCost)
	if err != nil {
		return fmt.Errorf("hash pin: %w", err)
	}

	setting := models.AppSetting{Key: pinSettingKey, Value: string(hash)}
	if err := s.DB.Create(&setting).Error; err != nil {
		return fmt.Errorf("save pin: %w", err)
	}

	audit(s.DB, "settings", "login pin created")
	s.Log.Info("login pin created")
	return nil
}

// VerifyPin checks a PIN attempt against the stored hash.
func (s *SettingsService) VerifyPin(pin string) error {
	var setting models.AppSetting
	if err := s.DB.First(&setting, "key = ?", pinSettingKey).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("load pin: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(setting.Value), []byte(pin)); err != nil {
		return ErrPinMismatch
	}
	return nil
}

// ChangePin replaces the stored PIN after verifying the current one.
func (s *SettingsService) ChangePin(current, newPin, confirm string) error {
	if err := util.ValidatePin(newPin, s.PinMinLen, s.PinMaxLen); err != nil {
		return Validationf("%v", err)
	}
	if newPin != confirm {
		return Validationf("new PINs do not match")
	}

	if err := s.VerifyPin(current); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPin), pinHashCost)
	if err != nil {
		return fmt.Errorf("hash pin: %w", err)
	}

	if err := s.DB.Model(&models.AppSetting{}).
		Where("key = ?", pinSettingKey).
		Update("value", string(hash)).Error; err != nil {
		return fmt.Errorf("update pin: %w", err)
	}

	audit(s.DB, "settings", "login pin changed")
	s.Log.Info("login pin changed")
	return nil
}
