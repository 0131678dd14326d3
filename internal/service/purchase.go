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

// PurchaseService manages purchase slips and their payment lifecycle:
// PENDING -> PARTIAL -> CLEARED, paid amount only ever increasing.
type PurchaseService struct {
	DB      *gorm.DB
	Log     *zap.Logger
	Parties *PartyService
}

func NewPurchaseService(db *gorm.DB, log *zap.Logger, parties *PartyService) *PurchaseService {
	return &PurchaseService{DB: db, Log: log, Parties: parties}
}

// Create records a new purchase slip. The party is looked up by name and
// created on the fly when unknown, matching how slips are entered.
func (s *PurchaseService) Create(slipDate time.Time, partyName, itemName string, amount decimal.Decimal) (*models.PurchaseSlip, error) {
	if err := util.ValidateName(itemName); err != nil {
		return nil, Validationf("item name: %v", err)
	}
	if err := util.ValidateAmount(amount); err != nil {
		return nil, Validationf("amount: %v", err)
	}

	party, err := s.Parties.FindOrCreate(partyName)
	if err != nil {
		return nil, err
	}

	slip := models.PurchaseSlip{
		SlipDate:   slipDate,
		ItemName:   itemName,
		Amount:     amount,
		PaidAmount: decimal.Zero,
		PartyID:    party.ID,
	}
	if err := s.DB.Create(&slip).Error; err != nil {
		return nil, fmt.Errorf("create slip: %w", err)
	}

	audit(s.DB, "purchase", fmt.Sprintf("slip %d for %s: %s", slip.ID, party.Name, amount))
	s.Log.Info("purchase slip created",
		zap.Uint("slip", slip.ID), zap.String("party", party.Name), zap.String("amount", amount.String()))
	return &slip, nil
}

// ListByParty returns a party's slips, oldest first.
func (s *PurchaseService) ListByParty(partyID uint) ([]models.PurchaseSlip, error) {
	var slips []models.PurchaseSlip
	if err := s.DB.Preload("Party").
		Where("party_id = ?", partyID).
		Order("slip_date ASC, id ASC").
		Find(&slips).Error; err != nil {
		return nil, fmt.Errorf("list slips: %w", err)
	}
	return slips, nil
}

// ListByMonth returns all slips dated within the given calendar month.
func (s *PurchaseService) ListByMonth(year int, month time.Month) ([]models.PurchaseSlip, error) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	var slips []models.PurchaseSlip
	if err := s.DB.Preload("Party").
		Where("slip_date >= ? AND slip_date < ?", start, end).
		Order("slip_date ASC, id ASC").
		Find(&slips).Error; err != nil {
		return nil, fmt.Errorf("list slips: %w", err)
	}
	return slips, nil
}

// ListByItem returns all slips whose copied item name matches.
func (s *PurchaseService) ListByItem(itemName string) ([]models.PurchaseSlip, error) {
	var slips []models.PurchaseSlip
	if err := s.DB.Preload("Party").
		Where("LOWER(item_name) = LOWER(?)", itemName).
		Order("slip_date ASC, id ASC").
		Find(&slips).Error; err != nil {
		return nil, fmt.Errorf("list slips: %w", err)
	}
	return slips, nil
}

// PayPartial applies a partial payment. The amount must not exceed the
// remaining balance; paying the slip off exactly marks it cleared.
func (s *PurchaseService) PayPartial(slipID uint, amount decimal.Decimal) error {
	if err := util.ValidateAmount(amount); err != nil {
		return Validationf("payment amount: %v", err)
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var slip models.PurchaseSlip
		if err := tx.First(&slip, slipID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("get slip: %w", err)
		}

		if slip.IsPaid {
			return ErrSlipCleared
		}
		if amount.GreaterThan(slip.Remaining()) {
			return ErrExceedsBalance
		}

		slip.PaidAmount = slip.PaidAmount.Add(amount)
		slip.IsPaid = slip.PaidAmount.Equal(slip.Amount)
		if err := tx.Save(&slip).Error; err != nil {
			return fmt.Errorf("save slip: %w", err)
		}

		audit(tx, "payment", fmt.Sprintf("slip %d paid %s (%s)", slip.ID, amount, slip.Status()))
		return nil
	})
	if err != nil {
		return err
	}

	s.Log.Info("partial payment", zap.Uint("slip", slipID), zap.String("amount", amount.String()))
	return nil
}

// MarkCleared jumps a slip straight to CLEARED from any non-cleared state.
func (s *PurchaseService) MarkCleared(slipID uint) error {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var slip models.PurchaseSlip
		if err := tx.First(&slip, slipID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("get slip: %w", err)
		}

		if slip.IsPaid {
			return ErrSlipCleared
		}

		slip.PaidAmount = slip.Amount
		slip.IsPaid = true
		if err := tx.Save(&slip).Error; err != nil {
			return fmt.Errorf("save slip: %w", err)
		}

		audit(tx, "payment", fmt.Sprintf("slip %d cleared", slip.ID))
		return nil
	})
	if err != nil {
		return err
	}

	s.Log.Info("slip cleared", zap.Uint("slip", slipID))
	return nil
}

// ClearAllPending clears every fully-unpaid slip of a party. Slips with a
// partial payment are left alone and must be settled individually.
func (s *PurchaseService) ClearAllPending(partyID uint) (int, error) {
	var cleared int
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var slips []models.PurchaseSlip
		if err := tx.Where("party_id = ? AND is_paid = ? AND paid_amount = ?",
			partyID, false, decimal.Zero).
			Find(&slips).Error; err != nil {
			return fmt.Errorf("list pending slips: %w", err)
		}

		for i := range slips {
			slips[i].PaidAmount = slips[i].Amount
			slips[i].IsPaid = true
			if err := tx.Save(&slips[i]).Error; err != nil {
				return fmt.Errorf("save slip: %w", err)
			}
		}
		cleared = len(slips)

		if cleared > 0 {
			audit(tx, "payment", fmt.Sprintf("cleared %d pending slips of party %d", cleared, partyID))
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.Log.Info("pending slips cleared", zap.Uint("party", partyID), zap.Int("count", cleared))
	return cleared, nil
}
