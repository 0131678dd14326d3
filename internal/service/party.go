package service

import (
	"errors"
	"fmt"
	"strings"

	"shop-ledger/internal/models"
	"shop-ledger/internal/util"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// PartyService manages suppliers/vendors.
type PartyService struct {
	DB  *gorm.DB
	Log *zap.Logger
}

func NewPartyService(db *gorm.DB, log *zap.Logger) *PartyService {
	return &PartyService{DB: db, Log: log}
}

// List returns all parties ordered by name.
func (s *PartyService) List() ([]models.Party, error) {
	var parties []models.Party
	if err := s.DB.Order("name ASC").Find(&parties).Error; err != nil {
		return nil, fmt.Errorf("list parties: %w", err)
	}
	return parties, nil
}

// Get returns one party by id.
func (s *PartyService) Get(id uint) (*models.Party, error) {
	var party models.Party
	if err := s.DB.First(&party, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get party: %w", err)
	}
	return &party, nil
}

// Create adds a new party. Names are unique case-insensitively.
func (s *PartyService) Create(name, taxID, phone, address string) (*models.Party, error) {
	name = strings.TrimSpace(name)
	if err := util.ValidateName(name); err != nil {
		return nil, Validationf("party name: %v", err)
	}

	taken, err := s.nameTaken(name, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrDuplicateName
	}

	party := models.Party{Name: name, TaxID: taxID, Phone: phone, Address: address}
	if err := s.DB.Create(&party).Error; err != nil {
		return nil, fmt.Errorf("create party: %w", err)
	}

	audit(s.DB, "party", "created "+name)
	s.Log.Info("party created", zap.Uint("id", party.ID), zap.String("name", name))
	return &party, nil
}

// Update changes party details, keeping the name unique.
func (s *PartyService) Update(id uint, name, taxID, phone, address string) error {
	name = strings.TrimSpace(name)
	if err := util.ValidateName(name); err != nil {
		return Validationf("party name: %v", err)
	}

	party, err := s.Get(id)
	if err != nil {
		return err
	}

	taken, err := s.nameTaken(name, id)
	if err != nil {
		return err
	}
	if taken {
		return ErrDuplicateName
	}

	party.Name = name
	party.TaxID = taxID
	party.Phone = phone
	party.Address = address
	if err := s.DB.Save(party).Error; err != nil {
		return fmt.Errorf("update party: %w", err)
	}

	audit(s.DB, "party", "updated "+name)
	return nil
}

// Delete removes a party. Rejected while the party owns any purchase slips.
func (s *PartyService) Delete(id uint) error {
	party, err := s.Get(id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil // already gone, stale list
		}
		return err
	}

	var slips int64
	if err := s.DB.Model(&models.PurchaseSlip{}).
		Where("party_id = ?", id).
		Count(&slips).Error; err != nil {
		return fmt.Errorf("count slips: %w", err)
	}
	if slips > 0 {
		return ErrPartyHasSlips
	}

	if err := s.DB.Delete(&models.Party{}, id).Error; err != nil {
		return fmt.Errorf("delete party: %w", err)
	}

	audit(s.DB, "party", "deleted "+party.Name)
	s.Log.Info("party deleted", zap.Uint("id", id), zap.String("name", party.Name))
	return nil
}

// FindOrCreate looks a party up by name (case-insensitive) and creates it
// when missing. Used by purchase entry where the party is typed free-form.
func (s *PartyService) FindOrCreate(name string) (*models.Party, error) {
	name = strings.TrimSpace(name)
	if err := util.ValidateName(name); err != nil {
		return nil, Validationf("party name: %v", err)
	}

	var party models.Party
	err := s.DB.Where("LOWER(name) = LOWER(?)", name).First(&party).Error
	if err == nil {
		return &party, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("find party: %w", err)
	}
	return s.Create(name, "", "", "")
}

// nameTaken checks case-insensitive uniqueness, excluding one id on update.
func (s *PartyService) nameTaken(name string, excludeID uint) (bool, error) {
	var count int64
	q := s.DB.Model(&models.Party{}).Where("LOWER(name) = LOWER(?)", name)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, fmt.Errorf("check party name: %w", err)
	}
	return count > 0, nil
}
