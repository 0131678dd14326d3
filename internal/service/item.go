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

// ItemService manages the item catalog. Slips only copy item names, so
// items can be freely renamed or removed without touching history.
type ItemService struct {
	DB  *gorm.DB
	Log *zap.Logger
}

func NewItemService(db *gorm.DB, log *zap.Logger) *ItemService {
	return &ItemService{DB: db, Log: log}
}

func (s *ItemService) List() ([]models.Item, error) {
	var items []models.Item
	if err := s.DB.Order("name ASC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return items, nil
}

func (s *ItemService) Create(name string) (*models.Item, error) {
	name = strings.TrimSpace(name)
	if err := util.ValidateName(name); err != nil {
		return nil, Validationf("item name: %v", err)
	}

	var count int64
	if err := s.DB.Model(&models.Item{}).
		Where("LOWER(name) = LOWER(?)", name).
		Count(&count).Error; err != nil {
		return nil, fmt.Errorf("check item name: %w", err)
	}
	if count > 0 {
		return nil, ErrDuplicateName
	}

	item := models.Item{Name: name}
	if err := s.DB.Create(&item).Error; err != nil {
		return nil, fmt.Errorf("create item: %w", err)
	}

	audit(s.DB, "item", "created "+name)
	return &item, nil
}

func (s *ItemService) Rename(id uint, name string) error {
	name = strings.TrimSpace(name)
	if err := util.ValidateName(name); err != nil {
		return Validationf("item name: %v", err)
	}

	var item models.Item
	if err := s.DB.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("get item: %w", err)
	}

	var count int64
	if err := s.DB.Model(&models.Item{}).
		Where("LOWER(name) = LOWER(?) AND id <> ?", name, id).
		Count(&count).Error; err != nil {
		return fmt.Errorf("check item name: %w", err)
	}
	if count > 0 {
		return ErrDuplicateName
	}

	item.Name = name
	if err := s.DB.Save(&item).Error; err != nil {
		return fmt.Errorf("rename item: %w", err)
	}

	audit(s.DB, "item", "renamed "+name)
	return nil
}

func (s *ItemService) Delete(id uint) error {
	var item models.Item
	if err := s.DB.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil // stale list, nothing to do
		}
		return fmt.Errorf("get item: %w", err)
	}

	if err := s.DB.Delete(&models.Item{}, id).Error; err != nil {
		return fmt.Errorf("delete item: %w", err)
	}

	audit(s.DB, "item", "deleted "+item.Name)
	return nil
}
