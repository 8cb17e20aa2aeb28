package services

import (
	"errors"

	"github.com/yeremiapane/menu-service/models"
	"github.com/yeremiapane/menu-service/utils"
	"gorm.io/gorm"
)

type MenuService struct {
	DB *gorm.DB
}

func NewMenuService(db *gorm.DB) *MenuService {
	return &MenuService{DB: db}
}

// List returns all non-deleted menu items with their category and
// customization options. Soft-deleted rows never appear in any read path.
func (s *MenuService) List() ([]models.MenuItem, error) {
	var items []models.MenuItem
	err := s.DB.Preload("Category").
		Preload("CustomizationOptions").
		Find(&items).Error
	return items, err
}

func (s *MenuService) Get(id uint) (*models.MenuItem, error) {
	var item models.MenuItem
	err := s.DB.Preload("Category").
		Preload("CustomizationOptions").
		First(&item, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NewNotFoundError("ITEM_NOT_FOUND", "Menu item not found")
		}
		return nil, err
	}
	return &item, nil
}

func (s *MenuService) ListByCategory(categoryID uint) ([]models.MenuItem, error) {
	var items []models.MenuItem
	err := s.DB.Preload("Category").
		Preload("CustomizationOptions").
		Where("category_id = ?", categoryID).
		Find(&items).Error
	return items, err
}

// Create inserts the item together with any embedded customization options
// as a single nested write; GORM runs it in one transaction, so a failure
// leaves no orphaned options.
func (s *MenuService) Create(item *models.MenuItem) error {
	var count int64
	if err := s.DB.Model(&models.Category{}).Where("id = ?", item.CategoryID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return utils.NewValidationError("categoryId does not reference an existing category")
	}

	return s.DB.Create(item).Error
}

func (s *MenuService) Save(item *models.MenuItem) error {
	return s.DB.Save(item).Error
}

// Delete soft-deletes the item. The row keeps a deletion timestamp and is
// excluded from every subsequent read, so fetches behave as not-found.
func (s *MenuService) Delete(id uint) error {
	var item models.MenuItem
	if err := s.DB.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NewNotFoundError("ITEM_NOT_FOUND", "Menu item not found")
		}
		return err
	}

	return s.DB.Delete(&item).Error
}
