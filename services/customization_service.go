package services

import (
	"errors"

	"github.com/yeremiapane/menu-service/models"
	"github.com/yeremiapane/menu-service/utils"
	"gorm.io/gorm"
)

type CustomizationService struct {
	DB *gorm.DB
}

func NewCustomizationService(db *gorm.DB) *CustomizationService {
	return &CustomizationService{DB: db}
}

func (s *CustomizationService) ListByMenuItem(menuItemID uint) ([]models.CustomizationOption, error) {
	var options []models.CustomizationOption
	err := s.DB.Where("menu_item_id = ?", menuItemID).
		Order("group_name asc").
		Find(&options).Error
	return options, err
}

func (s *CustomizationService) Get(id uint) (*models.CustomizationOption, error) {
	var option models.CustomizationOption
	if err := s.DB.First(&option, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NewNotFoundError("CUSTOMIZATION_NOT_FOUND", "Customization option not found")
		}
		return nil, err
	}
	return &option, nil
}

// Create attaches a new option to an existing, non-deleted menu item.
func (s *CustomizationService) Create(option *models.CustomizationOption) error {
	var count int64
	if err := s.DB.Model(&models.MenuItem{}).Where("id = ?", option.MenuItemID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return utils.NewNotFoundError("ITEM_NOT_FOUND", "Menu item not found")
	}

	return s.DB.Create(option).Error
}

func (s *CustomizationService) Save(option *models.CustomizationOption) error {
	return s.DB.Save(option).Error
}

// Delete removes the option permanently; options have no soft-delete
// semantics.
func (s *CustomizationService) Delete(id uint) error {
	var option models.CustomizationOption
	if err := s.DB.First(&option, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NewNotFoundError("CUSTOMIZATION_NOT_FOUND", "Customization option not found")
		}
		return err
	}

	return s.DB.Delete(&option).Error
}
