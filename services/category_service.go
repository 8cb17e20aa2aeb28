package services

import (
	"errors"

	"github.com/yeremiapane/menu-service/models"
	"github.com/yeremiapane/menu-service/utils"
	"gorm.io/gorm"
)

type CategoryService struct {
	DB *gorm.DB
}

func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{DB: db}
}

// List returns all categories ordered by display order, each with its
// non-deleted menu items.
func (s *CategoryService) List() ([]models.Category, error) {
	var categories []models.Category
	err := s.DB.Preload("MenuItems").
		Order("display_order asc").
		Find(&categories).Error
	return categories, err
}

func (s *CategoryService) Get(id uint) (*models.Category, error) {
	var category models.Category
	if err := s.DB.Preload("MenuItems").First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NewNotFoundError("CATEGORY_NOT_FOUND", "Category not found")
		}
		return nil, err
	}
	return &category, nil
}

func (s *CategoryService) Create(category *models.Category) error {
	return s.DB.Create(category).Error
}

func (s *CategoryService) Save(category *models.Category) error {
	return s.DB.Save(category).Error
}

// Delete destroys a category only if it has no non-deleted menu items.
// The check and the delete are not atomic; an item created in between is
// caught by the ON DELETE RESTRICT constraint at the store instead.
func (s *CategoryService) Delete(id uint) error {
	var category models.Category
	if err := s.DB.Preload("MenuItems").First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NewNotFoundError("CATEGORY_NOT_FOUND", "Category not found")
		}
		return err
	}

	if len(category.MenuItems) > 0 {
		return utils.ErrCategoryHasItems
	}

	return s.DB.Delete(&category).Error
}
