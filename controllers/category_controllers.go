package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/menu-service/models"
	"github.com/yeremiapane/menu-service/services"
	"github.com/yeremiapane/menu-service/utils"
)

type CategoryController struct {
	Categories *services.CategoryService
}

func NewCategoryController(categories *services.CategoryService) *CategoryController {
	return &CategoryController{Categories: categories}
}

func (cc *CategoryController) GetAllCategories(c *gin.Context) {
	categories, err := cc.Categories.List()
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, categories)
}

func (cc *CategoryController) GetCategoryByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	category, err := cc.Categories.Get(id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, category)
}

func (cc *CategoryController) CreateCategory(c *gin.Context) {
	var req struct {
		Name         string `json:"name" binding:"required,max=100"`
		Description  string `json:"description" binding:"omitempty,max=500"`
		DisplayOrder *int   `json:"displayOrder" binding:"omitempty,gte=0"`
		IsActive     *bool  `json:"isActive"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.NewValidationError(err.Error()))
		return
	}

	category := models.Category{
		Name:        req.Name,
		Description: req.Description,
		IsActive:    true,
	}
	if req.DisplayOrder != nil {
		category.DisplayOrder = *req.DisplayOrder
	}
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}

	if err := cc.Categories.Create(&category); err != nil {
		handleServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, category)
}

func (cc *CategoryController) UpdateCategory(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req struct {
		Name         *string `json:"name" binding:"omitempty,max=100"`
		Description  *string `json:"description" binding:"omitempty,max=500"`
		DisplayOrder *int    `json:"displayOrder" binding:"omitempty,gte=0"`
		IsActive     *bool   `json:"isActive"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.NewValidationError(err.Error()))
		return
	}

	category, err := cc.Categories.Get(id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.Description != nil {
		category.Description = *req.Description
	}
	if req.DisplayOrder != nil {
		category.DisplayOrder = *req.DisplayOrder
	}
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}

	if err := cc.Categories.Save(category); err != nil {
		handleServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, category)
}

func (cc *CategoryController) DeleteCategory(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := cc.Categories.Delete(id); err != nil {
		handleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
