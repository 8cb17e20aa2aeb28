package controllers

import (
	"fmt"
	"net/http"
	"path"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/menu-service/models"
	"github.com/yeremiapane/menu-service/services"
	"github.com/yeremiapane/menu-service/utils"
)

type MenuItemController struct {
	Menu    *services.MenuService
	Images  *services.ImageService
	BaseURL string
}

func NewMenuItemController(menu *services.MenuService, images *services.ImageService, baseURL string) *MenuItemController {
	return &MenuItemController{Menu: menu, Images: images, BaseURL: baseURL}
}

type customizationOptionInput struct {
	Name                string  `json:"name" binding:"required,max=100"`
	Price               float64 `json:"price" binding:"gte=0"`
	IsAvailable         *bool   `json:"isAvailable"`
	GroupName           string  `json:"groupName" binding:"omitempty,max=50"`
	IsMutuallyExclusive *bool   `json:"isMutuallyExclusive"`
}

func (in customizationOptionInput) toModel() models.CustomizationOption {
	option := models.CustomizationOption{
		Name:        in.Name,
		Price:       in.Price,
		GroupName:   in.GroupName,
		IsAvailable: true,
	}
	if in.IsAvailable != nil {
		option.IsAvailable = *in.IsAvailable
	}
	if in.IsMutuallyExclusive != nil {
		option.IsMutuallyExclusive = *in.IsMutuallyExclusive
	}
	return option
}

func (mc *MenuItemController) GetAllItems(c *gin.Context) {
	items, err := mc.Menu.List()
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, items)
}

func (mc *MenuItemController) GetItemByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	item, err := mc.Menu.Get(id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, item)
}

func (mc *MenuItemController) GetItemsByCategory(c *gin.Context) {
	categoryID, ok := parseID(c, "categoryId")
	if !ok {
		return
	}

	items, err := mc.Menu.ListByCategory(categoryID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, items)
}

func (mc *MenuItemController) CreateItem(c *gin.Context) {
	var req struct {
		Name                 string                     `json:"name" binding:"required,max=100"`
		Description          string                     `json:"description" binding:"omitempty,max=500"`
		Price                float64                    `json:"price" binding:"gte=0"`
		ImageUrl             *string                    `json:"imageUrl" binding:"omitempty,url"`
		CategoryID           uint                       `json:"categoryId" binding:"required,min=1"`
		IsAvailable          *bool                      `json:"isAvailable"`
		IsPopular            *bool                      `json:"isPopular"`
		CustomizationOptions []customizationOptionInput `json:"customizationOptions" binding:"omitempty,dive"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.NewValidationError(err.Error()))
		return
	}

	item := models.MenuItem{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageUrl:    req.ImageUrl,
		CategoryID:  req.CategoryID,
		IsAvailable: true,
	}
	if req.IsAvailable != nil {
		item.IsAvailable = *req.IsAvailable
	}
	if req.IsPopular != nil {
		item.IsPopular = *req.IsPopular
	}
	for _, in := range req.CustomizationOptions {
		item.CustomizationOptions = append(item.CustomizationOptions, in.toModel())
	}

	if err := mc.Menu.Create(&item); err != nil {
		handleServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, item)
}

func (mc *MenuItemController) UpdateItem(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req struct {
		Name        *string  `json:"name" binding:"omitempty,max=100"`
		Description *string  `json:"description" binding:"omitempty,max=500"`
		Price       *float64 `json:"price" binding:"omitempty,gte=0"`
		ImageUrl    *string  `json:"imageUrl" binding:"omitempty,url"`
		CategoryID  *uint    `json:"categoryId" binding:"omitempty,min=1"`
		IsAvailable *bool    `json:"isAvailable"`
		IsPopular   *bool    `json:"isPopular"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.NewValidationError(err.Error()))
		return
	}

	item, err := mc.Menu.Get(id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.Price != nil {
		item.Price = *req.Price
	}
	if req.ImageUrl != nil {
		item.ImageUrl = req.ImageUrl
	}
	if req.CategoryID != nil {
		item.CategoryID = *req.CategoryID
	}
	if req.IsAvailable != nil {
		item.IsAvailable = *req.IsAvailable
	}
	if req.IsPopular != nil {
		item.IsPopular = *req.IsPopular
	}

	if err := mc.Menu.Save(item); err != nil {
		handleServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, item)
}

func (mc *MenuItemController) DeleteItem(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := mc.Menu.Delete(id); err != nil {
		handleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// UploadImage processes a multipart image upload and attaches the stored
// file URL to the item, dropping any previously stored file.
func (mc *MenuItemController) UploadImage(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	item, err := mc.Menu.Get(id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		utils.RespondError(c, utils.NewValidationError("image file is required"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		_ = c.Error(err)
		c.Abort()
		return
	}
	defer file.Close()

	result, err := mc.Images.Save(file, fileHeader.Filename)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	if item.ImageUrl != nil {
		mc.Images.Delete(path.Base(*item.ImageUrl))
	}

	imageURL := fmt.Sprintf("%s/uploads/menu_images/%s", mc.BaseURL, result.Filename)
	item.ImageUrl = &imageURL
	if err := mc.Menu.Save(item); err != nil {
		mc.Images.Delete(result.Filename)
		handleServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, item)
}
