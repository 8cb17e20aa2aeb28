package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/menu-service/services"
	"github.com/yeremiapane/menu-service/utils"
)

type CustomizationController struct {
	Customizations *services.CustomizationService
}

func NewCustomizationController(customizations *services.CustomizationService) *CustomizationController {
	return &CustomizationController{Customizations: customizations}
}

func (cc *CustomizationController) GetCustomizationsByMenuItem(c *gin.Context) {
	menuItemID, ok := parseID(c, "menuItemId")
	if !ok {
		return
	}

	options, err := cc.Customizations.ListByMenuItem(menuItemID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, options)
}

func (cc *CustomizationController) GetCustomizationByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	option, err := cc.Customizations.Get(id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, option)
}

func (cc *CustomizationController) CreateCustomization(c *gin.Context) {
	menuItemID, ok := parseID(c, "menuItemId")
	if !ok {
		return
	}

	var req customizationOptionInput
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.NewValidationError(err.Error()))
		return
	}

	option := req.toModel()
	option.MenuItemID = menuItemID

	if err := cc.Customizations.Create(&option); err != nil {
		handleServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, option)
}

func (cc *CustomizationController) UpdateCustomization(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req struct {
		Name                *string  `json:"name" binding:"omitempty,max=100"`
		Price               *float64 `json:"price" binding:"omitempty,gte=0"`
		IsAvailable         *bool    `json:"isAvailable"`
		GroupName           *string  `json:"groupName" binding:"omitempty,max=50"`
		IsMutuallyExclusive *bool    `json:"isMutuallyExclusive"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.NewValidationError(err.Error()))
		return
	}

	option, err := cc.Customizations.Get(id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	if req.Name != nil {
		option.Name = *req.Name
	}
	if req.Price != nil {
		option.Price = *req.Price
	}
	if req.IsAvailable != nil {
		option.IsAvailable = *req.IsAvailable
	}
	if req.GroupName != nil {
		option.GroupName = *req.GroupName
	}
	if req.IsMutuallyExclusive != nil {
		option.IsMutuallyExclusive = *req.IsMutuallyExclusive
	}

	if err := cc.Customizations.Save(option); err != nil {
		handleServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, option)
}

func (cc *CustomizationController) DeleteCustomization(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := cc.Customizations.Delete(id); err != nil {
		handleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
