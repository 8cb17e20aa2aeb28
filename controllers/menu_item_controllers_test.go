package controllers_test

import (
	"encoding/json"
	"net/http"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/yeremiapane/menu-service/controllers"
	"github.com/yeremiapane/menu-service/middlewares"
	"github.com/yeremiapane/menu-service/models"
	"github.com/yeremiapane/menu-service/services"
)

func setupMenuRouter(t *testing.T, db *gorm.DB) *gin.Engine {
	t.Helper()

	images, err := services.NewImageService(t.TempDir())
	assert.NoError(t, err)

	r := gin.New()
	r.Use(middlewares.ErrorHandler(false))

	ctrl := controllers.NewMenuItemController(services.NewMenuService(db), images, "http://localhost:8080")
	r.GET("/api/menu-items", ctrl.GetAllItems)
	r.GET("/api/menu-items/:id", ctrl.GetItemByID)
	r.GET("/api/menu-items/category/:categoryId", ctrl.GetItemsByCategory)
	r.POST("/api/menu-items", ctrl.CreateItem)
	r.PUT("/api/menu-items/:id", ctrl.UpdateItem)
	r.DELETE("/api/menu-items/:id", ctrl.DeleteItem)
	return r
}

func TestMenuItemCRUD(t *testing.T) {
	db := setupTestDB(t)
	r := setupMenuRouter(t, db)

	category := models.Category{Name: "Pasta", IsActive: true}
	assert.NoError(t, db.Create(&category).Error)

	w := doJSON(r, "POST", "/api/menu-items", map[string]interface{}{
		"name":       "Carbonara",
		"price":      14.5,
		"categoryId": category.ID,
		"customizationOptions": []map[string]interface{}{
			{"name": "Extra bacon", "price": 2.0, "groupName": "Toppings"},
			{"name": "Gluten free", "price": 1.0, "groupName": "Base"},
			{"name": "Large", "price": 3.0, "groupName": "Size", "isMutuallyExclusive": true},
		},
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var created models.MenuItem
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Len(t, created.CustomizationOptions, 3)

	url := "/api/menu-items/" + strconv.Itoa(int(created.ID))

	w = doJSON(r, "GET", url, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var got models.MenuItem
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Len(t, got.CustomizationOptions, 3)
	for _, option := range got.CustomizationOptions {
		assert.Equal(t, created.ID, option.MenuItemID)
	}

	w = doJSON(r, "PUT", url, map[string]interface{}{"price": 15.0, "isPopular": true})
	assert.Equal(t, http.StatusOK, w.Code)
	var updated models.MenuItem
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, 15.0, updated.Price)
	assert.True(t, updated.IsPopular)

	w = doJSON(r, "DELETE", url, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	// Soft-deleted items read as not found and vanish from listings.
	w = doJSON(r, "GET", url, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "ITEM_NOT_FOUND", errorCode(t, w.Body.Bytes()))

	w = doJSON(r, "GET", "/api/menu-items", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var list []models.MenuItem
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Empty(t, list)
}

func TestCreateMenuItemUnknownCategory(t *testing.T) {
	db := setupTestDB(t)
	r := setupMenuRouter(t, db)

	w := doJSON(r, "POST", "/api/menu-items", map[string]interface{}{
		"name":       "Orphan",
		"price":      5.0,
		"categoryId": 999,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION_ERROR", errorCode(t, w.Body.Bytes()))
}

func TestListItemsByCategory(t *testing.T) {
	db := setupTestDB(t)
	r := setupMenuRouter(t, db)

	first := models.Category{Name: "Soups", IsActive: true}
	second := models.Category{Name: "Desserts", IsActive: true}
	assert.NoError(t, db.Create(&first).Error)
	assert.NoError(t, db.Create(&second).Error)
	assert.NoError(t, db.Create(&models.MenuItem{CategoryID: first.ID, Name: "Tomato soup", Price: 6, IsAvailable: true}).Error)
	assert.NoError(t, db.Create(&models.MenuItem{CategoryID: second.ID, Name: "Tiramisu", Price: 7, IsAvailable: true}).Error)

	w := doJSON(r, "GET", "/api/menu-items/category/"+strconv.Itoa(int(first.ID)), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var list []models.MenuItem
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list, 1)
	assert.Equal(t, "Tomato soup", list[0].Name)
}
