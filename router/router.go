package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/menu-service/config"
	"github.com/yeremiapane/menu-service/controllers"
	"github.com/yeremiapane/menu-service/middlewares"
	"github.com/yeremiapane/menu-service/models"
	"github.com/yeremiapane/menu-service/services"
	"github.com/yeremiapane/menu-service/utils"
	"gorm.io/gorm"
)

// SetupRouter wires the middleware pipeline and the route table. Writes are
// gated by RequireAuth followed by RequireRole; reads run under OptionalAuth.
func SetupRouter(cfg *config.Config, db *gorm.DB, tokens *utils.TokenService, images *services.ImageService) *gin.Engine {
	r := gin.New()

	r.Use(middlewares.Recovery(cfg.IsProduction()))
	r.Use(middlewares.ErrorHandler(cfg.IsProduction()))
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddleware(cfg.CORSOrigin))
	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.NewRateLimiter(50, 1).RateLimit())

	r.NoRoute(middlewares.NotFoundHandler())

	r.Static("/uploads/menu_images", cfg.UploadDir)

	authCtrl := controllers.NewAuthController(db, tokens)
	categoryCtrl := controllers.NewCategoryController(services.NewCategoryService(db))
	menuCtrl := controllers.NewMenuItemController(services.NewMenuService(db), images, cfg.BaseURL)
	customizationCtrl := controllers.NewCustomizationController(services.NewCustomizationService(db))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "timestamp": time.Now().UTC().Format(time.RFC3339)})
	})

	auth := r.Group("/auth")
	{
		strict := auth.Group("/")
		strict.Use(middlewares.NewStrictRateLimiter())
		strict.POST("/register", authCtrl.Register)
		strict.POST("/login", authCtrl.Login)

		auth.POST("/refresh", authCtrl.Refresh)
	}

	optional := middlewares.OptionalAuth(tokens)
	required := middlewares.RequireAuth(tokens)
	staffOnly := middlewares.RequireRole(models.RoleAdmin, models.RoleManager)

	api := r.Group("/api")

	categories := api.Group("/categories")
	{
		categories.GET("", optional, categoryCtrl.GetAllCategories)
		categories.GET("/:id", optional, categoryCtrl.GetCategoryByID)
		categories.POST("", required, staffOnly, categoryCtrl.CreateCategory)
		categories.PUT("/:id", required, staffOnly, categoryCtrl.UpdateCategory)
		categories.DELETE("/:id", required, staffOnly, categoryCtrl.DeleteCategory)
	}

	menuItems := api.Group("/menu-items")
	{
		menuItems.GET("", optional, menuCtrl.GetAllItems)
		menuItems.GET("/:id", optional, menuCtrl.GetItemByID)
		menuItems.GET("/category/:categoryId", optional, menuCtrl.GetItemsByCategory)
		menuItems.POST("", required, staffOnly, menuCtrl.CreateItem)
		menuItems.PUT("/:id", required, staffOnly, menuCtrl.UpdateItem)
		menuItems.DELETE("/:id", required, staffOnly, menuCtrl.DeleteItem)
		menuItems.POST("/:id/image", required, staffOnly, menuCtrl.UploadImage)
	}

	customizations := api.Group("/customizations")
	{
		customizations.GET("/menu-item/:menuItemId", optional, customizationCtrl.GetCustomizationsByMenuItem)
		customizations.GET("/:id", optional, customizationCtrl.GetCustomizationByID)
		customizations.POST("/menu-item/:menuItemId", required, staffOnly, customizationCtrl.CreateCustomization)
		customizations.PUT("/:id", required, staffOnly, customizationCtrl.UpdateCustomization)
		customizations.DELETE("/:id", required, staffOnly, customizationCtrl.DeleteCustomization)
	}

	return r
}
