package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/yeremiapane/menu-service/config"
	"github.com/yeremiapane/menu-service/models"
	"github.com/yeremiapane/menu-service/router"
	"github.com/yeremiapane/menu-service/services"
	"github.com/yeremiapane/menu-service/utils"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	utils.InitLogger()

	cfg, err := config.Load()
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := config.InitDB(cfg)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}

	autoMigrate(db)

	tokens := utils.NewTokenService(cfg.JWTSecret, cfg.JWTRefreshSecret, cfg.JWTExpiry, cfg.JWTRefreshExpiry)

	images, err := services.NewImageService(cfg.UploadDir)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to initialize image service: %v", err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := router.SetupRouter(cfg, db, tokens, images)

	utils.InfoLogger.Printf("Listening on port %s (env=%s)", cfg.Port, cfg.Env)
	if err := r.Run(":" + cfg.Port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}

func autoMigrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.MenuItem{},
		&models.CustomizationOption{},
	)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to AutoMigrate: %v", err)
	}
	utils.InfoLogger.Println("AutoMigrate completed.")
}
