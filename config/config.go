package config

import (
	"fmt"
	"os"
	"time"
)

// Config holds all process-wide settings, loaded once at startup and passed
// explicitly to constructors.
type Config struct {
	Env        string
	Port       string
	DBDriver   string
	DBDSN      string
	CORSOrigin string
	BaseURL    string
	UploadDir  string

	JWTSecret        string
	JWTRefreshSecret string
	JWTExpiry        time.Duration
	JWTRefreshExpiry time.Duration
}

const (
	defaultJWTExpiry        = 24 * time.Hour
	defaultJWTRefreshExpiry = 7 * 24 * time.Hour
)

// Load reads configuration from the environment. Both JWT secrets are
// required; a missing one is a startup failure.
func Load() (*Config, error) {
	cfg := &Config{
		Env:              getEnv("APP_ENV", "development"),
		Port:             getEnv("PORT", "8080"),
		DBDriver:         getEnv("DB_DRIVER", "sqlite"),
		DBDSN:            getEnv("DATABASE_URL", "menu.db"),
		CORSOrigin:       getEnv("CORS_ORIGIN", "*"),
		BaseURL:          getEnv("BASE_URL", "http://localhost:8080"),
		UploadDir:        getEnv("UPLOAD_DIR", "public/uploads/menu_images"),
		JWTSecret:        os.Getenv("JWT_SECRET"),
		JWTRefreshSecret: os.Getenv("JWT_REFRESH_SECRET"),
		JWTExpiry:        defaultJWTExpiry,
		JWTRefreshExpiry: defaultJWTRefreshExpiry,
	}

	for name, value := range map[string]string{
		"JWT_SECRET":         cfg.JWTSecret,
		"JWT_REFRESH_SECRET": cfg.JWTRefreshSecret,
	} {
		if value == "" {
			return nil, fmt.Errorf("missing required environment variable: %s", name)
		}
	}

	if v := os.Getenv("JWT_EXPIRES_IN"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid JWT_EXPIRES_IN: %w", err)
		}
		cfg.JWTExpiry = d
	}
	if v := os.Getenv("JWT_REFRESH_EXPIRES_IN"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid JWT_REFRESH_EXPIRES_IN: %w", err)
		}
		cfg.JWTRefreshExpiry = d
	}

	return cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
