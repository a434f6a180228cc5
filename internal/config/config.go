package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	DataDir       string
	AllowedOrigin string
	LogLevel      string
	SessionTTL    time.Duration
}

func Load() (*Config, error) {
	// .env is optional — env vars may already be set (e.g. in production)
	_ = godotenv.Load()

	cfg := &Config{
		Port:          os.Getenv("PORT"),
		DataDir:       os.Getenv("DATA_DIR"),
		AllowedOrigin: os.Getenv("ALLOWED_ORIGIN"),
		LogLevel:      os.Getenv("LOG_LEVEL"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}

	if cfg.DataDir == "" {
		cfg.DataDir = "."
	}

	if cfg.AllowedOrigin == "" {
		cfg.AllowedOrigin = "*"
	}

	cfg.SessionTTL = 1 * time.Hour
	if ttl := os.Getenv("SESSION_TTL"); ttl != "" {
		d, err := time.ParseDuration(ttl)
		if err != nil {
			return nil, fmt.Errorf("parsing SESSION_TTL: %w", err)
		}
		cfg.SessionTTL = d
	}

	return cfg, nil
}
