// Package config loads process configuration from the environment, with
// optional .env file support for local development.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration. It is loaded once at startup
// and read-only afterwards.
type Config struct {
	Port           string
	DatabaseURL    string
	JWTSecret      string
	BcryptCost     int
	TokenTTL       time.Duration
	RequestTimeout time.Duration
	CORSOrigins    []string
}

// Load reads configuration from the environment. A .env file is loaded
// first if present (ok if missing in prod).
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:           envOrDefault("PORT", "5000"),
		DatabaseURL:    envOrDefault("DATABASE_URL", "authhub.db"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		BcryptCost:     10,
		TokenTTL:       24 * time.Hour,
		RequestTimeout: 10 * time.Second,
		CORSOrigins:    strings.Split(envOrDefault("CORS_ORIGIN", "*"), ","),
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is required")
	}
	if len(cfg.JWTSecret) < 32 {
		return nil, fmt.Errorf("JWT_SECRET must be at least 32 characters for HMAC-SHA256 security")
	}

	if v := os.Getenv("BCRYPT_COST"); v != "" {
		cost, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid BCRYPT_COST: %w", err)
		}
		if cost < 4 || cost > 14 {
			return nil, fmt.Errorf("BCRYPT_COST must be between 4 and 14, got %d", cost)
		}
		cfg.BcryptCost = cost
	}

	if v := os.Getenv("TOKEN_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid TOKEN_TTL: %w", err)
		}
		cfg.TokenTTL = ttl
	}

	if v := os.Getenv("REQUEST_TIMEOUT"); v != "" {
		timeout, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid REQUEST_TIMEOUT: %w", err)
		}
		cfg.RequestTimeout = timeout
	}

	return cfg, nil
}

// IsPostgres reports whether DatabaseURL points at a PostgreSQL server
// rather than a SQLite file path.
func (c *Config) IsPostgres() bool {
	return strings.HasPrefix(c.DatabaseURL, "postgres://") ||
		strings.HasPrefix(c.DatabaseURL, "postgresql://")
}

func envOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
