// Package config loads server configuration from the environment.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all server settings.
type Config struct {
	// Bind is the host:port the HTTP server listens on.
	Bind string

	// DBPath is the SQLite journal file path.
	DBPath string

	// JWTSecret signs session tokens.
	JWTSecret string

	// TokenTTL is how long session tokens remain valid.
	TokenTTL time.Duration

	// LogLevel is debug, info, warn or error.
	LogLevel string

	// LogFormat is "text" (colored) or "json".
	LogFormat string
}

// Load reads configuration from the environment, with a .env file loaded
// first if present (non-fatal if missing).
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Bind:      getEnvDefault("BIND", "0.0.0.0:8080"),
		DBPath:    getEnvDefault("DB_PATH", "./data/splitwise.db"),
		JWTSecret: getEnvDefault("JWT_SECRET", "dev-only-change-me"),
		LogLevel:  getEnvDefault("LOG_LEVEL", "info"),
		LogFormat: getEnvDefault("LOG_FORMAT", "text"),
	}

	ttl := getEnvDefault("TOKEN_TTL", "24h")
	d, err := time.ParseDuration(ttl)
	if err != nil {
		return nil, fmt.Errorf("invalid TOKEN_TTL %q: %w", ttl, err)
	}
	cfg.TokenTTL = d

	return cfg, nil
}

func getEnvDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
