// Package config loads process configuration from environment variables.
package config

import (
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

// devSigningKey is only used outside production so the server starts
// without setup. It is a base64-encoded 32-byte key.
const devSigningKey = "ZGV2LW9ubHktc2lnbmluZy1rZXktY2hhbmdlLW1lISE="

type Config struct {
	Port           string
	Env            string
	DatabaseDSN    string
	SigningKey     []byte
	TokenTTL       time.Duration
	AllowedOrigins []string
}

// Load reads configuration from environment variables. JWT_SECRET must be a
// base64-encoded symmetric key that decodes to at least 32 bytes.
func Load() (*Config, error) {
	cfg := &Config{
		Port:           getEnv("PORT", "8080"),
		Env:            getEnv("ENV", "development"),
		DatabaseDSN:    getEnv("DATABASE_DSN", "root:password@tcp(127.0.0.1:3306)/todoapp?parseTime=true"),
		TokenTTL:       getDurationEnv("TOKEN_TTL", 24*time.Hour),
		AllowedOrigins: getSliceEnv("ALLOWED_ORIGINS", []string{"http://localhost:5173"}),
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		if cfg.Env == "production" {
			return nil, errors.New("JWT_SECRET must be set in production")
		}
		secret = devSigningKey
	}

	key, err := base64.StdEncoding.DecodeString(secret)
	if err != nil {
		return nil, fmt.Errorf("JWT_SECRET must be base64 encoded: %w", err)
	}
	if len(key) < 32 {
		return nil, fmt.Errorf("JWT_SECRET must decode to at least 32 bytes, got %d", len(key))
	}
	cfg.SigningKey = key

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

func getSliceEnv(key string, fallback []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}

	parts := strings.Split(v, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	if len(result) == 0 {
		return fallback
	}
	return result
}
