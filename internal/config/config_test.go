package config

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("ENV", "")
	t.Setenv("TOKEN_TTL", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.Len(t, cfg.SigningKey, 32)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
}

func TestLoadCustomSecret(t *testing.T) {
	key := make([]byte, 48)
	for i := range key {
		key[i] = byte(i)
	}
	t.Setenv("JWT_SECRET", base64.StdEncoding.EncodeToString(key))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, key, cfg.SigningKey)
}

func TestLoadSecretNotBase64(t *testing.T) {
	t.Setenv("JWT_SECRET", "!!! definitely not base64 !!!")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadSecretTooShort(t *testing.T) {
	t.Setenv("JWT_SECRET", base64.StdEncoding.EncodeToString([]byte("short")))

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadProductionRequiresSecret(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadTokenTTL(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("ENV", "")
	t.Setenv("TOKEN_TTL", "90m")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 90*time.Minute, cfg.TokenTTL)
}

func TestLoadTokenTTLGarbageFallsBack(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("ENV", "")
	t.Setenv("TOKEN_TTL", "soon")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
}

func TestLoadAllowedOrigins(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("ENV", "")
	t.Setenv("ALLOWED_ORIGINS", "https://todo.example.com, https://staging.example.com")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"https://todo.example.com", "https://staging.example.com"}, cfg.AllowedOrigins)
}
