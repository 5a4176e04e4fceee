package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJWTConfig_ExplicitSecret(t *testing.T) {
	cfg, err := NewJWTConfig("explicit-secret")
	require.NoError(t, err)
	assert.Equal(t, "explicit-secret", cfg.Secret)
	assert.Equal(t, 24*time.Hour, cfg.Lifetime)
}

func TestNewJWTConfig_SecretFromEnv(t *testing.T) {
	t.Setenv("JWT_SECRET", "env-secret")

	cfg, err := NewJWTConfig("")
	require.NoError(t, err)
	assert.Equal(t, "env-secret", cfg.Secret)
}

func TestNewJWTConfig_MissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	cfg, err := NewJWTConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestNewJWTConfig_CustomLifetime(t *testing.T) {
	t.Setenv("JWT_EXPIRATION_HOURS", "72")

	cfg, err := NewJWTConfig("secret")
	require.NoError(t, err)
	assert.Equal(t, 72*time.Hour, cfg.Lifetime)
}

func TestNewJWTConfig_InvalidLifetime(t *testing.T) {
	t.Setenv("JWT_EXPIRATION_HOURS", "not-a-number")

	_, err := NewJWTConfig("secret")
	assert.Error(t, err)

	t.Setenv("JWT_EXPIRATION_HOURS", "0")
	_, err = NewJWTConfig("secret")
	assert.Error(t, err)
}
