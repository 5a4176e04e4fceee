package server

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karim/resume-builder/internal/config"
)

func testJWTService(secret string, lifetime time.Duration) *JWTService {
	return NewJWTService(&config.JWTConfig{Secret: secret, Lifetime: lifetime})
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	service := testJWTService("test-secret-key", time.Hour)
	userID := uuid.New()

	token, err := service.GenerateToken(userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, userID, claims.GetUserID())
}

func TestJWTService_WrongSecret(t *testing.T) {
	service := testJWTService("secret-one", time.Hour)
	other := testJWTService("secret-two", time.Hour)

	token, err := service.GenerateToken(uuid.New())
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	service := testJWTService("test-secret-key", -time.Minute)

	token, err := service.GenerateToken(uuid.New())
	require.NoError(t, err)

	_, err = service.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_EmptyToken(t *testing.T) {
	service := testJWTService("test-secret-key", time.Hour)

	_, err := service.ValidateToken("")
	assert.Error(t, err)
}

func TestJWTService_GarbageToken(t *testing.T) {
	service := testJWTService("test-secret-key", time.Hour)

	_, err := service.ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestJWTService_AsTokenValidator(t *testing.T) {
	service := testJWTService("test-secret-key", time.Hour)
	userID := uuid.New()

	token, err := service.GenerateToken(userID)
	require.NoError(t, err)

	getter, err := service.AsTokenValidator().ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, getter.GetUserID())
}
