package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// JWTConfig holds the signing secret and token lifetime for access tokens.
type JWTConfig struct {
	Secret   string
	Lifetime time.Duration
}

// NewJWTConfig builds a JWT configuration. The secret argument wins when
// non-empty; otherwise JWT_SECRET is read from the environment. Token
// lifetime comes from JWT_EXPIRATION_HOURS (default 24).
func NewJWTConfig(secret string) (*JWTConfig, error) {
	if secret == "" {
		secret = os.Getenv("JWT_SECRET")
	}
	if secret == "" {
		return nil, fmt.Errorf("JWT secret is required: set JWT_SECRET or the jwt_secret config field")
	}

	hours := 24
	if raw := os.Getenv("JWT_EXPIRATION_HOURS"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid JWT_EXPIRATION_HOURS: %v", err)
		}
		hours = parsed
	}
	if hours < 1 {
		return nil, fmt.Errorf("JWT_EXPIRATION_HOURS must be at least 1, got: %d", hours)
	}

	return &JWTConfig{
		Secret:   secret,
		Lifetime: time.Duration(hours) * time.Hour,
	}, nil
}
