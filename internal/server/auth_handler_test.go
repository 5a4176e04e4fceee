package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/karim/resume-builder/internal/config"
)

// testAuthHandler builds a handler with no backing store. Requests that
// fail validation never reach the user service.
func testAuthHandler() *AuthHandler {
	jwtService := NewJWTService(&config.JWTConfig{Secret: "test-secret-key", Lifetime: time.Hour})
	return NewAuthHandler(NewUserService(nil, nil), jwtService)
}

func TestAuthHandler_Register_InvalidBody(t *testing.T) {
	handler := testAuthHandler()

	req := httptest.NewRequest("POST", "/v1/auth/register", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	handler.Register(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid request body")
}

func TestAuthHandler_Register_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing name", `{"email":"a@b.com","password":"longenough"}`},
		{"bad email", `{"name":"Dana","email":"not-an-email","password":"longenough"}`},
		{"short password", `{"name":"Dana","email":"a@b.com","password":"short"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := testAuthHandler()

			req := httptest.NewRequest("POST", "/v1/auth/register", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			handler.Register(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), "validation error")
		})
	}
}

func TestAuthHandler_Login_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing email", `{"password":"whatever"}`},
		{"missing password", `{"email":"a@b.com"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := testAuthHandler()

			req := httptest.NewRequest("POST", "/v1/auth/login", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			handler.Login(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), "validation error")
		})
	}
}
