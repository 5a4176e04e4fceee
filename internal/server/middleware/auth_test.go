package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClaims struct{ id uuid.UUID }

func (c *fakeClaims) GetUserID() uuid.UUID { return c.id }

type fakeValidator struct {
	id  uuid.UUID
	err error
}

func (v *fakeValidator) ValidateToken(token string) (UserIDGetter, error) {
	if v.err != nil {
		return nil, v.err
	}
	return &fakeClaims{id: v.id}, nil
}

func protected(t *testing.T, validator TokenValidator) (http.Handler, *uuid.UUID) {
	t.Helper()
	var seen uuid.UUID
	handler := AuthMiddleware(validator)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := GetUserID(r)
		require.NoError(t, err)
		seen = id
		w.WriteHeader(http.StatusOK)
	}))
	return handler, &seen
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	userID := uuid.New()
	handler, seen := protected(t, &fakeValidator{id: userID})

	req := httptest.NewRequest("GET", "/v1/profile", nil)
	req.Header.Set("Authorization", "Bearer some-token")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, userID, *seen)
}

func TestAuthMiddleware_CaseInsensitiveBearer(t *testing.T) {
	handler, _ := protected(t, &fakeValidator{id: uuid.New()})

	req := httptest.NewRequest("GET", "/v1/profile", nil)
	req.Header.Set("Authorization", "bearer some-token")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthMiddleware_Rejections(t *testing.T) {
	cases := map[string]struct {
		header    string
		validator TokenValidator
	}{
		"missing header":  {"", &fakeValidator{id: uuid.New()}},
		"no bearer":       {"Basic abc123", &fakeValidator{id: uuid.New()}},
		"empty token":     {"Bearer ", &fakeValidator{id: uuid.New()}},
		"invalid token":   {"Bearer bad", &fakeValidator{err: errors.New("expired")}},
		"malformed parts": {"Bearer a b c", &fakeValidator{id: uuid.New()}},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			handler, _ := protected(t, tc.validator)

			req := httptest.NewRequest("GET", "/v1/profile", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestGetUserID_MissingFromContext(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	_, err := GetUserID(req)
	assert.Error(t, err)
}

func TestWithUserID(t *testing.T) {
	userID := uuid.New()
	req := httptest.NewRequest("GET", "/", nil)
	req = req.WithContext(WithUserID(req.Context(), userID))

	got, err := GetUserID(req)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}
