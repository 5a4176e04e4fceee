package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/karim/resume-builder/internal/evaluation"
	"github.com/karim/resume-builder/internal/server/middleware"
)

func TestParseArea(t *testing.T) {
	tests := []struct {
		raw  string
		want evaluation.Area
		ok   bool
	}{
		{"user_profile", evaluation.AreaUserProfile, true},
		{"experience", evaluation.AreaExperience, true},
		{"education", evaluation.AreaEducation, true},
		{"complete", "", false}, // has its own route
		{"skills", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		area, ok := parseArea(tt.raw)
		assert.Equal(t, tt.ok, ok, "area %q", tt.raw)
		if tt.ok {
			assert.Equal(t, tt.want, area)
		}
	}
}

func TestHandleBuildFromPayload_InvalidBody(t *testing.T) {
	s := &Server{}

	req := httptest.NewRequest("POST", "/v1/resume/build-from-payload", strings.NewReader("not json"))
	rec := httptest.NewRecorder()
	s.handleBuildFromPayload(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleBuildFromPayload_UnknownTemplate(t *testing.T) {
	s := &Server{}

	body := `{"resume":{"personal_info":{"name":"Dana"}},"template":"nope"}`
	req := httptest.NewRequest("POST", "/v1/resume/build-from-payload", strings.NewReader(body))
	rec := httptest.NewRecorder()
	s.handleBuildFromPayload(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "template not found")
}

func TestHandleEvaluateArea_NotConfigured(t *testing.T) {
	s := &Server{}

	req := httptest.NewRequest("POST", "/v1/evaluation/experience", nil)
	req.SetPathValue("area", "experience")
	req = req.WithContext(middleware.WithUserID(req.Context(), uuid.New()))
	rec := httptest.NewRecorder()
	s.handleEvaluateArea(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "not configured")
}

func TestHandleEvaluateArea_MissingAuth(t *testing.T) {
	s := &Server{}

	req := httptest.NewRequest("POST", "/v1/evaluation/experience", nil)
	rec := httptest.NewRecorder()
	s.handleEvaluateArea(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
