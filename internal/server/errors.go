package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/karim/resume-builder/internal/evaluation"
	"github.com/karim/resume-builder/internal/rendering"
	"github.com/karim/resume-builder/internal/resume"
)

// ErrEmailAlreadyExists indicates email is already registered
type ErrEmailAlreadyExists struct {
	Email string
}

func (e *ErrEmailAlreadyExists) Error() string {
	return fmt.Sprintf("email already registered: %s", e.Email)
}

// ErrInvalidCredentials indicates invalid login credentials
type ErrInvalidCredentials struct{}

func (e *ErrInvalidCredentials) Error() string {
	return "invalid email or password"
}

// ErrUserNotFound indicates user was not found
type ErrUserNotFound struct {
	UserID uuid.UUID
}

func (e *ErrUserNotFound) Error() string {
	return fmt.Sprintf("user not found: %s", e.UserID)
}

// ErrResourceNotFound indicates a per-user resource record was not found
type ErrResourceNotFound struct {
	Resource string
	ID       uuid.UUID
}

func (e *ErrResourceNotFound) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error.
// Pipeline and renderer failures map here so handlers never leak
// internals into status decisions.
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrEmailAlreadyExists:
		return http.StatusConflict
	case *ErrInvalidCredentials:
		return http.StatusUnauthorized
	case *ErrUserNotFound, *ErrResourceNotFound:
		return http.StatusNotFound
	case *ErrValidation:
		return http.StatusBadRequest
	}

	var profileMissing *resume.ProfileMissingError
	var bundleMissing *resume.BundleMissingError
	var profileRequired *evaluation.ProfileRequiredError
	var templateNotFound *rendering.TemplateNotFoundError
	var evalErr *evaluation.EvaluationError
	switch {
	case errors.As(err, &profileMissing), errors.As(err, &profileRequired):
		return http.StatusNotFound
	case errors.As(err, &templateNotFound):
		// Unknown template identifier is a not-found condition, distinct
		// from validation failures
		return http.StatusNotFound
	case errors.As(err, &bundleMissing):
		return http.StatusBadRequest
	case errors.As(err, &evalErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// ClientMessage returns the error text safe to expose to API callers.
// Client-fixable conditions keep their detail; renderer and other internal
// failures collapse to a generic message, with the cause logged server-side.
func ClientMessage(err error) string {
	switch err.(type) {
	case *ErrEmailAlreadyExists, *ErrInvalidCredentials, *ErrUserNotFound,
		*ErrResourceNotFound, *ErrValidation:
		return err.Error()
	}

	var profileMissing *resume.ProfileMissingError
	var bundleMissing *resume.BundleMissingError
	var profileRequired *evaluation.ProfileRequiredError
	var templateNotFound *rendering.TemplateNotFoundError
	var renderErr *rendering.RenderError
	var templateErr *rendering.TemplateError
	var evalErr *evaluation.EvaluationError
	switch {
	case errors.As(err, &profileMissing), errors.As(err, &profileRequired),
		errors.As(err, &bundleMissing), errors.As(err, &templateNotFound):
		return err.Error()
	case errors.As(err, &renderErr), errors.As(err, &templateErr):
		return "Failed to generate resume"
	case errors.As(err, &evalErr):
		return "Evaluation failed"
	default:
		return "Failed to process request"
	}
}
