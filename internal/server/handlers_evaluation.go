package server

import (
	"log"
	"net/http"

	"github.com/karim/resume-builder/internal/evaluation"
	"github.com/karim/resume-builder/internal/pipeline"
	"github.com/karim/resume-builder/internal/types"
)

// parseArea maps the {area} path segment to an evaluation area. The
// complete evaluation has its own route and is rejected here.
func parseArea(raw string) (evaluation.Area, bool) {
	switch area := evaluation.Area(raw); area {
	case evaluation.AreaUserProfile, evaluation.AreaExperience, evaluation.AreaEducation:
		return area, true
	default:
		return "", false
	}
}

// handleEvaluateArea runs a single-area evaluation of the user's stored data.
func (s *Server) handleEvaluateArea(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUserID(w, r)
	if !ok {
		return
	}
	if s.evaluator == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "Evaluation is not configured")
		return
	}

	area, ok := parseArea(r.PathValue("area"))
	if !ok {
		s.errorResponse(w, http.StatusBadRequest, "Unknown evaluation area")
		return
	}

	bundle, err := s.db.LoadBundle(r.Context(), userID)
	if err != nil {
		log.Printf("[EVAL] bundle load failed for %s: %v", userID, err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load resume data")
		return
	}

	result, err := s.evaluator.EvaluateArea(r.Context(), area, bundle)
	if err != nil {
		log.Printf("[EVAL] %s evaluation failed for %s: %v", area, userID, err)
		s.errorResponse(w, HTTPStatus(err), ClientMessage(err))
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}

// handleEvaluateComplete runs all area evaluations plus a whole-document
// read of the rendered resume text.
func (s *Server) handleEvaluateComplete(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUserID(w, r)
	if !ok {
		return
	}
	if s.evaluator == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "Evaluation is not configured")
		return
	}

	bundle, err := s.db.LoadBundle(r.Context(), userID)
	if err != nil {
		log.Printf("[EVAL] bundle load failed for %s: %v", userID, err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load resume data")
		return
	}
	if bundle.Profile == nil {
		s.errorResponse(w, http.StatusNotFound, "Profile is required for evaluation")
		return
	}

	user, err := s.db.GetUser(r.Context(), userID)
	if err != nil {
		log.Printf("[EVAL] user load failed for %s: %v", userID, err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load user")
		return
	}
	var identity *types.AccountIdentity
	if user != nil {
		identity = &types.AccountIdentity{Name: user.Name, Email: user.Email, Phone: user.Phone}
	}

	resumeText, err := pipeline.RenderResumeText(bundle, identity, s.template)
	if err != nil {
		log.Printf("[EVAL] render failed for %s: %v", userID, err)
		s.errorResponse(w, HTTPStatus(err), ClientMessage(err))
		return
	}

	result, err := s.evaluator.EvaluateComplete(r.Context(), bundle, resumeText)
	if err != nil {
		log.Printf("[EVAL] complete evaluation failed for %s: %v", userID, err)
		s.errorResponse(w, HTTPStatus(err), ClientMessage(err))
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}
