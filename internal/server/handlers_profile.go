package server

import (
	"log"
	"net/http"

	"github.com/karim/resume-builder/internal/types"
)

// handleGetProfile returns the authenticated user's profile.
func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUserID(w, r)
	if !ok {
		return
	}

	profile, err := s.db.GetProfile(r.Context(), userID)
	if err != nil {
		log.Printf("[PROFILE] get failed for %s: %v", userID, err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load profile")
		return
	}
	if profile == nil {
		s.errorResponse(w, http.StatusNotFound, "Profile not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, profile)
}

// handleSaveProfile creates or replaces the authenticated user's profile.
func (s *Server) handleSaveProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUserID(w, r)
	if !ok {
		return
	}

	var profile types.Profile
	if !s.decodeBody(w, r, &profile) {
		return
	}

	saved, err := s.db.SaveProfile(r.Context(), userID, &profile)
	if err != nil {
		log.Printf("[PROFILE] save failed for %s: %v", userID, err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to save profile")
		return
	}

	s.jsonResponse(w, http.StatusOK, saved)
}

// handleDeleteProfile removes the authenticated user's profile.
func (s *Server) handleDeleteProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUserID(w, r)
	if !ok {
		return
	}

	if err := s.db.DeleteProfile(r.Context(), userID); err != nil {
		log.Printf("[PROFILE] delete failed for %s: %v", userID, err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to delete profile")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
