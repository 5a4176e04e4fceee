package server

import (
	"log"
	"net/http"

	"github.com/karim/resume-builder/internal/types"
)

// handleListExperiences returns all experiences for the user, most recent first.
func (s *Server) handleListExperiences(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUserID(w, r)
	if !ok {
		return
	}

	experiences, err := s.db.ListExperiences(r.Context(), userID)
	if err != nil {
		log.Printf("[EXPERIENCES] list failed for %s: %v", userID, err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load experiences")
		return
	}

	s.jsonResponse(w, http.StatusOK, listResponse(experiences))
}

// handleCreateExperience adds a new experience entry.
func (s *Server) handleCreateExperience(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUserID(w, r)
	if !ok {
		return
	}

	var exp types.Experience
	if !s.decodeBody(w, r, &exp) {
		return
	}
	if exp.StartDate == nil {
		s.errorResponse(w, http.StatusBadRequest, "start_date is required")
		return
	}

	created, err := s.db.CreateExperience(r.Context(), userID, &exp)
	if err != nil {
		log.Printf("[EXPERIENCES] create failed for %s: %v", userID, err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to create experience")
		return
	}

	s.jsonResponse(w, http.StatusCreated, created)
}

// handleUpdateExperience replaces an experience the user owns.
func (s *Server) handleUpdateExperience(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUserID(w, r)
	if !ok {
		return
	}
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}

	var exp types.Experience
	if !s.decodeBody(w, r, &exp) {
		return
	}

	updated, err := s.db.UpdateExperience(r.Context(), userID, id, &exp)
	if err != nil {
		log.Printf("[EXPERIENCES] update failed for %s: %v", id, err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to update experience")
		return
	}
	if updated == nil {
		s.errorResponse(w, http.StatusNotFound, "Experience not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, updated)
}

// handleDeleteExperience removes an experience the user owns.
func (s *Server) handleDeleteExperience(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUserID(w, r)
	if !ok {
		return
	}
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}

	deleted, err := s.db.DeleteExperience(r.Context(), userID, id)
	if err != nil {
		log.Printf("[EXPERIENCES] delete failed for %s: %v", id, err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to delete experience")
		return
	}
	if !deleted {
		s.errorResponse(w, http.StatusNotFound, "Experience not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
