package server

import (
	"log"
	"net/http"

	"github.com/karim/resume-builder/internal/types"
)

// handleListEducation returns all education entries for the user.
func (s *Server) handleListEducation(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUserID(w, r)
	if !ok {
		return
	}

	entries, err := s.db.ListEducation(r.Context(), userID)
	if err != nil {
		log.Printf("[EDUCATION] list failed for %s: %v", userID, err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load education")
		return
	}

	s.jsonResponse(w, http.StatusOK, listResponse(entries))
}

// handleCreateEducation adds a new education entry.
func (s *Server) handleCreateEducation(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUserID(w, r)
	if !ok {
		return
	}

	var edu types.Education
	if !s.decodeBody(w, r, &edu) {
		return
	}
	if edu.StartDate == nil {
		s.errorResponse(w, http.StatusBadRequest, "start_date is required")
		return
	}

	created, err := s.db.CreateEducation(r.Context(), userID, &edu)
	if err != nil {
		log.Printf("[EDUCATION] create failed for %s: %v", userID, err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to create education")
		return
	}

	s.jsonResponse(w, http.StatusCreated, created)
}

// handleUpdateEducation replaces an education entry the user owns.
func (s *Server) handleUpdateEducation(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUserID(w, r)
	if !ok {
		return
	}
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}

	var edu types.Education
	if !s.decodeBody(w, r, &edu) {
		return
	}

	updated, err := s.db.UpdateEducation(r.Context(), userID, id, &edu)
	if err != nil {
		log.Printf("[EDUCATION] update failed for %s: %v", id, err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to update education")
		return
	}
	if updated == nil {
		s.errorResponse(w, http.StatusNotFound, "Education not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, updated)
}

// handleDeleteEducation removes an education entry the user owns.
func (s *Server) handleDeleteEducation(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUserID(w, r)
	if !ok {
		return
	}
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}

	deleted, err := s.db.DeleteEducation(r.Context(), userID, id)
	if err != nil {
		log.Printf("[EDUCATION] delete failed for %s: %v", id, err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to delete education")
		return
	}
	if !deleted {
		s.errorResponse(w, http.StatusNotFound, "Education not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
