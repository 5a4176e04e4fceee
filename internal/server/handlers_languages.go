package server

import (
	"log"
	"net/http"

	"github.com/karim/resume-builder/internal/types"
)

// handleListLanguages returns all languages for the user.
func (s *Server) handleListLanguages(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUserID(w, r)
	if !ok {
		return
	}

	languages, err := s.db.ListLanguages(r.Context(), userID)
	if err != nil {
		log.Printf("[LANGUAGES] list failed for %s: %v", userID, err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load languages")
		return
	}

	s.jsonResponse(w, http.StatusOK, listResponse(languages))
}

// handleCreateLanguage adds a new language.
func (s *Server) handleCreateLanguage(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUserID(w, r)
	if !ok {
		return
	}

	var lang types.Language
	if !s.decodeBody(w, r, &lang) {
		return
	}
	if lang.Name == "" {
		s.errorResponse(w, http.StatusBadRequest, "name is required")
		return
	}

	created, err := s.db.CreateLanguage(r.Context(), userID, &lang)
	if err != nil {
		log.Printf("[LANGUAGES] create failed for %s: %v", userID, err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to create language")
		return
	}

	s.jsonResponse(w, http.StatusCreated, created)
}

// handleUpdateLanguage replaces a language the user owns.
func (s *Server) handleUpdateLanguage(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUserID(w, r)
	if !ok {
		return
	}
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}

	var lang types.Language
	if !s.decodeBody(w, r, &lang) {
		return
	}

	updated, err := s.db.UpdateLanguage(r.Context(), userID, id, &lang)
	if err != nil {
		log.Printf("[LANGUAGES] update failed for %s: %v", id, err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to update language")
		return
	}
	if updated == nil {
		s.errorResponse(w, http.StatusNotFound, "Language not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, updated)
}

// handleDeleteLanguage removes a language the user owns.
func (s *Server) handleDeleteLanguage(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUserID(w, r)
	if !ok {
		return
	}
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}

	deleted, err := s.db.DeleteLanguage(r.Context(), userID, id)
	if err != nil {
		log.Printf("[LANGUAGES] delete failed for %s: %v", id, err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to delete language")
		return
	}
	if !deleted {
		s.errorResponse(w, http.StatusNotFound, "Language not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
