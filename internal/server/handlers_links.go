package server

import (
	"log"
	"net/http"

	"github.com/karim/resume-builder/internal/types"
)

// handleListLinks returns all personal links for the user.
func (s *Server) handleListLinks(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUserID(w, r)
	if !ok {
		return
	}

	links, err := s.db.ListLinks(r.Context(), userID)
	if err != nil {
		log.Printf("[LINKS] list failed for %s: %v", userID, err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load links")
		return
	}

	s.jsonResponse(w, http.StatusOK, listResponse(links))
}

// handleCreateLink adds a new personal link.
func (s *Server) handleCreateLink(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUserID(w, r)
	if !ok {
		return
	}

	var link types.Link
	if !s.decodeBody(w, r, &link) {
		return
	}
	if link.WebsiteName == "" || link.WebsiteURL == "" {
		s.errorResponse(w, http.StatusBadRequest, "website_name and website_url are required")
		return
	}

	created, err := s.db.CreateLink(r.Context(), userID, &link)
	if err != nil {
		log.Printf("[LINKS] create failed for %s: %v", userID, err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to create link")
		return
	}

	s.jsonResponse(w, http.StatusCreated, created)
}

// handleUpdateLink replaces a personal link the user owns.
func (s *Server) handleUpdateLink(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUserID(w, r)
	if !ok {
		return
	}
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}

	var link types.Link
	if !s.decodeBody(w, r, &link) {
		return
	}

	updated, err := s.db.UpdateLink(r.Context(), userID, id, &link)
	if err != nil {
		log.Printf("[LINKS] update failed for %s: %v", id, err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to update link")
		return
	}
	if updated == nil {
		s.errorResponse(w, http.StatusNotFound, "Link not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, updated)
}

// handleDeleteLink removes a personal link the user owns.
func (s *Server) handleDeleteLink(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUserID(w, r)
	if !ok {
		return
	}
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}

	deleted, err := s.db.DeleteLink(r.Context(), userID, id)
	if err != nil {
		log.Printf("[LINKS] delete failed for %s: %v", id, err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to delete link")
		return
	}
	if !deleted {
		s.errorResponse(w, http.StatusNotFound, "Link not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
