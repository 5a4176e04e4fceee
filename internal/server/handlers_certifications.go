package server

import (
	"log"
	"net/http"

	"github.com/karim/resume-builder/internal/types"
)

// handleListCertifications returns all certifications for the user.
func (s *Server) handleListCertifications(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUserID(w, r)
	if !ok {
		return
	}

	certs, err := s.db.ListCertifications(r.Context(), userID)
	if err != nil {
		log.Printf("[CERTIFICATIONS] list failed for %s: %v", userID, err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load certifications")
		return
	}

	s.jsonResponse(w, http.StatusOK, listResponse(certs))
}

// handleCreateCertification adds a new certification.
func (s *Server) handleCreateCertification(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUserID(w, r)
	if !ok {
		return
	}

	var cert types.Certification
	if !s.decodeBody(w, r, &cert) {
		return
	}
	if cert.Name == "" {
		s.errorResponse(w, http.StatusBadRequest, "name is required")
		return
	}

	created, err := s.db.CreateCertification(r.Context(), userID, &cert)
	if err != nil {
		log.Printf("[CERTIFICATIONS] create failed for %s: %v", userID, err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to create certification")
		return
	}

	s.jsonResponse(w, http.StatusCreated, created)
}

// handleUpdateCertification replaces a certification the user owns.
func (s *Server) handleUpdateCertification(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUserID(w, r)
	if !ok {
		return
	}
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}

	var cert types.Certification
	if !s.decodeBody(w, r, &cert) {
		return
	}

	updated, err := s.db.UpdateCertification(r.Context(), userID, id, &cert)
	if err != nil {
		log.Printf("[CERTIFICATIONS] update failed for %s: %v", id, err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to update certification")
		return
	}
	if updated == nil {
		s.errorResponse(w, http.StatusNotFound, "Certification not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, updated)
}

// handleDeleteCertification removes a certification the user owns.
func (s *Server) handleDeleteCertification(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUserID(w, r)
	if !ok {
		return
	}
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}

	deleted, err := s.db.DeleteCertification(r.Context(), userID, id)
	if err != nil {
		log.Printf("[CERTIFICATIONS] delete failed for %s: %v", id, err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to delete certification")
		return
	}
	if !deleted {
		s.errorResponse(w, http.StatusNotFound, "Certification not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
