package server

import (
	"log"
	"net/http"

	"github.com/karim/resume-builder/internal/types"
)

// handleListProjects returns all personal projects for the user.
func (s *Server) handleListProjects(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUserID(w, r)
	if !ok {
		return
	}

	projects, err := s.db.ListProjects(r.Context(), userID)
	if err != nil {
		log.Printf("[PROJECTS] list failed for %s: %v", userID, err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load projects")
		return
	}

	s.jsonResponse(w, http.StatusOK, listResponse(projects))
}

// handleCreateProject adds a new personal project.
func (s *Server) handleCreateProject(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUserID(w, r)
	if !ok {
		return
	}

	var project types.Project
	if !s.decodeBody(w, r, &project) {
		return
	}
	if project.Title == "" {
		s.errorResponse(w, http.StatusBadRequest, "title is required")
		return
	}

	created, err := s.db.CreateProject(r.Context(), userID, &project)
	if err != nil {
		log.Printf("[PROJECTS] create failed for %s: %v", userID, err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to create project")
		return
	}

	s.jsonResponse(w, http.StatusCreated, created)
}

// handleUpdateProject replaces a personal project the user owns.
func (s *Server) handleUpdateProject(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUserID(w, r)
	if !ok {
		return
	}
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}

	var project types.Project
	if !s.decodeBody(w, r, &project) {
		return
	}

	updated, err := s.db.UpdateProject(r.Context(), userID, id, &project)
	if err != nil {
		log.Printf("[PROJECTS] update failed for %s: %v", id, err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to update project")
		return
	}
	if updated == nil {
		s.errorResponse(w, http.StatusNotFound, "Project not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, updated)
}

// handleDeleteProject removes a personal project the user owns.
func (s *Server) handleDeleteProject(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUserID(w, r)
	if !ok {
		return
	}
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}

	deleted, err := s.db.DeleteProject(r.Context(), userID, id)
	if err != nil {
		log.Printf("[PROJECTS] delete failed for %s: %v", id, err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to delete project")
		return
	}
	if !deleted {
		s.errorResponse(w, http.StatusNotFound, "Project not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
