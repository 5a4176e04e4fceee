package server

import (
	"log"
	"net/http"

	"github.com/karim/resume-builder/internal/types"
)

// handleListSkills returns all skills for the user.
func (s *Server) handleListSkills(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUserID(w, r)
	if !ok {
		return
	}

	skills, err := s.db.ListSkills(r.Context(), userID)
	if err != nil {
		log.Printf("[SKILLS] list failed for %s: %v", userID, err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load skills")
		return
	}

	s.jsonResponse(w, http.StatusOK, listResponse(skills))
}

// handleCreateSkill adds a new skill.
func (s *Server) handleCreateSkill(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUserID(w, r)
	if !ok {
		return
	}

	var skill types.Skill
	if !s.decodeBody(w, r, &skill) {
		return
	}
	if skill.Name == "" {
		s.errorResponse(w, http.StatusBadRequest, "name is required")
		return
	}

	created, err := s.db.CreateSkill(r.Context(), userID, &skill)
	if err != nil {
		log.Printf("[SKILLS] create failed for %s: %v", userID, err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to create skill")
		return
	}

	s.jsonResponse(w, http.StatusCreated, created)
}

// handleUpdateSkill replaces a skill the user owns.
func (s *Server) handleUpdateSkill(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUserID(w, r)
	if !ok {
		return
	}
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}

	var skill types.Skill
	if !s.decodeBody(w, r, &skill) {
		return
	}

	updated, err := s.db.UpdateSkill(r.Context(), userID, id, &skill)
	if err != nil {
		log.Printf("[SKILLS] update failed for %s: %v", id, err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to update skill")
		return
	}
	if updated == nil {
		s.errorResponse(w, http.StatusNotFound, "Skill not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, updated)
}

// handleDeleteSkill removes a skill the user owns.
func (s *Server) handleDeleteSkill(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUserID(w, r)
	if !ok {
		return
	}
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}

	deleted, err := s.db.DeleteSkill(r.Context(), userID, id)
	if err != nil {
		log.Printf("[SKILLS] delete failed for %s: %v", id, err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to delete skill")
		return
	}
	if !deleted {
		s.errorResponse(w, http.StatusNotFound, "Skill not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
