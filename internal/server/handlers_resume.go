package server

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"os"

	"github.com/karim/resume-builder/internal/pipeline"
	"github.com/karim/resume-builder/internal/types"
)

// buildPayload is the request body for the stateless build endpoint.
type buildPayload struct {
	Bundle   types.ResumeBundle     `json:"resume"`
	Identity *types.AccountIdentity `json:"identity,omitempty"`
	Template string                 `json:"template,omitempty"`
}

// handleBuild generates a PDF from the authenticated user's stored data
// and streams it back as an attachment.
func (s *Server) handleBuild(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUserID(w, r)
	if !ok {
		return
	}

	template := r.URL.Query().Get("template")
	if template == "" {
		template = s.template
	}

	result, cleanup, err := pipeline.BuildResume(r.Context(), s.db, pipeline.BuildOptions{
		UserID:    userID,
		Template:  template,
		OutputDir: s.outputDir,
	})
	if err != nil {
		log.Printf("[BUILD] failed for %s: %v", userID, err)
		s.errorResponse(w, HTTPStatus(err), ClientMessage(err))
		return
	}
	defer cleanup()

	s.streamDocument(w, result)
}

// handleBuildFromPayload generates a PDF from a bundle supplied in the
// request body. No authentication or storage involved.
func (s *Server) handleBuildFromPayload(w http.ResponseWriter, r *http.Request) {
	var payload buildPayload
	if !s.decodeBody(w, r, &payload) {
		return
	}

	result, cleanup, err := pipeline.BuildResume(r.Context(), nil, pipeline.BuildOptions{
		Bundle:    &payload.Bundle,
		Identity:  payload.Identity,
		Template:  payload.Template,
		OutputDir: s.outputDir,
	})
	if err != nil {
		log.Printf("[BUILD] payload build failed: %v", err)
		s.errorResponse(w, HTTPStatus(err), ClientMessage(err))
		return
	}
	defer cleanup()

	s.streamDocument(w, result)
}

// handleValidate reports whether the stored data is complete enough to
// generate a resume, without rendering anything.
func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUserID(w, r)
	if !ok {
		return
	}

	report, err := pipeline.ValidateResume(r.Context(), s.db, pipeline.BuildOptions{UserID: userID})
	if err != nil {
		log.Printf("[VALIDATE] failed for %s: %v", userID, err)
		s.errorResponse(w, HTTPStatus(err), ClientMessage(err))
		return
	}

	s.jsonResponse(w, http.StatusOK, report)
}

// streamDocument serves a generated PDF from disk.
func (s *Server) streamDocument(w http.ResponseWriter, result *pipeline.BuildResult) {
	file, err := os.Open(result.Path)
	if err != nil {
		log.Printf("[BUILD] failed to open %s: %v", result.Path, err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to read generated document")
		return
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		log.Printf("[BUILD] failed to stat %s: %v", result.Path, err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to read generated document")
		return
	}

	w.Header().Set("Content-Type", result.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", info.Size()))
	if _, err := io.Copy(w, file); err != nil {
		log.Printf("[BUILD] streaming %s failed: %v", result.Filename, err)
	}
}
