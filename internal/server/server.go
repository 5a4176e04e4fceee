// Package server provides the HTTP REST API for the resume builder.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/karim/resume-builder/internal/config"
	"github.com/karim/resume-builder/internal/db"
	"github.com/karim/resume-builder/internal/evaluation"
	"github.com/karim/resume-builder/internal/llm"
	"github.com/karim/resume-builder/internal/server/middleware"
)

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	db          *db.DB
	llmClient   llm.Client
	evaluator   *evaluation.Evaluator
	jwtService  *JWTService
	userService *UserService
	authHandler *AuthHandler
	template    string
	outputDir   string
}

// Config holds server configuration
type Config struct {
	Port        int
	DatabaseURL string
	APIKey      string
	JWTSecret   string
	Template    string
	OutputDir   string
}

// New creates a new server instance
func New(cfg Config) (*Server, error) {
	ctx := context.Background()

	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.Migrate(ctx); err != nil {
		database.Close()
		return nil, err
	}

	s := &Server{
		db:        database,
		template:  cfg.Template,
		outputDir: cfg.OutputDir,
	}

	// Evaluation is optional: without an API key the endpoints report
	// the feature as unavailable instead of failing startup.
	if cfg.APIKey != "" {
		client, err := llm.NewGeminiClient(ctx, nil, cfg.APIKey)
		if err != nil {
			database.Close()
			return nil, fmt.Errorf("failed to create LLM client: %w", err)
		}
		s.llmClient = client
		s.evaluator = evaluation.NewEvaluator(client)
	}

	passwordConfig, err := config.NewPasswordConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create password config: %w", err)
	}
	s.userService = NewUserService(database, passwordConfig)

	jwtConfig, err := config.NewJWTConfig(cfg.JWTSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT config: %w", err)
	}
	s.jwtService = NewJWTService(jwtConfig)
	s.authHandler = NewAuthHandler(s.userService, s.jwtService)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(s.withCORS(s.routes())),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // PDF rendering can be slow
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// routes builds the ServeMux with public and authenticated routes.
func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("POST /v1/auth/register", s.authHandler.Register)
	mux.HandleFunc("POST /v1/auth/login", s.authHandler.Login)

	// Stateless build path: bundle arrives in the request body
	mux.HandleFunc("POST /v1/resume/build-from-payload", s.handleBuildFromPayload)

	// Authenticated routes
	authed := http.NewServeMux()
	authed.HandleFunc("GET /v1/profile", s.handleGetProfile)
	authed.HandleFunc("PUT /v1/profile", s.handleSaveProfile)
	authed.HandleFunc("DELETE /v1/profile", s.handleDeleteProfile)

	authed.HandleFunc("GET /v1/experiences", s.handleListExperiences)
	authed.HandleFunc("POST /v1/experiences", s.handleCreateExperience)
	authed.HandleFunc("PUT /v1/experiences/{id}", s.handleUpdateExperience)
	authed.HandleFunc("DELETE /v1/experiences/{id}", s.handleDeleteExperience)

	authed.HandleFunc("GET /v1/education", s.handleListEducation)
	authed.HandleFunc("POST /v1/education", s.handleCreateEducation)
	authed.HandleFunc("PUT /v1/education/{id}", s.handleUpdateEducation)
	authed.HandleFunc("DELETE /v1/education/{id}", s.handleDeleteEducation)

	authed.HandleFunc("GET /v1/skills", s.handleListSkills)
	authed.HandleFunc("POST /v1/skills", s.handleCreateSkill)
	authed.HandleFunc("PUT /v1/skills/{id}", s.handleUpdateSkill)
	authed.HandleFunc("DELETE /v1/skills/{id}", s.handleDeleteSkill)

	authed.HandleFunc("GET /v1/languages", s.handleListLanguages)
	authed.HandleFunc("POST /v1/languages", s.handleCreateLanguage)
	authed.HandleFunc("PUT /v1/languages/{id}", s.handleUpdateLanguage)
	authed.HandleFunc("DELETE /v1/languages/{id}", s.handleDeleteLanguage)

	authed.HandleFunc("GET /v1/certifications", s.handleListCertifications)
	authed.HandleFunc("POST /v1/certifications", s.handleCreateCertification)
	authed.HandleFunc("PUT /v1/certifications/{id}", s.handleUpdateCertification)
	authed.HandleFunc("DELETE /v1/certifications/{id}", s.handleDeleteCertification)

	authed.HandleFunc("GET /v1/links", s.handleListLinks)
	authed.HandleFunc("POST /v1/links", s.handleCreateLink)
	authed.HandleFunc("PUT /v1/links/{id}", s.handleUpdateLink)
	authed.HandleFunc("DELETE /v1/links/{id}", s.handleDeleteLink)

	authed.HandleFunc("GET /v1/projects", s.handleListProjects)
	authed.HandleFunc("POST /v1/projects", s.handleCreateProject)
	authed.HandleFunc("PUT /v1/projects/{id}", s.handleUpdateProject)
	authed.HandleFunc("DELETE /v1/projects/{id}", s.handleDeleteProject)

	authed.HandleFunc("POST /v1/resume/build", s.handleBuild)
	authed.HandleFunc("GET /v1/resume/validate", s.handleValidate)

	authed.HandleFunc("POST /v1/evaluation/complete", s.handleEvaluateComplete)
	authed.HandleFunc("POST /v1/evaluation/{area}", s.handleEvaluateArea)

	authMW := middleware.AuthMiddleware(s.jwtService.AsTokenValidator())
	mux.Handle("/v1/", authMW(authed))

	return mux
}

// Start begins listening for requests and blocks until shutdown
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("[SERVER] listening on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("[SERVER] error: %v", err)
		}
	}()

	<-stop
	log.Println("[SERVER] shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if s.llmClient != nil {
		_ = s.llmClient.Close()
	}
	s.db.Close()
	log.Println("[SERVER] stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
