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

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/jonathan/applytrack/internal/config"
	"github.com/jonathan/applytrack/internal/db"
	"github.com/jonathan/applytrack/internal/generate"
	"github.com/jonathan/applytrack/internal/server/middleware"
	"github.com/jonathan/applytrack/internal/types"
)

// Store is the persistence surface the handlers depend on. *db.DB
// implements it; tests substitute an in-memory fake.
type Store interface {
	GetResume(ctx context.Context, id uuid.UUID) (*db.StoredResume, error)
	SaveResume(ctx context.Context, id uuid.UUID, resume types.MasterResume) error
	UpdateResumeFields(ctx context.Context, id uuid.UUID, fields map[string]any) (*db.StoredResume, error)

	CreateJob(ctx context.Context, job *types.JobDescription) error
	GetJob(ctx context.Context, id uuid.UUID) (*types.JobDescription, error)
	ListJobs(ctx context.Context, limit int) ([]types.JobDescription, error)
	UpdateJob(ctx context.Context, job *types.JobDescription) error
	DeleteJob(ctx context.Context, id uuid.UUID) error

	CreateApplication(ctx context.Context, app *types.Application) error
	GetApplication(ctx context.Context, id uuid.UUID) (*types.Application, error)
	ListApplications(ctx context.Context, filters db.ApplicationFilters) ([]types.Application, error)
	UpdateApplication(ctx context.Context, id uuid.UUID, fields map[string]any) (*types.Application, error)
	DeleteApplication(ctx context.Context, id uuid.UUID) error
}

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	store      Store
	database   *db.DB
	client     generate.Client
	cfg        Config
	autosaver  *Autosaver
	genGroup   singleflight.Group
}

// Config holds server configuration
type Config struct {
	Port           int
	DatabaseURL    string
	APIKey         string
	Model          string
	TokenHash      string
	UseBrowser     bool
	Verbose        bool
	AutosaveWindow time.Duration
}

// New creates a new server instance backed by PostgreSQL and the
// Gemini client.
func New(cfg Config) (*Server, error) {
	ctx := context.Background()

	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.Migrate(ctx); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	client, err := generate.NewGeminiClient(ctx, cfg.APIKey, cfg.Model)
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to create generation client: %w", err)
	}

	s := newServer(cfg, database, database, client)
	return s, nil
}

// newServer wires handlers onto the router. Tests call this directly
// with a fake store and stub client.
func newServer(cfg Config, store Store, database *db.DB, client generate.Client) *Server {
	if cfg.AutosaveWindow <= 0 {
		cfg.AutosaveWindow = 1500 * time.Millisecond
	}

	s := &Server{
		store:    store,
		database: database,
		client:   client,
		cfg:      cfg,
	}
	s.autosaver = NewAutosaver(cfg.AutosaveWindow, func(ctx context.Context, id uuid.UUID, fields map[string]any) error {
		_, err := s.store.UpdateResumeFields(ctx, id, fields)
		return err
	})

	requireAuth := middleware.BearerAuth(s.tokenValidator())

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)

	// Master resume
	mux.HandleFunc("GET /users/{id}/resume", s.handleGetResume)
	mux.HandleFunc("PUT /users/{id}/resume", s.handlePutResume)
	mux.HandleFunc("PATCH /users/{id}/resume", s.handlePatchResume)

	// Job descriptions
	mux.Handle("POST /jobs/parse", requireAuth(http.HandlerFunc(s.handleParseJob)))
	mux.HandleFunc("GET /jobs", s.handleListJobs)
	mux.HandleFunc("POST /jobs", s.handleCreateJob)
	mux.HandleFunc("GET /jobs/{id}", s.handleGetJob)
	mux.HandleFunc("PUT /jobs/{id}", s.handleUpdateJob)
	mux.HandleFunc("DELETE /jobs/{id}", s.handleDeleteJob)

	// Applications
	mux.HandleFunc("GET /applications", s.handleListApplications)
	mux.HandleFunc("POST /applications", s.handleCreateApplication)
	mux.HandleFunc("GET /applications/{id}", s.handleGetApplication)
	mux.HandleFunc("PUT /applications/{id}", s.handleUpdateApplication)
	mux.HandleFunc("DELETE /applications/{id}", s.handleDeleteApplication)
	mux.HandleFunc("POST /applications/{id}/interviews", s.handleAddInterview)
	mux.HandleFunc("POST /applications/{id}/reminders", s.handleAddReminder)

	// Generation and export
	mux.Handle("POST /generate", requireAuth(http.HandlerFunc(s.handleGenerate)))
	mux.HandleFunc("GET /export", s.handleExportStored)
	mux.HandleFunc("POST /export", s.handleExport)

	// Tracking
	mux.HandleFunc("GET /tracking/summary", s.handleTrackingSummary)
	mux.HandleFunc("GET /tracking/upcoming", s.handleTrackingUpcoming)
	mux.HandleFunc("GET /tracking/export.xlsx", s.handleTrackingExport)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(s.withCORS(mux)),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 300 * time.Second, // Generous: generation calls are not cancellable mid-flight
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// tokenValidator accepts either the configured static bearer token or
// a JWT signed with JWT_SECRET when that is set.
func (s *Server) tokenValidator() middleware.TokenValidator {
	var jwtService *JWTService
	if jwtConfig, err := config.NewJWTConfig(); err == nil {
		jwtService = NewJWTService(jwtConfig)
	}

	return middleware.TokenValidatorFunc(func(token string) error {
		if s.cfg.TokenHash != "" && config.VerifyToken(token, s.cfg.TokenHash) {
			return nil
		}
		if jwtService != nil {
			if _, err := jwtService.ValidateToken(token); err == nil {
				return nil
			}
		}
		return fmt.Errorf("invalid credential")
	})
}

// Handler exposes the configured router. Used by tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start begins listening for requests and blocks until shutdown.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	// Persist any coalesced edits still waiting on their quiet window
	s.autosaver.Stop()

	if s.client != nil {
		_ = s.client.Close()
	}
	if s.database != nil {
		s.database.Close()
	}
	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
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

// pathID parses the {id} path value as a UUID.
func pathID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return uuid.Nil, &ErrValidation{Field: "id", Message: "must be a valid UUID"}
	}
	return id, nil
}
