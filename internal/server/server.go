// Package server provides the HTTP surface of the bet tracker.
package server

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"

	"betlytics/internal/config"
	"betlytics/internal/service"
)

// HealthChecker reports whether the storage backend is reachable.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// Dependencies carries everything the server needs to run.
type Dependencies struct {
	Config     *config.Config
	Bets       *service.BetService
	Categories *service.CategoryService
	Stats      *service.StatsService
	Health     HealthChecker
}

// Server wraps the chi router and the underlying http.Server.
type Server struct {
	deps *Dependencies
	http *http.Server
}

// New builds the router and returns a server ready to start.
func New(deps *Dependencies) *Server {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(RequestLogger())
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.Config.Server.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-User-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	s := &Server{deps: deps}

	r.Get("/health", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Use(RequireOwner)

		r.Route("/bets", func(r chi.Router) {
			r.Get("/", s.handleListBets)
			r.Post("/", s.handleCreateBet)
			r.Put("/{betID}", s.handleUpdateBet)
			r.Delete("/{betID}", s.handleDeleteBet)
		})

		r.Route("/categories", func(r chi.Router) {
			r.Get("/", s.handleListCategories)
			r.Post("/", s.handleCreateCategory)
			r.Delete("/{categoryID}", s.handleDeleteCategory)
		})

		r.Route("/stats", func(r chi.Router) {
			r.Get("/summary", s.handleStatsSummary)
			r.Get("/daily", s.handleStatsDaily)
			r.Get("/categories", s.handleStatsByCategory)
			r.Get("/filters", s.handleStatsFilters)
		})
	})

	s.http = &http.Server{
		Addr:         deps.Config.Server.Addr(),
		Handler:      r,
		ReadTimeout:  deps.Config.Server.ReadTimeout,
		WriteTimeout: deps.Config.Server.WriteTimeout,
	}

	return s
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

// Start blocks serving HTTP until the listener fails or Shutdown is
// called.
func (s *Server) Start() error {
	log.Info().Str("addr", s.http.Addr).Msg("HTTP server listening")
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests and stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if s.deps.Health != nil {
		if err := s.deps.Health.HealthCheck(r.Context()); err != nil {
			respondError(w, http.StatusServiceUnavailable, "database unreachable")
			return
		}
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
