package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/meltforce/repflow/internal/auth"
	"github.com/meltforce/repflow/internal/storage"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	db     *storage.DB
	yoga   storage.YogaStore
	hub    *storage.Hub
	auth   *auth.Service
	runs   *runRegistry
	log    *slog.Logger
	router chi.Router
}

// New creates a new Server with all routes configured. yogaStore is where
// yoga session logs land; depending on the configured scope it is either the
// Postgres store or the per-device SQLite store.
func New(db *storage.DB, yogaStore storage.YogaStore, hub *storage.Hub, authSvc *auth.Service, log *slog.Logger) *Server {
	s := &Server{
		db:     db,
		yoga:   yogaStore,
		hub:    hub,
		auth:   authSvc,
		runs:   newRunRegistry(),
		log:    log,
		router: chi.NewRouter(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(RequestLogging(s.log))
	s.router.Use(CORS)

	s.router.Post("/api/v1/auth/register", s.handleRegister)
	s.router.Post("/api/v1/auth/login", s.handleLogin)

	// Catalog endpoints are static data, no identity needed.
	s.router.Get("/api/v1/catalog/workouts", s.handleWorkoutCategories)
	s.router.Get("/api/v1/catalog/workouts/{id}", s.handleWorkoutCategory)
	s.router.Get("/api/v1/catalog/schedule", s.handleWeeklySchedule)
	s.router.Get("/api/v1/catalog/schedule/{day}", s.handleScheduleDay)
	s.router.Get("/api/v1/catalog/yoga", s.handleYogaCategories)
	s.router.Get("/api/v1/catalog/yoga/plan/{day}", s.handleYogaPlan)

	// Everything else carries identity when a bearer token is present.
	// Reads without identity degrade to empty results; writes refuse.
	s.router.Group(func(r chi.Router) {
		r.Use(Identify(s.auth))

		r.Get("/api/v1/auth/me", s.handleMe)

		r.Post("/api/v1/runs/workout", s.handleStartWorkoutRun)
		r.Post("/api/v1/runs/yoga", s.handleStartYogaRun)
		r.Get("/api/v1/runs/{id}", s.handleGetRun)
		r.Post("/api/v1/runs/{id}/events", s.handleRunEvent)

		r.Get("/api/v1/sessions", s.handleListSessions)
		r.Get("/api/v1/sessions/{id}", s.handleGetSession)
		r.Put("/api/v1/sessions/{id}", s.handlePutSession)
		r.Delete("/api/v1/sessions/{id}", s.handleDeleteSession)
		r.Delete("/api/v1/sessions", s.handleDeleteAllSessions)
		r.Get("/api/v1/stats", s.handleWorkoutStats)
		r.Get("/api/v1/streak", s.handleStreak)

		r.Get("/api/v1/yoga/logs", s.handleListYogaLogs)
		r.Put("/api/v1/yoga/logs/{id}", s.handlePutYogaLog)
		r.Delete("/api/v1/yoga/logs/{id}", s.handleDeleteYogaLog)
		r.Delete("/api/v1/yoga/logs", s.handleDeleteAllYogaLogs)

		r.Get("/api/v1/watch", s.handleWatch)
	})
}
