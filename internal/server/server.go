package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/claude/liftlog/internal/workout"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	svc    *workout.Service
	log    *slog.Logger
	token  string
	router chi.Router
}

// New creates a new Server with all routes configured.
func New(svc *workout.Service, token string, log *slog.Logger) *Server {
	s := &Server{
		svc:    svc,
		log:    log,
		token:  token,
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

	// Liveness probe, reachable without a token
	s.router.Get("/healthz", s.handleHealthz)

	s.router.Route("/api/v1", func(r chi.Router) {
		r.Use(BearerAuth(s.token))

		r.Post("/exercises", s.handleCreateExercise)
		r.Get("/exercises", s.handleListExercises)
		r.Delete("/exercises/{name}", s.handleDeleteExercise)
		r.Get("/exercises/{name}/records", s.handleGetRecords)
		r.Put("/exercises/{name}/records", s.handlePutRecords)

		r.Post("/templates", s.handleCreateTemplate)
		r.Get("/templates", s.handleListTemplates)
		r.Get("/templates/{name}", s.handleGetTemplate)
		r.Delete("/templates/{name}", s.handleDeleteTemplate)
		r.Get("/templates/{name}/sessions", s.handleListTemplateSessions)
		r.Get("/templates/{name}/sessions/latest", s.handleLatestSession)

		r.Post("/sessions", s.handleRegisterSession)
		r.Get("/sessions/{id}", s.handleGetSession)

		r.Post("/import/alpha", s.handleAlphaImport)
	})
}
