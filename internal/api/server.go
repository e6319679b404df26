// Package api exposes the engine to the UI layer over HTTP: one route per
// state transition, each answering with the resulting state snapshot.
// Transitions whose preconditions fail still answer 200 with the unchanged
// snapshot; the engine's no-error contract extends through the API.
package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"

	"github.com/drunkirk/drunkirk-go/internal/session"
)

// Server handles HTTP requests for one local game session.
type Server struct {
	session *session.Session
	log     *logrus.Logger
}

// NewServer creates the API server over a session.
func NewServer(sess *session.Session, log *logrus.Logger) *Server {
	if log == nil {
		log = logrus.New()
	}
	return &Server{session: sess, log: log}
}

// Routes builds the router with the middleware stack.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(15 * time.Second))

	r.Get("/health", s.handleHealth)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/state", s.handleState)

		r.Post("/players", s.handleAddPlayer)
		r.Delete("/players/{id}", s.handleRemovePlayer)

		r.Put("/settings/rounds", s.handleSetTotalRounds)
		r.Post("/settings/categories/{category}/toggle", s.handleToggleCategory)
		r.Post("/settings/challenges/{id}/favorite", s.handleToggleFavorite)
		r.Post("/settings/challenges/{id}/disable", s.handleToggleDisabled)

		r.Get("/challenges", s.handleListChallenges)
		r.Post("/challenges", s.handleAddCustomChallenge)
		r.Put("/challenges/{id}", s.handleEditCustomChallenge)
		r.Delete("/challenges/{id}", s.handleDeleteCustomChallenge)

		r.Post("/game/start", s.handleStartGame)
		r.Post("/game/next", s.handleNextTurn)
		r.Post("/game/skip", s.handleSkipTurn)
		r.Post("/game/reset", s.handleResetGame)

		r.Post("/reset", s.handleResetAll)
	})

	return r
}

// logRequests logs method, path, duration and remote for every request.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.log.WithFields(logrus.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"duration": time.Since(start),
			"remote":   r.RemoteAddr,
		}).Info("http request")
	})
}
