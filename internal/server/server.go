// Package server exposes the dialogue engine over a JSON session API for the
// web chat client. All request handling is thin: decode, delegate to the
// session manager, encode.
package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/coradesk/corabot/internal/config"
	"github.com/coradesk/corabot/internal/logging"
	"github.com/coradesk/corabot/internal/session"
)

type Server struct {
	router   *chi.Mux
	sessions *session.Manager
	log      zerolog.Logger
}

func New(cfg *config.Config, sessions *session.Manager) *Server {
	s := &Server{
		sessions: sessions,
		log:      logging.WithComponent("server"),
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{cfg.AllowedOrigin},
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Route("/api/sessions", func(r chi.Router) {
		r.Post("/", s.handleCreateSession)
		r.Route("/{sessionID}", func(r chi.Router) {
			r.Post("/messages", s.handleMessage)
			r.Get("/history", s.handleHistory)
			r.Post("/reset", s.handleReset)
			r.Delete("/", s.handleEnd)
		})
	})

	s.router = r
	return s
}

func (s *Server) Router() http.Handler {
	return s.router
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}
