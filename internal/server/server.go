package server

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/fittrack/fittrack-be/internal/auth"
	"github.com/fittrack/fittrack-be/internal/config"
	"github.com/fittrack/fittrack-be/internal/http/handlers"
	"github.com/fittrack/fittrack-be/internal/middleware"
	"github.com/fittrack/fittrack-be/internal/service"
	"github.com/fittrack/fittrack-be/internal/storage"
)

// Server wraps an http.Server with configured routes.
type Server struct {
	inner *http.Server
}

// New wires up the token manager, services, middleware, and routes.
// It fails when the signing secret does not meet the HS256 requirements.
func New(cfg config.Config, logger zerolog.Logger, users storage.UserStore, workouts storage.WorkoutStore) (*Server, error) {
	tokens, err := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTTTL)
	if err != nil {
		return nil, err
	}

	mux := http.NewServeMux()
	handlers.NewHealthHandler(time.Now()).Register(mux)
	handlers.NewAuthHandler(service.NewAuthService(users, tokens), logger).Register(mux)
	handlers.NewWorkoutHandler(service.NewWorkoutService(workouts), logger).Register(mux)

	// The authentication gate runs on every request and never blocks;
	// protected routes enforce identity themselves.
	handler := middleware.CORS(cfg.CORSOrigins,
		middleware.RequestLogger(logger,
			middleware.Authenticate(tokens, logger, mux)))

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddress(),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	return &Server{inner: httpServer}, nil
}

// Handler exposes the fully wired middleware chain.
func (s *Server) Handler() http.Handler {
	return s.inner.Handler
}

// Start begins serving HTTP traffic.
func (s *Server) Start() error {
	return s.inner.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.inner.Shutdown(ctx)
}
