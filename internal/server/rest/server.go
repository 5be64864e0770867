// Package rest exposes the account service over HTTP.
package rest

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/dmitrijs2005/recipekeeper/internal/logging"
	"github.com/dmitrijs2005/recipekeeper/internal/server/services"
)

type Server struct {
	address         string
	accounts        *services.AccountService
	logger          logging.Logger
	allowedOrigins  []string
	shutdownTimeout time.Duration
}

func NewServer(address string, l logging.Logger, accounts *services.AccountService, allowedOrigins []string, shutdownTimeout time.Duration) *Server {
	return &Server{
		address:         address,
		accounts:        accounts,
		logger:          l.With("module", "rest_server"),
		allowedOrigins:  allowedOrigins,
		shutdownTimeout: shutdownTimeout,
	}
}

// Routes builds the router. Methods not registered for a path get 405
// before any handler, and therefore before any authentication, runs.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, errMethodNotAllowed)
	})
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, errNotFound)
	})

	r.Get("/healthz", s.health)

	r.Route("/api/user", func(api chi.Router) {
		api.Post("/create/", s.signUp)
		api.Post("/token/", s.createToken)

		api.Get("/me/", s.getProfile)
		api.Put("/me/", s.updateProfile)
		api.Patch("/me/", s.updateProfile)
	})

	return r
}

// Run serves until ctx is cancelled, then drains in-flight requests for at
// most the shutdown timeout.
func (s *Server) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Handler:           s.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(shutdownCtx, "HTTP server shutdown", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", listen.Addr().String())

	if err := srv.Serve(listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
