// Package api exposes the brand voice extraction pipeline over HTTP.
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jonesrussell/brand-voice/internal/config"
	"github.com/jonesrussell/brand-voice/internal/logging"
	"github.com/jonesrussell/brand-voice/internal/telemetry"
)

// Server timeouts.
const (
	readTimeout     = 15 * time.Second
	writeTimeout    = 90 * time.Second
	idleTimeout     = 60 * time.Second
	shutdownTimeout = 10 * time.Second
)

// Server wraps the HTTP server hosting the API.
type Server struct {
	httpServer *http.Server
	logger     logging.Logger
}

// NewServer builds the gin engine, registers routes and middleware, and
// returns a server ready to start.
func NewServer(cfg *config.Config, handler *Handler, provider *telemetry.Provider, logger logging.Logger) *Server {
	if !cfg.Service.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestID())
	router.Use(RequestLogger(logger))

	RegisterRoutes(router, handler, provider, cfg.Auth.JWTSecret)

	return &Server{
		httpServer: &http.Server{
			Addr:         fmt.Sprintf(":%d", cfg.Service.Port),
			Handler:      router,
			ReadTimeout:  readTimeout,
			WriteTimeout: writeTimeout,
			IdleTimeout:  idleTimeout,
		},
		logger: logger,
	}
}

// Start serves HTTP until the server is shut down.
func (s *Server) Start() error {
	s.logger.Info("starting HTTP server", logging.String("addr", s.httpServer.Addr))

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests and stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down HTTP server")

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	return nil
}
