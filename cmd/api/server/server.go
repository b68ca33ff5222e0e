package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"user-rest-service/internal/config"
)

// Server wraps the HTTP server serving the REST API.
type Server struct {
	HTTP *http.Server
	log  *zap.Logger
}

// New creates the HTTP server around the given router.
func New(cfg *config.Config, router *gin.Engine, l *zap.Logger) *Server {
	return &Server{
		HTTP: &http.Server{
			Addr:              ":" + cfg.App.HTTPPort,
			Handler:           router,
			ReadHeaderTimeout: 2 * time.Second,
			ReadTimeout:       10 * time.Second,
			WriteTimeout:      10 * time.Second,
			IdleTimeout:       120 * time.Second,
		},
		log: l,
	}
}

// Start runs the HTTP server until it is shut down. http.ErrServerClosed
// is reported as a clean exit.
func (s *Server) Start() error {
	s.log.Info("HTTP server running", zap.String("address", s.HTTP.Addr))

	if err := s.HTTP.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown stops accepting new connections and waits for in-flight
// requests to finish, bounded by ctx.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.HTTP.Shutdown(ctx)
}
