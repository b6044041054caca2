// Package http exposes the operational endpoints of the service.
package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

const readinessTimeout = 2 * time.Second

// Pinger reports whether a backing dependency is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Server handles the health endpoints.
type Server struct {
	db     Pinger
	logger *slog.Logger
}

func NewServer(db Pinger, logger *slog.Logger) *Server {
	return &Server{
		db:     db,
		logger: logger.With("component", "http_server"),
	}
}

// Register adds the routes to e.
func (s *Server) Register(e *echo.Echo) {
	e.GET("/health", s.GetHealth)
	e.GET("/ready", s.GetReady)
}

// GetHealth handles GET /health. It answers as long as the process is up.
func (s *Server) GetHealth(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// GetReady handles GET /ready. It fails while the database is unreachable.
func (s *Server) GetReady(ctx echo.Context) error {
	pingCtx, cancel := context.WithTimeout(ctx.Request().Context(), readinessTimeout)
	defer cancel()

	if err := s.db.PingContext(pingCtx); err != nil {
		s.logger.WarnContext(pingCtx, "Readiness check failed", "error", err)
		return ctx.String(http.StatusServiceUnavailable, "Database unavailable")
	}
	return ctx.String(http.StatusOK, "Ready")
}
