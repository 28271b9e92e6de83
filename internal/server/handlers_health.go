package server

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

func (s *Server) handleLiveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status": "ok",
		"uptime": time.Since(s.startTime).Seconds(),
	})
}

func (s *Server) handleReadiness(c echo.Context) error {
	if s.healthy != nil && !s.healthy.Load() {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{
			"status":       "unhealthy",
			"failed_check": "scorer",
			"backend":      s.config.ScorerBackend,
		})
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status":  "ready",
		"backend": s.config.ScorerBackend,
	})
}
