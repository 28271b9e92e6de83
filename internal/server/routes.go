package server

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spacesedan/emotion-detector/internal/web"
)

func (s *Server) registerRoutes() {
	s.echo.GET("/", s.handleHome)
	s.echo.GET("/emotionDetector", s.handleEmotionDetector)
	s.echo.StaticFS("/static", web.StaticFS())

	// Observability endpoints
	s.echo.GET("/health/live", s.handleLiveness)
	s.echo.GET("/health/ready", s.handleReadiness)
	if s.config.MetricsEnabled {
		s.echo.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	}
}
