package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spacesedan/emotion-detector/config"
	"github.com/spacesedan/emotion-detector/internal/emotion"
	"github.com/spacesedan/emotion-detector/internal/metrics"
	"github.com/spacesedan/emotion-detector/internal/web"
)

type Server struct {
	echo      *echo.Echo
	config    config.ServerConfig
	detector  *emotion.Detector
	home      *web.HomePage
	healthy   *atomic.Bool
	startTime time.Time
}

// NewServer wires the routes for cfg. healthy reports the scorer health seen
// by the background monitor; nil means readiness is never gated on it.
func NewServer(cfg config.ServerConfig, detector *emotion.Detector, healthy *atomic.Bool) (*Server, error) {
	home, err := web.NewHomePage()
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURIPath:  true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("path", v.URIPath),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			}
			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
			}
			slog.LogAttrs(c.Request().Context(), slog.LevelInfo, "[Server] Request", attrs...)
			return nil
		},
	}))
	e.Use(requestMetrics)
	e.Use(middleware.Recover())

	srv := &Server{
		echo:      e,
		config:    cfg,
		detector:  detector,
		home:      home,
		healthy:   healthy,
		startTime: time.Now(),
	}

	srv.registerRoutes()

	return srv, nil
}

// ServeHTTP lets the server be driven in-process.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.echo.ServeHTTP(w, r)
}

func (s *Server) Start() error {
	slog.Info("[Server] Starting server", slog.String("addr", s.config.Addr()))
	if err := s.echo.Start(s.config.Addr()); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server stopped: %w", err)
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

func requestMetrics(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		err := next(c)

		status := c.Response().Status
		if err != nil {
			status = http.StatusInternalServerError
			if he, ok := err.(*echo.HTTPError); ok {
				status = he.Code
			}
		}
		metrics.HTTPRequestsTotal.WithLabelValues(c.Path(), strconv.Itoa(status)).Inc()

		return err
	}
}
