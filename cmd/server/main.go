package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/spacesedan/emotion-detector/config"
	"github.com/spacesedan/emotion-detector/internal/emotion"
	"github.com/spacesedan/emotion-detector/internal/logging"
	"github.com/spacesedan/emotion-detector/internal/monitoring"
	"github.com/spacesedan/emotion-detector/internal/scorers"
	"github.com/spacesedan/emotion-detector/internal/server"
)

const shutdownTimeout = 10 * time.Second

func main() {
	config.LoadEnv(config.AppEnv())

	cfg, err := config.LoadServerConfig()
	if err != nil {
		logging.InitLogger("info")
		slog.Error("[Main] Invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logging.InitLogger(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	scorer, closeScorer, err := scorers.New(ctx, cfg)
	if err != nil {
		slog.Error("[Main] Failed to build scorer",
			slog.String("backend", cfg.ScorerBackend),
			slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closeScorer()

	scorerHealthy := &atomic.Bool{}
	scorerHealthy.Store(true)
	go monitoring.MonitorScorerHealth(ctx, cfg.ScorerBackend, scorer, cfg.HealthCheckInterval, scorerHealthy)

	srv, err := server.NewServer(cfg, emotion.NewDetector(scorer, cfg.ScorerTimeout), scorerHealthy)
	if err != nil {
		slog.Error("[Main] Failed to create server", slog.String("error", err.Error()))
		os.Exit(1)
	}

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	select {
	case err := <-errChan:
		if err != nil {
			slog.Error("[Main] Server failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
	case <-ctx.Done():
		slog.Info("Shutting down server gracefully...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("[Main] Shutdown failed", slog.String("error", err.Error()))
		}
	}
}
