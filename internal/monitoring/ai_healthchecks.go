package monitoring

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/spacesedan/emotion-detector/internal/emotion"
	"github.com/spacesedan/emotion-detector/internal/metrics"
)

const (
	HEALTHCHECK_PROBE   = "I am glad to see the service is up and running."
	HEALTHCHECK_TIMEOUT = 5 * time.Second
)

// ScorerHealthCheck scores a fixed probe sentence. The backend is healthy
// when it answers without error; an invalid result still counts as an answer.
func ScorerHealthCheck(ctx context.Context, scorer emotion.Scorer) bool {
	ctx, cancel := context.WithTimeout(ctx, HEALTHCHECK_TIMEOUT)
	defer cancel()

	_, err := scorer.Score(ctx, HEALTHCHECK_PROBE)
	if err != nil {
		slog.Debug("[HealthCheck] Probe failed", slog.String("error", err.Error()))
	}
	return err == nil
}

// MonitorScorerHealth probes scorer immediately and then every interval,
// publishing the result to healthy until ctx is done.
func MonitorScorerHealth(ctx context.Context, backend string, scorer emotion.Scorer, interval time.Duration, healthy *atomic.Bool) {
	check := func() {
		isHealthy := ScorerHealthCheck(ctx, scorer)
		if ctx.Err() != nil {
			return
		}
		wasHealthy := healthy.Swap(isHealthy)
		if !isHealthy {
			slog.Warn("[HealthCheck] Scorer is unhealthy", slog.String("backend", backend))
		} else if !wasHealthy {
			slog.Info("[HealthCheck] Scorer recovered", slog.String("backend", backend))
		}
		metrics.SetScorerHealth(backend, isHealthy)
	}

	check()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			check()
		}
	}
}
