package metrics

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/spacesedan/emotion-detector/internal/emotion"
)

const (
	OutcomeScored  = "scored"
	OutcomeInvalid = "invalid"
	OutcomeError   = "error"
)

var (
	// HTTPRequestsTotal counts served requests by route and status code
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "emotion_detector_http_requests_total",
			Help: "Total HTTP requests by route and status code",
		},
		[]string{"route", "code"},
	)

	// ScorerRequestsTotal counts scorer calls by backend and outcome
	ScorerRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "emotion_detector_scorer_requests_total",
			Help: "Total scorer calls by backend and outcome (scored/invalid/error)",
		},
		[]string{"backend", "outcome"},
	)

	// ScorerDuration tracks scorer latency in seconds
	ScorerDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "emotion_detector_scorer_duration_seconds",
			Help:    "Scorer call duration in seconds",
			Buckets: []float64{.01, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"backend"},
	)

	// ScorerHealthy is 1 while the last health probe succeeded
	ScorerHealthy = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "emotion_detector_scorer_healthy",
			Help: "Whether the last scorer health probe succeeded (1) or failed (0)",
		},
		[]string{"backend"},
	)
)

// InstrumentScorer records latency and outcome of every call to next.
func InstrumentScorer(backend string, next emotion.Scorer) emotion.Scorer {
	return emotion.ScorerFunc(func(ctx context.Context, text string) (emotion.Result, error) {
		start := time.Now()
		result, err := next.Score(ctx, text)
		ScorerDuration.WithLabelValues(backend).Observe(time.Since(start).Seconds())

		switch {
		case err != nil:
			ScorerRequestsTotal.WithLabelValues(backend, OutcomeError).Inc()
		case !result.Valid():
			ScorerRequestsTotal.WithLabelValues(backend, OutcomeInvalid).Inc()
		default:
			ScorerRequestsTotal.WithLabelValues(backend, OutcomeScored).Inc()
		}
		return result, err
	})
}

// SetScorerHealth publishes the latest probe result for backend.
func SetScorerHealth(backend string, healthy bool) {
	v := 0.0
	if healthy {
		v = 1
	}
	ScorerHealthy.WithLabelValues(backend).Set(v)
}
