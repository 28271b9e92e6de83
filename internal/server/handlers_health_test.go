package server

import (
	"encoding/json"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleLiveness(t *testing.T) {
	srv := newTestServer(t, joyScorer(), nil)

	rec := get(t, srv, "/health/live")

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.Contains(t, body, "uptime")
}

func TestHandleReadiness(t *testing.T) {
	healthy := &atomic.Bool{}
	healthy.Store(true)
	srv := newTestServer(t, joyScorer(), healthy)

	rec := get(t, srv, "/health/ready")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ready","backend":"watson"}`, rec.Body.String())

	healthy.Store(false)

	rec = get(t, srv, "/health/ready")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"status":"unhealthy","failed_check":"scorer","backend":"watson"}`, rec.Body.String())
}

func TestHandleReadiness_NoMonitor(t *testing.T) {
	srv := newTestServer(t, joyScorer(), nil)

	rec := get(t, srv, "/health/ready")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	srv := newTestServer(t, joyScorer(), nil)
	_ = get(t, srv, "/emotionDetector?textToAnalyze=")

	rec := get(t, srv, "/metrics")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "emotion_detector_http_requests_total")
}
