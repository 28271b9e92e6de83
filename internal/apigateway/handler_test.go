package apigateway

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/spacesedan/emotion-detector/internal/emotion"
	"github.com/spacesedan/emotion-detector/internal/web"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T, scorer emotion.Scorer) *Handler {
	t.Helper()
	home, err := web.NewHomePage()
	require.NoError(t, err)
	return NewHandler(emotion.NewDetector(scorer, time.Second), home)
}

func request(method, path string, query map[string]string) events.APIGatewayV2HTTPRequest {
	req := events.APIGatewayV2HTTPRequest{
		RawPath:               path,
		QueryStringParameters: query,
	}
	req.RequestContext.HTTP.Method = method
	req.RequestContext.HTTP.Path = path
	return req
}

var sadScorer = emotion.ScorerFunc(func(_ context.Context, text string) (emotion.Result, error) {
	if emotion.IsBlank(text) {
		return emotion.Invalid(), nil
	}
	return emotion.Scored(emotion.Scores{Anger: 0.1, Disgust: 0.05, Fear: 0.2, Joy: 0.01, Sadness: 0.64}), nil
})

func TestHandle_EmotionDetector(t *testing.T) {
	h := newTestHandler(t, sadScorer)

	resp, err := h.Handle(context.Background(),
		request(http.MethodGet, "/emotionDetector", map[string]string{"textToAnalyze": "I lost my keys"}))

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t,
		"For the given statement, the system response is 'anger': 0.1, 'disgust': 0.05, "+
			"'fear': 0.2, 'joy': 0.01 and 'sadness': 0.64. The dominant emotion is sadness.",
		resp.Body)
}

func TestHandle_InvalidText(t *testing.T) {
	h := newTestHandler(t, sadScorer)

	for _, query := range []map[string]string{nil, {"textToAnalyze": ""}} {
		resp, err := h.Handle(context.Background(), request(http.MethodGet, "/emotionDetector", query))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "Invalid text! Please try again!", resp.Body)
	}
}

func TestHandle_ScorerFailure(t *testing.T) {
	h := newTestHandler(t, emotion.ScorerFunc(func(context.Context, string) (emotion.Result, error) {
		return emotion.Result{}, errors.New("timeout")
	}))

	resp, err := h.Handle(context.Background(),
		request(http.MethodGet, "/emotionDetector", map[string]string{"textToAnalyze": "hi"}))

	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, internalErrorMessage, resp.Body)
}

func TestHandle_HomeAndStatic(t *testing.T) {
	h := newTestHandler(t, sadScorer)

	home, err := h.Handle(context.Background(), request(http.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, home.StatusCode)
	assert.Contains(t, home.Headers["Content-Type"], "text/html")
	assert.Contains(t, home.Body, "textToAnalyze")

	script, err := h.Handle(context.Background(), request(http.MethodGet, "/static/mywebscript.js", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, script.StatusCode)
	assert.Contains(t, script.Body, "emotionDetector")

	missing, err := h.Handle(context.Background(), request(http.MethodGet, "/static/nope.css", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, missing.StatusCode)
}

func TestHandle_RoutingErrors(t *testing.T) {
	h := newTestHandler(t, sadScorer)

	resp, err := h.Handle(context.Background(), request(http.MethodPost, "/emotionDetector", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)

	resp, err = h.Handle(context.Background(), request(http.MethodGet, "/other", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
