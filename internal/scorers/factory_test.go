package scorers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/spacesedan/emotion-detector/config"
	"github.com/spacesedan/emotion-detector/internal/emotion"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Watson(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"emotionPredictions":[{"emotion":{"anger":0.1,"disgust":0.1,"fear":0.1,"joy":0.1,"sadness":0.6}}]}`))
	}))
	t.Cleanup(srv.Close)

	scorer, closeFn, err := New(context.Background(), config.ServerConfig{
		ScorerBackend: config.BACKEND_WATSON,
		ScorerTimeout: time.Second,
		Watson:        config.WatsonConfig{URL: srv.URL, ModelID: config.DEFAULT_WATSON_MODEL_ID},
	})
	require.NoError(t, err)
	defer closeFn()

	result, err := scorer.Score(context.Background(), "I miss my old friends")
	require.NoError(t, err)
	assert.Equal(t, emotion.Sadness, result.Dominant())
}

func TestNew_HuggingFaceWithMarkdownCleanup(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[[{"label":"disgust","score":0.8},{"label":"anger","score":0.2}]]`))
	}))
	t.Cleanup(srv.Close)

	scorer, closeFn, err := New(context.Background(), config.ServerConfig{
		ScorerBackend: config.BACKEND_HUGGINGFACE,
		ScorerTimeout: time.Second,
		StripMarkdown: true,
		HuggingFace:   config.HuggingFaceConfig{URL: srv.URL},
	})
	require.NoError(t, err)
	defer closeFn()

	result, err := scorer.Score(context.Background(), "**gross**")
	require.NoError(t, err)
	assert.Equal(t, emotion.Disgust, result.Dominant())

	result, err = scorer.Score(context.Background(), "[](https://example.com)")
	require.NoError(t, err)
	assert.False(t, result.Valid())
}

func TestNew_Errors(t *testing.T) {
	_, closeFn, err := New(context.Background(), config.ServerConfig{ScorerBackend: "oracle"})
	require.Error(t, err)
	closeFn()

	_, _, err = New(context.Background(), config.ServerConfig{ScorerBackend: config.BACKEND_OPENAI})
	assert.Error(t, err)
}
