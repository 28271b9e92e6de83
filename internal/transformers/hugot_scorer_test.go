package transformers

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/spacesedan/emotion-detector/internal/emotion"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModelPath(t *testing.T) {
	assert.Equal(t,
		filepath.Join("models", "SamLowe_roberta-base-go_emotions-onnx"),
		ModelPath("models", "SamLowe/roberta-base-go_emotions-onnx"))
}

func TestResultFromLabels(t *testing.T) {
	result := ResultFromLabels(map[string]float64{
		"admiration": 0.8,
		"joy":        0.6,
		"sadness":    0.1,
		"Anger":      0.05,
		"fear":       0.01,
		"disgust":    0.02,
	})

	require.True(t, result.Valid())
	assert.Equal(t, emotion.Joy, result.Dominant())
	assert.Equal(t, emotion.Scores{Anger: 0.05, Disgust: 0.02, Fear: 0.01, Joy: 0.6, Sadness: 0.1}, result.Scores())
}

func TestResultFromLabels_NoTrackedLabels(t *testing.T) {
	result := ResultFromLabels(map[string]float64{"neutral": 0.97, "curiosity": 0.02})
	assert.False(t, result.Valid())
}

func TestHugotScorer_BlankText(t *testing.T) {
	var h HugotScorer
	result, err := h.Score(context.Background(), "  ")
	require.NoError(t, err)
	assert.False(t, result.Valid())
	assert.NoError(t, h.Close())
}
