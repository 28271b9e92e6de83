package web

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHomePage(t *testing.T) {
	first, err := NewHomePage()
	require.NoError(t, err)
	second, err := NewHomePage()
	require.NoError(t, err)

	assert.Contains(t, string(first.Bytes()), "<title>Emotion Detector</title>")
	assert.Contains(t, string(first.Bytes()), `name="textToAnalyze"`)
	assert.Equal(t, first.Bytes(), second.Bytes())
}

func TestStaticFS(t *testing.T) {
	script, err := fs.ReadFile(StaticFS(), "mywebscript.js")
	require.NoError(t, err)
	assert.Contains(t, string(script), "/emotionDetector?textToAnalyze=")
}
