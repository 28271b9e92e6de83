package clients

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/spacesedan/emotion-detector/config"
	"github.com/spacesedan/emotion-detector/internal/emotion"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chatCompletionBody(t *testing.T, content string) []byte {
	t.Helper()
	body, err := json.Marshal(map[string]any{
		"id":      "chatcmpl-test",
		"object":  "chat.completion",
		"created": 1700000000,
		"model":   "gpt-4o-mini",
		"choices": []map[string]any{{
			"index":         0,
			"finish_reason": "stop",
			"logprobs":      nil,
			"message": map[string]any{
				"role":    "assistant",
				"content": content,
				"refusal": nil,
			},
		}},
		"usage": map[string]any{"prompt_tokens": 10, "completion_tokens": 10, "total_tokens": 20},
	})
	require.NoError(t, err)
	return body
}

func newOpenAITestClient(t *testing.T, reply string) *OpenAIClient {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))

		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "gpt-4o-mini", req["model"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(chatCompletionBody(t, reply))
	}))
	t.Cleanup(srv.Close)

	client, err := NewOpenAIClient(config.OpenAIConfig{
		APIKey:  "sk-test",
		BaseURL: srv.URL + "/",
		Model:   "gpt-4o-mini",
	}, 5*time.Second)
	require.NoError(t, err)
	return client
}

func TestNewOpenAIClient_RequiresKey(t *testing.T) {
	_, err := NewOpenAIClient(config.OpenAIConfig{Model: "gpt-4o-mini"}, time.Second)
	assert.Error(t, err)
}

func TestOpenAIClient_Score(t *testing.T) {
	client := newOpenAITestClient(t,
		"```json\n{\"anger\":0.7,\"disgust\":0.1,\"fear\":0.05,\"joy\":0.0,\"sadness\":0.15,\"scorable\":true}\n```")

	result, err := client.Score(context.Background(), "I am furious about this")
	require.NoError(t, err)
	require.True(t, result.Valid())
	assert.Equal(t, emotion.Anger, result.Dominant())
	assert.Equal(t, 0.15, result.Scores().Sadness)
}

func TestOpenAIClient_Unscorable(t *testing.T) {
	for _, reply := range []string{
		`{"anger":0,"disgust":0,"fear":0,"joy":0,"sadness":0}`,
		`{"anger":0.2,"disgust":0,"fear":0,"joy":0,"sadness":0,"scorable":false}`,
	} {
		client := newOpenAITestClient(t, reply)

		result, err := client.Score(context.Background(), "qwfp")
		require.NoError(t, err)
		assert.False(t, result.Valid())
	}
}

func TestOpenAIClient_GarbledReply(t *testing.T) {
	client := newOpenAITestClient(t, "I feel like this text is happy")

	_, err := client.Score(context.Background(), "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse reply")
}

func TestCleanOpenAIResponse(t *testing.T) {
	assert.Equal(t, `{"a":1}`, cleanOpenAIResponse("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, cleanOpenAIResponse("  {\"a\":1} "))
}
