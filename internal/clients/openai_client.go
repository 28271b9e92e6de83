package clients

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/spacesedan/emotion-detector/config"
	"github.com/spacesedan/emotion-detector/internal/emotion"
	"github.com/spacesedan/emotion-detector/internal/models"
)

const openAIEmotionPrompt = `Score the emotions expressed in the user's text.
Return only a JSON object with exactly these keys:
{"anger": 0.0, "disgust": 0.0, "fear": 0.0, "joy": 0.0, "sadness": 0.0, "scorable": true}
- Each score is a number between 0 and 1.
- Set "scorable" to false when the text carries no meaning that can be scored.
- No Markdown formatting and no text before or after the JSON.`

// OpenAIClient scores text by asking a chat model for the five emotion scores.
type OpenAIClient struct {
	Client *openai.Client
	model  string
}

func NewOpenAIClient(cfg config.OpenAIConfig, timeout time.Duration) (*OpenAIClient, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("[OpenAIClient] missing OPENAI_API_KEY")
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithHTTPClient(&http.Client{Timeout: timeout}),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	slog.Info("[OpenAIClient] OpenAI client initialized",
		slog.String("model", cfg.Model),
		slog.Duration("timeout", timeout))

	return &OpenAIClient{
		Client: openai.NewClient(opts...),
		model:  cfg.Model,
	}, nil
}

func (o *OpenAIClient) Score(ctx context.Context, text string) (emotion.Result, error) {
	if emotion.IsBlank(text) {
		return emotion.Invalid(), nil
	}

	start := time.Now()
	completion, err := o.Client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: openai.F([]openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(openAIEmotionPrompt),
			openai.UserMessage(text),
		}),
		Model:       openai.F(openai.ChatModel(o.model)),
		Temperature: openai.Float(0),
	})
	if err != nil {
		slog.Error("[OpenAIClient] Chat completion failed",
			slog.Duration("elapsed", time.Since(start)),
			slog.String("error", err.Error()))
		return emotion.Result{}, fmt.Errorf("openai chat completion: %w", err)
	}

	if len(completion.Choices) == 0 || strings.TrimSpace(completion.Choices[0].Message.Content) == "" {
		return emotion.Result{}, errors.New("openai chat completion: empty response")
	}

	var resp models.OpenAIEmotionResponse
	content := cleanOpenAIResponse(completion.Choices[0].Message.Content)
	if err := json.Unmarshal([]byte(content), &resp); err != nil {
		slog.Warn("[OpenAIClient] Failed to parse model reply",
			slog.String("error", err.Error()),
			getPreview([]byte(content)))
		return emotion.Result{}, fmt.Errorf("openai chat completion: failed to parse reply: %w", err)
	}

	scores := emotion.Scores{
		Anger:   resp.Anger,
		Disgust: resp.Disgust,
		Fear:    resp.Fear,
		Joy:     resp.Joy,
		Sadness: resp.Sadness,
	}
	if (resp.Scorable != nil && !*resp.Scorable) || scores == (emotion.Scores{}) {
		return emotion.Invalid(), nil
	}

	slog.Debug("[OpenAIClient] Chat completion successful",
		slog.Duration("elapsed", time.Since(start)))
	return emotion.Scored(scores), nil
}

// cleanOpenAIResponse strips the code fences chat models like to wrap JSON in.
func cleanOpenAIResponse(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	return strings.TrimSpace(content)
}
