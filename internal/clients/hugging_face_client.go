package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/spacesedan/emotion-detector/config"
	"github.com/spacesedan/emotion-detector/internal/emotion"
	"github.com/spacesedan/emotion-detector/internal/models"
)

// HuggingFaceClient scores text with a hosted text-classification model
// whose labels include the five tracked emotions.
type HuggingFaceClient struct {
	Client *http.Client
	url    string
	token  string
}

func NewHuggingFaceClient(cfg config.HuggingFaceConfig, timeout time.Duration) *HuggingFaceClient {
	slog.Info("[HuggingFaceClient] Initializing Client",
		slog.String("url", cfg.URL),
		slog.Duration("timeout", timeout))

	return &HuggingFaceClient{
		Client: &http.Client{Timeout: timeout},
		url:    cfg.URL,
		token:  cfg.Token,
	}
}

func (h *HuggingFaceClient) Score(ctx context.Context, text string) (emotion.Result, error) {
	if emotion.IsBlank(text) {
		return emotion.Invalid(), nil
	}

	headers := map[string]string{}
	if h.token != "" {
		headers["Authorization"] = "Bearer " + h.token
	}

	start := time.Now()
	var raw json.RawMessage
	err := postJSON(ctx, h.Client, "[HuggingFaceClient]", h.url, headers,
		models.HuggingFaceClassificationRequest{
			Inputs:     text,
			Parameters: models.HuggingFaceClassificationOpts{TopK: HF_TOP_K},
		}, &raw)
	if err != nil {
		slog.Error("[HuggingFaceClient] Emotion classification request failed",
			slog.Duration("elapsed", time.Since(start)))
		return emotion.Result{}, fmt.Errorf("huggingface classification: %w", err)
	}

	labels, err := decodeClassification(raw)
	if err != nil {
		return emotion.Result{}, fmt.Errorf("huggingface classification: %w", err)
	}

	var scores emotion.Scores
	matched := 0
	for _, l := range labels {
		e, ok := emotion.ParseEmotion(strings.ToLower(l.Label))
		if !ok {
			continue
		}
		scores.Set(e, l.Score)
		matched++
	}
	if matched == 0 {
		slog.Info("[HuggingFaceClient] Model returned none of the tracked emotions",
			slog.Int("labels", len(labels)))
		return emotion.Invalid(), nil
	}

	slog.Debug("[HuggingFaceClient] Emotion classification successful",
		slog.Duration("elapsed", time.Since(start)))
	return emotion.Scored(scores), nil
}

// decodeClassification accepts both the nested per-input shape and the flat
// list some deployments return for a single input.
func decodeClassification(raw json.RawMessage) ([]models.HuggingFaceLabelScore, error) {
	var nested models.HuggingFaceClassificationResponse
	if err := json.Unmarshal(raw, &nested); err == nil {
		if len(nested) == 0 {
			return nil, nil
		}
		return nested[0], nil
	}

	var flat []models.HuggingFaceLabelScore
	if err := json.Unmarshal(raw, &flat); err != nil {
		return nil, fmt.Errorf("unexpected response shape: %w", err)
	}
	return flat, nil
}
