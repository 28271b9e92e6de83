package clients

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/spacesedan/emotion-detector/config"
	"github.com/spacesedan/emotion-detector/internal/emotion"
	"github.com/spacesedan/emotion-detector/internal/models"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

// WatsonClient scores text with the Watson NLP EmotionPredict endpoint.
type WatsonClient struct {
	Client  *http.Client
	url     string
	modelID string
}

// NewWatsonClient builds a client for cfg. When cfg.APIKey is set every
// request carries an IAM bearer token fetched and refreshed by an OAuth2
// token source.
func NewWatsonClient(ctx context.Context, cfg config.WatsonConfig, timeout time.Duration) *WatsonClient {
	client := &http.Client{Timeout: timeout}

	if cfg.APIKey != "" {
		iamConf := &clientcredentials.Config{
			TokenURL:  cfg.IAMURL,
			AuthStyle: oauth2.AuthStyleInParams,
			EndpointParams: url.Values{
				"grant_type": {WATSON_IAM_GRANT},
				"apikey":     {cfg.APIKey},
			},
		}
		ctx = context.WithValue(ctx, oauth2.HTTPClient, &http.Client{Timeout: timeout})
		client = iamConf.Client(ctx)
		client.Timeout = timeout
	}

	slog.Info("[WatsonClient] Initializing Client",
		slog.String("url", cfg.URL),
		slog.Bool("iam_auth", cfg.APIKey != ""),
		slog.Duration("timeout", timeout))

	return &WatsonClient{
		Client:  client,
		url:     cfg.URL,
		modelID: cfg.ModelID,
	}
}

func (w *WatsonClient) Score(ctx context.Context, text string) (emotion.Result, error) {
	if emotion.IsBlank(text) {
		return emotion.Invalid(), nil
	}

	start := time.Now()
	var resp models.WatsonEmotionResponse
	err := postJSON(ctx, w.Client, "[WatsonClient]", w.url,
		map[string]string{WATSON_MODEL_HEADER: w.modelID},
		models.WatsonEmotionRequest{RawDocument: models.WatsonRawDocument{Text: text}},
		&resp)

	var statusErr *StatusError
	if errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusBadRequest {
		slog.Info("[WatsonClient] Text rejected as unscorable",
			slog.Duration("elapsed", time.Since(start)))
		return emotion.Invalid(), nil
	}
	if err != nil {
		return emotion.Result{}, fmt.Errorf("watson emotion predict: %w", err)
	}

	if len(resp.EmotionPredictions) == 0 {
		slog.Info("[WatsonClient] No emotion predictions returned",
			slog.Duration("elapsed", time.Since(start)))
		return emotion.Invalid(), nil
	}

	scores, err := watsonScores(resp.EmotionPredictions[0].Emotion)
	if err != nil {
		return emotion.Result{}, err
	}

	slog.Debug("[WatsonClient] Emotion predict successful",
		slog.Duration("elapsed", time.Since(start)))
	return emotion.Scored(scores), nil
}

func watsonScores(e models.WatsonEmotionScores) (emotion.Scores, error) {
	fields := []struct {
		label emotion.Emotion
		value *float64
	}{
		{emotion.Anger, e.Anger},
		{emotion.Disgust, e.Disgust},
		{emotion.Fear, e.Fear},
		{emotion.Joy, e.Joy},
		{emotion.Sadness, e.Sadness},
	}

	var scores emotion.Scores
	for _, f := range fields {
		if f.value == nil {
			return emotion.Scores{}, fmt.Errorf("watson emotion predict: response missing %q score", f.label)
		}
		scores.Set(f.label, *f.value)
	}
	return scores, nil
}
