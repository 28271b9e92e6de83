package scorers

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spacesedan/emotion-detector/config"
	"github.com/spacesedan/emotion-detector/internal/clients"
	"github.com/spacesedan/emotion-detector/internal/emotion"
	"github.com/spacesedan/emotion-detector/internal/metrics"
	"github.com/spacesedan/emotion-detector/internal/transformers"
)

// New builds the scorer selected by cfg.ScorerBackend, wrapped with metrics
// and, when enabled, markdown cleanup. The returned close func releases any
// resources the backend holds and is always safe to call.
func New(ctx context.Context, cfg config.ServerConfig) (emotion.Scorer, func(), error) {
	var (
		scorer emotion.Scorer
		closer = func() {}
	)

	switch cfg.ScorerBackend {
	case config.BACKEND_WATSON:
		scorer = clients.NewWatsonClient(ctx, cfg.Watson, cfg.ScorerTimeout)
	case config.BACKEND_HUGGINGFACE:
		scorer = clients.NewHuggingFaceClient(cfg.HuggingFace, cfg.ScorerTimeout)
	case config.BACKEND_OPENAI:
		c, err := clients.NewOpenAIClient(cfg.OpenAI, cfg.ScorerTimeout)
		if err != nil {
			return nil, closer, err
		}
		scorer = c
	case config.BACKEND_LOCAL:
		h, err := transformers.NewHugotScorer(cfg.Hugot)
		if err != nil {
			return nil, closer, err
		}
		scorer = h
		closer = func() {
			if err := h.Close(); err != nil {
				slog.Warn("[Scorers] Failed to destroy hugot session",
					slog.String("error", err.Error()))
			}
		}
	default:
		return nil, closer, fmt.Errorf("unknown scorer backend %q", cfg.ScorerBackend)
	}

	if cfg.StripMarkdown {
		scorer = emotion.PlainText(scorer)
	}

	slog.Info("[Scorers] Scorer ready",
		slog.String("backend", cfg.ScorerBackend),
		slog.Bool("strip_markdown", cfg.StripMarkdown))

	return metrics.InstrumentScorer(cfg.ScorerBackend, scorer), closer, nil
}
