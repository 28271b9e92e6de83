package transformers

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/knights-analytics/hugot"
	"github.com/knights-analytics/hugot/pipelines"
	"github.com/spacesedan/emotion-detector/config"
	"github.com/spacesedan/emotion-detector/internal/emotion"
)

const pipelineName = "emotionClassificationPipeline"

// HugotScorer runs an ONNX emotion classifier in process.
type HugotScorer struct {
	session  *hugot.Session
	pipeline *pipelines.TextClassificationPipeline
}

// ModelPath is where DownloadModel stores model under dir.
func ModelPath(dir, model string) string {
	return filepath.Join(dir, strings.ReplaceAll(model, "/", "_"))
}

// NewHugotScorer downloads the configured model on first use and builds a
// multi-label classification pipeline over it.
func NewHugotScorer(cfg config.HugotConfig) (*HugotScorer, error) {
	if err := os.MkdirAll(cfg.ModelDir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("[HugotScorer] failed to create model directory: %w", err)
	}

	modelPath := ModelPath(cfg.ModelDir, cfg.Model)
	if _, err := os.Stat(modelPath); os.IsNotExist(err) {
		slog.Info("[HugotScorer] Model not found, downloading...",
			slog.String("model", cfg.Model))

		opts := hugot.NewDownloadOptions()
		opts.OnnxFilePath = cfg.OnnxFile
		modelPath, err = hugot.DownloadModel(cfg.Model, cfg.ModelDir, opts)
		if err != nil {
			return nil, fmt.Errorf("[HugotScorer] failed to download model %s: %w", cfg.Model, err)
		}
		slog.Info("[HugotScorer] Model downloaded successfully", slog.String("path", modelPath))
	} else {
		slog.Info("[HugotScorer] Using existing model", slog.String("path", modelPath))
	}

	session, err := hugot.NewORTSession()
	if err != nil {
		return nil, fmt.Errorf("[HugotScorer] failed to initialize hugot session: %w", err)
	}

	pipeline, err := hugot.NewPipeline(session, hugot.TextClassificationConfig{
		ModelPath: modelPath,
		Name:      pipelineName,
		Options: []hugot.TextClassificationOption{
			pipelines.WithMultiLabel(),
		},
	})
	if err != nil {
		_ = session.Destroy()
		return nil, fmt.Errorf("[HugotScorer] failed to initialize pipeline: %w", err)
	}

	return &HugotScorer{session: session, pipeline: pipeline}, nil
}

func (h *HugotScorer) Score(ctx context.Context, text string) (emotion.Result, error) {
	if emotion.IsBlank(text) {
		return emotion.Invalid(), nil
	}
	if err := ctx.Err(); err != nil {
		return emotion.Result{}, err
	}

	output, err := h.pipeline.RunPipeline([]string{text})
	if err != nil {
		return emotion.Result{}, fmt.Errorf("hugot pipeline: %w", err)
	}
	if len(output.ClassificationOutputs) == 0 {
		return emotion.Invalid(), nil
	}

	labels := make(map[string]float64, len(output.ClassificationOutputs[0]))
	for _, c := range output.ClassificationOutputs[0] {
		labels[c.Label] = float64(c.Score)
	}
	return ResultFromLabels(labels), nil
}

// ResultFromLabels keeps the five tracked emotions out of a classifier's
// label set. A label set with none of them is unscorable.
func ResultFromLabels(labels map[string]float64) emotion.Result {
	var scores emotion.Scores
	matched := false
	for label, score := range labels {
		if e, ok := emotion.ParseEmotion(strings.ToLower(label)); ok {
			scores.Set(e, score)
			matched = true
		}
	}
	if !matched {
		return emotion.Invalid()
	}
	return emotion.Scored(scores)
}

func (h *HugotScorer) Close() error {
	if h.session == nil {
		return nil
	}
	return h.session.Destroy()
}
