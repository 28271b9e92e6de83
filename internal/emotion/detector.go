package emotion

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrInvalidText is returned by Detect when the scorer could not score the
// text it was given.
var ErrInvalidText = errors.New(InvalidTextMessage)

// Detector runs a single scorer call per request and renders its outcome.
// It holds no per-request state and is safe for concurrent use.
type Detector struct {
	scorer  Scorer
	timeout time.Duration
}

// NewDetector returns a Detector bounding each scorer call by timeout.
// A timeout of zero leaves the call bounded only by the caller's context.
func NewDetector(scorer Scorer, timeout time.Duration) *Detector {
	return &Detector{scorer: scorer, timeout: timeout}
}

// Analyze scores text and returns the raw result.
func (d *Detector) Analyze(ctx context.Context, text string) (Result, error) {
	if d.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.timeout)
		defer cancel()
	}

	result, err := d.scorer.Score(ctx, text)
	if err != nil {
		return Result{}, fmt.Errorf("score text: %w", err)
	}
	return result, nil
}

// Detect scores text and returns the formatted response body, or
// ErrInvalidText when the text could not be scored.
func (d *Detector) Detect(ctx context.Context, text string) (string, error) {
	result, err := d.Analyze(ctx, text)
	if err != nil {
		return "", err
	}
	if !result.Valid() {
		return "", ErrInvalidText
	}
	return FormatResponse(result), nil
}
