package emotion

import (
	"context"
	"strings"
)

// Scorer maps text to emotion scores. Empty, blank or otherwise unscorable
// text must come back as Invalid() with a nil error; an error always means
// the scorer itself failed.
type Scorer interface {
	Score(ctx context.Context, text string) (Result, error)
}

// ScorerFunc adapts a plain function to the Scorer interface.
type ScorerFunc func(ctx context.Context, text string) (Result, error)

func (f ScorerFunc) Score(ctx context.Context, text string) (Result, error) {
	return f(ctx, text)
}

// IsBlank reports whether text has nothing a scorer could work with.
func IsBlank(text string) bool {
	return strings.TrimSpace(text) == ""
}
