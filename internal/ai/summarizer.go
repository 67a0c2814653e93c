// Package ai defines the optional, non-deterministic layer on top of the
// scoring engine. Nothing here feeds back into scores; summaries are
// presentation only.
package ai

import (
	"context"

	"github.com/talentwire/matchengine/internal/marketplace"
	"github.com/talentwire/matchengine/internal/ranking"
)

// Summary is a human-readable digest of a ranking result.
type Summary struct {
	Text string
	Raw  string
}

type Summarizer interface {
	Summarize(ctx context.Context, candidate *marketplace.Candidate, matches *ranking.Matches) (*Summary, error)
}
