package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	_ "embed"

	"go.uber.org/zap"

	"github.com/talentwire/matchengine/internal/ai"
	"github.com/talentwire/matchengine/internal/marketplace"
	"github.com/talentwire/matchengine/internal/ranking"
	"github.com/talentwire/matchengine/internal/utils"
)

type contentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

//go:embed prompt.md
var promptTemplate string

const (
	defaultMaxLogLength = 200
	// Summaries cover at most this many matches so the prompt stays small.
	maxSummarizedMatches = 10
)

// Summarizer turns a ranked match list into a recruiter-facing digest via
// Gemini. It never alters scores; the breakdowns it receives are final.
type Summarizer struct {
	generator contentGenerator
	logger    *zap.Logger
	maxLogLen int
}

func NewSummarizer(generator contentGenerator, logger *zap.Logger, maxLogLength int) *Summarizer {
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Summarizer{
		generator: generator,
		logger:    logger,
		maxLogLen: maxLogLength,
	}
}

func (s *Summarizer) Summarize(ctx context.Context, candidate *marketplace.Candidate, matches *ranking.Matches) (*ai.Summary, error) {
	if candidate == nil {
		return nil, fmt.Errorf("candidate is required")
	}
	if matches == nil || matches.Len() == 0 {
		return nil, fmt.Errorf("at least one match is required")
	}

	top := matches.Items
	if len(top) > maxSummarizedMatches {
		top = top[:maxSummarizedMatches]
	}

	candidateJSON, err := json.MarshalIndent(candidate, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal candidate payload: %w", err)
	}

	matchesJSON, err := json.MarshalIndent(top, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal matches payload: %w", err)
	}

	prompt := buildPrompt(string(candidateJSON), string(matchesJSON))

	s.logger.Debug("gemini summary request",
		zap.String("candidate_id", candidate.ID),
		zap.Int("matches", len(top)),
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", utils.TruncateForLog(prompt, s.maxLogLen)),
	)

	raw, err := s.generator.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("gemini summary response",
		zap.String("candidate_id", candidate.ID),
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", utils.TruncateForLog(raw, s.maxLogLen)),
	)

	return &ai.Summary{
		Text: strings.TrimSpace(stripCodeFence(raw)),
		Raw:  raw,
	}, nil
}

func buildPrompt(candidateJSON, matchesJSON string) string {
	template := promptTemplate
	if strings.TrimSpace(template) == "" {
		template = "Candidate:\n{{CANDIDATE_JSON}}\n\nMatches:\n{{MATCHES_JSON}}\n\nSummary:"
	}
	prompt := strings.ReplaceAll(template, "{{CANDIDATE_JSON}}", candidateJSON)
	prompt = strings.ReplaceAll(prompt, "{{MATCHES_JSON}}", matchesJSON)
	return prompt
}

func stripCodeFence(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```text")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSpace(raw)
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}
	return strings.Trim(raw, "`")
}
