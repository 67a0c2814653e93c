package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/talentwire/matchengine/internal/marketplace"
	"github.com/talentwire/matchengine/internal/matching"
	"github.com/talentwire/matchengine/internal/ranking"
)

type stubGenerator struct {
	response string
	err      error
	prompts  []string
}

func (s *stubGenerator) GenerateContent(_ context.Context, prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func testMatches(n int) *ranking.Matches {
	matches := &ranking.Matches{}
	for i := 0; i < n; i++ {
		matches.Items = append(matches.Items, &ranking.Match{
			Job: &marketplace.Job{
				ID:       fmt.Sprintf("job-%d", i),
				Title:    "Développeur React",
				Industry: "Tech",
			},
			Matching: &matching.Breakdown{Score: 90 - i, Recommendation: "excellent"},
		})
	}
	return matches
}

func TestSummarizeBuildsPromptFromPayloads(t *testing.T) {
	stub := &stubGenerator{response: "Très bon profil pour les postes React."}
	summarizer := NewSummarizer(stub, zap.NewNop(), 0)

	candidate := &marketplace.Candidate{ID: "cand-1", FullName: "Claire Dupont", JobTitle: "Développeur Frontend"}
	summary, err := summarizer.Summarize(context.Background(), candidate, testMatches(2))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if summary.Text != "Très bon profil pour les postes React." {
		t.Fatalf("unexpected summary text %q", summary.Text)
	}

	if len(stub.prompts) != 1 {
		t.Fatalf("expected exactly one generation call, got %d", len(stub.prompts))
	}
	prompt := stub.prompts[0]
	if !strings.Contains(prompt, "Claire Dupont") {
		t.Fatalf("prompt is missing the candidate payload")
	}
	if !strings.Contains(prompt, "job-0") || !strings.Contains(prompt, "job-1") {
		t.Fatalf("prompt is missing the match payloads")
	}
	if strings.Contains(prompt, "{{CANDIDATE_JSON}}") || strings.Contains(prompt, "{{MATCHES_JSON}}") {
		t.Fatalf("prompt placeholders were not substituted")
	}
}

func TestSummarizeCapsMatchCount(t *testing.T) {
	stub := &stubGenerator{response: "ok"}
	summarizer := NewSummarizer(stub, zap.NewNop(), 0)

	candidate := &marketplace.Candidate{ID: "cand-1"}
	if _, err := summarizer.Summarize(context.Background(), candidate, testMatches(25)); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	prompt := stub.prompts[0]
	if !strings.Contains(prompt, fmt.Sprintf("job-%d", maxSummarizedMatches-1)) {
		t.Fatalf("prompt is missing the last match inside the cap")
	}
	if strings.Contains(prompt, fmt.Sprintf("job-%d", maxSummarizedMatches)) {
		t.Fatalf("prompt contains a match beyond the cap")
	}
}

func TestSummarizeStripsCodeFence(t *testing.T) {
	stub := &stubGenerator{response: "```text\nRésumé du profil.\n```"}
	summarizer := NewSummarizer(stub, zap.NewNop(), 0)

	summary, err := summarizer.Summarize(context.Background(), &marketplace.Candidate{ID: "cand-1"}, testMatches(1))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if summary.Text != "Résumé du profil." {
		t.Fatalf("fence not stripped: %q", summary.Text)
	}
	if summary.Raw != stub.response {
		t.Fatalf("raw response must be preserved")
	}
}

func TestSummarizeValidatesInputs(t *testing.T) {
	summarizer := NewSummarizer(&stubGenerator{response: "ok"}, zap.NewNop(), 0)

	if _, err := summarizer.Summarize(context.Background(), nil, testMatches(1)); err == nil {
		t.Fatalf("expected an error for a nil candidate")
	}
	if _, err := summarizer.Summarize(context.Background(), &marketplace.Candidate{ID: "cand-1"}, nil); err == nil {
		t.Fatalf("expected an error for nil matches")
	}
	if _, err := summarizer.Summarize(context.Background(), &marketplace.Candidate{ID: "cand-1"}, &ranking.Matches{}); err == nil {
		t.Fatalf("expected an error for empty matches")
	}
}

func TestSummarizePropagatesGeneratorError(t *testing.T) {
	genErr := errors.New("quota exceeded")
	summarizer := NewSummarizer(&stubGenerator{err: genErr}, zap.NewNop(), 0)

	_, err := summarizer.Summarize(context.Background(), &marketplace.Candidate{ID: "cand-1"}, testMatches(1))
	if !errors.Is(err, genErr) {
		t.Fatalf("expected the generator error, got %v", err)
	}
}

func TestStripCodeFence(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain text", in: "Résumé.", want: "Résumé."},
		{name: "bare fence", in: "```\nRésumé.\n```", want: "Résumé."},
		{name: "text fence", in: "```text\nRésumé.\n```", want: "Résumé."},
		{name: "surrounding whitespace", in: "  Résumé.  ", want: "Résumé."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := strings.TrimSpace(stripCodeFence(tt.in)); got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
