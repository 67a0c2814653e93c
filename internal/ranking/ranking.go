// Package ranking applies the matching engine across collections of jobs or
// candidates, filters the scored pairs and returns them ordered by score.
package ranking

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"sort"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/talentwire/matchengine/internal/marketplace"
	"github.com/talentwire/matchengine/internal/matching"
)

// Options controls one ranking run. Limit truncates the input collection
// before scoring to bound worst-case work; it does not cap the output.
// MinScore and the facet filters apply after scoring.
type Options struct {
	Limit    int
	MinScore int
	Industry string
	Location string
}

// Match is one scored pair. Exactly one of Job or Candidate is set,
// depending on the ranking direction.
type Match struct {
	Job       *marketplace.Job       `json:"job,omitempty"`
	Candidate *marketplace.Candidate `json:"candidate,omitempty"`
	Matching  *matching.Breakdown    `json:"matching"`
}

type Matches struct {
	Items []*Match
}

func (m *Matches) Len() int {
	return len(m.Items)
}

// Ranker runs the engine over collections. Pair evaluations are independent,
// so they run on a bounded worker pool; the explicit stable sort afterwards
// makes the evaluation order irrelevant.
type Ranker struct {
	engine  *matching.Engine
	logger  *zap.Logger
	workers int
}

func NewRanker(engine *matching.Engine, logger *zap.Logger) *Ranker {
	if engine == nil {
		engine = matching.NewEngine(nil, logger)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Ranker{
		engine:  engine,
		logger:  logger,
		workers: runtime.GOMAXPROCS(0),
	}
}

// SetWorkers overrides the evaluation pool size. Values below one reset it
// to the number of available CPUs.
func (r *Ranker) SetWorkers(n int) {
	if n < 1 {
		n = runtime.GOMAXPROCS(0)
	}
	r.workers = n
}

// RankJobsForCandidate scores every job against the candidate, applies the
// post-score filters and returns matches sorted by descending score. Ties
// keep the original collection order.
func (r *Ranker) RankJobsForCandidate(ctx context.Context, candidate *marketplace.Candidate, jobs *marketplace.Jobs, opts Options) (*Matches, error) {
	items := jobs.Items
	if opts.Limit > 0 && opts.Limit < len(items) {
		items = items[:opts.Limit]
	}

	matches := &Matches{Items: make([]*Match, len(items))}

	var group errgroup.Group
	group.SetLimit(r.workers)
	for i, job := range items {
		group.Go(func() error {
			matches.Items[i] = &Match{
				Job:      job,
				Matching: r.engine.Score(candidate, job),
			}
			return nil
		})
	}
	// Scoring never returns an error; the engine degrades bad pairs instead.
	_ = group.Wait()

	filtered, err := r.filter(ctx, matches, opts)
	if err != nil {
		return nil, fmt.Errorf("filtering matches: %w", err)
	}

	sortByScore(filtered)
	return filtered, nil
}

// RankCandidatesForJob is the mirror of RankJobsForCandidate.
func (r *Ranker) RankCandidatesForJob(ctx context.Context, job *marketplace.Job, candidates *marketplace.Candidates, opts Options) (*Matches, error) {
	items := candidates.Items
	if opts.Limit > 0 && opts.Limit < len(items) {
		items = items[:opts.Limit]
	}

	matches := &Matches{Items: make([]*Match, len(items))}

	var group errgroup.Group
	group.SetLimit(r.workers)
	for i, candidate := range items {
		group.Go(func() error {
			matches.Items[i] = &Match{
				Candidate: candidate,
				Matching:  r.engine.Score(candidate, job),
			}
			return nil
		})
	}
	_ = group.Wait()

	filtered, err := r.filter(ctx, matches, opts)
	if err != nil {
		return nil, fmt.Errorf("filtering matches: %w", err)
	}

	sortByScore(filtered)
	return filtered, nil
}

func (r *Ranker) filter(ctx context.Context, matches *Matches, opts Options) (*Matches, error) {
	steps := []Filter{
		NewMinScore(opts.MinScore),
		NewIndustryFacet(opts.Industry),
		NewLocationFacet(opts.Location),
	}

	for _, step := range steps {
		next, info, err := step.Apply(ctx, matches)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", step.Name(), err)
		}

		r.logger.Debug("filter step",
			zap.String("name", step.Name()),
			zap.Int("initial", info.Initial),
			zap.Int("dropped", info.Dropped),
			zap.Int("left", info.Left),
		)

		matches = next
	}

	return matches, nil
}

func sortByScore(matches *Matches) {
	sort.SliceStable(matches.Items, func(i, j int) bool {
		return matches.Items[i].Matching.Score > matches.Items[j].Matching.Score
	})
}

// ReportByIndustry groups the matched jobs by industry for a quick overview.
func (m *Matches) ReportByIndustry() map[string][]map[string]string {
	report := make(map[string][]map[string]string)
	for _, match := range m.Items {
		if match.Job == nil {
			continue
		}

		industry := match.Job.Industry
		if industry == "" {
			industry = "non renseigné"
		}

		entry := map[string]string{
			"title":          match.Job.Title,
			"company":        match.Job.CompanyName,
			"location":       match.Job.Location,
			"score":          fmt.Sprintf("%d", match.Matching.Score),
			"recommendation": match.Matching.Recommendation,
		}
		if match.Matching.Details.Incompatibility != "" {
			entry["incompatibility"] = match.Matching.Details.Incompatibility
		}

		report[industry] = append(report[industry], entry)
	}
	return report
}

// DumpToTmpFile writes the matches as indented JSON to a temp file and
// returns its name.
func (m *Matches) DumpToTmpFile() (string, error) {
	file, err := os.CreateTemp("", "matches_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(m); err != nil {
		return "", err
	}
	return file.Name(), nil
}
