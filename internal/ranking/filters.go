package ranking

import (
	"context"
	"strings"
)

// Filter is a single post-score filtering step applied to a match list.
type Filter interface {
	Name() string
	Apply(ctx context.Context, m *Matches) (*Matches, Step, error)
}

// Step describes the result of executing a filtering step.
type Step struct {
	Initial int
	Dropped int
	Left    int
}

type minScoreFilter struct {
	minScore int
}

// NewMinScore creates a filter that drops matches scoring below the threshold.
func NewMinScore(minScore int) Filter {
	return &minScoreFilter{minScore: minScore}
}

func (f *minScoreFilter) Name() string { return "min_score" }

func (f *minScoreFilter) Apply(_ context.Context, m *Matches) (*Matches, Step, error) {
	initial := m.Len()
	if f.minScore <= 0 {
		return m, Step{Initial: initial, Dropped: 0, Left: initial}, nil
	}

	kept := make([]*Match, 0, initial)
	for _, match := range m.Items {
		if match.Matching.Score >= f.minScore {
			kept = append(kept, match)
		}
	}

	next := &Matches{Items: kept}
	return next, Step{Initial: initial, Dropped: initial - next.Len(), Left: next.Len()}, nil
}

type industryFacetFilter struct {
	industry string
}

// NewIndustryFacet creates a filter that keeps matches whose posting industry
// contains the given substring. Candidate-side matches carry no industry and
// pass through untouched.
func NewIndustryFacet(industry string) Filter {
	return &industryFacetFilter{industry: strings.ToLower(strings.TrimSpace(industry))}
}

func (f *industryFacetFilter) Name() string { return "industry_facet" }

func (f *industryFacetFilter) Apply(_ context.Context, m *Matches) (*Matches, Step, error) {
	initial := m.Len()
	if f.industry == "" {
		return m, Step{Initial: initial, Dropped: 0, Left: initial}, nil
	}

	kept := make([]*Match, 0, initial)
	for _, match := range m.Items {
		if match.Job == nil {
			kept = append(kept, match)
			continue
		}
		if strings.Contains(strings.ToLower(match.Job.Industry), f.industry) {
			kept = append(kept, match)
		}
	}

	next := &Matches{Items: kept}
	return next, Step{Initial: initial, Dropped: initial - next.Len(), Left: next.Len()}, nil
}

type locationFacetFilter struct {
	location string
}

// NewLocationFacet creates a filter that keeps matches whose location text
// contains the given substring. For candidate-side matches the city and
// country fields are checked instead of the posting location.
func NewLocationFacet(location string) Filter {
	return &locationFacetFilter{location: strings.ToLower(strings.TrimSpace(location))}
}

func (f *locationFacetFilter) Name() string { return "location_facet" }

func (f *locationFacetFilter) Apply(_ context.Context, m *Matches) (*Matches, Step, error) {
	initial := m.Len()
	if f.location == "" {
		return m, Step{Initial: initial, Dropped: 0, Left: initial}, nil
	}

	kept := make([]*Match, 0, initial)
	for _, match := range m.Items {
		if strings.Contains(strings.ToLower(matchLocation(match)), f.location) {
			kept = append(kept, match)
		}
	}

	next := &Matches{Items: kept}
	return next, Step{Initial: initial, Dropped: initial - next.Len(), Left: next.Len()}, nil
}

func matchLocation(match *Match) string {
	if match.Job != nil {
		return match.Job.Location
	}
	if match.Candidate != nil {
		return match.Candidate.City + " " + match.Candidate.Country
	}
	return ""
}
