// Package matching implements the candidate/job compatibility scoring engine:
// seven weighted dimension scorers guarded by an incompatible-domain gate,
// combined into a single 0-100 breakdown. Scoring is pure and deterministic;
// identical inputs always produce identical breakdowns.
package matching

import (
	"math"

	"go.uber.org/zap"

	"github.com/talentwire/matchengine/internal/marketplace"
)

// dimension binds a named sub-scorer to its weight. The table drives both
// the aggregation and the table-driven tests; adding or removing a dimension
// does not touch the combination logic.
type dimension struct {
	name   string
	weight float64
	score  func(*marketplace.Candidate, *marketplace.Job, *Lexicon) int
}

var dimensions = []dimension{
	{name: "skills", weight: defaultWeights.Skills, score: scoreSkills},
	{name: "title", weight: defaultWeights.Title, score: scoreTitle},
	{name: "industry", weight: defaultWeights.Industry, score: scoreIndustry},
	{name: "location", weight: defaultWeights.Location, score: scoreLocation},
	{name: "experience", weight: defaultWeights.Experience, score: scoreExperience},
	{name: "contract", weight: defaultWeights.Contract, score: scoreContract},
	{name: "salary", weight: defaultWeights.Salary, score: scoreSalary},
}

// Engine evaluates candidate/job pairs against an injected lexicon. It holds
// no mutable state and is safe for concurrent use.
type Engine struct {
	lexicon *Lexicon
	logger  *zap.Logger
}

func NewEngine(lexicon *Lexicon, logger *zap.Logger) *Engine {
	if lexicon == nil {
		lexicon = DefaultLexicon()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{lexicon: lexicon, logger: logger}
}

// Score computes the compatibility breakdown for one pair. The gate runs
// first and short-circuits the dimension scorers entirely when it fires.
// A panic inside a scorer is mapped to a zero breakdown with an empty
// recommendation so that batch ranking never aborts on one bad record.
func (e *Engine) Score(candidate *marketplace.Candidate, job *marketplace.Job) (breakdown *Breakdown) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Warn("scoring panicked, degrading pair to zero score",
				zap.Any("panic", r),
				zap.String("candidate_id", candidateID(candidate)),
				zap.String("job_id", jobID(job)),
			)
			breakdown = &Breakdown{Weights: defaultWeights}
		}
	}()

	if gate := checkIncompatibility(candidate, job, e.lexicon); gate.fired {
		total := gate.penalty
		if total > 15 {
			total = 15
		}
		return &Breakdown{
			Score:          total,
			Details:        Details{Incompatibility: gate.reason},
			Weights:        defaultWeights,
			Recommendation: recommendation(total),
		}
	}

	details := Details{}
	weighted := 0.0
	for _, dim := range dimensions {
		sub := clampScore(dim.score(candidate, job, e.lexicon))
		details.set(dim.name, sub)
		weighted += float64(sub) * dim.weight
	}

	total := clampScore(int(math.Round(weighted)))

	return &Breakdown{
		Score:          total,
		Details:        details,
		Weights:        defaultWeights,
		Recommendation: recommendation(total),
	}
}

func (d *Details) set(name string, score int) {
	switch name {
	case "skills":
		d.Skills = score
	case "title":
		d.Title = score
	case "industry":
		d.Industry = score
	case "location":
		d.Location = score
	case "experience":
		d.Experience = score
	case "contract":
		d.Contract = score
	case "salary":
		d.Salary = score
	}
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

func candidateID(c *marketplace.Candidate) string {
	if c == nil {
		return ""
	}
	return c.ID
}

func jobID(j *marketplace.Job) string {
	if j == nil {
		return ""
	}
	return j.ID
}
