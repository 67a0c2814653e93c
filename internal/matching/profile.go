package matching

import (
	"strings"

	"github.com/talentwire/matchengine/internal/marketplace"
)

const availableScore = 90

// scoreExperience maps both sides through the seven-level vocabulary and
// scores by absolute level distance. Absent values score 0; unrecognized
// non-empty values fall back to the middle level.
func scoreExperience(c *marketplace.Candidate, j *marketplace.Job, lex *Lexicon) int {
	candidateLevel := strings.ToLower(strings.TrimSpace(c.ExperienceLevel))
	requiredLevel := strings.ToLower(strings.TrimSpace(j.ExperienceRequired))

	if candidateLevel == "" || requiredLevel == "" {
		return 0
	}

	diff := lex.experienceLevel(candidateLevel) - lex.experienceLevel(requiredLevel)
	if diff < 0 {
		diff = -diff
	}

	switch diff {
	case 0:
		return 100
	case 1:
		return 80
	case 2:
		return 60
	case 3:
		return 40
	default:
		return 10
	}
}

// scoreContract rewards immediate availability regardless of contract type,
// otherwise scores by the contract keyword.
func scoreContract(c *marketplace.Candidate, j *marketplace.Job, _ *Lexicon) int {
	contract := strings.ToLower(strings.TrimSpace(j.ContractType))
	if contract == "" {
		return 0
	}

	if c.AvailableImmediately {
		return availableScore
	}

	switch {
	case strings.Contains(contract, "cdi"):
		return 80
	case strings.Contains(contract, "cdd"):
		return 70
	case strings.Contains(contract, "stage"):
		return 60
	case strings.Contains(contract, "freelance"):
		return 50
	default:
		return 0
	}
}

// scoreSalary compares the level-based average salary expectation against
// the posting's upper bound, scoring by percentage distance.
func scoreSalary(c *marketplace.Candidate, j *marketplace.Job, lex *Lexicon) int {
	if j.SalaryMin == 0 && j.SalaryMax == 0 {
		return 0
	}

	expected := lex.averageSalary(strings.ToLower(strings.TrimSpace(c.ExperienceLevel)))

	offered := j.SalaryMax
	if offered == 0 {
		offered = j.SalaryMin
	}
	if offered == 0 {
		offered = defaultAverageSalary
	}

	diff := expected - offered
	if diff < 0 {
		diff = -diff
	}
	percent := 100 * float64(diff) / float64(offered)

	switch {
	case percent <= 10:
		return 100
	case percent <= 20:
		return 80
	case percent <= 30:
		return 60
	case percent <= 50:
		return 40
	default:
		return 10
	}
}
