package matching

import (
	"math"
	"strings"

	"github.com/talentwire/matchengine/internal/marketplace"
)

// scoreSkills intersects the candidate's declared skills with the recognized
// vocabulary, then checks each relevant skill for containment in the posting
// text. Declared skills outside the vocabulary carry no signal and are
// ignored rather than counted against the candidate.
func scoreSkills(c *marketplace.Candidate, j *marketplace.Job, lex *Lexicon) int {
	if len(c.Skills) == 0 {
		return 0
	}

	relevant := make([]string, 0, len(c.Skills))
	for _, skill := range c.Skills {
		normalized := strings.ToLower(strings.TrimSpace(skill))
		if normalized == "" {
			continue
		}
		if _, ok := lex.skills[normalized]; ok {
			relevant = append(relevant, normalized)
		}
	}

	if len(relevant) == 0 {
		return 0
	}

	postingText := strings.ToLower(j.Title + " " + j.Description)
	matched := 0
	for _, skill := range relevant {
		if strings.Contains(postingText, skill) {
			matched++
		}
	}

	return int(math.Round(100 * float64(matched) / float64(len(relevant))))
}
