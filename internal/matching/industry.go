package matching

import (
	"math"
	"strings"

	"github.com/talentwire/matchengine/internal/marketplace"
)

// weakIndustrySignal distinguishes "right field, no declared skills" from
// "wrong field entirely", which scores 0.
const weakIndustrySignal = 10

// scoreIndustry locates the posting's industry in the lexicon table and
// counts how many of that industry's defining keywords appear in the
// candidate's text.
func scoreIndustry(c *marketplace.Candidate, j *marketplace.Job, lex *Lexicon) int {
	industry := strings.ToLower(strings.TrimSpace(j.Industry))
	if industry == "" {
		return 0
	}

	var entry *industryEntry
	for i := range lex.industries {
		name := lex.industries[i].name
		if strings.Contains(industry, name) || strings.Contains(name, industry) {
			entry = &lex.industries[i]
			break
		}
	}

	if entry == nil {
		return 0
	}

	candidateBlob := candidateText(c)
	matched := 0
	for _, keyword := range entry.keywords {
		if strings.Contains(candidateBlob, keyword) {
			matched++
		}
	}

	if matched == 0 {
		return weakIndustrySignal
	}

	return int(math.Round(100 * float64(matched) / float64(len(entry.keywords))))
}
