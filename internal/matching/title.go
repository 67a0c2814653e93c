package matching

import (
	"math"
	"strings"

	"github.com/talentwire/matchengine/internal/marketplace"
)

const (
	// An exact containment either way scores 100; the token overlap formula
	// tops out at tokenOverlapCeiling so the 80-100 band stays reserved for
	// exact matches.
	tokenOverlapCeiling = 80
	// semanticGroupScore is the floor applied when both titles hit the same
	// semantic group: a weak token overlap must not rank below two synonym
	// titles with no word in common.
	semanticGroupScore = 70
)

// scoreTitle compares the candidate's role text (title + bio) against the
// posting title: exact containment scores 100, otherwise the better of the
// shared-word ratio and the semantic-group floor.
func scoreTitle(c *marketplace.Candidate, j *marketplace.Job, lex *Lexicon) int {
	candidateRole := strings.ToLower(strings.TrimSpace(c.JobTitle + " " + c.Bio))
	postingTitle := strings.ToLower(strings.TrimSpace(j.Title))

	if candidateRole == "" || postingTitle == "" {
		return 0
	}

	if strings.Contains(candidateRole, postingTitle) || strings.Contains(postingTitle, candidateRole) {
		return 100
	}

	candidateWords := significantWords(candidateRole, lex)
	postingWords := significantWords(postingTitle, lex)

	shared := 0
	postingSet := toSet(postingWords)
	for _, word := range candidateWords {
		if _, ok := postingSet[word]; ok {
			shared++
		}
	}

	score := 0
	if shared > 0 {
		denominator := len(candidateWords)
		if len(postingWords) > denominator {
			denominator = len(postingWords)
		}
		score = int(math.Round(tokenOverlapCeiling * float64(shared) / float64(denominator)))
	}

	if score < semanticGroupScore {
		for _, group := range lex.groups {
			if containsAny(candidateRole, group.keywords) && containsAny(postingTitle, group.keywords) {
				return semanticGroupScore
			}
		}
	}

	return score
}
