package matching

import (
	"strings"

	"github.com/talentwire/matchengine/internal/marketplace"
)

// candidateText concatenates the candidate's free-text fields into one
// lowercase blob for containment checks.
func candidateText(c *marketplace.Candidate) string {
	parts := make([]string, 0, 2+len(c.Skills))
	parts = append(parts, c.JobTitle, c.Bio)
	parts = append(parts, c.Skills...)
	return strings.ToLower(strings.TrimSpace(strings.Join(parts, " ")))
}

// jobText concatenates the posting's free-text fields into one lowercase blob.
func jobText(j *marketplace.Job) string {
	return strings.ToLower(strings.TrimSpace(j.Title + " " + j.Description + " " + j.Industry))
}

// significantWords splits text into lowercase tokens longer than two
// characters, dropping lexicon stop words.
func significantWords(text string, lex *Lexicon) []string {
	fields := strings.Fields(strings.ToLower(text))
	words := make([]string, 0, len(fields))
	for _, word := range fields {
		word = strings.Trim(word, ".,;:!?()[]\"'")
		if len([]rune(word)) <= 2 {
			continue
		}
		if _, stop := lex.stopWords[word]; stop {
			continue
		}
		words = append(words, word)
	}
	return words
}

func containsAny(text string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}
