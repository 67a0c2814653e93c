package matching

import (
	"strings"

	"github.com/talentwire/matchengine/internal/marketplace"
)

const (
	remoteScore        = 90
	exactLocationScore = 100
	cityScore          = 85
	countryScore       = 70
	sameCountryScore   = 60
	sameContinentScore = 40
)

var remoteKeywords = []string{
	"remote", "télétravail", "teletravail", "hybride", "hybrid", "à distance", "full remote",
}

// scoreLocation favors remote-friendly postings, then compares the
// candidate's city and country against the posting's location text, falling
// back to the region table for a weak geographic match.
func scoreLocation(c *marketplace.Candidate, j *marketplace.Job, lex *Lexicon) int {
	remoteMode := strings.ToLower(j.RemoteMode)
	if remoteMode != "" && containsAny(remoteMode, remoteKeywords) {
		return remoteScore
	}

	city := strings.ToLower(strings.TrimSpace(c.City))
	country := strings.ToLower(strings.TrimSpace(c.Country))
	jobLocation := strings.ToLower(strings.TrimSpace(j.Location))

	if (city == "" && country == "") || jobLocation == "" {
		return 0
	}

	candidateLocation := strings.TrimSpace(strings.TrimPrefix(city+" "+country, " "))
	if strings.Contains(jobLocation, candidateLocation) || strings.Contains(candidateLocation, jobLocation) {
		return exactLocationScore
	}

	if city != "" && strings.Contains(jobLocation, city) {
		return cityScore
	}

	if country != "" && strings.Contains(jobLocation, country) {
		return countryScore
	}

	candidateRegion, ok := lex.regions[city]
	if !ok {
		return 0
	}

	// The posting location may mention several known cities; keep the best
	// hit so the result does not depend on map iteration order.
	best := 0
	for knownCity, region := range lex.regions {
		if !strings.Contains(jobLocation, knownCity) {
			continue
		}
		switch {
		case region.country == candidateRegion.country:
			if best < sameCountryScore {
				best = sameCountryScore
			}
		case region.continent == candidateRegion.continent:
			if best < sameContinentScore {
				best = sameContinentScore
			}
		}
	}

	return best
}
