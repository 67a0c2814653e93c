package matching

import (
	"fmt"

	"github.com/talentwire/matchengine/internal/marketplace"
)

// gatePenalty is the fixed near-zero total applied when two sides belong to
// mutually exclusive professional domains.
const gatePenalty = 5

type gateResult struct {
	fired   bool
	reason  string
	penalty int
}

// checkIncompatibility scans both sides against the lexicon's domain
// clusters. A cluster fires when one side carries its keywords while the
// other carries its incompatible keywords. Clusters are evaluated in fixed
// order and the first match wins, keeping the reason deterministic.
func checkIncompatibility(c *marketplace.Candidate, j *marketplace.Job, lex *Lexicon) gateResult {
	candidateBlob := candidateText(c)
	jobBlob := jobText(j)

	if candidateBlob == "" || jobBlob == "" {
		return gateResult{}
	}

	for _, cluster := range lex.clusters {
		candidateInDomain := containsAny(candidateBlob, cluster.keywords)
		jobInDomain := containsAny(jobBlob, cluster.keywords)

		if candidateInDomain && containsAny(jobBlob, cluster.incompatible) {
			return gateResult{
				fired:   true,
				reason:  fmt.Sprintf("profil du domaine %s incompatible avec le domaine de l'offre", cluster.name),
				penalty: gatePenalty,
			}
		}

		if jobInDomain && containsAny(candidateBlob, cluster.incompatible) {
			return gateResult{
				fired:   true,
				reason:  fmt.Sprintf("offre du domaine %s incompatible avec le profil du candidat", cluster.name),
				penalty: gatePenalty,
			}
		}
	}

	return gateResult{}
}
