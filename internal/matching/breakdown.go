package matching

// Details carries the seven per-dimension sub-scores, each in [0, 100].
// Incompatibility is set only when the domain gate fired.
type Details struct {
	Skills          int    `json:"skills"`
	Location        int    `json:"location"`
	Experience      int    `json:"experience"`
	Title           int    `json:"title"`
	Industry        int    `json:"industry"`
	Contract        int    `json:"contract"`
	Salary          int    `json:"salary"`
	Incompatibility string `json:"incompatibility,omitempty"`
}

// Weights is the fixed dimension weighting. The seven values sum to 1.00.
type Weights struct {
	Skills     float64 `json:"skills"`
	Title      float64 `json:"title"`
	Industry   float64 `json:"industry"`
	Location   float64 `json:"location"`
	Experience float64 `json:"experience"`
	Contract   float64 `json:"contract"`
	Salary     float64 `json:"salary"`
}

// Breakdown is the result of scoring one candidate/job pair. It is ephemeral:
// constructed, returned and never persisted by the engine.
type Breakdown struct {
	Score          int     `json:"score"`
	Details        Details `json:"details"`
	Weights        Weights `json:"weights"`
	Recommendation string  `json:"recommendation"`
}

var defaultWeights = Weights{
	Skills:     0.30,
	Title:      0.25,
	Industry:   0.20,
	Location:   0.10,
	Experience: 0.10,
	Contract:   0.03,
	Salary:     0.02,
}

// recommendation maps a total score to its qualitative label.
func recommendation(total int) string {
	switch {
	case total >= 90:
		return "match parfait"
	case total >= 80:
		return "excellent"
	case total >= 70:
		return "bon"
	case total >= 60:
		return "correct"
	case total >= 50:
		return "moyen"
	case total >= 40:
		return "faible"
	default:
		return "très faible"
	}
}
