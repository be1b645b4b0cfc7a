package models

// Verdict labels for an evaluated parlay, from best to worst.
const (
	VerdictStrongValue   = "Strong Value"
	VerdictModerateValue = "Moderate Value"
	VerdictNeutral       = "Neutral"
	VerdictHighRisk      = "High Risk"
)

// LegScore is the raw scoring breakdown for one leg: the probabilities the
// score was computed from and the per-signal contributions.
type LegScore struct {
	EV           float64 `json:"ev"`
	Injury       float64 `json:"injury"`
	History      float64 `json:"history"`
	Market       float64 `json:"market"`
	ImpliedProb  float64 `json:"implied_prob"`
	AdjustedProb float64 `json:"adjusted_prob"`
}

// EvaluationResult is the scoring engine's output for a parlay. ExpectedValue
// and CombinedProbability are nil when any leg lacks an adjusted probability.
// Consumers render the result but do not mutate it.
type EvaluationResult struct {
	OverallValueScore   float64             `json:"overall_value_score"`
	Verdict             string              `json:"verdict"`
	ExpectedValue       *float64            `json:"expected_value,omitempty"`
	CombinedProbability *float64            `json:"combined_probability,omitempty"`
	Rationale           []string            `json:"rationale"`
	LegBreakdown        map[string]LegScore `json:"leg_breakdown"`
}
