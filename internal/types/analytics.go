package types

// Analytics dimension keys used in averages and trends.
const (
	DimensionCorrectness = "correctness"
	DimensionConfidence  = "confidence"
	DimensionStar        = "star"
	DimensionReadiness   = "readiness"
)

// AnalyticsSummary is derived from a session's evaluations on demand.
type AnalyticsSummary struct {
	Summary        string               `json:"summary"`
	Averages       map[string]float64   `json:"averages"`
	Trends         map[string][]float64 `json:"trends"`
	TotalQuestions int                  `json:"total_questions"`
}

// ImprovementPlan is derived from a session's evaluations on demand.
type ImprovementPlan struct {
	Summary     string   `json:"summary"`
	FocusAreas  []string `json:"focus_areas"`
	ActionItems []string `json:"action_items"`
	// SummaryFallback names why the coaching text is the static sentence, if it is.
	SummaryFallback string `json:"summary_fallback,omitempty"`
}

// EvaluationsRequest carries a list of evaluations for the stateless reducers.
type EvaluationsRequest struct {
	Evaluations []EvaluationRecord `json:"evaluations"`
}
