// Package types provides the data contracts shared by the evaluation pipeline,
// the session store, and the HTTP layer.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Verdict is the external model's correctness judgement.
type Verdict string

// Verdict values accepted from the model.
const (
	VerdictYes       Verdict = "Yes"
	VerdictPartially Verdict = "Partially"
	VerdictNo        Verdict = "No"
)

// StarBreakdown records which STAR categories were detected in an answer.
type StarBreakdown struct {
	Situation bool `json:"situation"`
	Task      bool `json:"task"`
	Action    bool `json:"action"`
	Result    bool `json:"result"`
}

// Count returns the number of categories present (0-4).
func (b StarBreakdown) Count() int {
	n := 0
	for _, present := range []bool{b.Situation, b.Task, b.Action, b.Result} {
		if present {
			n++
		}
	}
	return n
}

// CorrectnessVerdict is the structured verdict requested from the text-generation backend.
type CorrectnessVerdict struct {
	Verdict         Verdict  `json:"verdict"`
	MissingPoints   []string `json:"missing_points"`
	IncorrectPoints []string `json:"incorrect_points"`
	Score           float64  `json:"score"`
}

// EvaluationRecord is the scored result of one answer. It is built once by the
// evaluator and never mutated afterwards.
type EvaluationRecord struct {
	// Question and Answer are the inputs the record was computed from.
	Question string `json:"question,omitempty"`
	Answer   string `json:"answer,omitempty"`

	RelevanceScore   float64       `json:"relevance_score"`   // 0-10, token overlap x10
	ConfidenceScore  int           `json:"confidence_score"`  // 0-10
	StarScore        int           `json:"star_score"`        // 0-4, categories present
	StarBreakdown    StarBreakdown `json:"star_breakdown"`    // per-category detection
	CorrectnessScore float64       `json:"correctness_score"` // 0-10, verdict score plus rule boost
	ReadinessScore   float64       `json:"readiness_score"`   // weighted, 2 decimals

	Verdict     CorrectnessVerdict `json:"verdict"`
	RuleBoost   int                `json:"rule_boost,omitempty"`
	WordCount   int                `json:"word_count"`
	StrongVerbs int                `json:"strong_verbs"`
	Feedback    []string           `json:"feedback"`

	// CorrectnessFallback is set when the verdict is the neutral fallback; it names the failure.
	CorrectnessFallback string `json:"correctness_fallback,omitempty"`
}

// EvaluateRequest is the body of a stateless evaluation call.
type EvaluateRequest struct {
	Question string `json:"question" validate:"max=20000"`
	Answer   string `json:"answer" validate:"max=20000"`
}
