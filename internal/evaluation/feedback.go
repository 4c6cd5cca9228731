package evaluation

// Feedback strings appended by the evaluator.
const (
	FeedbackWeaklyRelated = "Answer is weakly related to the question."
	FeedbackTooBrief      = "Answer is too brief. Add more explanation and concrete detail."
	FeedbackStructure     = "Structure your answer using the STAR method: Situation, Task, Action, Result."
	FeedbackHedging       = "Reduce filler words and weak phrases to sound more confident."
	FeedbackActionVerbs   = "Good use of action-oriented language."
	FeedbackStrongAnswer  = "Strong answer with good structure and clarity."
)

// Feedback thresholds. A sub-score strictly below its threshold triggers advice.
const (
	relevanceThreshold  = 2.0
	minWordCount        = 20
	starThreshold       = 2
	confidenceThreshold = 4
)

type feedbackInput struct {
	relevance   float64
	wordCount   int
	star        int
	confidence  int
	strongVerbs int
}

// buildFeedback appends one advisory per weak signal, then praise for strong
// verbs. The general affirmation is added only when no advisory fired.
func buildFeedback(in feedbackInput) []string {
	var feedback []string

	if in.relevance < relevanceThreshold {
		feedback = append(feedback, FeedbackWeaklyRelated)
	}
	if in.wordCount < minWordCount {
		feedback = append(feedback, FeedbackTooBrief)
	}
	if in.star < starThreshold {
		feedback = append(feedback, FeedbackStructure)
	}
	if in.confidence < confidenceThreshold {
		feedback = append(feedback, FeedbackHedging)
	}
	advisories := len(feedback)

	if in.strongVerbs > 0 {
		feedback = append(feedback, FeedbackActionVerbs)
	}
	if advisories == 0 {
		feedback = append(feedback, FeedbackStrongAnswer)
	}
	return feedback
}
