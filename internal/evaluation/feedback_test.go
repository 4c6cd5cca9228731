package evaluation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildFeedback(t *testing.T) {
	tests := []struct {
		name string
		in   feedbackInput
		want []string
	}{
		{
			name: "everything weak",
			in:   feedbackInput{relevance: 0, wordCount: 3, star: 0, confidence: 2},
			want: []string{FeedbackWeaklyRelated, FeedbackTooBrief, FeedbackStructure, FeedbackHedging},
		},
		{
			name: "thresholds are strict",
			in:   feedbackInput{relevance: 2, wordCount: 20, star: 2, confidence: 4},
			want: []string{FeedbackStrongAnswer},
		},
		{
			name: "strong verbs do not suppress advice",
			in:   feedbackInput{relevance: 5, wordCount: 10, star: 3, confidence: 6, strongVerbs: 1},
			want: []string{FeedbackTooBrief, FeedbackActionVerbs},
		},
		{
			name: "strong verbs alongside affirmation",
			in:   feedbackInput{relevance: 5, wordCount: 40, star: 3, confidence: 8, strongVerbs: 2},
			want: []string{FeedbackActionVerbs, FeedbackStrongAnswer},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, buildFeedback(tt.in))
		})
	}
}
