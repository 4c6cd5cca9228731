package scoring

import (
	"testing"

	"github.com/jonathan/interview-coach/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestStar(t *testing.T) {
	tests := []struct {
		name   string
		answer string
		want   types.StarBreakdown
	}{
		{
			name:   "all four categories",
			answer: "The situation was a slow deploy. My task was to fix it. I implemented caching and the result was a 2x speedup.",
			want:   types.StarBreakdown{Situation: true, Task: true, Action: true, Result: true},
		},
		{
			name:   "action and result only",
			answer: "I developed a migration tool and it improved throughput.",
			want:   types.StarBreakdown{Action: true, Result: true},
		},
		{
			name:   "case insensitive",
			answer: "BACKGROUND: legacy system. GOAL: replace it.",
			want:   types.StarBreakdown{Situation: true, Task: true},
		},
		{
			name:   "nothing",
			answer: "Yes.",
			want:   types.StarBreakdown{},
		},
		{
			name:   "empty",
			answer: "",
			want:   types.StarBreakdown{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Star(tt.answer)
			assert.Equal(t, tt.want, got)
			assert.LessOrEqual(t, got.Count(), StarMax)
		})
	}
}

func TestStar_CategoryCountsOnce(t *testing.T) {
	got := Star("result outcome impact improved results")
	assert.Equal(t, 1, got.Count())
}

func TestStar_Idempotent(t *testing.T) {
	a := "In that context my responsibility was uptime; I worked on alerts with real impact."
	assert.Equal(t, Star(a), Star(a))
}
