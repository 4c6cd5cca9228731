package observability

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/interview-coach/internal/types"
)

func TestPrintEvaluation(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	rec := &types.EvaluationRecord{
		Question:            "What is a hash map?",
		Answer:              "A key-value structure.",
		RelevanceScore:      4,
		ConfidenceScore:     5,
		StarScore:           1,
		StarBreakdown:       types.StarBreakdown{Action: true},
		CorrectnessScore:    5,
		ReadinessScore:      4.25,
		Verdict:             types.CorrectnessVerdict{Verdict: types.VerdictPartially, MissingPoints: []string{"collisions"}},
		CorrectnessFallback: "timeout",
		Feedback:            []string{"Answer is too brief."},
	}

	p.PrintEvaluation("EVALUATION", rec)
	output := buf.String()

	assert.Contains(t, output, "EVALUATION")
	assert.Contains(t, output, "Q: What is a hash map?")
	assert.Contains(t, output, "Readiness:    4.25 / 10")
	assert.Contains(t, output, "(neutral: timeout)")
	assert.Contains(t, output, "·S ·T ✓A ·R")
	assert.Contains(t, output, "- collisions")
	assert.Contains(t, output, "• Answer is too brief.")
}

func TestPrintEvaluation_Nil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintEvaluation("EVALUATION", nil)
	assert.Empty(t, buf.String())
}

func TestPrintAnalytics(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintAnalytics(&types.AnalyticsSummary{
		Summary:        "Interview performance analytics",
		TotalQuestions: 2,
		Averages:       map[string]float64{types.DimensionCorrectness: 6.5, types.DimensionReadiness: 5.1},
		Trends:         map[string][]float64{types.DimensionCorrectness: {5, 8}, types.DimensionReadiness: {4.2, 6}},
	})
	output := buf.String()

	assert.Contains(t, output, "Questions answered: 2")
	assert.Contains(t, output, "correctness  avg  6.50   trend 5 → 8")
	assert.NotContains(t, output, "confidence")
}

func TestPrintAnalytics_Empty(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintAnalytics(&types.AnalyticsSummary{Summary: "No data available yet."})
	assert.Contains(t, buf.String(), "No data available yet.")
}

func TestPrintPlan(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintPlan(&types.ImprovementPlan{
		Summary:     "Keep practicing.",
		FocusAreas:  []string{"Answer structure"},
		ActionItems: []string{"Practice framing answers using Situation, Task, Action, Result."},
	})
	output := buf.String()

	assert.Contains(t, output, "IMPROVEMENT PLAN")
	assert.Contains(t, output, "• Answer structure")
	assert.Contains(t, output, "1. Practice framing answers")
	assert.Contains(t, output, "Keep practicing.")
}

func TestPrintBox_LinesHaveEqualWidth(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.printBox("TITLE", strings.Repeat("word ", 40)+"\n"+strings.Repeat("x", 150))

	for _, line := range strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n") {
		assert.Equal(t, boxWidth, utf8.RuneCountInString(line), line)
	}
}

func TestWrap(t *testing.T) {
	assert.Equal(t, []string{"short"}, wrap("short", 10))
	assert.Equal(t, []string{"aaa bbb", "  ccc"}, wrap("aaa bbb ccc", 8))
	assert.Equal(t, []string{"  - one", "    two"}, wrap("  - one two", 7))
	assert.Equal(t, []string{"abcde", "fgh"}, wrap("abcdefgh", 5))
}
