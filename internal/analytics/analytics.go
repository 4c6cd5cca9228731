// Package analytics reduces a session's evaluation log into averages and trends.
package analytics

import (
	"github.com/jonathan/interview-coach/internal/scoring"
	"github.com/jonathan/interview-coach/internal/types"
)

// Summary strings.
const (
	NoDataSummary = "No data available yet."
	Summary       = "Interview performance analytics"
)

// Dimensions lists the reduced score dimensions in report order.
var Dimensions = []string{
	types.DimensionCorrectness,
	types.DimensionConfidence,
	types.DimensionStar,
	types.DimensionReadiness,
}

// Summarize averages each score dimension (two decimals) and returns the raw
// per-question series as trends. Missing scores count as zero.
func Summarize(evals []types.EvaluationRecord) types.AnalyticsSummary {
	if len(evals) == 0 {
		return types.AnalyticsSummary{
			Summary:  NoDataSummary,
			Averages: map[string]float64{},
			Trends:   map[string][]float64{},
		}
	}

	trends := make(map[string][]float64, len(Dimensions))
	for _, dim := range Dimensions {
		trends[dim] = make([]float64, 0, len(evals))
	}
	for _, e := range evals {
		for _, dim := range Dimensions {
			trends[dim] = append(trends[dim], Value(e, dim))
		}
	}

	averages := make(map[string]float64, len(Dimensions))
	for _, dim := range Dimensions {
		averages[dim] = scoring.Round2(Mean(trends[dim]))
	}

	return types.AnalyticsSummary{
		Summary:        Summary,
		Averages:       averages,
		Trends:         trends,
		TotalQuestions: len(evals),
	}
}

// Value returns one dimension of a record.
func Value(e types.EvaluationRecord, dim string) float64 {
	switch dim {
	case types.DimensionCorrectness:
		return e.CorrectnessScore
	case types.DimensionConfidence:
		return float64(e.ConfidenceScore)
	case types.DimensionStar:
		return float64(e.StarScore)
	case types.DimensionReadiness:
		return e.ReadinessScore
	default:
		return 0
	}
}

// Mean is the arithmetic mean, 0 for an empty series.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
