// Package improvement composes a coaching plan from a session's evaluations.
package improvement

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/interview-coach/internal/analytics"
	"github.com/jonathan/interview-coach/internal/llm"
	"github.com/jonathan/interview-coach/internal/metrics"
	"github.com/jonathan/interview-coach/internal/prompts"
	"github.com/jonathan/interview-coach/internal/types"
)

// Plan text.
const (
	EmptySummary    = "No evaluations available yet."
	FallbackSummary = "Focus on improving clarity, structure, and conceptual understanding."

	FocusTechnical  = "Technical understanding"
	FocusConfidence = "Confidence and clarity"
	FocusStructure  = "Answer structure"
)

// Averages at or above these thresholds do not produce a focus area.
const (
	CorrectnessThreshold = 6.0
	ConfidenceThreshold  = 6.0
	StarThreshold        = 2.0
)

type focusRule struct {
	area      string
	dimension string
	threshold float64
	actions   []string
}

var focusRules = []focusRule{
	{
		area:      FocusTechnical,
		dimension: types.DimensionCorrectness,
		threshold: CorrectnessThreshold,
		actions: []string{
			"Review core concepts related to recent questions.",
			"Practice explaining concepts in simple terms.",
		},
	},
	{
		area:      FocusConfidence,
		dimension: types.DimensionConfidence,
		threshold: ConfidenceThreshold,
		actions: []string{
			"Reduce filler words and hesitant phrases.",
			"Practice answering aloud with structured responses.",
		},
	},
	{
		area:      FocusStructure,
		dimension: types.DimensionStar,
		threshold: StarThreshold,
		actions: []string{
			"Practice framing answers using Situation, Task, Action, Result.",
		},
	},
}

// Composer builds improvement plans. The coaching summary comes from the model
// when one is configured and FallbackSummary otherwise.
type Composer struct {
	client llm.Client
	logger *zap.Logger
}

// NewComposer creates a Composer. client may be nil.
func NewComposer(client llm.Client, logger *zap.Logger) *Composer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Composer{client: client, logger: logger}
}

// Plan reduces evals into focus areas, action items, and a coaching summary.
// It never fails.
func (c *Composer) Plan(ctx context.Context, evals []types.EvaluationRecord) types.ImprovementPlan {
	if len(evals) == 0 {
		return types.ImprovementPlan{
			Summary:     EmptySummary,
			FocusAreas:  []string{},
			ActionItems: []string{},
		}
	}

	averages := make(map[string]float64, len(analytics.Dimensions))
	for _, dim := range analytics.Dimensions {
		var sum float64
		for _, e := range evals {
			sum += analytics.Value(e, dim)
		}
		averages[dim] = sum / float64(len(evals))
	}

	plan := types.ImprovementPlan{
		FocusAreas:  []string{},
		ActionItems: []string{},
	}
	for _, rule := range focusRules {
		if averages[rule.dimension] < rule.threshold {
			plan.FocusAreas = append(plan.FocusAreas, rule.area)
			plan.ActionItems = append(plan.ActionItems, rule.actions...)
		}
	}

	summary := c.coach(ctx, averages)
	plan.Summary = summary.Value
	if summary.Fallback {
		plan.SummaryFallback = string(summary.Reason)
	}
	return plan
}

func (c *Composer) coach(ctx context.Context, averages map[string]float64) (out llm.Outcome[string]) {
	if c.client == nil {
		return llm.Fallback(FallbackSummary, nil)
	}

	defer func() {
		if r := recover(); r != nil {
			out = c.fallback(fmt.Errorf("model client panicked: %v", r))
		}
	}()

	prompt := prompts.Render(prompts.CoachingFile, "improvement-summary", map[string]string{
		"Correctness": fmt.Sprintf("%.2f", averages[types.DimensionCorrectness]),
		"Confidence":  fmt.Sprintf("%.2f", averages[types.DimensionConfidence]),
		"Star":        fmt.Sprintf("%.2f", averages[types.DimensionStar]),
	})

	text, err := c.client.GenerateContent(ctx, prompt, llm.TierLite)
	if err != nil {
		return c.fallback(fmt.Errorf("coaching summary: %w", err))
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return c.fallback(fmt.Errorf("coaching summary: %w", llm.ErrEmptyResponse))
	}
	return llm.Success(text)
}

func (c *Composer) fallback(err error) llm.Outcome[string] {
	out := llm.Fallback(FallbackSummary, err)
	c.logger.Warn("coaching summary fell back to static text",
		zap.String("reason", string(out.Reason)),
		zap.Error(err))
	metrics.RecordFallback("coaching", string(out.Reason))
	return out
}
