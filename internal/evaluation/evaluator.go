package evaluation

import (
	"context"

	"go.uber.org/zap"

	"github.com/jonathan/interview-coach/internal/metrics"
	"github.com/jonathan/interview-coach/internal/scoring"
	"github.com/jonathan/interview-coach/internal/types"
)

// Evaluator scores answers. It is safe for concurrent use.
type Evaluator struct {
	judge   *CorrectnessJudge
	rules   RuleSource
	weights Weights
	logger  *zap.Logger
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithRules enables the deterministic correctness boost.
func WithRules(rules RuleSource) Option {
	return func(e *Evaluator) { e.rules = rules }
}

// WithWeights overrides DefaultWeights. Invalid weights are ignored.
func WithWeights(w Weights) Option {
	return func(e *Evaluator) {
		if w.Validate() == nil {
			e.weights = w
		}
	}
}

// NewEvaluator creates an Evaluator around a correctness judge.
func NewEvaluator(judge *CorrectnessJudge, logger *zap.Logger, opts ...Option) *Evaluator {
	if logger == nil {
		logger = zap.NewNop()
	}
	if judge == nil {
		judge = NewCorrectnessJudge(nil, logger)
	}
	e := &Evaluator{
		judge:   judge,
		weights: DefaultWeights,
		logger:  logger,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Evaluate scores one answer. It never fails; model problems degrade to the
// neutral correctness fallback.
func (e *Evaluator) Evaluate(ctx context.Context, question, answer string) types.EvaluationRecord {
	relevance := scoring.Relevance(question, answer)
	confidence := scoring.Confidence(answer)
	star := scoring.Star(answer)
	words := scoring.WordCount(answer)

	verdict := e.judge.Judge(ctx, question, answer)

	boost := 0
	if e.rules != nil {
		if rule, ok := e.rules.Rule(question); ok {
			boost = RuleBoost(rule, answer)
		}
	}
	correctness := scoring.Clamp(scoring.Clamp(verdict.Value.Score, 0, 10)+float64(boost), 0, 10)

	record := types.EvaluationRecord{
		Question:         question,
		Answer:           answer,
		RelevanceScore:   relevance,
		ConfidenceScore:  confidence.Score,
		StarScore:        star.Count(),
		StarBreakdown:    star,
		CorrectnessScore: scoring.Round2(correctness),
		ReadinessScore:   e.readiness(correctness, confidence.Score, star.Count()),
		Verdict:          verdict.Value,
		RuleBoost:        boost,
		WordCount:        words,
		StrongVerbs:      confidence.StrongCount,
		Feedback: buildFeedback(feedbackInput{
			relevance:   relevance,
			wordCount:   words,
			star:        star.Count(),
			confidence:  confidence.Score,
			strongVerbs: confidence.StrongCount,
		}),
	}
	if verdict.Fallback {
		record.CorrectnessFallback = string(verdict.Reason)
	}

	metrics.EvaluationsTotal.Inc()
	e.logger.Debug("answer evaluated",
		zap.Float64("relevance", record.RelevanceScore),
		zap.Float64("correctness", record.CorrectnessScore),
		zap.Int("confidence", record.ConfidenceScore),
		zap.Int("star", record.StarScore),
		zap.Float64("readiness", record.ReadinessScore),
		zap.Bool("fallback", verdict.Fallback))

	return record
}

func (e *Evaluator) readiness(correctness float64, confidence, star int) float64 {
	starTo10 := float64(star) * 10 / scoring.StarMax
	r := e.weights.Correctness*correctness + e.weights.Confidence*float64(confidence) + e.weights.Star*starTo10
	return scoring.Round2(scoring.Clamp(r, 0, 10))
}
