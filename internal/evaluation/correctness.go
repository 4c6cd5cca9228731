// Package evaluation turns a (question, answer) pair into a scored EvaluationRecord.
package evaluation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/jonathan/interview-coach/internal/llm"
	"github.com/jonathan/interview-coach/internal/metrics"
	"github.com/jonathan/interview-coach/internal/prompts"
	"github.com/jonathan/interview-coach/internal/schemas"
	"github.com/jonathan/interview-coach/internal/types"
)

// FallbackVerdict is substituted whenever the model verdict cannot be used.
func FallbackVerdict() types.CorrectnessVerdict {
	return types.CorrectnessVerdict{
		Verdict:         types.VerdictPartially,
		MissingPoints:   []string{},
		IncorrectPoints: []string{},
		Score:           5,
	}
}

// CorrectnessJudge asks the text-generation backend for a structured verdict.
// It never returns an error: every failure becomes FallbackVerdict.
type CorrectnessJudge struct {
	client llm.Client
	logger *zap.Logger
}

// NewCorrectnessJudge creates a judge. A nil client always yields the fallback.
func NewCorrectnessJudge(client llm.Client, logger *zap.Logger) *CorrectnessJudge {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CorrectnessJudge{client: client, logger: logger}
}

// Judge returns the model's verdict for answer, or the fallback with the failure reason.
func (j *CorrectnessJudge) Judge(ctx context.Context, question, answer string) llm.Outcome[types.CorrectnessVerdict] {
	if j.client == nil {
		return llm.Fallback(FallbackVerdict(), nil)
	}

	verdict, err := j.request(ctx, question, answer)
	if err == nil {
		return llm.Success(verdict)
	}

	out := llm.Fallback(FallbackVerdict(), err)
	j.logger.Warn("correctness verdict fell back to neutral score",
		zap.String("reason", string(out.Reason)),
		zap.Error(err))
	metrics.RecordFallback("correctness", string(out.Reason))
	return out
}

func (j *CorrectnessJudge) request(ctx context.Context, question, answer string) (verdict types.CorrectnessVerdict, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("model client panicked: %v", r)
		}
	}()

	prompt := prompts.Render(prompts.EvaluationFile, "correctness-verdict", map[string]string{
		"Question": question,
		"Answer":   answer,
	})

	raw, err := j.client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		return verdict, fmt.Errorf("verdict generation failed: %w", err)
	}
	return ParseVerdict(raw)
}

// ParseVerdict isolates the JSON object in raw, validates it against the verdict
// schema, and decodes it. Backend text is only ever treated as data.
func ParseVerdict(raw string) (types.CorrectnessVerdict, error) {
	var verdict types.CorrectnessVerdict

	obj := llm.ExtractJSONObject(raw)
	if obj == "" {
		return verdict, &llm.ParseError{Content: raw, Cause: errors.New("no JSON object in response")}
	}

	if err := schemas.Validate(schemas.VerdictSchema, obj); err != nil {
		var docErr *schemas.DocumentError
		if errors.As(err, &docErr) {
			return verdict, &llm.ParseError{Content: obj, Cause: err}
		}
		return verdict, &llm.ValidationError{Message: err.Error()}
	}

	if err := json.Unmarshal([]byte(obj), &verdict); err != nil {
		return verdict, &llm.ParseError{Content: obj, Cause: err}
	}
	if verdict.MissingPoints == nil {
		verdict.MissingPoints = []string{}
	}
	if verdict.IncorrectPoints == nil {
		verdict.IncorrectPoints = []string{}
	}
	return verdict, nil
}
