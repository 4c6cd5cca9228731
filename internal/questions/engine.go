package questions

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/interview-coach/internal/llm"
	"github.com/jonathan/interview-coach/internal/metrics"
	"github.com/jonathan/interview-coach/internal/prompts"
	"github.com/jonathan/interview-coach/internal/types"
)

// DefaultFollowUp is asked when the model cannot produce a follow-up question.
const DefaultFollowUp = "Can you explain that in a bit more detail?"

// Engine produces interview questions.
type Engine struct {
	client llm.Client
	bank   *Bank
	logger *zap.Logger
	pick   func(n int) int
}

// Option configures an Engine.
type Option func(*Engine)

// WithPicker replaces the random index source used for bank fallbacks.
func WithPicker(pick func(n int) int) Option {
	return func(e *Engine) { e.pick = pick }
}

// NewEngine creates an Engine. client may be nil, in which case every question
// comes from the bank.
func NewEngine(client llm.Client, bank *Bank, logger *zap.Logger, opts ...Option) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	e := &Engine{
		client: client,
		bank:   bank,
		logger: logger,
		pick:   rand.IntN,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Next returns one opening question for the profile. It never fails: if the model
// is unavailable, a random bank question for the role is returned.
func (e *Engine) Next(ctx context.Context, profile types.InterviewProfile) llm.Outcome[string] {
	if e.client == nil {
		return llm.Fallback(e.fromBank(profile.Role), nil)
	}

	prompt := prompts.Render(prompts.InterviewFile, "generate-question", map[string]string{
		"Role":       profile.Role,
		"Domain":     orDefault(profile.Domain, "general"),
		"Difficulty": orDefault(profile.Difficulty, "medium"),
		"Mode":       orDefault(profile.Mode, "mixed"),
	})

	text, err := e.client.GenerateContent(ctx, prompt, llm.TierStandard)
	if err == nil {
		if q := cleanQuestion(text); q != "" {
			return llm.Success(q)
		}
		err = fmt.Errorf("question generation: %w", llm.ErrEmptyResponse)
	}

	out := llm.Fallback(e.fromBank(profile.Role), err)
	e.logger.Warn("question generation fell back to bank",
		zap.String("role", profile.Role),
		zap.String("reason", string(out.Reason)),
		zap.Error(err))
	metrics.RecordFallback("question", string(out.Reason))
	return out
}

// FollowUp asks the model for one follow-up to an evaluated answer.
func (e *Engine) FollowUp(ctx context.Context, question, answer string, correctness float64, confidence int) llm.Outcome[string] {
	if e.client == nil {
		return llm.Fallback(DefaultFollowUp, nil)
	}

	prompt := prompts.Render(prompts.InterviewFile, "generate-followup", map[string]string{
		"Question":    question,
		"Answer":      answer,
		"Correctness": fmt.Sprintf("%.1f", correctness),
		"Confidence":  fmt.Sprintf("%d", confidence),
	})

	text, err := e.client.GenerateContent(ctx, prompt, llm.TierLite)
	if err == nil {
		if q := cleanQuestion(text); q != "" {
			return llm.Success(q)
		}
		err = fmt.Errorf("follow-up generation: %w", llm.ErrEmptyResponse)
	}

	out := llm.Fallback(DefaultFollowUp, err)
	e.logger.Warn("follow-up generation fell back to default",
		zap.String("reason", string(out.Reason)),
		zap.Error(err))
	metrics.RecordFallback("followup", string(out.Reason))
	return out
}

// Rule returns the bank's correctness rule for a question.
func (e *Engine) Rule(question string) (Rule, bool) {
	return e.bank.Rule(question)
}

func (e *Engine) fromBank(role string) string {
	pool := e.bank.Questions(role)
	return pool[e.pick(len(pool))].Text
}

// cleanQuestion trims model chatter around a single question.
func cleanQuestion(text string) string {
	text = strings.TrimSpace(text)
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimPrefix(line, "Question:")
		line = strings.Trim(strings.TrimSpace(line), `"'`)
		if line != "" {
			return line
		}
	}
	return ""
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}
