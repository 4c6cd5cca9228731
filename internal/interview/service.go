// Package interview runs interview sessions: it asks questions, evaluates
// answers, and summarizes finished sessions.
package interview

import (
	"context"
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/interview-coach/internal/analytics"
	"github.com/jonathan/interview-coach/internal/evaluation"
	"github.com/jonathan/interview-coach/internal/improvement"
	"github.com/jonathan/interview-coach/internal/questions"
	"github.com/jonathan/interview-coach/internal/report"
	"github.com/jonathan/interview-coach/internal/session"
	"github.com/jonathan/interview-coach/internal/types"
)

// Service coordinates the session store with the question engine, the
// evaluator and the improvement composer.
type Service struct {
	store     session.Store
	engine    *questions.Engine
	evaluator *evaluation.Evaluator
	composer  *improvement.Composer
	reports   *cache.Cache
	logger    *zap.Logger
	now       func() time.Time
}

// Deps are the collaborators of a Service.
type Deps struct {
	Store     session.Store
	Engine    *questions.Engine
	Evaluator *evaluation.Evaluator
	Composer  *improvement.Composer
	Logger    *zap.Logger
	// ReportTTL is how long the report of an ended session is kept. 0 keeps it
	// for session.DefaultTTL.
	ReportTTL time.Duration
}

// NewService creates a Service.
func NewService(deps Deps) *Service {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	ttl := deps.ReportTTL
	if ttl <= 0 {
		ttl = session.DefaultTTL
	}
	return &Service{
		store:     deps.Store,
		engine:    deps.Engine,
		evaluator: deps.Evaluator,
		composer:  deps.Composer,
		reports:   cache.New(ttl, session.DefaultCleanupInterval),
		logger:    logger,
		now:       time.Now,
	}
}

// ReportURL is where the text report of a session is served.
func ReportURL(id string) string {
	return "/interview/report/" + id
}

// Start creates a session and asks its first question.
func (s *Service) Start(ctx context.Context, profile types.InterviewProfile) (*types.StartInterviewResponse, error) {
	sess, err := s.store.Create(ctx, session.Metadata{
		Role:       profile.Role,
		Domain:     profile.Domain,
		Difficulty: profile.Difficulty,
		Mode:       profile.Mode,
		StartedAt:  s.now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	question := s.engine.Next(ctx, profile)
	if err := s.store.AppendQuestion(ctx, sess.ID, question.Value); err != nil {
		return nil, fmt.Errorf("failed to record first question: %w", err)
	}

	s.logger.Info("interview started",
		zap.String("session_id", sess.ID),
		zap.String("role", profile.Role),
		zap.Bool("question_fallback", question.Fallback))

	return &types.StartInterviewResponse{
		SessionID:      sess.ID,
		Role:           profile.Role,
		QuestionNumber: 1,
		Question:       question.Value,
	}, nil
}

// Next asks a fresh question. An unanswered question is replaced rather than
// stacked, so answers stay aligned with the questions they answer.
func (s *Service) Next(ctx context.Context, id string) (*types.QuestionResponse, error) {
	var resp *types.QuestionResponse
	err := s.store.WithLock(ctx, id, func(sess *session.Session) error {
		if sess.Ended() {
			return session.ErrSessionEnded
		}

		question := s.engine.Next(ctx, sess.Meta.Profile())
		var err error
		if _, pending := sess.Pending(); pending {
			err = sess.ReplacePending(question.Value)
		} else {
			err = sess.AppendQuestion(question.Value)
		}
		if err != nil {
			return err
		}

		resp = &types.QuestionResponse{
			SessionID:      id,
			QuestionNumber: len(sess.Questions),
			Question:       question.Value,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// TurnObserver is called with an answer's evaluation before the follow-up
// question is generated.
type TurnObserver func(types.EvaluationRecord)

// SubmitAnswer answers the pending question, evaluates the answer and asks a
// follow-up. The whole turn runs under the session lock.
func (s *Service) SubmitAnswer(ctx context.Context, id, answer string, observers ...TurnObserver) (*types.AnswerResponse, error) {
	var resp *types.AnswerResponse
	err := s.store.WithLock(ctx, id, func(sess *session.Session) error {
		question, err := sess.AppendAnswer(answer)
		if err != nil {
			return err
		}

		rec := s.evaluator.Evaluate(ctx, question, answer)
		if err := sess.AppendEvaluation(rec); err != nil {
			return err
		}
		for _, observe := range observers {
			observe(rec)
		}

		followUp := s.engine.FollowUp(ctx, question, answer, rec.CorrectnessScore, rec.ConfidenceScore)
		if err := sess.AppendQuestion(followUp.Value); err != nil {
			return err
		}

		resp = &types.AnswerResponse{
			SessionID:        id,
			Evaluation:       rec,
			FollowUpQuestion: followUp.Value,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("answer evaluated",
		zap.String("session_id", id),
		zap.Float64("readiness", resp.Evaluation.ReadinessScore),
		zap.String("correctness_fallback", resp.Evaluation.CorrectnessFallback))
	return resp, nil
}

// End closes the session and summarizes it. Ending an ended session returns
// the same summaries again.
func (s *Service) End(ctx context.Context, id string) (*types.EndInterviewResponse, error) {
	if err := s.store.WithLock(ctx, id, func(sess *session.Session) error {
		sess.End(s.now().UTC())
		return nil
	}); err != nil {
		return nil, err
	}

	if cached, ok := s.reports.Get(id); ok {
		return endResponse(cached.(*report.Report)), nil
	}

	rep, err := s.build(ctx, id)
	if err != nil {
		return nil, err
	}
	s.reports.SetDefault(id, rep)

	s.logger.Info("interview ended",
		zap.String("session_id", id),
		zap.Int("answered", rep.Analytics.TotalQuestions),
		zap.Duration("duration", rep.Duration))
	return endResponse(rep), nil
}

// Get returns the session's questions, answers and evaluations.
func (s *Service) Get(ctx context.Context, id string) (*types.SessionView, error) {
	sess, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &types.SessionView{
		SessionID:   sess.ID,
		Profile:     sess.Meta.Profile(),
		Questions:   sess.Questions,
		Answers:     sess.Answers,
		Evaluations: sess.Evaluations,
		StartedAt:   sess.Meta.StartedAt,
		EndedAt:     sess.Meta.EndedAt,
	}, nil
}

// Analytics summarizes the session's evaluations so far.
func (s *Service) Analytics(ctx context.Context, id string) (types.AnalyticsSummary, error) {
	sess, err := s.store.Get(ctx, id)
	if err != nil {
		return types.AnalyticsSummary{}, err
	}
	return analytics.Summarize(sess.Evaluations), nil
}

// Plan composes an improvement plan from the session's evaluations so far.
func (s *Service) Plan(ctx context.Context, id string) (types.ImprovementPlan, error) {
	sess, err := s.store.Get(ctx, id)
	if err != nil {
		return types.ImprovementPlan{}, err
	}
	return s.composer.Plan(ctx, sess.Evaluations), nil
}

// Report returns the report stored when the session ended, or builds one for a
// session still in progress.
func (s *Service) Report(ctx context.Context, id string) (*report.Report, error) {
	if cached, ok := s.reports.Get(id); ok {
		return cached.(*report.Report), nil
	}
	return s.build(ctx, id)
}

// Evaluate scores a single answer without a session.
func (s *Service) Evaluate(ctx context.Context, question, answer string) types.EvaluationRecord {
	return s.evaluator.Evaluate(ctx, question, answer)
}

// ComposePlan builds an improvement plan from caller-supplied evaluations.
func (s *Service) ComposePlan(ctx context.Context, evals []types.EvaluationRecord) types.ImprovementPlan {
	return s.composer.Plan(ctx, evals)
}

func (s *Service) build(ctx context.Context, id string) (*report.Report, error) {
	sess, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	summary, plan := s.summarize(ctx, sess.Evaluations)
	return report.Build(sess, summary, plan, s.now().UTC()), nil
}

// summarize runs the analytics reducer and the plan composer concurrently.
// Neither can fail, so the group only joins them.
func (s *Service) summarize(ctx context.Context, evals []types.EvaluationRecord) (types.AnalyticsSummary, types.ImprovementPlan) {
	var (
		summary types.AnalyticsSummary
		plan    types.ImprovementPlan
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		summary = analytics.Summarize(evals)
		return nil
	})
	g.Go(func() error {
		plan = s.composer.Plan(gctx, evals)
		return nil
	})
	_ = g.Wait()
	return summary, plan
}

func endResponse(rep *report.Report) *types.EndInterviewResponse {
	return &types.EndInterviewResponse{
		SessionID:   rep.SessionID,
		Analytics:   rep.Analytics,
		Improvement: rep.Plan,
		ReportURL:   ReportURL(rep.SessionID),
	}
}
