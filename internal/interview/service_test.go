package interview

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/interview-coach/internal/evaluation"
	"github.com/jonathan/interview-coach/internal/improvement"
	"github.com/jonathan/interview-coach/internal/llm"
	"github.com/jonathan/interview-coach/internal/llm/llmtest"
	"github.com/jonathan/interview-coach/internal/questions"
	"github.com/jonathan/interview-coach/internal/session"
	"github.com/jonathan/interview-coach/internal/types"
)

// scripted answers each prompt kind with a recognisable response.
func scripted() *llmtest.Client {
	var followUps atomic.Int32
	return &llmtest.Client{Respond: func(prompt string, _ llm.ModelTier) (string, error) {
		switch {
		case strings.Contains(prompt, "missing_points"):
			return `{"verdict": "Partially", "missing_points": ["trade-offs"], "incorrect_points": [], "score": 6}`, nil
		case strings.Contains(prompt, "follow-up question"):
			return fmt.Sprintf("Follow-up %d?", followUps.Add(1)), nil
		case strings.Contains(prompt, "interview coach"):
			return "Keep answers structured.", nil
		default:
			return "How would you design a rate limiter?", nil
		}
	}}
}

func newService(t *testing.T, client llm.Client) (*Service, session.Store) {
	t.Helper()
	bank, err := questions.LoadBank()
	require.NoError(t, err)

	store := session.NewMemoryStore(time.Hour, time.Minute)
	svc := NewService(Deps{
		Store:     store,
		Engine:    questions.NewEngine(client, bank, nil),
		Evaluator: evaluation.NewEvaluator(evaluation.NewCorrectnessJudge(client, nil), nil, evaluation.WithRules(bank)),
		Composer:  improvement.NewComposer(client, nil),
	})
	return svc, store
}

var profile = types.InterviewProfile{Role: "software engineer", Domain: "backend", Difficulty: "medium", Mode: "technical"}

func TestStart(t *testing.T) {
	svc, store := newService(t, scripted())
	ctx := context.Background()

	resp, err := svc.Start(ctx, profile)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.QuestionNumber)
	assert.Equal(t, "How would you design a rate limiter?", resp.Question)

	sess, err := store.Get(ctx, resp.SessionID)
	require.NoError(t, err)
	assert.Equal(t, []string{resp.Question}, sess.Questions)
	assert.Equal(t, "backend", sess.Meta.Domain)
}

func TestSubmitAnswer(t *testing.T) {
	svc, _ := newService(t, scripted())
	ctx := context.Background()

	start, err := svc.Start(ctx, profile)
	require.NoError(t, err)

	resp, err := svc.SubmitAnswer(ctx, start.SessionID, "I would use a token bucket per client and store counters in memory.")
	require.NoError(t, err)
	assert.Equal(t, "Follow-up 1?", resp.FollowUpQuestion)
	assert.Equal(t, start.Question, resp.Evaluation.Question)
	assert.Equal(t, 6.0, resp.Evaluation.CorrectnessScore)
	assert.Equal(t, []string{"trade-offs"}, resp.Evaluation.Verdict.MissingPoints)

	resp, err = svc.SubmitAnswer(ctx, start.SessionID, "Redis for shared state.")
	require.NoError(t, err)
	assert.Equal(t, "Follow-up 1?", resp.Evaluation.Question)
	assert.Equal(t, "Follow-up 2?", resp.FollowUpQuestion)

	view, err := svc.Get(ctx, start.SessionID)
	require.NoError(t, err)
	assert.Len(t, view.Questions, 3)
	assert.Len(t, view.Answers, 2)
	assert.Len(t, view.Evaluations, 2)
	assert.Nil(t, view.EndedAt)
}

func TestSubmitAnswer_UnknownSession(t *testing.T) {
	svc, _ := newService(t, scripted())

	_, err := svc.SubmitAnswer(context.Background(), "2b1e5c0a-0000-4000-8000-000000000000", "hi")
	assert.ErrorIs(t, err, session.ErrSessionNotFound)
}

func TestSubmitAnswer_ConcurrentTurnsStayAligned(t *testing.T) {
	svc, store := newService(t, scripted())
	ctx := context.Background()
	start, err := svc.Start(ctx, profile)
	require.NoError(t, err)

	const n = 20
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := svc.SubmitAnswer(ctx, start.SessionID, fmt.Sprintf("answer %d", i))
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	sess, err := store.Get(ctx, start.SessionID)
	require.NoError(t, err)
	assert.True(t, sess.Aligned())
	assert.Len(t, sess.Evaluations, n)
	assert.Len(t, sess.Questions, n+1)
	for i, rec := range sess.Evaluations {
		assert.Equal(t, sess.Questions[i], rec.Question)
		assert.Equal(t, sess.Answers[i], rec.Answer)
	}
}

func TestNext_ReplacesPendingQuestion(t *testing.T) {
	svc, store := newService(t, scripted())
	ctx := context.Background()
	start, err := svc.Start(ctx, profile)
	require.NoError(t, err)

	next, err := svc.Next(ctx, start.SessionID)
	require.NoError(t, err)
	assert.Equal(t, 1, next.QuestionNumber)

	_, err = svc.SubmitAnswer(ctx, start.SessionID, "answer")
	require.NoError(t, err)
	sess, err := store.Get(ctx, start.SessionID)
	require.NoError(t, err)
	assert.Len(t, sess.Questions, 2)
	assert.Len(t, sess.Answers, 1)
}

func TestEnd(t *testing.T) {
	svc, _ := newService(t, scripted())
	ctx := context.Background()
	start, err := svc.Start(ctx, profile)
	require.NoError(t, err)
	_, err = svc.SubmitAnswer(ctx, start.SessionID, "Short.")
	require.NoError(t, err)

	end, err := svc.End(ctx, start.SessionID)
	require.NoError(t, err)
	assert.Equal(t, "/interview/report/"+start.SessionID, end.ReportURL)
	assert.Equal(t, 1, end.Analytics.TotalQuestions)
	assert.Equal(t, 6.0, end.Analytics.Averages[types.DimensionCorrectness])
	assert.Equal(t, "Keep answers structured.", end.Improvement.Summary)
	assert.Contains(t, end.Improvement.FocusAreas, improvement.FocusConfidence)

	again, err := svc.End(ctx, start.SessionID)
	require.NoError(t, err)
	assert.Equal(t, end, again)

	_, err = svc.SubmitAnswer(ctx, start.SessionID, "late")
	assert.ErrorIs(t, err, session.ErrSessionEnded)
	_, err = svc.Next(ctx, start.SessionID)
	assert.ErrorIs(t, err, session.ErrSessionEnded)

	rep, err := svc.Report(ctx, start.SessionID)
	require.NoError(t, err)
	assert.NotNil(t, rep.EndedAt)
	assert.Contains(t, rep.String(), "QUESTION 1")
}

func TestEnd_EmptySession(t *testing.T) {
	svc, _ := newService(t, scripted())
	ctx := context.Background()
	start, err := svc.Start(ctx, profile)
	require.NoError(t, err)

	end, err := svc.End(ctx, start.SessionID)
	require.NoError(t, err)
	assert.Equal(t, "No data available yet.", end.Analytics.Summary)
	assert.Equal(t, improvement.EmptySummary, end.Improvement.Summary)
}

func TestBackendDown(t *testing.T) {
	svc, _ := newService(t, llmtest.Failing(nil))
	ctx := context.Background()

	start, err := svc.Start(ctx, profile)
	require.NoError(t, err)
	assert.NotEmpty(t, start.Question)

	resp, err := svc.SubmitAnswer(ctx, start.SessionID, "I don't know")
	require.NoError(t, err)
	assert.Equal(t, questions.DefaultFollowUp, resp.FollowUpQuestion)
	assert.Equal(t, string(llm.ReasonUnknown), resp.Evaluation.CorrectnessFallback)
	assert.GreaterOrEqual(t, resp.Evaluation.CorrectnessScore, 5.0)

	end, err := svc.End(ctx, start.SessionID)
	require.NoError(t, err)
	assert.Equal(t, improvement.FallbackSummary, end.Improvement.Summary)
}

func TestAnalyticsAndPlan_InProgress(t *testing.T) {
	svc, _ := newService(t, scripted())
	ctx := context.Background()
	start, err := svc.Start(ctx, profile)
	require.NoError(t, err)

	summary, err := svc.Analytics(ctx, start.SessionID)
	require.NoError(t, err)
	assert.Zero(t, summary.TotalQuestions)

	_, err = svc.SubmitAnswer(ctx, start.SessionID, "answer")
	require.NoError(t, err)

	plan, err := svc.Plan(ctx, start.SessionID)
	require.NoError(t, err)
	assert.NotEmpty(t, plan.ActionItems)

	rep, err := svc.Report(ctx, start.SessionID)
	require.NoError(t, err)
	assert.Nil(t, rep.EndedAt)
	assert.Len(t, rep.Rows, 2)

	_, err = svc.Plan(ctx, "missing")
	assert.ErrorIs(t, err, session.ErrSessionNotFound)
}

func TestSubmitAnswer_ObserverSeesEvaluationFirst(t *testing.T) {
	client := scripted()
	svc, _ := newService(t, client)
	ctx := context.Background()
	start, err := svc.Start(ctx, profile)
	require.NoError(t, err)

	var seen []types.EvaluationRecord
	callsAtObserve := 0
	resp, err := svc.SubmitAnswer(ctx, start.SessionID, "answer", func(rec types.EvaluationRecord) {
		seen = append(seen, rec)
		callsAtObserve = client.Calls()
	})
	require.NoError(t, err)

	require.Len(t, seen, 1)
	assert.Equal(t, resp.Evaluation, seen[0])
	assert.Equal(t, client.Calls()-1, callsAtObserve, "follow-up is requested after the observer runs")
}
