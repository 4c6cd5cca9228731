// Package report renders a finished (or in-progress) interview as plain text.
package report

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/jonathan/interview-coach/internal/observability"
	"github.com/jonathan/interview-coach/internal/session"
	"github.com/jonathan/interview-coach/internal/types"
)

// Row is one question of the interview and, once answered, its evaluation.
type Row struct {
	Number     int                     `json:"number"`
	Question   string                  `json:"question"`
	Answer     string                  `json:"answer,omitempty"`
	Evaluation *types.EvaluationRecord `json:"evaluation,omitempty"`
}

// Report bundles everything shown in the interview report.
type Report struct {
	SessionID   string                 `json:"session_id"`
	Profile     types.InterviewProfile `json:"profile"`
	StartedAt   time.Time              `json:"started_at"`
	EndedAt     *time.Time             `json:"ended_at,omitempty"`
	Duration    time.Duration          `json:"duration_ns"`
	Rows        []Row                  `json:"rows"`
	Analytics   types.AnalyticsSummary `json:"analytics"`
	Plan        types.ImprovementPlan  `json:"improvement"`
	GeneratedAt time.Time              `json:"generated_at"`
}

// Build assembles a report from a session snapshot and its derived summaries.
func Build(s *session.Session, analytics types.AnalyticsSummary, plan types.ImprovementPlan, now time.Time) *Report {
	r := &Report{
		SessionID:   s.ID,
		Profile:     s.Meta.Profile(),
		StartedAt:   s.Meta.StartedAt,
		EndedAt:     s.Meta.EndedAt,
		Duration:    s.Meta.Duration(now),
		Rows:        make([]Row, 0, len(s.Questions)),
		Analytics:   analytics,
		Plan:        plan,
		GeneratedAt: now,
	}
	for i, q := range s.Questions {
		row := Row{Number: i + 1, Question: q}
		if i < len(s.Answers) {
			row.Answer = s.Answers[i]
		}
		if i < len(s.Evaluations) {
			rec := s.Evaluations[i]
			row.Evaluation = &rec
		}
		r.Rows = append(r.Rows, row)
	}
	return r
}

// Render writes the text report to w.
func (r *Report) Render(w io.Writer) error {
	ew := &errWriter{w: w}
	p := observability.NewPrinter(ew)

	status := "in progress"
	if r.EndedAt != nil {
		status = "completed"
	}
	p.PrintHeader("INTERVIEW REPORT", [][2]string{
		{"Session", r.SessionID},
		{"Role", r.Profile.Role},
		{"Domain", r.Profile.Domain},
		{"Difficulty", r.Profile.Difficulty},
		{"Mode", r.Profile.Mode},
		{"Started", r.StartedAt.Format(time.RFC1123)},
		{"Duration", r.Duration.Round(time.Second).String()},
		{"Status", status},
	})

	for _, row := range r.Rows {
		title := fmt.Sprintf("QUESTION %d", row.Number)
		if row.Evaluation == nil {
			body := "Q: " + row.Question + "\n\n(not answered)"
			if row.Answer != "" {
				body = "Q: " + row.Question + "\nA: " + row.Answer + "\n\n(not evaluated)"
			}
			p.PrintText(title, body)
			continue
		}
		rec := *row.Evaluation
		rec.Question, rec.Answer = row.Question, row.Answer
		p.PrintEvaluation(title, &rec)
	}

	p.PrintAnalytics(&r.Analytics)
	p.PrintPlan(&r.Plan)
	fmt.Fprintf(ew, "Generated %s\n", r.GeneratedAt.Format(time.RFC1123))
	return ew.err
}

// String renders the report, ignoring write errors.
func (r *Report) String() string {
	var buf bytes.Buffer
	_ = r.Render(&buf)
	return buf.String()
}

// errWriter keeps the first write error and drops later writes.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}
