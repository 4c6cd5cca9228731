// Package session holds interview sessions: the asked questions, the candidate's
// answers and the evaluation of each answer, index-aligned.
package session

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jonathan/interview-coach/internal/types"
)

var (
	// ErrSessionNotFound is returned for unknown or expired session ids.
	ErrSessionNotFound = errors.New("session not found")
	// ErrAlignment is returned when an append would break
	// len(evaluations) <= len(answers) <= len(questions).
	ErrAlignment = errors.New("session log out of order")
	// ErrSessionEnded is returned when a finished session receives more turns.
	ErrSessionEnded = errors.New("session has ended")
)

// Metadata describes the interview a session was started for.
type Metadata struct {
	Role       string     `json:"role"`
	Domain     string     `json:"domain,omitempty"`
	Difficulty string     `json:"difficulty,omitempty"`
	Mode       string     `json:"mode,omitempty"`
	StartedAt  time.Time  `json:"started_at"`
	EndedAt    *time.Time `json:"ended_at,omitempty"`
}

// Profile returns the interview profile the session was started with.
func (m Metadata) Profile() types.InterviewProfile {
	return types.InterviewProfile{Role: m.Role, Domain: m.Domain, Difficulty: m.Difficulty, Mode: m.Mode}
}

// Duration is the time between start and end, or until now for open sessions.
func (m Metadata) Duration(now time.Time) time.Duration {
	if m.EndedAt != nil {
		return m.EndedAt.Sub(m.StartedAt)
	}
	return now.Sub(m.StartedAt)
}

// Session is one interview. Questions[i] is answered by Answers[i], which is
// scored by Evaluations[i].
//
// Values returned by Store.Get are snapshots. Mutate a stored session only
// through Store methods or inside Store.WithLock.
type Session struct {
	ID          string                   `json:"session_id"`
	Meta        Metadata                 `json:"metadata"`
	Questions   []string                 `json:"questions"`
	Answers     []string                 `json:"answers"`
	Evaluations []types.EvaluationRecord `json:"evaluations"`

	mu sync.Mutex
}

func newSession(id string, meta Metadata) *Session {
	return &Session{
		ID:          id,
		Meta:        meta,
		Questions:   []string{},
		Answers:     []string{},
		Evaluations: []types.EvaluationRecord{},
	}
}

// Ended reports whether End has been called.
func (s *Session) Ended() bool {
	return s.Meta.EndedAt != nil
}

// Pending returns the question waiting for an answer, if any.
func (s *Session) Pending() (string, bool) {
	if len(s.Questions) > len(s.Answers) {
		return s.Questions[len(s.Questions)-1], true
	}
	return "", false
}

// AppendQuestion asks a new question. Only one question may be pending.
func (s *Session) AppendQuestion(question string) error {
	if s.Ended() {
		return ErrSessionEnded
	}
	if _, ok := s.Pending(); ok {
		return fmt.Errorf("%w: question %d is still unanswered", ErrAlignment, len(s.Questions))
	}
	s.Questions = append(s.Questions, question)
	return nil
}

// ReplacePending swaps the unanswered question for another one.
func (s *Session) ReplacePending(question string) error {
	if s.Ended() {
		return ErrSessionEnded
	}
	if _, ok := s.Pending(); !ok {
		return fmt.Errorf("%w: no question is pending", ErrAlignment)
	}
	s.Questions[len(s.Questions)-1] = question
	return nil
}

// AppendAnswer records the answer to the pending question and returns that question.
func (s *Session) AppendAnswer(answer string) (string, error) {
	if s.Ended() {
		return "", ErrSessionEnded
	}
	question, ok := s.Pending()
	if !ok {
		return "", fmt.Errorf("%w: no question is pending", ErrAlignment)
	}
	s.Answers = append(s.Answers, answer)
	return question, nil
}

// AppendEvaluation records the evaluation of the oldest unscored answer.
func (s *Session) AppendEvaluation(rec types.EvaluationRecord) error {
	if len(s.Evaluations) >= len(s.Answers) {
		return fmt.Errorf("%w: %d evaluations for %d answers", ErrAlignment, len(s.Evaluations), len(s.Answers))
	}
	s.Evaluations = append(s.Evaluations, rec)
	return nil
}

// End stamps the end time. Ending twice keeps the first timestamp.
func (s *Session) End(at time.Time) {
	if s.Meta.EndedAt == nil {
		s.Meta.EndedAt = &at
	}
}

// Aligned reports whether the log satisfies the index-alignment invariant.
func (s *Session) Aligned() bool {
	return len(s.Evaluations) <= len(s.Answers) && len(s.Answers) <= len(s.Questions)
}

// snapshot deep-copies the session without its lock.
func (s *Session) snapshot() *Session {
	c := &Session{
		ID:          s.ID,
		Meta:        s.Meta,
		Questions:   append([]string{}, s.Questions...),
		Answers:     append([]string{}, s.Answers...),
		Evaluations: append([]types.EvaluationRecord{}, s.Evaluations...),
	}
	if s.Meta.EndedAt != nil {
		ended := *s.Meta.EndedAt
		c.Meta.EndedAt = &ended
	}
	return c
}
