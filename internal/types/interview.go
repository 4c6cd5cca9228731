package types

import (
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// InterviewProfile describes what kind of interview a session runs.
type InterviewProfile struct {
	Role       string `json:"role" validate:"required,min=1,max=100"`
	Domain     string `json:"domain,omitempty" validate:"max=100"`
	Difficulty string `json:"difficulty,omitempty" validate:"omitempty,oneof=easy medium hard"`
	Mode       string `json:"mode,omitempty" validate:"omitempty,oneof=technical behavioral mixed"`
}

// StartInterviewRequest starts a new session.
type StartInterviewRequest struct {
	InterviewProfile
}

// SessionRequest references an existing session.
type SessionRequest struct {
	SessionID string `json:"session_id" validate:"required,uuid"`
}

// AnswerRequest submits an answer to the session's open question.
type AnswerRequest struct {
	SessionID string `json:"session_id" validate:"required,uuid"`
	Answer    string `json:"answer" validate:"max=20000"`
}

// Validate validates the StartInterviewRequest using the validator.
func (r *StartInterviewRequest) Validate() error {
	return validate.Struct(r)
}

// Validate validates the SessionRequest using the validator.
func (r *SessionRequest) Validate() error {
	return validate.Struct(r)
}

// Validate validates the AnswerRequest using the validator.
func (r *AnswerRequest) Validate() error {
	return validate.Struct(r)
}

// Validate validates the EvaluateRequest using the validator.
func (r *EvaluateRequest) Validate() error {
	return validate.Struct(r)
}

// StartInterviewResponse is returned when a session is created.
type StartInterviewResponse struct {
	SessionID      string `json:"session_id"`
	Role           string `json:"role"`
	QuestionNumber int    `json:"question_number"`
	Question       string `json:"question"`
}

// QuestionResponse is returned when a new question is appended.
type QuestionResponse struct {
	SessionID      string `json:"session_id"`
	QuestionNumber int    `json:"question_number"`
	Question       string `json:"question"`
}

// AnswerResponse is returned after an answer has been evaluated.
type AnswerResponse struct {
	SessionID        string           `json:"session_id"`
	Evaluation       EvaluationRecord `json:"evaluation"`
	FollowUpQuestion string           `json:"follow_up_question"`
}

// SessionView is the read model of a session.
type SessionView struct {
	SessionID   string             `json:"session_id"`
	Profile     InterviewProfile   `json:"profile"`
	Questions   []string           `json:"questions"`
	Answers     []string           `json:"answers"`
	Evaluations []EvaluationRecord `json:"evaluations"`
	StartedAt   time.Time          `json:"started_at"`
	EndedAt     *time.Time         `json:"ended_at,omitempty"`
}

// EndInterviewResponse bundles the derived summaries of a finished session.
type EndInterviewResponse struct {
	SessionID   string           `json:"session_id"`
	Analytics   AnalyticsSummary `json:"analytics"`
	Improvement ImprovementPlan  `json:"improvement"`
	ReportURL   string           `json:"report_url"`
}
