package server

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/jonathan/interview-coach/internal/analytics"
	"github.com/jonathan/interview-coach/internal/types"
)

// handleStart creates a session and returns its first question
func (s *Server) handleStart(w http.ResponseWriter, r *http.Request) {
	var req types.StartInterviewRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		s.serviceError(w, validationError(err))
		return
	}

	resp, err := s.service.Start(r.Context(), req.InterviewProfile)
	if err != nil {
		s.serviceError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusCreated, resp)
}

// handleNext replaces or appends the session's open question
func (s *Server) handleNext(w http.ResponseWriter, r *http.Request) {
	var req types.SessionRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		s.serviceError(w, validationError(err))
		return
	}

	resp, err := s.service.Next(r.Context(), req.SessionID)
	if err != nil {
		s.serviceError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, resp)
}

// handleAnswer evaluates an answer and returns the follow-up question
func (s *Server) handleAnswer(w http.ResponseWriter, r *http.Request) {
	var req types.AnswerRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		s.serviceError(w, validationError(err))
		return
	}

	resp, err := s.service.SubmitAnswer(r.Context(), req.SessionID, req.Answer)
	if err != nil {
		s.serviceError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, resp)
}

// handleAnswerStream evaluates an answer and streams the evaluation, then the
// follow-up question, as Server-Sent Events
func (s *Server) handleAnswerStream(w http.ResponseWriter, r *http.Request) {
	var req types.AnswerRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		s.serviceError(w, validationError(err))
		return
	}

	sse, err := NewSSEWriter(w)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	// The observer runs under the session lock, so it only hands the record to a
	// writer goroutine; a slow client never holds up other requests on the session.
	evaluations := make(chan types.EvaluationRecord, 1)
	written := make(chan struct{})
	go func() {
		defer close(written)
		for rec := range evaluations {
			if err := sse.WriteEvent(EventEvaluation, rec); err != nil {
				s.logger.Warn("failed to write SSE event", zap.Error(err))
			}
		}
	}()

	resp, err := s.service.SubmitAnswer(r.Context(), req.SessionID, req.Answer, func(rec types.EvaluationRecord) {
		evaluations <- rec
	})
	close(evaluations)
	<-written
	if err != nil {
		sse.WriteError(err)
		return
	}

	if err := sse.WriteEvent(EventFollowUp, map[string]string{"follow_up_question": resp.FollowUpQuestion}); err != nil {
		s.logger.Warn("failed to write SSE event", zap.Error(err))
	}
	sse.WriteComplete(req.SessionID)
}

// handleEnd closes the session and returns its analytics and improvement plan
func (s *Server) handleEnd(w http.ResponseWriter, r *http.Request) {
	var req types.SessionRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		s.serviceError(w, validationError(err))
		return
	}

	resp, err := s.service.End(r.Context(), req.SessionID)
	if err != nil {
		s.serviceError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, resp)
}

// handleGetSession returns the session log
func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	view, err := s.service.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		s.serviceError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, view)
}

// handleSessionView serves /interview/{id}/analytics and /interview/{id}/plan
func (s *Server) handleSessionView(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	switch r.PathValue("view") {
	case "analytics":
		summary, err := s.service.Analytics(r.Context(), id)
		if err != nil {
			s.serviceError(w, err)
			return
		}
		s.jsonResponse(w, http.StatusOK, summary)
	case "plan":
		plan, err := s.service.Plan(r.Context(), id)
		if err != nil {
			s.serviceError(w, err)
			return
		}
		s.jsonResponse(w, http.StatusOK, plan)
	case "report":
		s.handleReport(w, r)
	default:
		http.NotFound(w, r)
	}
}

// handleReport renders the session report as text, or JSON with ?format=json
func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	rep, err := s.service.Report(r.Context(), r.PathValue("id"))
	if err != nil {
		s.serviceError(w, err)
		return
	}

	if r.URL.Query().Get("format") == "json" {
		s.jsonResponse(w, http.StatusOK, rep)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", `inline; filename="interview_report.txt"`)
	if err := rep.Render(w); err != nil {
		s.logger.Warn("failed to write report", zap.String("session_id", rep.SessionID), zap.Error(err))
	}
}

// handleEvaluate scores one question/answer pair without a session
func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	var req types.EvaluateRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		s.serviceError(w, validationError(err))
		return
	}

	s.jsonResponse(w, http.StatusOK, s.service.Evaluate(r.Context(), req.Question, req.Answer))
}

// handleAnalytics summarizes caller-supplied evaluations
func (s *Server) handleAnalytics(w http.ResponseWriter, r *http.Request) {
	var req types.EvaluationsRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	s.jsonResponse(w, http.StatusOK, analytics.Summarize(req.Evaluations))
}

// handlePlan composes an improvement plan from caller-supplied evaluations
func (s *Server) handlePlan(w http.ResponseWriter, r *http.Request) {
	var req types.EvaluationsRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	s.jsonResponse(w, http.StatusOK, s.service.ComposePlan(r.Context(), req.Evaluations))
}
