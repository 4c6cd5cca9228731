package llm

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// FailureReason names why a generation call could not be used.
type FailureReason string

// Failure reasons reported by adapters that fall back on a failed call.
const (
	ReasonNone       FailureReason = ""
	ReasonTimeout    FailureReason = "timeout"
	ReasonNetwork    FailureReason = "network"
	ReasonStatus     FailureReason = "status"
	ReasonEmpty      FailureReason = "empty"
	ReasonParse      FailureReason = "parse"
	ReasonValidation FailureReason = "validation"
	ReasonUnknown    FailureReason = "unknown"
	// ReasonDisabled means no model client is configured.
	ReasonDisabled   FailureReason = "disabled"
)

// ErrEmptyResponse is returned when the provider answered without any text.
var ErrEmptyResponse = errors.New("empty response from model")

// StatusError is returned when an HTTP provider answers with a non-2xx status.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("model server returned status %d: %s", e.Code, e.Body)
}

// ParseError wraps a response that could not be decoded as the expected structure.
type ParseError struct {
	Content string
	Cause   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse model response: %v", e.Cause)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// ValidationError wraps a response that parsed but failed schema or bounds checks.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return "model response failed validation: " + e.Message
}

// Classify maps an error from a generation call or its parsing to a FailureReason.
func Classify(err error) FailureReason {
	if err == nil {
		return ReasonNone
	}

	var statusErr *StatusError
	var parseErr *ParseError
	var validationErr *ValidationError
	var netErr net.Error

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return ReasonTimeout
	case errors.As(err, &netErr) && netErr.Timeout():
		return ReasonTimeout
	case errors.As(err, &statusErr):
		return ReasonStatus
	case errors.Is(err, ErrEmptyResponse):
		return ReasonEmpty
	case errors.As(err, &parseErr):
		return ReasonParse
	case errors.As(err, &validationErr):
		return ReasonValidation
	case errors.As(err, &netErr), errors.Is(err, context.Canceled):
		return ReasonNetwork
	default:
		return ReasonUnknown
	}
}
