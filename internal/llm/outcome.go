package llm

// Outcome is the result of a model-backed step that always yields a usable value.
// When the call failed, Value holds the documented fallback, Fallback is true and
// Reason/Err describe the failure.
type Outcome[T any] struct {
	Value    T
	Fallback bool
	Reason   FailureReason
	Err      error
}

// Success wraps a value produced from a good model response.
func Success[T any](v T) Outcome[T] {
	return Outcome[T]{Value: v}
}

// Fallback wraps a fallback value and classifies the error that caused it.
func Fallback[T any](v T, err error) Outcome[T] {
	reason := Classify(err)
	if err == nil {
		reason = ReasonDisabled
	}
	return Outcome[T]{Value: v, Fallback: true, Reason: reason, Err: err}
}
