package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordFallback(t *testing.T) {
	before := testutil.ToFloat64(LLMFallbacks.WithLabelValues("correctness", "timeout"))
	RecordFallback("correctness", "timeout")
	after := testutil.ToFloat64(LLMFallbacks.WithLabelValues("correctness", "timeout"))
	assert.Equal(t, before+1, after)
}

func TestObserveRequest(t *testing.T) {
	before := testutil.ToFloat64(RequestCounter.WithLabelValues("GET", "/health", "200"))
	ObserveRequest("GET", "/health", http.StatusOK, 5*time.Millisecond)
	assert.Equal(t, before+1, testutil.ToFloat64(RequestCounter.WithLabelValues("GET", "/health", "200")))
}

func TestHandler(t *testing.T) {
	EvaluationsTotal.Inc()

	w := httptest.NewRecorder()
	Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "interview_evaluations_total")
}
