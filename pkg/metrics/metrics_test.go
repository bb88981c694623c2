package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_CountersAndHandler(t *testing.T) {
	m := New("adventure-booking")

	m.ObserveHTTP(http.MethodGet, "/api/v1/activities", http.StatusOK, 10*time.Millisecond)
	m.BookingOutcome("confirmed")
	m.BookingOutcome("confirmed")
	m.SuggestionLookup("error")
	m.AdviceRequest("fallback")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.bookings.WithLabelValues("confirmed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.suggestions.WithLabelValues("error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "/api/v1/activities", "200")))

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "bookings_total")
}

func TestMetrics_NilIsSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.BookingOutcome("confirmed")
		m.ObserveHTTP("GET", "/", 200, time.Millisecond)
	})
}

func TestNew_IndependentRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		New("a")
		New("b")
	})
}
