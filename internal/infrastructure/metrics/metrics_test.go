package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Observe(t *testing.T) {
	m := New()
	m.ObserveValidation(map[string]string{"dynamic_level": "x", "measured_on": "y"})
	m.ObserveValidation(map[string]string{"dynamic_level": "x"})
	m.ObserveIntake("stored")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.ValidationFailures.WithLabelValues("dynamic_level")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ValidationFailures.WithLabelValues("measured_on")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.IntakeMessages.WithLabelValues("stored")))

	var nilMetrics *Metrics
	nilMetrics.ObserveValidation(map[string]string{"a": "b"})
	nilMetrics.ObserveIntake("stored")
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.ObserveIntake("rejected")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `ndne_intake_messages_total{outcome="rejected"} 1`)
}
