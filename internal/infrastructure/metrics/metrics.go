package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics groups the collectors shared by the API and the intake consumer.
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequests       *prometheus.CounterVec
	HTTPDuration       *prometheus.HistogramVec
	ValidationFailures *prometheus.CounterVec
	IntakeMessages     *prometheus.CounterVec
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total count of HTTP requests processed by route and status.",
		}, []string{"method", "route", "status"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Histogram of HTTP request durations by route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		ValidationFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ndne_validation_failures_total",
			Help: "ND/NE submissions rejected by field validation, by field.",
		}, []string{"field"}),
		IntakeMessages: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ndne_intake_messages_total",
			Help: "Automated ND/NE messages consumed, by outcome.",
		}, []string{"outcome"}),
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.HTTPRequests,
		m.HTTPDuration,
		m.ValidationFailures,
		m.IntakeMessages,
	)
	return m
}

// ObserveValidation counts each rejected field once.
func (m *Metrics) ObserveValidation(fields map[string]string) {
	if m == nil {
		return
	}
	for f := range fields {
		m.ValidationFailures.WithLabelValues(f).Inc()
	}
}

func (m *Metrics) ObserveIntake(outcome string) {
	if m == nil {
		return
	}
	m.IntakeMessages.WithLabelValues(outcome).Inc()
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
