package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const metricsNamespace = "answering_service"

// Webhook event names used as the "event" label.
const (
	EventCallStarted = "call_started"
	EventCallEnded   = "call_ended"
)

// Outcome label values.
const (
	OutcomeSuccess   = "success"
	OutcomeInvalid   = "invalid"
	OutcomeFailed    = "failed"
	OutcomeRejected  = "rejected"
	OutcomeMatched   = "matched"
	OutcomeMiss      = "miss"
	OutcomeDuplicate = "duplicate"
)

// Metrics groups the Prometheus instruments used by the service. A nil *Metrics is valid
// and records nothing.
type Metrics struct {
	registry        *prometheus.Registry
	WebhookEvents   *prometheus.CounterVec
	Correlations    *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
}

// NewMetrics registers all instruments on a fresh registry.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		WebhookEvents: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "webhook_events_total",
			Help:      "Telephony webhook notifications by event and outcome.",
		}, []string{"event", "outcome"}),
		Correlations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "correlation_total",
			Help:      "Call-end correlation attempts by mode and outcome.",
		}, []string{"mode", "outcome"}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method, route and status.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}
}

func (m *Metrics) IncWebhookEvent(event, outcome string) {
	if m == nil {
		return
	}
	m.WebhookEvents.WithLabelValues(event, outcome).Inc()
}

func (m *Metrics) IncCorrelation(mode, outcome string) {
	if m == nil {
		return
	}
	m.Correlations.WithLabelValues(mode, outcome).Inc()
}

func (m *Metrics) ObserveRequest(method, route string, status int, latency time.Duration) {
	if m == nil {
		return
	}
	m.RequestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(latency.Seconds())
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
