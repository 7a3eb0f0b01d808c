// Package metrics exposes Prometheus collectors for the error-page endpoints.
package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "errpages"

// Metrics owns its own registry so several instances can coexist in tests.
type Metrics struct {
	registry *prometheus.Registry

	responses *prometheus.CounterVec
	latency   *prometheus.HistogramVec
	delay     prometheus.Histogram
	inFlight  prometheus.Gauge
	abandoned prometheus.Counter
}

// New creates the collectors and registers them on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		responses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_responses_total",
			Help:      "HTTP responses by route and status code.",
		}, []string{"route", "code"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Wall-clock request duration by route.",
			Buckets:   []float64{.005, .05, .5, 1, 2, 3, 5, 7.5, 10, 12.5},
		}, []string{"route"}),
		delay: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "applied_delay_seconds",
			Help:      "Delay applied by /timeout after clamping.",
			Buckets:   prometheus.LinearBuckets(0, 1, 11),
		}),
		inFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "http_requests_in_flight",
			Help:      "Requests currently being served, including suspended ones.",
		}),
		abandoned: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "abandoned_requests_total",
			Help:      "Delayed requests whose client went away before the response.",
		}),
	}
	m.registry.MustRegister(
		m.responses, m.latency, m.delay, m.inFlight, m.abandoned,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry is exposed for tests.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// RequestStarted marks a request as in flight.
func (m *Metrics) RequestStarted() { m.inFlight.Inc() }

// RequestFinished records the response code and duration of a finished request.
func (m *Metrics) RequestFinished(route string, code int, seconds float64) {
	m.inFlight.Dec()
	m.responses.WithLabelValues(route, strconv.Itoa(code)).Inc()
	m.latency.WithLabelValues(route).Observe(seconds)
}

// ObserveDelay records the clamped delay of a /timeout request.
func (m *Metrics) ObserveDelay(seconds int) {
	m.delay.Observe(float64(seconds))
}

// ObserveAbandoned counts a request dropped because its client disconnected.
func (m *Metrics) ObserveAbandoned() {
	m.abandoned.Inc()
}
