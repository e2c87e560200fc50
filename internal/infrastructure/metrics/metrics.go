package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ServerMetrics holds the registry and the HTTP instruments exposed on /metrics.
// Labels are limited to method/route/status to avoid path cardinality explosions.
type ServerMetrics struct {
	reg      *prometheus.Registry
	handler  http.Handler
	inflight prometheus.Gauge
	reqTotal *prometheus.CounterVec
	reqDur   *prometheus.HistogramVec
	ready    prometheus.Gauge
	dbUp     prometheus.Gauge
}

// New returns a fresh registry with standard collectors plus HTTP and
// readiness instruments.
func New() *ServerMetrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &ServerMetrics{
		inflight: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "http_inflight_requests",
			Help: "Current number of in-flight HTTP requests",
		}),
		reqTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests by method, route, and status",
		}, []string{"method", "route", "status"}),
		reqDur: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Request latency by method and route",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"method", "route"}),
		ready: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "service_ready",
			Help: "Whether the service has passed its startup window (1) or is still starting (0)",
		}),
		dbUp: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "database_reachable",
			Help: "Result of the most recent health-check database probe (1 reachable, 0 unreachable)",
		}),
	}
	reg.MustRegister(m.inflight, m.reqTotal, m.reqDur, m.ready, m.dbUp)

	m.handler = promhttp.HandlerFor(reg, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
	m.reg = reg
	return m
}

// Handler serves the Prometheus exposition format for this registry.
func (m *ServerMetrics) Handler() http.Handler {
	return m.handler
}

// SetReady records the readiness transition. Called once, when the gate flips.
func (m *ServerMetrics) SetReady() {
	m.ready.Set(1)
}

// ObserveProbe records the outcome of a health-check database probe.
func (m *ServerMetrics) ObserveProbe(reachable bool) {
	if reachable {
		m.dbUp.Set(1)
		return
	}
	m.dbUp.Set(0)
}
