package metrics

import (
	"database/sql"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Namespace prefixes every metric name
const Namespace = "expense_splitter"

// Metrics owns a private registry and the instruments the service records into
type Metrics struct {
	registry *prometheus.Registry

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec

	queryDuration *prometheus.HistogramVec
	queryErrors   *prometheus.CounterVec

	poolOpen    prometheus.Gauge
	poolInUse   prometheus.Gauge
	poolIdle    prometheus.Gauge
	poolWaiting prometheus.Gauge
}

// New creates the instruments and registers them together with the Go runtime collectors
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: Namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		queryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: Namespace,
			Subsystem: "db",
			Name:      "query_duration_seconds",
			Help:      "SQL statement latency by statement type.",
			Buckets:   []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation"}),
		queryErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: "db",
			Name:      "query_errors_total",
			Help:      "Failed SQL statements by statement type.",
		}, []string{"operation"}),
		poolOpen:    poolGauge("open_connections", "Established connections, in use and idle."),
		poolInUse:   poolGauge("in_use_connections", "Connections currently in use."),
		poolIdle:    poolGauge("idle_connections", "Idle connections."),
		poolWaiting: poolGauge("wait_count", "Total number of connections waited for."),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequests,
		m.httpDuration,
		m.queryDuration,
		m.queryErrors,
		m.poolOpen,
		m.poolInUse,
		m.poolIdle,
		m.poolWaiting,
	)
	return m
}

func poolGauge(name, help string) prometheus.Gauge {
	return prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: Namespace,
		Subsystem: "db_pool",
		Name:      name,
		Help:      help,
	})
}

// Handler serves the registry in the prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry exposes the underlying registry
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveHTTPRequest records one served request. route is the route template, not the raw path.
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, elapsed time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// ObserveQuery records one SQL statement
func (m *Metrics) ObserveQuery(operation string, elapsed time.Duration, failed bool) {
	if operation == "" {
		operation = "OTHER"
	}
	m.queryDuration.WithLabelValues(operation).Observe(elapsed.Seconds())
	if failed {
		m.queryErrors.WithLabelValues(operation).Inc()
	}
}

// RecordPoolStats publishes a connection pool snapshot
func (m *Metrics) RecordPoolStats(stats sql.DBStats) {
	m.poolOpen.Set(float64(stats.OpenConnections))
	m.poolInUse.Set(float64(stats.InUse))
	m.poolIdle.Set(float64(stats.Idle))
	m.poolWaiting.Set(float64(stats.WaitCount))
}
