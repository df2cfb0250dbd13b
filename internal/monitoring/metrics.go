package monitoring

import (
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/GriffinCanCode/numengine/internal/numeric/specialize"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	registry *prometheus.Registry

	// HTTP metrics
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	RequestSize     *prometheus.HistogramVec
	ResponseSize    *prometheus.HistogramVec

	// Service metrics
	ServiceCalls    *prometheus.CounterVec
	ServiceDuration *prometheus.HistogramVec

	// Specialization metrics
	SpecializationBuilds   *prometheus.CounterVec
	SpecializationDuration *prometheus.HistogramVec

	// WebSocket metrics
	WSConnections prometheus.Gauge
	WSMessages    *prometheus.CounterVec

	startTime time.Time

	// Snapshot for JSON API - track current values
	snapshot Snapshot
	mu       sync.RWMutex
}

// Snapshot holds current metric values for the JSON API
type Snapshot struct {
	TotalRequests int64   `json:"total_requests"`
	TotalErrors   int64   `json:"total_errors"`
	TotalDuration float64 `json:"total_duration_seconds"`
	ToolCalls     int64   `json:"tool_calls"`
	ToolFailures  int64   `json:"tool_failures"`
	Uptime        float64 `json:"uptime_seconds"`
}

// NewMetrics creates a metrics collector on its own registry. Gauges over
// cache are read at scrape time; cache may be nil.
func NewMetrics(cache *specialize.Cache) *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	m := &Metrics{
		registry:  reg,
		startTime: time.Now(),

		// HTTP metrics
		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "numengine_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "numengine_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"method", "path"},
		),
		RequestSize: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "numengine_http_request_size_bytes",
				Help:    "HTTP request size in bytes",
				Buckets: []float64{100, 1000, 10000, 100000, 1000000},
			},
			[]string{"method", "path"},
		),
		ResponseSize: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "numengine_http_response_size_bytes",
				Help:    "HTTP response size in bytes",
				Buckets: []float64{100, 1000, 10000, 100000, 1000000},
			},
			[]string{"method", "path"},
		),

		// Service metrics
		ServiceCalls: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "numengine_tool_calls_total",
				Help: "Total number of tool executions",
			},
			[]string{"service", "tool", "status"},
		),
		ServiceDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "numengine_tool_duration_seconds",
				Help:    "Tool execution duration in seconds",
				Buckets: []float64{.00001, .0001, .001, .005, .01, .05, .1, .5, 1, 5},
			},
			[]string{"service", "tool"},
		),

		// Specialization metrics
		SpecializationBuilds: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "numengine_specialization_builds_total",
				Help: "Specializations built, by operation and outcome",
			},
			[]string{"op", "status"},
		),
		SpecializationDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "numengine_specialization_build_seconds",
				Help:    "Time spent building a specialization",
				Buckets: prometheus.ExponentialBuckets(0.000001, 10, 8),
			},
			[]string{"op"},
		),

		// WebSocket metrics
		WSConnections: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "numengine_ws_connections",
				Help: "Number of active WebSocket connections",
			},
		),
		WSMessages: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "numengine_ws_messages_total",
				Help: "Total number of WebSocket messages",
			},
			[]string{"direction", "type"},
		),
	}

	factory.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "numengine_uptime_seconds",
		Help: "Server uptime in seconds",
	}, func() float64 { return time.Since(m.startTime).Seconds() })

	if cache != nil {
		factory.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "numengine_specialization_slots",
			Help: "Specialization slots in the cache",
		}, func() float64 { return float64(cache.Stats().Slots) })
		factory.NewCounterFunc(prometheus.CounterOpts{
			Name: "numengine_specialization_hits_total",
			Help: "Lookups served by an already resolved slot",
		}, func() float64 { return float64(cache.Stats().Hits) })
	}

	return m
}

// Handler serves the metrics in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry exposes the underlying registry, for tests and extra collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// RecordHTTPRequest records an HTTP request
func (m *Metrics) RecordHTTPRequest(method, path, status string, duration time.Duration, reqSize, respSize int64) {
	m.RequestsTotal.WithLabelValues(method, path, status).Inc()
	m.RequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
	m.RequestSize.WithLabelValues(method, path).Observe(float64(reqSize))
	m.ResponseSize.WithLabelValues(method, path).Observe(float64(respSize))

	m.mu.Lock()
	m.snapshot.TotalRequests++
	m.snapshot.TotalDuration += duration.Seconds()
	if status != "" && (status[0] == '4' || status[0] == '5') {
		m.snapshot.TotalErrors++
	}
	m.mu.Unlock()
}

// RecordServiceCall records a tool execution. It satisfies service.Recorder.
func (m *Metrics) RecordServiceCall(service, tool, status string, duration time.Duration) {
	m.ServiceCalls.WithLabelValues(service, tool, status).Inc()
	m.ServiceDuration.WithLabelValues(service, tool).Observe(duration.Seconds())

	m.mu.Lock()
	m.snapshot.ToolCalls++
	if status != "success" {
		m.snapshot.ToolFailures++
	}
	m.mu.Unlock()
}

// SpecializationBuilt records a specialization build. It satisfies
// specialize.Observer.
func (m *Metrics) SpecializationBuilt(op, _ string, duration time.Duration, err error) {
	status := "success"
	if err != nil {
		status = "failure"
	}
	m.SpecializationBuilds.WithLabelValues(op, status).Inc()
	m.SpecializationDuration.WithLabelValues(op).Observe(duration.Seconds())
}

// RecordWSMessage records a WebSocket message
func (m *Metrics) RecordWSMessage(direction, msgType string) {
	m.WSMessages.WithLabelValues(direction, msgType).Inc()
}

// IncWSConnections increments WebSocket connections
func (m *Metrics) IncWSConnections() {
	m.WSConnections.Inc()
}

// DecWSConnections decrements WebSocket connections
func (m *Metrics) DecWSConnections() {
	m.WSConnections.Dec()
}

// Snapshot returns the current JSON view of the counters.
func (m *Metrics) Snapshot() Snapshot {
	m.mu.RLock()
	s := m.snapshot
	m.mu.RUnlock()
	s.Uptime = time.Since(m.startTime).Seconds()
	return s
}
