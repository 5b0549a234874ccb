package server

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Adaptation outcomes recorded by Metrics
const (
	OutcomeOK      = "ok"
	OutcomeInvalid = "invalid"
)

// Metrics manages the Prometheus metrics of the service. Each collector owns
// its registry so several servers can live in one process.
type Metrics struct {
	serviceName string
	registry    *prometheus.Registry

	// Standard HTTP metrics
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	activeConnections   prometheus.Gauge
	serviceInfo         *prometheus.GaugeVec

	// Adaptation metrics
	adaptationsTotal *prometheus.CounterVec
	threadSegments   prometheus.Histogram
	contentLength    prometheus.Histogram
}

// NewMetrics creates a new metrics collector for a service
func NewMetrics(serviceName, version string) *Metrics {
	// Sanitize service name for Prometheus (replace hyphens with underscores)
	m := &Metrics{
		serviceName: strings.ReplaceAll(serviceName, "-", "_"),
		registry:    prometheus.NewRegistry(),
	}

	m.httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: m.serviceName + "_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	m.httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    m.serviceName + "_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	m.activeConnections = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: m.serviceName + "_active_connections",
			Help: "Number of active connections",
		},
	)

	m.serviceInfo = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: m.serviceName + "_service_info",
			Help: "Service information",
		},
		[]string{"version"},
	)

	m.adaptationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: m.serviceName + "_adaptations_total",
			Help: "Total number of adaptation requests by endpoint and outcome",
		},
		[]string{"endpoint", "outcome"},
	)

	m.threadSegments = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    m.serviceName + "_thread_segments",
			Help:    "Number of segments in each short-form thread built",
			Buckets: prometheus.LinearBuckets(2, 1, 10),
		},
	)

	m.contentLength = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    m.serviceName + "_content_length_chars",
			Help:    "Length of adapted content in characters",
			Buckets: prometheus.ExponentialBuckets(64, 2, 10),
		},
	)

	m.registry.MustRegister(
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.activeConnections,
		m.serviceInfo,
		m.adaptationsTotal,
		m.threadSegments,
		m.contentLength,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m.serviceInfo.WithLabelValues(version).Set(1)
	return m
}

// Registry returns the registry the metrics are registered with
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveThread records the segment count of a thread
func (m *Metrics) ObserveThread(segments int) {
	m.threadSegments.Observe(float64(segments))
}

// ObserveAdaptation records the outcome of one adaptation request
func (m *Metrics) ObserveAdaptation(endpoint, outcome string, length int) {
	m.adaptationsTotal.WithLabelValues(endpoint, outcome).Inc()
	if outcome == OutcomeOK {
		m.contentLength.Observe(float64(length))
	}
}

// Middleware returns middleware that collects HTTP metrics
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		m.activeConnections.Inc()
		defer m.activeConnections.Dec()

		c.Next()

		duration := time.Since(start).Seconds()
		method := c.Request.Method
		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unknown"
		}
		status := strconv.Itoa(c.Writer.Status())

		m.httpRequestsTotal.WithLabelValues(method, endpoint, status).Inc()
		m.httpRequestDuration.WithLabelValues(method, endpoint).Observe(duration)
	}
}

// Handler returns the Prometheus metrics HTTP handler
func (m *Metrics) Handler() gin.HandlerFunc {
	handler := promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
	return func(c *gin.Context) {
		handler.ServeHTTP(c.Writer, c.Request)
	}
}
