package http

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Prometheus metrics
var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// httpRequestDuration tracks request latency with buckets tuned for API
	// response times, enabling accurate p95 and p99 measurements.
	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path", "status"},
	)

	httpRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Current number of HTTP requests being served",
		},
	)

	httpRequestSize = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_size_bytes",
			Help:    "HTTP request size in bytes",
			Buckets: prometheus.ExponentialBuckets(100, 10, 8),
		},
		[]string{"method", "path"},
	)

	httpResponseSize = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_response_size_bytes",
			Help:    "HTTP response size in bytes",
			Buckets: prometheus.ExponentialBuckets(100, 10, 8),
		},
		[]string{"method", "path"},
	)

	// Business metrics
	documentsExtractedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "documents_extracted_total",
			Help: "Total number of uploaded documents processed, by format and result",
		},
		[]string{"format", "result"},
	)

	summariesSavedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "summaries_saved_total",
			Help: "Total number of summaries persisted",
		},
	)
)

// knownPaths are the registered routes. Anything else is collapsed to
// "other" to keep label cardinality bounded.
var knownPaths = []string{
	"/api/auth/register",
	"/api/auth/login",
	"/api/upload-file",
	"/api/summarize",
	"/api/save-summary",
	"/api/summaries",
	"/api/status",
	"/health",
	"/ready",
	"/metrics",
}

func normalizePath(path string) string {
	for _, p := range knownPaths {
		if path == p || strings.HasPrefix(path, p+"/") {
			return p
		}
	}
	return "other"
}

// responseWriter wraps http.ResponseWriter to record status code and response size.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	size       int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	size, err := rw.ResponseWriter.Write(b)
	rw.size += size
	return size, err
}

// MetricsMiddleware records HTTP request metrics including duration, size,
// and status codes. Paths are normalized to the registered route set to
// prevent label cardinality explosion.
func MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		httpRequestsInFlight.Inc()
		defer httpRequestsInFlight.Dec()

		normalizedPath := normalizePath(r.URL.Path)

		if r.ContentLength > 0 {
			httpRequestSize.WithLabelValues(r.Method, normalizedPath).Observe(float64(r.ContentLength))
		}

		rw := &responseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		start := time.Now()
		next.ServeHTTP(rw, r)
		duration := time.Since(start).Seconds()

		status := strconv.Itoa(rw.statusCode)
		httpRequestsTotal.WithLabelValues(r.Method, normalizedPath, status).Inc()
		httpRequestDuration.WithLabelValues(r.Method, normalizedPath, status).Observe(duration)
		httpResponseSize.WithLabelValues(r.Method, normalizedPath).Observe(float64(rw.size))
	})
}

// MetricsHandler returns an HTTP handler for the Prometheus metrics endpoint.
func MetricsHandler() http.Handler {
	return promhttp.Handler()
}

// RecordDocumentExtracted records the outcome of a document extraction.
// The media type is client-supplied, so anything outside the supported
// set is collapsed to "other" to bound label cardinality.
func RecordDocumentExtracted(mediaType string, success bool) {
	format := "other"
	switch mediaType {
	case "text/plain":
		format = "txt"
	case "application/pdf":
		format = "pdf"
	case "application/vnd.openxmlformats-officedocument.wordprocessingml.document":
		format = "docx"
	}
	result := "success"
	if !success {
		result = "failure"
	}
	documentsExtractedTotal.WithLabelValues(format, result).Inc()
}

// RecordSummarySaved records one persisted summary.
func RecordSummarySaved() {
	summariesSavedTotal.Inc()
}
