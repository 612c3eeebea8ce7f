package auth

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// authRequestsTotal counts authentication requests by operation and result.
	authRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_requests_total",
			Help: "Total authentication requests by operation and result",
		},
		[]string{"operation", "result"}, // operation: register | login, result: success | failure
	)

	// authDuration tracks authentication duration by operation.
	authDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "auth_duration_seconds",
			Help:    "Authentication duration by operation",
			Buckets: []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1.0},
		},
		[]string{"operation"},
	)

	// tokenRejections counts rejected bearer tokens by reason.
	tokenRejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_token_rejections_total",
			Help: "Rejected bearer tokens by reason",
		},
		[]string{"reason"}, // reason: missing | expired | invalid
	)
)

// RecordAuthRequest records an authentication request.
func RecordAuthRequest(operation, result string) {
	authRequestsTotal.WithLabelValues(operation, result).Inc()
}

// RecordAuthDuration records authentication duration.
func RecordAuthDuration(operation string, durationSeconds float64) {
	authDuration.WithLabelValues(operation).Observe(durationSeconds)
}

// RecordTokenRejection records a rejected bearer token.
func RecordTokenRejection(reason string) {
	tokenRejections.WithLabelValues(reason).Inc()
}
