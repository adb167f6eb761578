// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics holds the Prometheus collectors of the service.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Outcome label values.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
	OutcomeLimited = "rate_limited"
	OutcomeError   = "error"
)

// AuthOperations counts auth service calls by operation and outcome.
var AuthOperations = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "leavedesk_auth_operations_total",
		Help: "Total number of auth operations",
	},
	[]string{"operation", "outcome"},
)

// AccessCodeRedemptions counts registration attempts that carried an access code.
var AccessCodeRedemptions = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "leavedesk_access_code_redemptions_total",
		Help: "Total number of access code redemption attempts",
	},
	[]string{"outcome"},
)

// NotificationsSent counts outbound emails by kind and outcome.
var NotificationsSent = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "leavedesk_notifications_total",
		Help: "Total number of notification send attempts",
	},
	[]string{"kind", "outcome"},
)

// SweptRows counts rows removed by the expiry sweeper.
var SweptRows = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "leavedesk_swept_rows_total",
		Help: "Total number of expired rows removed by the sweeper",
	},
	[]string{"table"},
)

// HTTPRequestDuration observes handled HTTP requests.
var HTTPRequestDuration = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "leavedesk_http_request_duration_seconds",
		Help:    "HTTP request duration in seconds",
		Buckets: prometheus.DefBuckets,
	},
	[]string{"method", "status"},
)

// RegisterMetrics registers every collector with reg. Panics on duplicate
// registration, following the prometheus convention.
func RegisterMetrics(reg prometheus.Registerer) {
	reg.MustRegister(
		AuthOperations,
		AccessCodeRedemptions,
		NotificationsSent,
		SweptRows,
		HTTPRequestDuration,
	)
}

// RecordAuthOperation increments [AuthOperations].
func RecordAuthOperation(operation, outcome string) {
	AuthOperations.WithLabelValues(operation, outcome).Inc()
}

// RecordAccessCodeRedemption increments [AccessCodeRedemptions].
func RecordAccessCodeRedemption(outcome string) {
	AccessCodeRedemptions.WithLabelValues(outcome).Inc()
}

// RecordNotification increments [NotificationsSent].
func RecordNotification(kind, outcome string) {
	NotificationsSent.WithLabelValues(kind, outcome).Inc()
}

// RecordSwept adds n to the swept counter of table.
func RecordSwept(table string, n int64) {
	if n <= 0 {
		return
	}
	SweptRows.WithLabelValues(table).Add(float64(n))
}

// RecordHTTPRequest observes one handled request.
func RecordHTTPRequest(method, status string, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, status).Observe(duration.Seconds())
}
