package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal counts all HTTP requests by route, method and status.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storehub_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration records request duration in seconds.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "storehub_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// AuthAttempts counts login attempts, successful or not.
	AuthAttempts = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "storehub_auth_login_attempts_total",
			Help: "Total number of login attempts",
		},
	)

	// AuthFailures counts rejected logins (unknown email or bad password).
	AuthFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "storehub_auth_login_failures_total",
			Help: "Total number of failed login attempts",
		},
	)

	// SalesCreatedTotal counts confirmed sales by branch.
	SalesCreatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storehub_sales_created_total",
			Help: "Total number of sales recorded, labelled by branch",
		},
		[]string{"branch_id"},
	)

	// LowStockAlertsTotal counts low-stock alert emails enqueued by the
	// sale flow.
	LowStockAlertsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "storehub_low_stock_alerts_total",
			Help: "Total number of low-stock alert jobs enqueued",
		},
	)
)
