package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// WebhookDeliveries counts provider deliveries by outcome (success, not_found, error)
	WebhookDeliveries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "helisync_webhook_deliveries_total",
			Help: "Total number of webhook deliveries processed",
		},
		[]string{"status"},
	)

	// WebhookEvents counts logged events by category
	WebhookEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "helisync_webhook_events_total",
			Help: "Total number of webhook events logged per category",
		},
		[]string{"category"},
	)

	// ProviderRequests counts calls to the webhook provider API
	ProviderRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "helisync_provider_requests_total",
			Help: "Total number of webhook provider API requests",
		},
		[]string{"operation", "status"},
	)

	// HTTPRequestsTotal counts served requests by route pattern
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "helisync_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	// HTTPRequestDuration tracks request latency by route pattern
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "helisync_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
)
