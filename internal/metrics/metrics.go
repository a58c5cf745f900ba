// Package metrics holds the Prometheus collectors exposed on /metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "leagueportal"

var (
	// OrdersTotal counts order creation attempts by outcome.
	OrdersTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "payment_orders_total",
		Help:      "Payment order creation attempts by outcome.",
	}, []string{"outcome"})

	// WebhookDeliveries counts gateway notifications by outcome.
	WebhookDeliveries = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "payment_webhook_deliveries_total",
		Help:      "Gateway webhook deliveries by outcome.",
	}, []string{"outcome"})

	// RedirectOutcomes counts redirect indicators shown to users.
	RedirectOutcomes = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "payment_redirect_outcomes_total",
		Help:      "Redirect status indicators by value.",
	}, []string{"payment"})

	// GatewayDuration observes gateway call latency.
	GatewayDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "gateway_request_duration_seconds",
		Help:      "UPI gateway request latency.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "result"})

	// UploadAttempts counts blob store put attempts by result.
	UploadAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "image_upload_attempts_total",
		Help:      "Image upload attempts by result.",
	}, []string{"result"})
)

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
