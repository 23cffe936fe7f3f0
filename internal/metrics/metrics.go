// Package metrics defines the Prometheus collectors exported on /metrics.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "foodgram_http_requests_total",
			Help: "Total number of HTTP requests by route, method and status",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "foodgram_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	RateLimitedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "foodgram_rate_limited_total",
			Help: "Requests rejected by the rate limiter",
		},
	)

	RecipesWrittenTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "foodgram_recipes_written_total",
			Help: "Recipe writes by operation (create, update, delete)",
		},
		[]string{"op"},
	)

	// RelationChangesTotal counts favorite and shopping cart toggles.
	RelationChangesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "foodgram_relation_changes_total",
			Help: "Favorite and shopping cart adds/removes",
		},
		[]string{"relation", "action"},
	)

	SubscriptionChangesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "foodgram_subscription_changes_total",
			Help: "Follow and unfollow operations",
		},
		[]string{"action"},
	)

	ShoppingListDownloadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "foodgram_shopping_list_downloads_total",
			Help: "Shopping list downloads by format",
		},
		[]string{"format"},
	)
)

func RecordHTTPRequest(method, route string, status int, elapsed time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func RecordRecipeWrite(op string) {
	RecipesWrittenTotal.WithLabelValues(op).Inc()
}

func RecordRelationChange(relation, action string) {
	RelationChangesTotal.WithLabelValues(relation, action).Inc()
}

func RecordSubscriptionChange(action string) {
	SubscriptionChangesTotal.WithLabelValues(action).Inc()
}

func RecordShoppingListDownload(format string) {
	ShoppingListDownloadsTotal.WithLabelValues(format).Inc()
}
