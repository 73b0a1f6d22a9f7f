// Package observability provides Prometheus metrics for the content backend.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrorRate counts Redis errors by operation type.
	RedisErrorRate = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "toolhaven_redis_error_rate_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// DatabaseQueryLatency records database query latency by operation and table.
	DatabaseQueryLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "toolhaven_database_query_latency_seconds",
		Help:    "Database query latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "table"})

	// ContentViews counts blog post detail reads by slug.
	ContentViews = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "toolhaven_content_views_total",
		Help: "Total number of blog post views served",
	}, []string{"slug"})

	// SeedUpserts counts seeder upserts by entity type.
	SeedUpserts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "toolhaven_seed_upserts_total",
		Help: "Total number of rows upserted by the content seeder",
	}, []string{"entity"})
)

// TrackQuery returns a function that records query latency when called (e.g. defer).
func TrackQuery(operation, table string) func() {
	start := time.Now()
	return func() {
		DatabaseQueryLatency.WithLabelValues(operation, table).Observe(time.Since(start).Seconds())
	}
}
