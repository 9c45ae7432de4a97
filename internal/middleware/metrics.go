package middleware

import (
	"time"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis errors by command name.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mindcanva_redis_errors_total",
		Help: "Total number of Redis errors by command",
	}, []string{"command"})

	// DatabaseQueryLatency records database query latency by operation and table.
	DatabaseQueryLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "mindcanva_database_query_latency_seconds",
		Help:    "Database query latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "table"})

	// LikeOutcomes counts like attempts by outcome (recorded, duplicate, not_found, error).
	LikeOutcomes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mindcanva_like_outcomes_total",
		Help: "Total like attempts by outcome",
	}, []string{"outcome"})

	// ProfileSyncFanout records how many artworks each profile sync touched.
	ProfileSyncFanout = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "mindcanva_profile_sync_fanout_artworks",
		Help:    "Number of artworks updated per profile sync",
		Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 250},
	})
)

// InitMetrics creates the Prometheus middleware for the given service name.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	return fiberprometheus.New(serviceName)
}

// MetricsMiddleware returns the HTTP metrics collection middleware.
func MetricsMiddleware(prom *fiberprometheus.FiberPrometheus) fiber.Handler {
	return prom.Middleware
}

// TrackQuery returns a function that records query latency when called (e.g. defer).
func TrackQuery(operation, table string) func() {
	start := time.Now()
	return func() {
		DatabaseQueryLatency.WithLabelValues(operation, table).Observe(time.Since(start).Seconds())
	}
}
