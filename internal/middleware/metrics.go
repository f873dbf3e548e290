package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	httpRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Number of HTTP requests currently being processed",
		},
	)

	surveySubmissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "survey_submissions_total",
			Help: "Total number of survey submissions by kind",
		},
		[]string{"kind"},
	)

	statsCacheRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stats_cache_requests_total",
			Help: "Statistics reads served from or past the Redis cache",
		},
		[]string{"hit"},
	)
)

// MetricsMiddleware records request count, latency and in-flight gauge for
// every route.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		httpRequestsInFlight.Inc()

		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unknown"
		}

		c.Next()

		httpRequestsInFlight.Dec()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Writer.Status())

		httpRequestsTotal.WithLabelValues(c.Request.Method, endpoint, status).Inc()
		httpRequestDuration.WithLabelValues(c.Request.Method, endpoint).Observe(duration)
	}
}

// RecordSurveySubmission counts a submission; kind is "pre", "post" or "score".
func RecordSurveySubmission(kind string) {
	surveySubmissionsTotal.WithLabelValues(kind).Inc()
}

// RecordStatsCache counts a statistics read as a cache hit or miss.
func RecordStatsCache(hit bool) {
	label := "false"
	if hit {
		label = "true"
	}
	statsCacheRequestsTotal.WithLabelValues(label).Inc()
}
