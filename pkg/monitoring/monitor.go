package monitoring

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{0.1, 0.5, 1, 2, 5},
		},
		[]string{"method", "endpoint"},
	)

	ScreeningsCompleted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "screenings_completed_total",
			Help: "Completed screening batteries",
		},
	)

	ClassificationsByLabel = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "risk_classifications_total",
			Help: "Risk classifier outcomes by label",
		},
		[]string{"risk_level"},
	)

	LevelCompletions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "exercise_level_completions_total",
			Help: "Completed exercise levels by game type",
		},
		[]string{"game_type"},
	)
)

func Init() {
	prometheus.MustRegister(RequestCounter)
	prometheus.MustRegister(RequestDuration)
	prometheus.MustRegister(ScreeningsCompleted)
	prometheus.MustRegister(ClassificationsByLabel)
	prometheus.MustRegister(LevelCompletions)
}

func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		duration := time.Since(start).Seconds()
		status := c.Writer.Status()

		RequestCounter.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			strconv.Itoa(status),
		).Inc()

		RequestDuration.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
		).Observe(duration)
	}
}

func PrometheusHandler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
