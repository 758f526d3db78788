package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	reqTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ecommerce",
			Name:      "http_requests_total",
			Help:      "Count of HTTP requests by route, method and status",
		},
		[]string{"path", "method", "status"},
	)
	reqLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "ecommerce",
			Name:      "http_request_duration_seconds",
			Help:      "Latency of HTTP requests by route and method",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"path", "method"},
	)
	reqInFlight = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "ecommerce",
		Name:      "http_requests_in_flight",
		Help:      "Number of requests currently being served",
	})
)

func init() { prometheus.MustRegister(reqTotal, reqLatency, reqInFlight) }

func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		reqInFlight.Inc()
		c.Next()
		reqInFlight.Dec()

		// fall back to the raw path for unmatched routes
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		reqTotal.WithLabelValues(path, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
		reqLatency.WithLabelValues(path, c.Request.Method).Observe(time.Since(start).Seconds())
	}
}
