package observability

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portal_http_requests_total",
			Help: "Total number of HTTP requests processed by the portal.",
		},
		[]string{"method", "route", "status"},
	)
	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "portal_http_request_duration_seconds",
			Help:    "HTTP request latencies in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route"},
	)
	documentWritesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portal_document_writes_total",
			Help: "Total number of whole-document writes by storage key.",
		},
		[]string{"key", "result"},
	)
	gateAttemptsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portal_meeting_gate_attempts_total",
			Help: "Total number of meeting gate password attempts.",
		},
		[]string{"result"},
	)
	rateLimitedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "portal_rate_limited_requests_total",
			Help: "Total number of requests rejected by the rate limiter.",
		},
	)
	auditPublishErrorsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "portal_audit_publish_errors_total",
			Help: "Total number of audit publish errors.",
		},
	)
)

func init() {
	prometheus.MustRegister(
		httpRequestsTotal,
		httpRequestDuration,
		documentWritesTotal,
		gateAttemptsTotal,
		rateLimitedTotal,
		auditPublishErrorsTotal,
	)
}

func HTTPMetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := c.Writer.Status()

		httpRequestsTotal.WithLabelValues(c.Request.Method, route, strconv.Itoa(status)).Inc()
		httpRequestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	}
}

// ObserveDocumentWrite counts a document write for key.
func ObserveDocumentWrite(key string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	documentWritesTotal.WithLabelValues(key, result).Inc()
}

func ObserveGateAttempt(unlocked bool) {
	result := "rejected"
	if unlocked {
		result = "unlocked"
	}
	gateAttemptsTotal.WithLabelValues(result).Inc()
}

func IncRateLimited() {
	rateLimitedTotal.Inc()
}

func IncAuditPublishError() {
	auditPublishErrorsTotal.Inc()
}
