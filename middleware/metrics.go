// Package middleware file: middleware/metrics.go
package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"go-ultimate-hub/logger"
	"go-ultimate-hub/metrics"
)

// RequestIDHeader carries the per-request id.
const RequestIDHeader = "X-Request-ID"

// RequestID reuses the caller's X-Request-ID or generates one, and echoes it back.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("requestId", id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// Metrics records HTTP metrics for each request and writes one structured log line.
func Metrics(reg *metrics.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		// route pattern keeps label cardinality bounded
		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unknown"
		}

		reg.HTTPRequestsInFlight.WithLabelValues(endpoint).Inc()
		defer reg.HTTPRequestsInFlight.WithLabelValues(endpoint).Dec()

		start := time.Now()
		c.Next()
		duration := time.Since(start)

		status := strconv.Itoa(c.Writer.Status())
		reg.HTTPRequestsTotal.WithLabelValues(endpoint, c.Request.Method, status).Inc()
		reg.HTTPRequestDuration.WithLabelValues(endpoint, c.Request.Method).Observe(duration.Seconds())

		logger.L().Infow("HTTP request completed",
			"request_id", c.GetString("requestId"),
			"method", c.Request.Method,
			"endpoint", endpoint,
			"status_code", c.Writer.Status(),
			"duration_ms", duration.Milliseconds(),
			"client_ip", c.ClientIP(),
		)
	}
}
