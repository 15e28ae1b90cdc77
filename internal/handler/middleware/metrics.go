package middleware

import (
	"strconv"
	"time"

	"guideway/internal/metrics"

	"github.com/gin-gonic/gin"
)

// MetricsMiddleware records per-route request counts and latency.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			// Unmatched routes would otherwise explode label cardinality.
			path = "unmatched"
		}
		code := strconv.Itoa(c.Writer.Status())
		metrics.ObserveHTTPRequest(c.Request.Method, path, code, time.Since(start).Seconds())
	}
}
