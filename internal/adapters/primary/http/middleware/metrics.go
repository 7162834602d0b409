package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"artifact-approval-service/internal/metrics"
)

// Metrics records request counts and latency per route. The route template
// (c.FullPath) is used instead of the raw URL to keep label cardinality
// bounded.
func Metrics(collector *metrics.Collector) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		collector.ObserveHTTPRequest(c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}
