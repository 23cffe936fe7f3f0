package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"foodgram/internal/metrics"
)

// Metrics records request count and latency labelled by route template,
// so /recipes/1 and /recipes/2 share a series.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.RecordHTTPRequest(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}
