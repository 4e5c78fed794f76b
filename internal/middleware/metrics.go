package middleware

import (
	"strconv"
	"time"

	"storehub/internal/metrics"

	"github.com/gin-gonic/gin"
)

// Metrics records a counter and a duration histogram per request. The
// route template (c.FullPath) is used as the path label so /v1/products/1
// and /v1/products/2 share a series.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		method := c.Request.Method
		status := strconv.Itoa(c.Writer.Status())

		metrics.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(method, path, status).Observe(time.Since(start).Seconds())
	}
}
