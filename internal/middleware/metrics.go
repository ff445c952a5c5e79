package middleware

import (
	"strconv"
	"time"

	"github.com/SscSPs/finance_tracker/internal/platform/metrics"
	"github.com/gin-gonic/gin"
)

// RequestMetrics records request latency by matched route, so path parameters do not
// explode label cardinality.
func RequestMetrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.ObserveRequest(c.Request.Method, route, strconv.Itoa(c.Writer.Status()), time.Since(start))
	}
}
