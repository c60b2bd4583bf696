package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"octofit.backend/internal/observability"
)

// MetricsMiddleware records request counts and latency per route template,
// so ids in the path do not explode label cardinality.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		observability.ObserveHTTPRequest(c.Request.Method, c.FullPath(), c.Writer.Status(), time.Since(start))
	}
}
