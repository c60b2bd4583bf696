package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"octofit.backend/pkg/logger"
)

// LoggerMiddleware writes one access log line per request. Requests whose
// path is in skip (probes, scrapes) are served without logging.
func LoggerMiddleware(skip ...string) gin.HandlerFunc {
	quiet := make(map[string]struct{}, len(skip))
	for _, p := range skip {
		quiet[p] = struct{}{}
	}

	return func(c *gin.Context) {
		if _, ok := quiet[c.Request.URL.Path]; ok {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		path := c.Request.URL.Path
		if raw := c.Request.URL.RawQuery; raw != "" {
			path += "?" + raw
		}
		ctx := c.Request.Context()
		for _, e := range c.Errors {
			logger.Warn(ctx, "Request error", zap.String("path", path), zap.Error(e.Err))
		}
		logger.LogRequest(ctx, c.Request.Method, path, c.Writer.Status(), time.Since(start), c.ClientIP())
	}
}
