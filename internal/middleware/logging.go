// Package middleware provides the gin middleware the server installs on
// every route.
package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/larkbridge-io/options-api/internal/logger"
)

// RequestLogger logs one line per request after the handler chain ran,
// leveled by response status.
func RequestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		if c.Request.URL.RawQuery != "" {
			path = path + "?" + c.Request.URL.RawQuery
		}

		c.Next()

		status := c.Writer.Status()
		fields := []any{
			"method", c.Request.Method,
			"path", path,
			"status", status,
			"latency_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, "errors", c.Errors.String())
		}

		switch {
		case status >= 500:
			log.Error("Request failed", fields...)
		case status >= 400:
			log.Warn("Request error", fields...)
		default:
			log.Info("Request served", fields...)
		}
	}
}
