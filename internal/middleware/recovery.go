package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/larkbridge-io/options-api/internal/api"
	"github.com/larkbridge-io/options-api/internal/logger"
)

// Recovery turns handler panics into the generic error envelope instead of
// a dropped connection.
func Recovery(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error("Panic recovered",
					"panic", r,
					"method", c.Request.Method,
					"path", c.Request.URL.Path,
					"stack", string(debug.Stack()),
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError, api.Error(api.MsgInternalError))
			}
		}()
		c.Next()
	}
}
