package middleware

import (
	"time"

	"github.com/paramountfood/paramount/internal/logging"
	"github.com/paramountfood/paramount/internal/utils"

	"github.com/gin-gonic/gin"
)

// RequestLogger logs one line per request through the application logger.
// Output is gated by the logger's LogRequests setting.
func RequestLogger(logger *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		logger.LogHTTPRequest(
			c.Request.Method,
			path,
			utils.GetRealIP(c),
			c.Writer.Status(),
			c.Writer.Size(),
			time.Since(start).String(),
		)
	}
}
