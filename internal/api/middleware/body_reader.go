package middleware

import (
	"bytes"
	"io"
	"net/http"

	"github.com/paramountfood/paramount/internal/api/dto/common"

	"github.com/gin-gonic/gin"
)

// DefaultMaxBodySize bounds request bodies; an inquiry is a few kilobytes at most
const DefaultMaxBodySize int64 = 1 << 20

// PreserveRequestBody reads the body once, enforces maxBytes and restores it
// for the validation middleware.
func PreserveRequestBody(maxBytes int64) gin.HandlerFunc {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBodySize
	}

	return func(c *gin.Context) {
		if c.Request.Body == nil || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		bodyBytes, err := io.ReadAll(io.LimitReader(c.Request.Body, maxBytes+1))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest,
				common.NewErrorResponse(common.ErrCodeBadRequest, "Error reading request body", nil))
			return
		}

		if int64(len(bodyBytes)) > maxBytes {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge,
				common.NewErrorResponse(common.ErrCodeTooLarge, "Request body too large", nil))
			return
		}

		c.Request.Body = io.NopCloser(bytes.NewReader(bodyBytes))

		c.Next()
	}
}
