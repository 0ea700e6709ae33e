package utils

import (
	"net/http"

	"github.com/paramountfood/paramount/internal/api/dto/common"
	"github.com/paramountfood/paramount/internal/logging"

	"github.com/gin-gonic/gin"
)

// HandleAPIError logs err and writes a generic error envelope.
// The underlying error never reaches the client.
func HandleAPIError(c *gin.Context, err error, status int, code common.ErrorCode, message string) {
	logger := logging.GetGlobalLogger()
	logger.LogHTTPError(
		c.Request.Method,
		c.Request.URL.Path,
		GetRealIP(c),
		status,
		message,
		err,
	)

	c.AbortWithStatusJSON(status, common.NewErrorResponse(code, message, nil))
}

// HandleValidationError writes a 422 with per-field reasons
func HandleValidationError(c *gin.Context, details []common.ValidationError) {
	c.AbortWithStatusJSON(http.StatusUnprocessableEntity,
		common.NewErrorResponse(common.ErrCodeValidation, "Validation failed", details))
}
