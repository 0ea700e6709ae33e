package handlers

import (
	"errors"
	"net/http"

	"github.com/paramountfood/paramount/internal/api/dto/common"
	"github.com/paramountfood/paramount/internal/api/validation"
	"github.com/paramountfood/paramount/internal/service"
	"github.com/paramountfood/paramount/internal/utils"

	"github.com/gin-gonic/gin"
)

// handleServiceError maps a service error onto the response envelope.
// failureMessage is the only text a client sees for non-validation errors.
func handleServiceError(c *gin.Context, err error, failureMessage string) {
	var validationErr *service.ValidationError
	if errors.As(err, &validationErr) {
		details := make([]common.ValidationError, 0, len(validationErr.Fields))
		for _, f := range validationErr.Fields {
			details = append(details, common.ValidationError{
				Field:   f.Field,
				Reason:  f.Reason,
				Message: validation.DescribeReason(f.Field, f.Reason),
			})
		}
		utils.HandleValidationError(c, details)
		return
	}

	utils.HandleAPIError(c, err, http.StatusInternalServerError, common.ErrCodeInternalServer, failureMessage)
}
