package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/paramountfood/paramount/internal/api/constants"
	"github.com/paramountfood/paramount/internal/api/dto/common"
	"github.com/paramountfood/paramount/internal/api/dto/v1/contact"
	"github.com/paramountfood/paramount/internal/api/dto/v1/status"
	"github.com/paramountfood/paramount/internal/api/validation"
	"github.com/paramountfood/paramount/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// ValidationMiddleware handles request validation
type ValidationMiddleware struct{}

// NewValidationMiddleware creates a new validation middleware
func NewValidationMiddleware() *ValidationMiddleware {
	validation.RegisterBindingValidators()
	return &ValidationMiddleware{}
}

// ValidateContactRequest binds and validates a contact form submission
func (m *ValidationMiddleware) ValidateContactRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req contact.ContactRequest
		if !bindJSON(c, &req) {
			return
		}

		c.Set(constants.ContextKeyContact, &req)
		c.Next()
	}
}

// ValidateStatusCheckRequest binds and validates a status check
func (m *ValidationMiddleware) ValidateStatusCheckRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req status.CreateStatusCheckRequest
		if !bindJSON(c, &req) {
			return
		}

		c.Set(constants.ContextKeyStatusCheck, &req)
		c.Next()
	}
}

// normalizer is implemented by request DTOs that clean their fields before validation
type normalizer interface {
	Normalize()
}

// bindJSON decodes the body, normalizes it and validates the result.
// It answers 400 for undecodable bodies and 422 for rule violations.
func bindJSON(c *gin.Context, obj interface{}) bool {
	if err := json.NewDecoder(c.Request.Body).Decode(obj); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest,
			common.NewErrorResponse(common.ErrCodeBadRequest, "Invalid request body", nil))
		return false
	}

	if n, ok := obj.(normalizer); ok {
		n.Normalize()
	}

	err := binding.Validator.ValidateStruct(obj)
	if err == nil {
		return true
	}

	if validation.IsValidationError(err) {
		utils.HandleValidationError(c, validation.FormatValidationError(err))
		return false
	}

	c.AbortWithStatusJSON(http.StatusBadRequest,
		common.NewErrorResponse(common.ErrCodeBadRequest, "Invalid request body", nil))
	return false
}
