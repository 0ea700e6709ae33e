package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/paramountfood/paramount/internal/api/dto/common"
)

var registerOnce sync.Once

// RegisterValidators registers custom validators
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("notblank", validators.NotBlank)

	// Report JSON field names instead of Go field names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
}

// RegisterBindingValidators installs the custom validators on gin's binding engine.
// Safe to call more than once.
func RegisterBindingValidators() {
	registerOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			RegisterValidators(v)
		}
	})
}

// IsValidationError reports whether err came from struct validation rather than decoding
func IsValidationError(err error) bool {
	var validationErrors validator.ValidationErrors
	return errors.As(err, &validationErrors)
}

// FormatValidationError formats validation errors into a user-friendly response
func FormatValidationError(err error) []common.ValidationError {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil
	}

	details := make([]common.ValidationError, 0, len(validationErrors))
	for _, e := range validationErrors {
		reason := e.Tag()
		if reason == "notblank" {
			reason = "required"
		}
		details = append(details, common.ValidationError{
			Field:   e.Field(),
			Reason:  reason,
			Message: DescribeReason(e.Field(), reason),
		})
	}
	return details
}

// DescribeReason renders a human readable message for a failed rule
func DescribeReason(field, reason string) string {
	switch reason {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	default:
		return fmt.Sprintf("%s failed %s validation", field, reason)
	}
}
