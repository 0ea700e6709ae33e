package service

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/paramountfood/paramount/internal/api/validation"
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	validation.RegisterValidators(v)
	return v
}

// validateStruct runs v against s and converts failures into a *ValidationError
func validateStruct(v *validator.Validate, s interface{}) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	fields := make([]FieldError, 0, len(validationErrors))
	for _, fe := range validationErrors {
		reason := fe.Tag()
		if reason == "notblank" {
			reason = "required"
		}
		fields = append(fields, FieldError{Field: fe.Field(), Reason: reason})
	}
	return &ValidationError{Fields: fields}
}
