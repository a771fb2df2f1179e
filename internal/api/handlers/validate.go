package handlers

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/travelease/backend/pkg/errors"
)

var validate = newValidator()

// newValidator reports field names from json tags so validation failures
// read the way the client wrote them.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		tag := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if tag == "" || tag == "-" {
			return field.Name
		}
		return tag
	})
	return v
}

func validatePayload(payload interface{}) error {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if errors.As(err, &fieldErrors) && len(fieldErrors) > 0 {
		first := fieldErrors[0]
		return apperrors.NewValidationError(validationMessage(first))
	}
	return apperrors.NewValidationError("Invalid request payload")
}

func validationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return fmt.Sprintf("Field '%s' is required", err.Field())
	case "email":
		return "A valid email address is required"
	case "min":
		return fmt.Sprintf("Field '%s' must be at least %s characters", err.Field(), err.Param())
	case "max":
		return fmt.Sprintf("Field '%s' must be at most %s characters", err.Field(), err.Param())
	case "gte":
		return fmt.Sprintf("Field '%s' must be at least %s", err.Field(), err.Param())
	case "lte":
		return fmt.Sprintf("Field '%s' must be at most %s", err.Field(), err.Param())
	case "oneof":
		return fmt.Sprintf("Field '%s' must be one of: %s", err.Field(), err.Param())
	case "url":
		return fmt.Sprintf("Field '%s' must be a valid URL", err.Field())
	}
	return fmt.Sprintf("Invalid value for field '%s'", err.Field())
}
