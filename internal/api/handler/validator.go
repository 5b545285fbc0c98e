package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// echoValidator wraps go-playground/validator so Echo can call c.Validate(req).
// Shape errors are collected per field and reported together rather than
// failing on the first one.
type echoValidator struct {
	v *validator.Validate
}

// NewValidator returns an echoValidator ready to be assigned to echo.Echo.Validator.
func NewValidator() *echoValidator {
	return &echoValidator{v: validator.New()}
}

// Validate satisfies the echo.Validator interface. On failure it returns a
// *ValidationError listing every rejected field.
func (ev *echoValidator) Validate(i any) error {
	if err := ev.v.Struct(i); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			fields := make([]FieldError, 0, len(ve))
			for _, fe := range ve {
				fields = append(fields, FieldError{
					Field:         strings.ToLower(fe.Field()),
					Message:       fieldMessage(fe),
					RejectedValue: rejectedValue(fe),
				})
			}
			return &ValidationError{Fields: fields}
		}
		return err
	}
	return nil
}

// fieldMessage converts a single validation error into a human-readable message.
func fieldMessage(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "e164":
		return field + " must be a valid phone number with country code"
	case "iso3166_1_alpha2":
		return field + " must be a valid 2-letter ISO country code"
	case "min":
		return fmt.Sprintf("%s must have at least %s characters or entries", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must have at most %s characters or entries", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}

// rejectedValue reports the offending input, except for credential fields.
func rejectedValue(fe validator.FieldError) any {
	field := strings.ToLower(fe.Field())
	if strings.Contains(field, "password") {
		return nil
	}
	return fe.Value()
}
