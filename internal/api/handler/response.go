package handler

import "github.com/labstack/echo/v4"

// FieldError describes a single field-level validation failure.
type FieldError struct {
	Field         string `json:"field"`
	Message       string `json:"message"`
	RejectedValue any    `json:"rejected_value,omitempty"`
}

// Response is the uniform envelope wrapping every API response.
type Response struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Data    any          `json:"data,omitempty"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// OK renders a success envelope with the given status and payload.
func OK(c echo.Context, status int, message string, data any) error {
	return c.JSON(status, Response{Success: true, Message: message, Data: data})
}

// Fail renders an error envelope.
func Fail(c echo.Context, status int, message string, errs []FieldError) error {
	return c.JSON(status, Response{Success: false, Message: message, Errors: errs})
}

// ValidationError carries the collected field errors of a rejected request
// body to the centralized error handler.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	return "validation failed"
}
