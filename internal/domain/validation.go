package domain

import (
	"strconv"
	"strings"
)

// FieldError describes one invalid request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors collects the field errors of a request.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	msgs := make([]string, 0, len(v))
	for _, e := range v {
		msgs = append(msgs, e.Field+": "+e.Message)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

func NewMissingFieldError(field string) FieldError {
	return FieldError{Field: field, Message: "is required"}
}

func NewInvalidFormatError(field, value string) FieldError {
	return FieldError{Field: field, Message: "has invalid format: " + value}
}

func NewTooLongError(field string, max int) FieldError {
	return FieldError{Field: field, Message: "exceeds maximum length of " + strconv.Itoa(max)}
}
