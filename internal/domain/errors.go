package domain

import (
	"encoding/json"
	"fmt"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	ErrInternal     ErrorCode = "INTERNAL_ERROR"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Paper specific errors
	ErrNoTopicsSelected     ErrorCode = "NO_TOPICS_SELECTED"
	ErrInvalidTransition    ErrorCode = "INVALID_TRANSITION"
	ErrUnknownTopic         ErrorCode = "UNKNOWN_TOPIC"
	ErrGenerationInProgress ErrorCode = "GENERATION_IN_PROGRESS"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// Is matches any DomainError carrying the same code, so callers can write
// errors.Is(err, domain.NewError(domain.ErrNoTopicsSelected, "", nil)).
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
	})
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, err error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Helper functions for common errors
func NewInvalidInputError(message string) *DomainError {
	return NewError(ErrInvalidInput, message, nil)
}

func NewInternalError(message string, err error) *DomainError {
	return NewError(ErrInternal, message, err)
}

func NewNoTopicsSelectedError() *DomainError {
	return NewError(ErrNoTopicsSelected, "Please select at least one topic to generate an AI question.", nil)
}

func NewInvalidTransitionError(from Page, action string) *DomainError {
	return NewError(ErrInvalidTransition, fmt.Sprintf("cannot %s from the %s page", action, from), nil)
}

func NewUnknownTopicError(name string) *DomainError {
	return NewError(ErrUnknownTopic, fmt.Sprintf("Unknown topic: %s", name), nil)
}

func NewGenerationInProgressError() *DomainError {
	return NewError(ErrGenerationInProgress, "A question is already being generated.", nil)
}
