package models

import (
	"errors"
	"fmt"
	"strings"
)

// Common error types
var (
	ErrNotFound           = errors.New("resource not found")
	ErrConflict           = errors.New("operation conflicts with current state")
	ErrInvalidPhoneNumber = errors.New("invalid phone number")
)

// AppError represents an application-level error with context
type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// ErrInvalidInput creates a validation error
func ErrInvalidInput(message string) error {
	return &AppError{
		Code:    "INVALID_INPUT",
		Message: message,
	}
}

// ErrNotFoundWithMsg creates a not found error with custom message
func ErrNotFoundWithMsg(message string) error {
	return &AppError{
		Code:    "NOT_FOUND",
		Message: message,
		Err:     ErrNotFound,
	}
}

// ErrConflictWithMsg creates a conflict error with custom message
func ErrConflictWithMsg(message string) error {
	return &AppError{
		Code:    "CONFLICT",
		Message: message,
		Err:     ErrConflict,
	}
}

// ErrInvalidPhoneWithMsg creates a phone validation error
func ErrInvalidPhoneWithMsg(message string) error {
	return &AppError{
		Code:    "INVALID_PHONE_NUMBER",
		Message: message,
		Err:     ErrInvalidPhoneNumber,
	}
}

// FieldError is a single structural validation violation
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors collects every structural violation found in one call,
// so callers see all of them at once instead of just the first.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	parts := make([]string, 0, len(v))
	for _, fe := range v {
		parts = append(parts, fmt.Sprintf("%s: %s", fe.Field, fe.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Add appends a violation and returns the updated set
func (v ValidationErrors) Add(field, message string) ValidationErrors {
	return append(v, FieldError{Field: field, Message: message})
}

// AsMap returns violations keyed by field path
func (v ValidationErrors) AsMap() map[string]string {
	m := make(map[string]string, len(v))
	for _, fe := range v {
		m[fe.Field] = fe.Message
	}
	return m
}

// ErrOrNil returns the set as an error, or nil when empty
func (v ValidationErrors) ErrOrNil() error {
	if len(v) == 0 {
		return nil
	}
	return v
}
