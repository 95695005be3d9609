// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package apperr defines the centralized error handling framework for Gradebook.

It provides a rich error type that carries a machine-readable code, a message
that is safe to show to the operator, and optional field-level details.

Architecture:

  - AppError: A struct containing machine-readable Code and user-friendly messages.
  - FieldError: The failing field of a validation error and its message.
  - Helpers: [As] and [FieldOf] let screens branch on the error without type switches.

Every error that leaves the session layer should be an [AppError] so the console
can print a consistent message.
*/
package apperr

import (
	"errors"
	"fmt"
)

// # Error Codes

const (
	CodeValidation      = "VALIDATION_ERROR"
	CodeNotFound        = "NOT_FOUND"
	CodeConflict        = "CONFLICT"
	CodeUnauthorized    = "UNAUTHORIZED"
	CodeTooManyAttempts = "TOO_MANY_ATTEMPTS"
	CodeInternal        = "INTERNAL_ERROR"
)

// AppError is the canonical error type for Gradebook.
//
// # Security
//
// The Cause field is for logging only and is never printed to the operator.
type AppError struct {
	// Code is a machine-readable error identifier (e.g. "NOT_FOUND", "CONFLICT").
	Code string
	// Message is a human-readable description safe to show on screen.
	Message string
	// Cause is the underlying error, used for logging only.
	Cause error
	// Details holds per-field validation errors for VALIDATION_ERROR.
	Details []FieldError
}

// FieldError represents a single field-level validation failure.
type FieldError struct {
	// Field is the identifier of the field that failed validation.
	Field string
	// Message is the human-readable description of the failure.
	Message string
}

// Error implements the error interface. It returns the operator-safe message.
func (e *AppError) Error() string { return e.Message }

// Unwrap allows [errors.Is] and [errors.As] to traverse the cause chain.
func (e *AppError) Unwrap() error { return e.Cause }

// # Operator Errors

// NotFound creates a NOT_FOUND [AppError] for a named resource.
//
// Example:
//
//	apperr.NotFound("Referent") // Returns "Referent not found"
func NotFound(resource string) *AppError {
	return &AppError{
		Code:    CodeNotFound,
		Message: resource + " not found",
	}
}

// Unauthorized creates an UNAUTHORIZED [AppError].
func Unauthorized(msg string) *AppError {
	return &AppError{
		Code:    CodeUnauthorized,
		Message: msg,
	}
}

// Conflict creates a CONFLICT [AppError] for duplicate natural keys.
func Conflict(msg string) *AppError {
	return &AppError{
		Code:    CodeConflict,
		Message: msg,
	}
}

// ConflictField creates a CONFLICT [AppError] that names the field holding the
// duplicate key, so a form can resume at that field.
func ConflictField(field, msg string) *AppError {
	return &AppError{
		Code:    CodeConflict,
		Message: msg,
		Details: []FieldError{{Field: field, Message: msg}},
	}
}

// ValidationError creates a VALIDATION_ERROR [AppError] with optional per-field details.
func ValidationError(msg string, details ...FieldError) *AppError {
	return &AppError{
		Code:    CodeValidation,
		Message: msg,
		Details: details,
	}
}

// Field is a shortcut for a validation error about exactly one field.
func Field(field, message string) *AppError {
	return ValidationError(message, FieldError{Field: field, Message: message})
}

// TooManyAttempts creates a TOO_MANY_ATTEMPTS [AppError].
func TooManyAttempts(retryAfterSeconds int) *AppError {
	return &AppError{
		Code:    CodeTooManyAttempts,
		Message: fmt.Sprintf("Too many attempts. Try again in %ds.", retryAfterSeconds),
	}
}

// # Internal Errors

// Internal creates an INTERNAL_ERROR [AppError] wrapping an unexpected failure.
// The cause is stored for logging but is never shown to the operator.
func Internal(cause error) *AppError {
	return &AppError{
		Code:    CodeInternal,
		Message: "An unexpected error occurred",
		Cause:   cause,
	}
}

// # Helpers

// IsAppError reports whether err (or any error in its chain) is an [*AppError].
func IsAppError(err error) bool {
	var ae *AppError
	return errors.As(err, &ae)
}

// As extracts the [*AppError] from err's chain. It returns nil if not found.
func As(err error) *AppError {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae
	}
	return nil
}

// HasCode reports whether err is an [*AppError] with the given code.
func HasCode(err error, code string) bool {
	ae := As(err)
	return ae != nil && ae.Code == code
}

// FieldOf returns the identifier of the first failing field, or "" when err
// carries no field details.
func FieldOf(err error) string {
	ae := As(err)
	if ae == nil || len(ae.Details) == 0 {
		return ""
	}
	return ae.Details[0].Field
}
