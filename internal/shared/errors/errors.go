// Package errors provides application-level error types and utilities.
// Besides the common validation/not-found/permission kinds it models the two
// retry classes callers must be able to distinguish: rate_limited (external
// platform throttling, retry later) and concurrency_conflict (store
// contention, retry now).
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorType represents the type of error
type ErrorType string

const (
	ErrorTypeValidation  ErrorType = "validation_error"
	ErrorTypeNotFound    ErrorType = "not_found"
	ErrorTypePermission  ErrorType = "permission_denied"
	ErrorTypeRateLimited ErrorType = "rate_limited"
	ErrorTypeConflict    ErrorType = "concurrency_conflict"
	ErrorTypeInternal    ErrorType = "internal_error"
)

// AppError represents an application error with additional context
type AppError struct {
	Type    ErrorType `json:"type"`
	Message string    `json:"message"`
	Code    int       `json:"code"`
	Details string    `json:"details,omitempty"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func newAppError(typ ErrorType, code int, message string, details ...string) *AppError {
	detail := ""
	if len(details) > 0 {
		detail = details[0]
	}
	return &AppError{
		Type:    typ,
		Message: message,
		Code:    code,
		Details: detail,
	}
}

// NewValidationError creates a new validation error
func NewValidationError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeValidation, http.StatusBadRequest, message, details...)
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeNotFound, http.StatusNotFound, message, details...)
}

// NewPermissionError creates a new permission error. Callers must not retry.
func NewPermissionError(message string, details ...string) *AppError {
	return newAppError(ErrorTypePermission, http.StatusForbidden, message, details...)
}

// NewRateLimitedError reports that the external platform refused or timed out
// on a mutation. The operation was not applied; callers may retry later.
func NewRateLimitedError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeRateLimited, http.StatusServiceUnavailable, message, details...)
}

// NewConcurrencyConflictError reports store-level contention. Retryable
// immediately.
func NewConcurrencyConflictError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeConflict, http.StatusConflict, message, details...)
}

// NewInternalError creates a new internal error
func NewInternalError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeInternal, http.StatusInternalServerError, message, details...)
}

// GetAppError extracts AppError from error
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// IsAppError checks if the error is an AppError
func IsAppError(err error) bool {
	return GetAppError(err) != nil
}

func isType(err error, typ ErrorType) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == typ
}

// IsValidationError checks if the error is a validation error
func IsValidationError(err error) bool {
	return isType(err, ErrorTypeValidation)
}

// IsNotFoundError checks if the error is a not found error
func IsNotFoundError(err error) bool {
	return isType(err, ErrorTypeNotFound)
}

// IsPermissionError checks if the error is a permission error
func IsPermissionError(err error) bool {
	return isType(err, ErrorTypePermission)
}

// IsRateLimited checks if the error reports external throttling
func IsRateLimited(err error) bool {
	return isType(err, ErrorTypeRateLimited)
}

// IsConcurrencyConflict checks if the error reports store contention
func IsConcurrencyConflict(err error) bool {
	return isType(err, ErrorTypeConflict)
}
