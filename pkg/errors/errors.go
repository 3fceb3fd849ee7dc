// Package errors provides structured error types for the tweetcard application.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across CLI and HTTP API
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// The codes match the wire format of the HTTP API error responses:
//   - INVALID_URL: the input is not a recognized tweet URL
//   - TWEET_NOT_FOUND: the provider returned 404 or an error payload
//   - TIMEOUT: the outbound request exceeded its deadline
//   - API_ERROR: any other provider or transport failure
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidURL, "invalid tweet URL: %s", url)
//	if errors.Is(err, errors.ErrCodeInvalidURL) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeAPI, origErr, "failed to fetch %s", url)
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidURL Code = "INVALID_URL"

	// Resource not found errors
	ErrCodeNotFound Code = "TWEET_NOT_FOUND"

	// Network errors
	ErrCodeTimeout     Code = "TIMEOUT"
	ErrCodeAPI         Code = "API_ERROR"
	ErrCodeRateLimited Code = "RATE_LIMIT_EXCEEDED"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
// StatusCode carries the upstream HTTP status for API_ERROR values;
// it is zero when no status applies.
type Error struct {
	Code       Code   // Machine-readable error code
	Message    string // Human-readable message
	StatusCode int    // Upstream HTTP status, if any
	Cause      error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// NewWithStatus creates a new Error carrying an upstream HTTP status code.
func NewWithStatus(code Code, status int, format string, args ...any) *Error {
	return &Error{
		Code:       code,
		Message:    fmt.Sprintf(format, args...),
		StatusCode: status,
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns ErrCodeInternal if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ErrCodeInternal
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns a generic message so internal details
// never leak into responses.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "An unknown error occurred"
}

// HTTPStatus maps an error to the HTTP status code the API responds with.
//
//	INVALID_URL         -> 400
//	TWEET_NOT_FOUND     -> 404
//	TIMEOUT             -> 504
//	RATE_LIMIT_EXCEEDED -> 429
//	API_ERROR           -> carried upstream status when it is a valid
//	                       response code, otherwise 500
//	anything else       -> 500
func HTTPStatus(err error) int {
	var e *Error
	if !errors.As(err, &e) {
		return http.StatusInternalServerError
	}
	switch e.Code {
	case ErrCodeInvalidURL:
		return http.StatusBadRequest
	case ErrCodeNotFound:
		return http.StatusNotFound
	case ErrCodeTimeout:
		return http.StatusGatewayTimeout
	case ErrCodeRateLimited:
		return http.StatusTooManyRequests
	case ErrCodeAPI:
		if e.StatusCode >= 400 && e.StatusCode < 600 {
			return e.StatusCode
		}
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
