package errors

import (
	"errors"
	"fmt"
	"time"
)

// ErrorCode classifies an application error.
type ErrorCode string

const (
	// Generic errors
	ErrCodeInternal     ErrorCode = "INTERNAL_ERROR"
	ErrCodeBadRequest   ErrorCode = "BAD_REQUEST"
	ErrCodeUnauthorized ErrorCode = "UNAUTHORIZED"
	ErrCodeNotFound     ErrorCode = "NOT_FOUND"

	// Validation errors caught before any network call
	ErrCodeMalformedInput ErrorCode = "MALFORMED_INPUT"

	// External authority errors
	ErrCodeAuthorityRejected    ErrorCode = "AUTHORITY_REJECTED"
	ErrCodeAuthorityUnreachable ErrorCode = "AUTHORITY_UNREACHABLE"

	// Proof pipeline errors
	ErrCodeStorageFailure      ErrorCode = "STORAGE_FAILURE"
	ErrCodeConstraintViolation ErrorCode = "CONSTRAINT_VIOLATION"
	ErrCodeInvalidTransition   ErrorCode = "INVALID_TRANSITION"
)

// AppError is a typed application error.
type AppError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   map[string]interface{} `json:"details,omitempty"`
	RequestID string                 `json:"request_id,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
	Cause     error                  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// IsLocal reports whether the error is a local precondition failure that must
// never be retried automatically.
func (e *AppError) IsLocal() bool {
	return e.Code == ErrCodeMalformedInput ||
		e.Code == ErrCodeConstraintViolation ||
		e.Code == ErrCodeInvalidTransition
}

// IsRetriable reports whether re-invoking the same call is safe and sensible.
func (e *AppError) IsRetriable() bool {
	return e.Code == ErrCodeAuthorityRejected ||
		e.Code == ErrCodeAuthorityUnreachable ||
		e.Code == ErrCodeStorageFailure
}

// WithDetail attaches additional information to the error.
func (e *AppError) WithDetail(key string, value interface{}) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithRequestID attaches the request ID to the error.
func (e *AppError) WithRequestID(requestID string) *AppError {
	e.RequestID = requestID
	return e
}

// New creates a typed application error.
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:      code,
		Message:   message,
		Timestamp: time.Now().UTC(),
	}
}

// Newf creates a typed application error with a formatted message.
func Newf(code ErrorCode, format string, args ...interface{}) *AppError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap creates a typed application error around a cause.
func Wrap(code ErrorCode, message string, cause error) *AppError {
	err := New(code, message)
	err.Cause = cause
	return err
}

// CodeOf extracts the ErrorCode from err, or ErrCodeInternal when err is not
// an AppError.
func CodeOf(err error) ErrorCode {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ErrCodeInternal
}

// Is reports whether err carries the given code.
func Is(err error, code ErrorCode) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == code
}
