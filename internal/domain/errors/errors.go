package errors

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// Predefined error types
var (
	// Input errors
	ErrMissingInput = NewBaseError(
		http.StatusBadRequest,
		"MISSING_INPUT",
		"Required input is missing",
		"",
	)

	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// User and credential errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	ErrUserAlreadyExists = NewBaseError(
		http.StatusConflict,
		"USER_ALREADY_EXISTS",
		"A user with this email or username already exists",
		"",
	)

	ErrUserCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"USER_CREATION_FAILED",
		"Failed to create user",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid email or password",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Password processing failed",
		"",
	)

	ErrPasswordStrength = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_STRENGTH",
		"Password does not meet the strength requirements",
		"",
	)

	ErrInvalidToken = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_TOKEN",
		"Invalid or expired token",
		"",
	)

	// External account errors
	ErrAuthRequired = NewBaseError(
		http.StatusUnauthorized,
		"YANDEX_AUTH_REQUIRED",
		"Yandex account is not linked, sign in with Yandex again",
		"",
	)

	ErrRefreshFailed = NewBaseError(
		http.StatusUnauthorized,
		"YANDEX_REFRESH_FAILED",
		"Yandex session expired, sign in with Yandex again",
		"",
	)

	ErrUpstreamRejected = NewBaseError(
		http.StatusBadGateway,
		"UPSTREAM_REJECTED",
		"Yandex rejected the request",
		"",
	)

	ErrCatalogUnavailable = NewBaseError(
		http.StatusInternalServerError,
		"CATALOG_UNAVAILABLE",
		"Music catalog is temporarily unavailable",
		"",
	)

	ErrTrackNotFound = NewBaseError(
		http.StatusNotFound,
		"TRACK_NOT_FOUND",
		"Track not found",
		"",
	)

	// One-time session code errors
	ErrSessionNotFound = NewBaseError(
		http.StatusNotFound,
		"SESSION_NOT_FOUND",
		"Session not found or expired",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)
)

// UpstreamRejectedError carries the status and body an external server
// answered with. It matches ErrUpstreamRejected under errors.Is.
type UpstreamRejectedError struct {
	status int
	body   string
}

// NewUpstreamRejectedError creates an error that passes the upstream status through.
// A status outside the 4xx/5xx range is reported as 500.
func NewUpstreamRejectedError(status int, body string) *UpstreamRejectedError {
	if status < http.StatusBadRequest || status > 599 {
		status = http.StatusInternalServerError
	}

	return &UpstreamRejectedError{status: status, body: body}
}

// Error implements the error interface
func (e *UpstreamRejectedError) Error() string {
	return fmt.Sprintf("upstream rejected the request with status %d: %s", e.status, e.body)
}

// Is makes errors.Is(err, ErrUpstreamRejected) hold for every status.
func (e *UpstreamRejectedError) Is(target error) bool {
	return target == ErrUpstreamRejected
}

// HTTPCode returns the upstream status
func (e *UpstreamRejectedError) HTTPCode() int {
	return e.status
}

// ErrorCode returns the business error code
func (e *UpstreamRejectedError) ErrorCode() string {
	return ErrUpstreamRejected.ErrorCode()
}

// Message returns the user-friendly error message
func (e *UpstreamRejectedError) Message() string {
	return ErrUpstreamRejected.Message()
}

// Details returns the upstream response body
func (e *UpstreamRejectedError) Details() string {
	return e.body
}

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database operation failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

// AsAppError finds the first AppError in err's chain.
func AsAppError(err error) (AppError, bool) {
	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}

	return nil, false
}
