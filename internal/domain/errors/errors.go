package errors

import (
	"fmt"
	"net/http"

	"walkroute/internal/errors"
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

func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

func (e *BaseError) HTTPCode() int     { return e.httpCode }
func (e *BaseError) ErrorCode() string { return e.errorCode }
func (e *BaseError) Message() string   { return e.message }
func (e *BaseError) Details() string   { return e.details }

// Predefined error types
var (
	ErrInvalidLocation = NewBaseError(
		http.StatusBadRequest,
		"INVALID_LOCATION",
		"location must be a finite WGS84 lng/lat pair",
		"",
	)

	ErrInvalidDuration = NewBaseError(
		http.StatusBadRequest,
		"INVALID_DURATION",
		"duration must be a positive number of minutes",
		"",
	)

	ErrDegeneratePolygon = NewBaseError(
		http.StatusUnprocessableEntity,
		"DEGENERATE_POLYGON",
		"isochrone polygon has fewer than 3 distinct vertices",
		"",
	)
)

// ProviderError is returned when the isochrone or directions provider answers
// with a non-success status. StatusCode is 0 when no response was received.
type ProviderError struct {
	Endpoint   string
	StatusCode int
	Body       string
	Err        error
}

// NewProviderError creates a provider error for a failed remote call
func NewProviderError(endpoint string, statusCode int, body string, err error) *ProviderError {
	return &ProviderError{
		Endpoint:   endpoint,
		StatusCode: statusCode,
		Body:       body,
		Err:        err,
	}
}

func (e *ProviderError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("%s request failed: %v", e.Endpoint, e.Err)
	}

	return fmt.Sprintf("%s request returned status %d", e.Endpoint, e.StatusCode)
}

func (e *ProviderError) Unwrap() error     { return e.Err }
func (e *ProviderError) HTTPCode() int     { return http.StatusBadGateway }
func (e *ProviderError) ErrorCode() string { return "PROVIDER_ERROR" }
func (e *ProviderError) Message() string   { return "routing provider request failed" }
func (e *ProviderError) Details() string   { return e.Error() }

// DecodeError is returned when a provider payload lacks the expected feature or route.
type DecodeError struct {
	What   string
	Reason string
	Err    error
}

// NewDecodeError creates a decode error for the given payload kind
func NewDecodeError(what, reason string, err error) *DecodeError {
	return &DecodeError{What: what, Reason: reason, Err: err}
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("decode %s: %s: %v", e.What, e.Reason, e.Err)
	}

	return fmt.Sprintf("decode %s: %s", e.What, e.Reason)
}

func (e *DecodeError) Unwrap() error     { return e.Err }
func (e *DecodeError) HTTPCode() int     { return http.StatusBadGateway }
func (e *DecodeError) ErrorCode() string { return "DECODE_ERROR" }
func (e *DecodeError) Message() string   { return "unexpected provider response" }
func (e *DecodeError) Details() string   { return e.Error() }

// StorageError is returned when the response cache cannot be read or persisted.
type StorageError struct {
	Op  string
	Err error
}

// NewStorageError creates a storage error for the failed cache operation
func NewStorageError(op string, err error) *StorageError {
	return &StorageError{Op: op, Err: err}
}

func (e *StorageError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("cache %s failed", e.Op)
	}

	return errors.Wrapf(e.Err, "cache %s failed", e.Op).Error()
}

func (e *StorageError) Unwrap() error     { return e.Err }
func (e *StorageError) HTTPCode() int     { return http.StatusInternalServerError }
func (e *StorageError) ErrorCode() string { return "STORAGE_ERROR" }
func (e *StorageError) Message() string   { return "response cache unavailable" }
func (e *StorageError) Details() string   { return e.Op }
