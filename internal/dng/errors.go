package dng

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorType identifies one member of the closed fault taxonomy. The values
// are the wire names used in error response bodies.
type ErrorType string

const (
	// ErrConfiguration means required connection configuration is missing.
	ErrConfiguration ErrorType = "ConfigurationError"

	// ErrInvalidInput means a caller-supplied parameter failed validation.
	ErrInvalidInput ErrorType = "InvalidInputError"

	// ErrAuthentication means the upstream server rejected the credentials.
	ErrAuthentication ErrorType = "AuthenticationError"

	// ErrNotFound means the upstream resource does not exist.
	ErrNotFound ErrorType = "NotFoundError"

	// ErrAPI covers every other upstream failure, including transport faults.
	ErrAPI ErrorType = "APIError"
)

// HTTPStatus returns the HTTP status the boundary layer maps this fault to.
func (t ErrorType) HTTPStatus() int {
	switch t {
	case ErrInvalidInput:
		return http.StatusBadRequest
	case ErrAuthentication:
		return http.StatusUnauthorized
	case ErrNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Error is a typed fault raised by the upstream client and resource
// fetchers. Every failure surfaced by this package is an *Error; faults are
// never swallowed or retried.
type Error struct {
	// Type is the taxonomy member.
	Type ErrorType

	// Message describes the fault and always names the offending upstream
	// URL and status text where one exists.
	Message string

	// Cause is the underlying error, if any.
	Cause error
}

// Error returns the error message.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %s", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Cause
}

// NewError creates a new typed fault.
func NewError(errorType ErrorType, message string, cause error) *Error {
	return &Error{
		Type:    errorType,
		Message: message,
		Cause:   cause,
	}
}

// NewConfigurationError creates a new configuration fault.
func NewConfigurationError(message string, cause error) *Error {
	return NewError(ErrConfiguration, message, cause)
}

// NewInvalidInputError creates a new input validation fault.
func NewInvalidInputError(message string, cause error) *Error {
	return NewError(ErrInvalidInput, message, cause)
}

// NewAuthenticationError creates a new authentication fault.
func NewAuthenticationError(message string, cause error) *Error {
	return NewError(ErrAuthentication, message, cause)
}

// NewNotFoundError creates a new not-found fault.
func NewNotFoundError(message string, cause error) *Error {
	return NewError(ErrNotFound, message, cause)
}

// NewAPIError creates a new general upstream fault.
func NewAPIError(message string, cause error) *Error {
	return NewError(ErrAPI, message, cause)
}

// AsError unwraps err into the typed fault, if it is one.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// IsType reports whether err is a typed fault of the given type.
func IsType(err error, t ErrorType) bool {
	e, ok := AsError(err)
	return ok && e.Type == t
}
