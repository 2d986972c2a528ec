package apierrors

import (
	"net/http"

	"answering-service/internal/validation"
)

// Machine-readable error codes returned alongside the message.
const (
	CodeInvalidInput     = "INVALID_INPUT"
	CodeNotFound         = "NOT_FOUND"
	CodeUnauthorized     = "UNAUTHORIZED"
	CodeForbidden        = "FORBIDDEN"
	CodeInternalError    = "INTERNAL_ERROR"
	CodeStorageError     = "STORAGE_ERROR"
	CodeInvalidSignature = "INVALID_SIGNATURE"
)

// APIError is a client-safe error with the HTTP status it maps to.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	Details    []validation.FieldError

	// Internal is logged, never sent to the client.
	Internal error
}

func (e *APIError) Error() string {
	if e.Internal != nil {
		return e.Message + ": " + e.Internal.Error()
	}
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.Internal
}

// WithMessage returns a copy of e carrying an endpoint specific message.
func (e *APIError) WithMessage(message string) *APIError {
	cp := *e
	cp.Message = message
	return &cp
}

// BadRequest builds a 400 error.
func BadRequest(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusBadRequest, Code: code, Message: message}
}

// Invalid builds a 400 error listing the offending fields.
func Invalid(message string, fields []validation.FieldError) *APIError {
	return &APIError{StatusCode: http.StatusBadRequest, Code: CodeInvalidInput, Message: message, Details: fields}
}

// NotFound builds a 404 error.
func NotFound(message string) *APIError {
	return &APIError{StatusCode: http.StatusNotFound, Code: CodeNotFound, Message: message}
}

// Unauthorized builds a 401 error.
func Unauthorized(message string) *APIError {
	return &APIError{StatusCode: http.StatusUnauthorized, Code: CodeUnauthorized, Message: message}
}

// Forbidden builds a 403 error.
func Forbidden(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusForbidden, Code: code, Message: message}
}

// InternalError builds a sanitized 500 - never exposes internal details.
func InternalError(internalErr error) *APIError {
	return &APIError{
		StatusCode: http.StatusInternalServerError,
		Code:       CodeInternalError,
		Message:    "Internal server error",
		Internal:   internalErr,
	}
}

// StorageFailure builds a sanitized 500 for store read/write failures.
func StorageFailure(internalErr error) *APIError {
	return &APIError{
		StatusCode: http.StatusInternalServerError,
		Code:       CodeStorageError,
		Message:    "Internal server error",
		Internal:   internalErr,
	}
}
