package apierrors

import (
	"errors"

	"answering-service/internal/store"
	"answering-service/internal/validation"
)

// MapError converts domain/processor errors to APIErrors.
//
// If the error is already an APIError, it returns it as-is.
// If the error is a known domain error, it maps it to an appropriate APIError.
// If the error is unknown, it returns a sanitized InternalError (500).
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	if vErr, ok := validation.AsError(err); ok {
		return Invalid("Invalid input", vErr.Fields)
	}

	var storageErr *store.StorageError
	switch {
	case errors.Is(err, store.ErrNotFound):
		return NotFound("Resource not found")
	case errors.As(err, &storageErr):
		return StorageFailure(err)
	default:
		return InternalError(err)
	}
}
