package errors

import (
	"errors"
	"fmt"
)

// NewValidationError creates a new validation error
func NewValidationError(message string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeValidation,
		Message: message,
		Code:    "VALIDATION_FAILED",
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(resource string, identifier string) *AppError {
	return &AppError{
		Type:    ErrorTypeNotFound,
		Message: fmt.Sprintf("%s not found: %s", resource, identifier),
		Code:    "NOT_FOUND",
		Context: map[string]interface{}{
			"resource":   resource,
			"identifier": identifier,
		},
	}
}

// NewInvalidInputError creates a new invalid input error
func NewInvalidInputError(field string, value interface{}, reason string) *AppError {
	return &AppError{
		Type:    ErrorTypeInvalidInput,
		Message: fmt.Sprintf("invalid input for %s: %s", field, reason),
		Code:    "INVALID_INPUT",
		Context: map[string]interface{}{
			"field":  field,
			"value":  value,
			"reason": reason,
		},
	}
}

// NewStorageReadError creates an error for unreadable or unparsable stored data.
// Callers recover by treating the stored data as absent.
func NewStorageReadError(source string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeStorageRead,
		Message: fmt.Sprintf("failed to read stored data from %s", source),
		Code:    "STORAGE_READ_FAILED",
		Cause:   cause,
		Context: map[string]interface{}{
			"source": source,
		},
	}
}

// NewStorageWriteError creates an error for a failed write-through.
// Callers recover by keeping the in-memory state authoritative for the session.
func NewStorageWriteError(target string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeStorageWrite,
		Message: fmt.Sprintf("failed to write stored data to %s", target),
		Code:    "STORAGE_WRITE_FAILED",
		Cause:   cause,
		Context: map[string]interface{}{
			"target": target,
		},
	}
}

// WrapError wraps an existing error with additional context
func WrapError(err error, errorType ErrorType, message string) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
		Code:    errorType.String(),
		Cause:   err,
		Context: make(map[string]interface{}),
	}
}

// IsAppError checks if the error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// AsAppError converts an error to an AppError if possible
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsErrorType checks if the error is of the specified type
func IsErrorType(err error, errorType ErrorType) bool {
	if appErr, ok := AsAppError(err); ok {
		return appErr.IsType(errorType)
	}
	return false
}

// IsNonBlocking reports whether the error must not block or roll back the
// triggering operation. Storage errors are recovered locally and surfaced as
// warnings at most; validation and lookup failures block synchronously.
func IsNonBlocking(err error) bool {
	if appErr, ok := AsAppError(err); ok {
		switch appErr.Type {
		case ErrorTypeStorageRead, ErrorTypeStorageWrite:
			return true
		}
	}
	return false
}

// GetUserMessage returns a user-friendly error message
func GetUserMessage(err error) string {
	if appErr, ok := AsAppError(err); ok {
		switch appErr.Type {
		case ErrorTypeValidation, ErrorTypeNotFound, ErrorTypeInvalidInput:
			return appErr.Message
		case ErrorTypeStorageRead:
			return "Stored data could not be read; starting with an empty log."
		case ErrorTypeStorageWrite:
			return "Changes could not be saved and may not survive this session."
		default:
			return "An unexpected error occurred. Please try again."
		}
	}
	return err.Error()
}

// GetErrorCode returns the error code for the error
func GetErrorCode(err error) string {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code
	}
	return "UNKNOWN_ERROR"
}
