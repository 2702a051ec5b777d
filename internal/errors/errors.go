package errors

import (
	"errors"
	"fmt"
)

// NewParseError creates an error for input that matches no accepted grammar.
// The offending token is included so the user sees exactly what was rejected.
func NewParseError(kind string, token string) *AppError {
	return &AppError{
		Type:    ErrorTypeParse,
		Message: fmt.Sprintf("not a valid %s: %q", kind, token),
		Code:    "PARSE_FAILED",
	}
}

// NewAmbiguousError creates an error for input that matches more than one meaning
func NewAmbiguousError(message string) *AppError {
	return &AppError{
		Type:    ErrorTypeAmbiguous,
		Message: message,
		Code:    "AMBIGUOUS_INPUT",
	}
}

// NewStorageError creates an error for a failed log file operation
func NewStorageError(operation string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeStorage,
		Message: fmt.Sprintf("log file operation failed: %s", operation),
		Code:    "STORAGE_ERROR",
		Cause:   cause,
	}
}

// NewUnavailableError creates an error for data that does not exist yet,
// distinct from a zero value (e.g. elapsed time when the log was never written)
func NewUnavailableError(what string) *AppError {
	return &AppError{
		Type:    ErrorTypeUnavailable,
		Message: fmt.Sprintf("%s is unavailable", what),
		Code:    "UNAVAILABLE",
	}
}

// NewValidationError creates a new validation error
func NewValidationError(message string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeValidation,
		Message: message,
		Code:    "VALIDATION_FAILED",
		Cause:   cause,
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

// GetUserMessage returns a user-friendly error message
func GetUserMessage(err error) string {
	if appErr, ok := AsAppError(err); ok {
		switch appErr.Type {
		case ErrorTypeParse, ErrorTypeAmbiguous, ErrorTypeUnavailable, ErrorTypeValidation:
			return appErr.Message
		case ErrorTypeStorage:
			if appErr.Cause != nil {
				return fmt.Sprintf("%s: %v", appErr.Message, appErr.Cause)
			}
			return appErr.Message
		default:
			return appErr.Message
		}
	}
	return err.Error()
}
