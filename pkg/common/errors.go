package common

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes for the service's failure taxonomy.
const (
	CodeNotFound                  = "not_found"
	CodeEmptyResultSet            = "empty_result_set"
	CodeMalformedProviderResponse = "malformed_provider_response"
	CodeCollaboratorUnavailable   = "collaborator_unavailable"
	CodeConflict                  = "conflict"
	CodeUnauthorized              = "unauthorized"
	CodeInternal                  = "internal"
)

// AppError is an application-level error carrying an HTTP status and a
// client-safe message. The wrapped cause is logged, never returned to the
// caller.
type AppError struct {
	Code    string
	Status  int
	Message string
	Err     error
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the wrapped cause
func (e *AppError) Unwrap() error {
	return e.Err
}

// NotFoundError reports that a requested record does not exist
func NotFoundError(message string) *AppError {
	return &AppError{Code: CodeNotFound, Status: http.StatusNotFound, Message: message}
}

// EmptyResultSetError reports a random pick over zero candidates
func EmptyResultSetError(message string) *AppError {
	return &AppError{Code: CodeEmptyResultSet, Status: http.StatusNotFound, Message: message}
}

// MalformedProviderResponseError reports an upstream payload that doesn't
// match the expected shape
func MalformedProviderResponseError(message string, cause error) *AppError {
	return &AppError{Code: CodeMalformedProviderResponse, Status: http.StatusBadGateway, Message: message, Err: cause}
}

// CollaboratorUnavailableError reports an unreachable or erroring
// collaborator (database, search provider)
func CollaboratorUnavailableError(message string, cause error) *AppError {
	return &AppError{Code: CodeCollaboratorUnavailable, Status: http.StatusBadGateway, Message: message, Err: cause}
}

// ConflictError reports a write that collides with existing state
func ConflictError(message string) *AppError {
	return &AppError{Code: CodeConflict, Status: http.StatusConflict, Message: message}
}

// UnauthorizedError reports missing or invalid credentials
func UnauthorizedError(message string) *AppError {
	return &AppError{Code: CodeUnauthorized, Status: http.StatusUnauthorized, Message: message}
}

// InternalError reports any other failure
func InternalError(message string, cause error) *AppError {
	return &AppError{Code: CodeInternal, Status: http.StatusInternalServerError, Message: message, Err: cause}
}

// AsAppError extracts an *AppError from an error chain
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
