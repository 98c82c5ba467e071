package errors

import (
	"fmt"
	"net/http"

	"audioboard/internal/app/storage"
)

// ErrorKind represents different types of API errors
type ErrorKind string

const (
	KindValidation         ErrorKind = "validation"
	KindNotFound           ErrorKind = "not_found"
	KindForbidden          ErrorKind = "forbidden"
	KindInternal           ErrorKind = "internal"
	KindServiceUnavailable ErrorKind = "service_unavailable"
	KindBadRequest         ErrorKind = "bad_request"
)

// APIError represents a structured API error response
type APIError struct {
	Kind      ErrorKind         `json:"kind"`
	Message   string            `json:"message"`
	Details   map[string]string `json:"details,omitempty"`
	RequestID string            `json:"request_id,omitempty"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	return e.Message
}

// HTTPStatus returns the appropriate HTTP status code for the error kind
func (e *APIError) HTTPStatus() int {
	switch e.Kind {
	case KindValidation:
		return http.StatusUnprocessableEntity
	case KindBadRequest:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindForbidden:
		return http.StatusForbidden
	case KindServiceUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// NewValidationError creates a validation error with field details
func NewValidationError(message string, fields map[string]string) *APIError {
	return &APIError{
		Kind:    KindValidation,
		Message: message,
		Details: fields,
	}
}

// NewNotFoundError creates a not found error
func NewNotFoundError(resource string) *APIError {
	return &APIError{
		Kind:    KindNotFound,
		Message: fmt.Sprintf("%s not found", resource),
	}
}

// NewBadRequestError creates a bad request error
func NewBadRequestError(message string) *APIError {
	return &APIError{
		Kind:    KindBadRequest,
		Message: message,
	}
}

// NewInternalError creates an internal server error
func NewInternalError(message string) *APIError {
	return &APIError{
		Kind:    KindInternal,
		Message: message,
	}
}

// FromStorageError maps a storage gateway error to an API error so the
// dashboard sees a descriptive message once, with the right status.
func FromStorageError(err error) *APIError {
	if err == nil {
		return nil
	}
	switch storage.KindOf(err) {
	case storage.KindNotFound:
		return &APIError{Kind: KindNotFound, Message: err.Error()}
	case storage.KindAccessDenied:
		return &APIError{Kind: KindForbidden, Message: err.Error()}
	case storage.KindUnavailable:
		return &APIError{Kind: KindServiceUnavailable, Message: err.Error()}
	default:
		return &APIError{Kind: KindInternal, Message: err.Error()}
	}
}
