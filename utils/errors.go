// File: /utils/errors.go
package utils

import (
	"errors"
	"net/http"
)

const (
	ErrTypeNotFound   = "not_found"
	ErrTypeConflict   = "conflict"
	ErrTypeForbidden  = "forbidden"
	ErrTypeBadRequest = "bad_request"
	ErrTypeInternal   = "internal_error"
)

// AppError is a failure a handler anticipates. Status is the HTTP status it
// maps to and Type is the machine-readable kind sent to clients.
type AppError struct {
	Status  int
	Type    string
	Message string
}

func (e *AppError) Error() string {
	return e.Message
}

func NewNotFound(message string) *AppError {
	return &AppError{Status: http.StatusNotFound, Type: ErrTypeNotFound, Message: message}
}

func NewConflict(message string) *AppError {
	return &AppError{Status: http.StatusConflict, Type: ErrTypeConflict, Message: message}
}

func NewForbidden(message string) *AppError {
	return &AppError{Status: http.StatusForbidden, Type: ErrTypeForbidden, Message: message}
}

func NewBadRequest(message string) *AppError {
	return &AppError{Status: http.StatusBadRequest, Type: ErrTypeBadRequest, Message: message}
}

func NewInternal(message string) *AppError {
	return &AppError{Status: http.StatusInternalServerError, Type: ErrTypeInternal, Message: message}
}

// AsAppError unwraps err to an *AppError. Errors that are not AppErrors
// become Internal.
func AsAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return NewInternal("An unexpected error occurred")
}

// IsErrorType reports whether err is an AppError of the given type.
func IsErrorType(err error, errType string) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Type == errType
}
