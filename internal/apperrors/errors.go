package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrConflict indicates that a record was modified by someone else since it was read.
// Callers should re-fetch the record and retry.
var ErrConflict = errors.New("conflicting update")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates that the caller is authenticated but lacks the required access tier.
var ErrForbidden = errors.New("forbidden")

// ErrProtectedResource indicates an attempt to mutate a reserved system record.
var ErrProtectedResource = errors.New("resource is protected")

// AppError carries an HTTP status code alongside an error.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// FieldError is a client-facing failure tied to a single input field.
// Kind is one of the sentinel errors above, so errors.Is keeps working.
type FieldError struct {
	Field   string
	Message string
	Kind    error
}

func (e *FieldError) Error() string {
	return e.Message
}

func (e *FieldError) Unwrap() error {
	return e.Kind
}

// NewValidationError returns a FieldError of kind ErrValidation.
func NewValidationError(field, message string) error {
	return &FieldError{Field: field, Message: message, Kind: ErrValidation}
}

// NewDuplicateError returns a FieldError of kind ErrDuplicate.
func NewDuplicateError(field, message string) error {
	return &FieldError{Field: field, Message: message, Kind: ErrDuplicate}
}

// PublicMessage returns the client-facing message carried by err, or fallback
// when err carries none.
func PublicMessage(err error, fallback string) string {
	var fe *FieldError
	if errors.As(err, &fe) {
		return fe.Message
	}
	var ae *AppError
	if errors.As(err, &ae) && ae.Message != "" {
		return ae.Message
	}
	return fallback
}
