package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifies domain errors so the HTTP layer can map them to
// status codes without inspecting message text.
type ErrorKind string

const (
	KindValidation    ErrorKind = "validation"
	KindQuotaExceeded ErrorKind = "quota_exceeded"
	KindConflict      ErrorKind = "conflict"
	KindNotFound      ErrorKind = "not_found"
	KindAlreadyExists ErrorKind = "already_exists"
	KindInternal      ErrorKind = "internal"
)

// Error is a typed domain error carried across layers unchanged.
type Error struct {
	Kind    ErrorKind
	Message string
}

// Error returns the error message.
func (e *Error) Error() string {
	return e.Message
}

// NewValidationError creates an error for invalid input data.
func NewValidationError(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// NewQuotaExceededError creates an error for exceeding the daily booking quota.
func NewQuotaExceededError(message string) *Error {
	return &Error{Kind: KindQuotaExceeded, Message: message}
}

// NewConflictError creates an error for a time-window conflict.
func NewConflictError(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

// NewNotFoundError creates an error for a missing entity.
func NewNotFoundError(resource, id string) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf("%s not found: %s", resource, id)}
}

// NewAlreadyExistsError creates an error for a uniqueness violation.
func NewAlreadyExistsError(message string) *Error {
	return &Error{Kind: KindAlreadyExists, Message: message}
}

// KindOf extracts the error kind, returning KindInternal for untyped errors.
func KindOf(err error) ErrorKind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindInternal
}

// IsKind reports whether err is a domain error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	return KindOf(err) == kind
}
