// Package apperr defines the application error taxonomy shared by all features.
package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies an error so that callers (and the transport layer) can react
// to it without string matching.
type Kind string

const (
	// KindValidation indicates a missing or malformed required field.
	KindValidation Kind = "validation"

	// KindUnauthorized indicates that the referenced user does not exist or
	// the caller is otherwise not allowed to perform the operation.
	KindUnauthorized Kind = "unauthorized"

	// KindConflict indicates a duplicate unique key, e.g. an email address
	// that is already registered.
	KindConflict Kind = "conflict"

	// KindNotFound indicates that a referenced entity or document is absent.
	KindNotFound Kind = "not_found"

	// KindStorage indicates an object store I/O failure.
	KindStorage Kind = "storage"
)

// Error is an application error with a machine-checkable kind, a short
// user-visible message and an optional wrapped cause.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap exposes the wrapped cause for errors.Is / errors.As chains.
func (e *Error) Unwrap() error {
	return e.Err
}

// New creates an error with the given kind and message.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Newf creates an error with the given kind and a formatted message.
func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates an error with the given kind and message wrapping a cause.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf returns the kind of err, or the empty string if err carries none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// Message returns the user-visible message of err without the wrapped cause,
// or err.Error() if err carries no kind.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
