// Package apperror defines the error kinds surfaced by the escort service.
// Callers classify errors with errors.Is against the exported sentinels.
package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound            = errors.New("not found")
	ErrForbidden           = errors.New("forbidden")
	ErrConflict            = errors.New("conflict")
	ErrValidation          = errors.New("validation error")
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
)

// Error carries a human readable message and the kind it belongs to
type Error struct {
	kind    error
	message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

// Message returns the message without the wrapped cause
func (e *Error) Message() string {
	return e.message
}

// Is matches the kind sentinel
func (e *Error) Is(target error) bool {
	return target == e.kind
}

func (e *Error) Unwrap() error {
	return e.cause
}

func newError(kind error, format string, args ...interface{}) *Error {
	return &Error{kind: kind, message: fmt.Sprintf(format, args...)}
}

func NotFound(format string, args ...interface{}) error {
	return newError(ErrNotFound, format, args...)
}

func Forbidden(format string, args ...interface{}) error {
	return newError(ErrForbidden, format, args...)
}

func Conflict(format string, args ...interface{}) error {
	return newError(ErrConflict, format, args...)
}

func Validation(format string, args ...interface{}) error {
	return newError(ErrValidation, format, args...)
}

// Upstream wraps a dependency failure
func Upstream(cause error, format string, args ...interface{}) error {
	e := newError(ErrUpstreamUnavailable, format, args...)
	e.cause = cause
	return e
}

// Kind returns the sentinel err belongs to, or nil for unclassified errors
func Kind(err error) error {
	for _, kind := range []error{ErrNotFound, ErrForbidden, ErrConflict, ErrValidation, ErrUpstreamUnavailable} {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return nil
}

// PublicMessage returns the message safe to show to a client
func PublicMessage(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.message
	}
	return "internal server error"
}
