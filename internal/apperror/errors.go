package apperror

import (
	"errors"
	"fmt"
)

// Kinds. Match them with errors.Is.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrConflict        = errors.New("conflict")
	ErrNotFound        = errors.New("not found")
	ErrInternal        = errors.New("internal failure")
)

// Error carries a kind, a message that is safe to show to clients and an
// optional cause that is only meant for logs.
type Error struct {
	Kind    error
	Message string
	Cause   error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Cause}
}

func newError(kind error, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func InvalidArgument(format string, args ...interface{}) error {
	return newError(ErrInvalidArgument, format, args...)
}

func Conflict(format string, args ...interface{}) error {
	return newError(ErrConflict, format, args...)
}

func NotFound(format string, args ...interface{}) error {
	return newError(ErrNotFound, format, args...)
}

// Internal hides cause behind a generic message. An error that already has
// a kind is returned unchanged.
func Internal(cause error, operation string) error {
	if cause == nil {
		return nil
	}
	if HasKind(cause) {
		return cause
	}
	return &Error{
		Kind:    ErrInternal,
		Message: fmt.Sprintf("failed to %s", operation),
		Cause:   cause,
	}
}

// HasKind reports whether err was already classified.
func HasKind(err error) bool {
	return errors.Is(err, ErrInvalidArgument) ||
		errors.Is(err, ErrConflict) ||
		errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrInternal)
}

// Cause returns the hidden cause of an internal error, or err itself.
func Cause(err error) error {
	var appErr *Error
	if errors.As(err, &appErr) && appErr.Cause != nil {
		return appErr.Cause
	}
	return err
}
