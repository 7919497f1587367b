package apperr

import (
	"errors"
	"net/http"
)

// Kind classifies an application error for the HTTP boundary.
type Kind int

const (
	Validation Kind = iota + 1
	Unauthenticated
	Forbidden
	NotFound
	Conflict
	Internal
)

// Error is the single error type services return. Handlers never inspect it
// directly; pkg/response translates it into the uniform error envelope.
type Error struct {
	Kind    Kind
	Message string
	Errors  []string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.cause }

// New builds an Error of the given kind. Extra details end up in the
// response's errors list.
func New(kind Kind, message string, details ...string) *Error {
	return &Error{Kind: kind, Message: message, Errors: details}
}

// Wrap attaches a cause that is logged but never serialized to clients.
func Wrap(err error, kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message, cause: err}
}

// KindOf extracts the Kind from err, defaulting to Internal.
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return Internal
}

// Status maps a Kind to its HTTP status code.
func (k Kind) Status() int {
	switch k {
	case Validation:
		return http.StatusBadRequest
	case Unauthenticated:
		return http.StatusUnauthorized
	case Forbidden:
		return http.StatusForbidden
	case NotFound:
		return http.StatusNotFound
	case Conflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
