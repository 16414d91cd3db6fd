// Package apierr holds the closed set of error kinds a handler may return and
// the mapping from those kinds to HTTP status codes.
package apierr

import (
	"errors"
	"net/http"
)

// InternalMessage is what callers see for any error that is not classified.
const InternalMessage = "Something went wrong on our end"

type Kind int

const (
	KindInternal Kind = iota
	KindBadRequest
	KindNotAuthenticated
	KindForbidden
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindBadRequest:
		return "bad_request"
	case KindNotAuthenticated:
		return "not_authenticated"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not_found"
	default:
		return "internal"
	}
}

// Error is a classified failure. Message is safe to show to clients; Err, if
// set, is the underlying cause and is only ever logged.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func BadRequest(message string) *Error {
	return New(KindBadRequest, message)
}

func NotAuthenticated(message string) *Error {
	return New(KindNotAuthenticated, message)
}

func Forbidden(message string) *Error {
	return New(KindForbidden, message)
}

func NotFound(message string) *Error {
	return New(KindNotFound, message)
}

// Status maps err to an HTTP status code and the message to send back.
// Unclassified errors, and errors of KindInternal, become a 500 with
// InternalMessage so internals are never leaked.
func Status(err error) (int, string) {
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		return http.StatusInternalServerError, InternalMessage
	}
	switch apiErr.Kind {
	case KindBadRequest:
		return http.StatusBadRequest, apiErr.Message
	case KindNotAuthenticated:
		return http.StatusUnauthorized, apiErr.Message
	case KindForbidden:
		return http.StatusForbidden, apiErr.Message
	case KindNotFound:
		return http.StatusNotFound, apiErr.Message
	default:
		return http.StatusInternalServerError, InternalMessage
	}
}
