package client

import (
	"errors"
	"net/http"
)

var (
	// ErrUnavailable means no HTTP response was received at all.
	ErrUnavailable = errors.New("server unavailable")
	// ErrUnauthorized matches a RejectedError carrying 401 or 403.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrMalformedResponse is the cause of a RejectedError whose body could
	// not be decoded into the expected structure.
	ErrMalformedResponse = errors.New("malformed response")
)

// RejectedError is an application-level rejection: the backend answered,
// but not with the expected success response.
type RejectedError struct {
	StatusCode int
	// Detail is the server-supplied human-readable message, verbatim.
	// Empty when the server sent none or the body was unreadable.
	Detail string
	Err    error
}

func (e *RejectedError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return http.StatusText(e.StatusCode)
}

func (e *RejectedError) Unwrap() error {
	return e.Err
}

func (e *RejectedError) Is(target error) bool {
	return target == ErrUnauthorized &&
		(e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden)
}
