package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an error by how the HTTP boundary must treat it.
type Kind string

const (
	KindInvalidArgument Kind = "INVALID_ARGUMENT"
	KindWriteFailed     Kind = "WRITE_FAILED"
	KindReadDegraded    Kind = "READ_DEGRADED"
	KindConfiguration   Kind = "CONFIGURATION"
	KindNotFound        Kind = "NOT_FOUND"
	KindInternal        Kind = "INTERNAL"
)

// Error is the error type shared by every domain service.
// Code is the domain specific code (RAT001, CMT002, ...); Field names the
// offending input for InvalidArgument errors.
type Error struct {
	Kind    Kind
	Code    string
	Field   string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(kind Kind, code, message string) *Error {
	return &Error{Kind: kind, Code: code, Message: message}
}

func Wrap(kind Kind, code, message string, err error) *Error {
	return &Error{Kind: kind, Code: code, Message: message, Err: err}
}

func InvalidArgument(code, field, message string) *Error {
	return &Error{Kind: KindInvalidArgument, Code: code, Field: field, Message: message}
}

// KindOf returns the Kind of the first *Error in err's chain, or KindInternal.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// HTTPStatus maps an error kind to its response status code.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindInvalidArgument:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
