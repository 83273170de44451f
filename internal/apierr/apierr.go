package apierr

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind int

const (
	KindStorage Kind = iota
	KindValidation
	KindReference
	KindNotFound
	KindUnauthorized
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation_error"
	case KindReference:
		return "reference_error"
	case KindNotFound:
		return "not_found"
	case KindUnauthorized:
		return "unauthorized"
	default:
		return "storage_error"
	}
}

// Sentinels for errors.Is checks; any *Error of the same Kind matches.
var (
	ErrValidation   = &Error{Kind: KindValidation}
	ErrReference    = &Error{Kind: KindReference}
	ErrNotFound     = &Error{Kind: KindNotFound}
	ErrUnauthorized = &Error{Kind: KindUnauthorized}
	ErrStorage      = &Error{Kind: KindStorage}
)

type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Kind.String()
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Err == nil && t.Kind == e.Kind
}

// Code is the machine-readable code put on the wire.
func (e *Error) Code() string { return e.Kind.String() }

// Status maps the error kind onto an HTTP status code.
func (e *Error) Status() int {
	switch e.Kind {
	case KindValidation, KindReference:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindUnauthorized:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

func New(kind Kind, err error) *Error {
	return &Error{Kind: kind, Err: err}
}

func Validation(format string, args ...any) *Error {
	return New(KindValidation, fmt.Errorf(format, args...))
}

func Reference(format string, args ...any) *Error {
	return New(KindReference, fmt.Errorf(format, args...))
}

func NotFound(format string, args ...any) *Error {
	return New(KindNotFound, fmt.Errorf(format, args...))
}

func Unauthorized(format string, args ...any) *Error {
	return New(KindUnauthorized, fmt.Errorf(format, args...))
}

// Storage wraps an underlying driver failure. A nil err stays nil.
func Storage(op string, err error) error {
	if err == nil {
		return nil
	}
	var ae *Error
	if errors.As(err, &ae) {
		return err
	}
	return New(KindStorage, fmt.Errorf("%s: %w", op, err))
}

// As extracts the *Error from err, treating anything unclassified as a
// storage failure.
func As(err error) *Error {
	if err == nil {
		return nil
	}
	var ae *Error
	if errors.As(err, &ae) {
		return ae
	}
	return New(KindStorage, err)
}
