// Package errs provides error handling for the braille service and CLI.
//
// It re-exports github.com/cockroachdb/errors, which adds stack traces,
// wrapping and user hints, and declares the sentinel errors the HTTP layer
// maps to status codes.
//
//	if len(text) > max {
//	    return errs.Wrapf(errs.ErrTooLarge, "text has %d characters", len(text))
//	}
package errs

import (
	"net/http"

	crdb "github.com/cockroachdb/errors"
)

// Creation and wrapping
var (
	New         = crdb.New
	Newf        = crdb.Newf
	Wrap        = crdb.Wrap
	Wrapf       = crdb.Wrapf
	WithStack   = crdb.WithStack
	WithMessage = crdb.WithMessage
)

// User-facing messages
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	GetAllHints = crdb.GetAllHints
)

// Inspection
var (
	Is        = crdb.Is
	As        = crdb.As
	UnwrapAll = crdb.UnwrapAll
)

// Sentinel errors. Wrap them to add context while keeping errors.Is working.
var (
	// ErrInvalidRequest indicates malformed or invalid input.
	ErrInvalidRequest = New("invalid request")

	// ErrTooLarge indicates input beyond the configured limits.
	ErrTooLarge = New("request too large")

	// ErrRender indicates a failure while producing an image or document.
	ErrRender = New("render failed")
)

// InvalidRequest creates an invalid-request error with a formatted message.
func InvalidRequest(format string, args ...interface{}) error {
	return Wrap(ErrInvalidRequest, Newf(format, args...).Error())
}

// TooLarge creates a too-large error with a formatted message.
func TooLarge(format string, args ...interface{}) error {
	return Wrap(ErrTooLarge, Newf(format, args...).Error())
}

// WrapInvalidRequest marks an error as invalid input. A nil error stays nil.
func WrapInvalidRequest(err error, context string) error {
	if err == nil {
		return nil
	}
	return Wrap(Wrap(ErrInvalidRequest, err.Error()), context)
}

// WrapRender marks an error as a rendering failure. A nil error stays nil.
func WrapRender(err error, context string) error {
	if err == nil {
		return nil
	}
	return Wrap(crdb.CombineErrors(ErrRender, err), context)
}

// Code returns the error code and HTTP status for an error:
// VALIDATION_ERROR (400), TOO_LARGE (413) or GENERATION_ERROR (500).
func Code(err error) (string, int) {
	switch {
	case Is(err, ErrInvalidRequest):
		return "VALIDATION_ERROR", http.StatusBadRequest
	case Is(err, ErrTooLarge):
		return "TOO_LARGE", http.StatusRequestEntityTooLarge
	case Is(err, ErrRender):
		return "GENERATION_ERROR", http.StatusInternalServerError
	}
	return "INTERNAL_ERROR", http.StatusInternalServerError
}

// Message returns the error text with the first hint appended, if any.
func Message(err error) string {
	msg := err.Error()
	if hints := GetAllHints(err); len(hints) > 0 {
		msg += " (" + hints[0] + ")"
	}
	return msg
}
