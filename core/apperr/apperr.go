/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024–26 the glyphengine authors
*/

// Package apperr provides a small error-code-carrying error type, used
// throughout glyphengine to report the three error kinds the engine
// recognizes: range errors, draw errors and resource (allocation) errors.
package apperr

import (
	"errors"
	"fmt"
	"os"
)

// Error codes recognized by the engine.
const (
	NOERROR  int = 0
	ERANGE   int = 201 // index outside the text, or from > to
	EDRAW    int = 202 // failed to realize a font or allocate a GlyphString
	ERESOURCE int = 203 // scratch-buffer allocation failure
	EINTERNAL int = 204
)

func errorText(code int) string {
	switch code {
	case NOERROR:
		return "OK"
	case ERANGE:
		return "range error"
	case EDRAW:
		return "draw error"
	case ERESOURCE:
		return "resource error"
	case EINTERNAL:
		return "internal error"
	}
	return "undefined error"
}

// AppError is an error with an associated error code and a user message.
type AppError interface {
	error
	ErrorCode() int
	UserMessage() string
}

type appError struct {
	error
	code int
	msg  string
}

func (e appError) Unwrap() error { return e.error }

func (e appError) Error() string {
	return fmt.Sprintf("[%d] %v", e.code, e.error)
}

func (e appError) ErrorCode() int { return e.code }

func (e appError) UserMessage() string { return e.msg }

var _ AppError = appError{}

// Error creates a new error carrying code and a formatted user message.
func Error(code int, format string, v ...interface{}) error {
	return appError{
		errors.New(errorText(code)),
		code,
		fmt.Sprintf(format, v...),
	}
}

// WrapError wraps err in an appError, adding an error code and a user
// message. If err is nil, it is replaced by an error carrying code's own
// error text, so a non-nil error is always produced.
func WrapError(err error, code int, format string, v ...interface{}) error {
	if err == nil {
		err = errors.New(errorText(code))
	}
	return appError{err, code, fmt.Sprintf(format, v...)}
}

// Code returns the status code associated with err. If no code is found
// it returns EINTERNAL; if err is nil it returns NOERROR.
func Code(err error) int {
	if err == nil {
		return NOERROR
	}
	var e AppError
	if errors.As(err, &e) {
		return e.ErrorCode()
	}
	return EINTERNAL
}

// UserMessage returns the user-facing message associated with err.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var e AppError
	if errors.As(err, &e) {
		return e.UserMessage()
	}
	return errorText(Code(err))
}

// Range is a convenience constructor for a range error.
func Range(format string, v ...interface{}) error {
	return Error(ERANGE, format, v...)
}

// Draw is a convenience constructor for a draw error.
func Draw(format string, v ...interface{}) error {
	return Error(EDRAW, format, v...)
}

// Resource is a convenience constructor for a resource error.
func Resource(format string, v ...interface{}) error {
	return Error(ERESOURCE, format, v...)
}

// OOMHandler is invoked when scratch-buffer or GlyphString growth cannot
// be satisfied. The default handler aborts the process, matching the
// engine's documented "abort on out-of-memory" policy.
var OOMHandler = func(err error) {
	fmt.Fprintf(os.Stderr, "glyphengine: out of memory: %v\n", err)
	panic(err)
}

// OOM reports an allocation failure to the registered OOMHandler.
func OOM(err error) {
	OOMHandler(WrapError(err, ERESOURCE, "allocation failed"))
}
