package errors

import (
	"errors"
	"fmt"
)

// Error codes shared between the domain and transport layers.
const (
	CodeInvalidInput  = "invalid_input"
	CodeNotFound      = "chart_not_found"
	CodeStorage       = "storage_error"
	CodeInvalidToken  = "invalid_token"
	CodeAuthFailure   = "auth_error"
	CodeLimitExceeded = "limit_exceeded"
)

// AppError carries a stable code for the transport layer. Field names the
// part of the request an invalid_input error came from, e.g. "second" or
// "candidate 7".
type AppError struct {
	Code    string
	Field   string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	msg := e.Message
	if e.Field != "" {
		msg = e.Field + ": " + msg
	}
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Wrap annotates err with a code. A nil err produces a leaf error.
func Wrap(code, message string, err error) error {
	return &AppError{Code: code, Message: message, Err: err}
}

// Invalidf builds an invalid_input leaf error.
func Invalidf(format string, args ...any) error {
	return &AppError{Code: CodeInvalidInput, Message: fmt.Sprintf(format, args...)}
}

// InField attributes an invalid_input error to a request field. Nested calls
// build a dotted path, outermost first. Any other error is returned as is.
func InField(field string, err error) error {
	var appErr *AppError
	if !errors.As(err, &appErr) || appErr.Code != CodeInvalidInput {
		return err
	}
	out := *appErr
	if out.Field == "" {
		out.Field = field
	} else {
		out.Field = field + "." + out.Field
	}
	return &out
}

// CodeOf returns the code of the outermost AppError, or "" when err carries none.
func CodeOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}

// IsCode reports whether err carries the given code.
func IsCode(err error, code string) bool {
	return code != "" && CodeOf(err) == code
}
