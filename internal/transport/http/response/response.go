// Package response maps domain outcomes to HTTP bodies. Handlers return or
// construct *Error values; the Writer decides how much detail a body may
// carry (an explicit policy, not an environment read).
package response

import "net/http"

type Error struct {
	Status  int
	Message string
	Errors  []string // itemized validation errors, wire key "errors"
	Detail  string   // single-field query detail, wire key "error"
	cause   error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.cause != nil {
		return e.cause.Error()
	}
	return "request failed"
}

func (e *Error) Unwrap() error { return e.cause }

func BadRequest(msg string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: msg}
}

// Validation carries the itemized rule failures from the validators.
func Validation(errs []string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: "Validation error", Errors: errs}
}

// Query carries a single-field rejection as a {message, error} pair.
func Query(msg, detail string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: msg, Detail: detail}
}

func Unauthorized(msg string) *Error {
	return &Error{Status: http.StatusUnauthorized, Message: msg}
}

func Conflict(msg string) *Error {
	return &Error{Status: http.StatusConflict, Message: msg}
}

func NotFound(msg string) *Error {
	return &Error{Status: http.StatusNotFound, Message: msg}
}

func Internal(msg string, cause error) *Error {
	return &Error{Status: http.StatusInternalServerError, Message: msg, cause: cause}
}
