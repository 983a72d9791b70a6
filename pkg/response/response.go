package response

import (
	"errors"
	"net/http"
	"strings"
)

// Error is a domain error carrying the HTTP status it maps to and a stable
// machine readable reason.
type Error struct {
	Code   int
	Reason string
	Err    error
}

func (e *Error) Error() string {
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code && e.Err.Error() == t.Err.Error()
}

func NewError(code int, err string) error {
	return &Error{Code: code, Reason: reasonFrom(err), Err: errors.New(err)}
}

// StatusCode returns the status carried by err, or 500 when err is not a domain error.
func StatusCode(err error) int {
	var respErr *Error
	if errors.As(err, &respErr) {
		return respErr.Code
	}
	return http.StatusInternalServerError
}

func reasonFrom(msg string) string {
	return strings.ToUpper(strings.Join(strings.Fields(msg), "_"))
}
