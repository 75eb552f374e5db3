package remote

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is a failed call to the configuration service. StatusCode is zero
// when the request never produced a response.
type Error struct {
	Op         string
	Method     string
	Path       string
	StatusCode int
	Message    string
	Err        error
}

func (e *Error) Error() string {
	switch {
	case e.StatusCode != 0 && e.Message != "":
		return fmt.Sprintf("remote %s: %s %s: status %d: %s", e.Op, e.Method, e.Path, e.StatusCode, e.Message)
	case e.StatusCode != 0:
		return fmt.Sprintf("remote %s: %s %s: status %d", e.Op, e.Method, e.Path, e.StatusCode)
	case e.Err != nil:
		return fmt.Sprintf("remote %s: %s %s: %v", e.Op, e.Method, e.Path, e.Err)
	}
	return fmt.Sprintf("remote %s: %s %s failed", e.Op, e.Method, e.Path)
}

func (e *Error) Unwrap() error { return e.Err }

// NotFound reports whether the service answered 404.
func (e *Error) NotFound() bool { return e.StatusCode == http.StatusNotFound }

// StatusOf returns the remote status code carried by err, or 0.
func StatusOf(err error) int {
	var re *Error
	if errors.As(err, &re) {
		return re.StatusCode
	}
	return 0
}

// MessageOf returns the remote message carried by err, or "".
func MessageOf(err error) string {
	var re *Error
	if errors.As(err, &re) {
		return re.Message
	}
	return ""
}
