package services

import (
	"errors"
	"fmt"
	"net/http"
)

// InputError is a problem with the caller's action or parameters
type InputError struct {
	Message string
}

func (e *InputError) Error() string {
	return e.Message
}

func inputErrorf(format string, args ...interface{}) error {
	return &InputError{Message: fmt.Sprintf(format, args...)}
}

// UpstreamError is a non-2xx response from the Management API
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("management API returned status %d: %s", e.StatusCode, e.Body)
}

// StatusFor maps an error to the HTTP status returned to the caller
func StatusFor(err error) int {
	var inputErr *InputError
	if errors.As(err, &inputErr) {
		return http.StatusBadRequest
	}

	var upstreamErr *UpstreamError
	if errors.As(err, &upstreamErr) {
		return upstreamErr.StatusCode
	}

	return http.StatusInternalServerError
}

// ErrorMessage returns the text placed in the error envelope.
// Upstream errors relay the downstream response text unchanged.
func ErrorMessage(err error) string {
	var upstreamErr *UpstreamError
	if errors.As(err, &upstreamErr) {
		return upstreamErr.Body
	}
	return err.Error()
}
