package authenticator

import (
	"context"
)

// TokenProvider abstracts acquisition of Management API bearer tokens
type TokenProvider interface {
	AcquireToken(ctx context.Context) (string, error)
}

// AuthError reports a failed credential exchange with the identity provider
type AuthError struct {
	// StatusCode is the token endpoint's HTTP status, zero when no response was received
	StatusCode int
	Err        error
}

func (e *AuthError) Error() string {
	return "failed to acquire access token: " + e.Err.Error()
}

func (e *AuthError) Unwrap() error {
	return e.Err
}
