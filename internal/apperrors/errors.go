// Package apperrors defines the sentinel errors shared between services and
// handlers. Handlers collapse all authentication failures into one generic
// user-visible message; the specific sentinel is only logged.
package apperrors

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountDisabled    = errors.New("account disabled")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrTokenNotFound      = errors.New("qr token not found")
	ErrTokenRevoked       = errors.New("qr token revoked")
	ErrRefreshNotFound    = errors.New("refresh token not found or revoked")
	ErrRefreshExpired     = errors.New("refresh token expired")

	// ErrExternalServiceUnavailable marks a failed completion-service call.
	// It never reaches a client: the optimizer falls back to the rule table.
	ErrExternalServiceUnavailable = errors.New("external completion service unavailable")
)
