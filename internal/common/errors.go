// Package common defines shared constants and sentinel errors used across
// client and server layers of authservice. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound       = errors.New("not found")
	ErrorUsernameExists = errors.New("username already exists")
	ErrorEmailExists    = errors.New("email already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Signup validation errors.
	ErrorInvalidUsername = errors.New("invalid username format")
	ErrorInvalidEmail    = errors.New("invalid email format")
	ErrorWeakPassword    = errors.New("password does not meet security requirements")

	// Transport-level auth errors.
	ErrorInvalidAuthHeaderFormat = errors.New("invalid auth header format")

	// Token verification errors, one per failure kind. The HTTP layer
	// collapses all of them into a single uniform message; the specific
	// kind is only logged.
	ErrTokenMalformed        = errors.New("token malformed")
	ErrTokenSignatureInvalid = errors.New("token signature invalid")
	ErrTokenWrongIssuer      = errors.New("token issuer mismatch")
	ErrTokenExpired          = errors.New("token expired")
	ErrTokenMissingClaim     = errors.New("token missing username claim")
	ErrInvalidToken          = errors.New("invalid token")
)
