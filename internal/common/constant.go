// Package common contains shared constants and sentinel errors used across
// authservice components.
package common

// AuthHeaderName is the HTTP header that carries the bearer token on
// authenticated requests.
const AuthHeaderName = "Authorization"

// BearerPrefix is the scheme prefix expected in AuthHeaderName.
const BearerPrefix = "Bearer "
