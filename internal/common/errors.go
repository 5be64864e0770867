// Package common defines the sentinel errors and small helpers shared by the
// account, token and transport layers. Callers should use errors.Is to match
// these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")

	// Identity errors.
	ErrInvalidIdentity   = errors.New("invalid identity")
	ErrDuplicateIdentity = errors.New("identity already registered")

	// Credential and payload errors.
	ErrInvalidCredential = errors.New("invalid credential")
	ErrMissingField      = errors.New("missing field")

	// ErrAuthenticationFailed covers both an unknown email and a wrong
	// password. The two cases are never distinguished.
	ErrAuthenticationFailed = errors.New("unable to log in with provided credentials")

	// Token resolution errors.
	ErrUnauthenticated = errors.New("authentication credentials were not provided or are invalid")
	ErrAccountInactive = errors.New("account inactive")

	// Transport errors.
	ErrMethodNotAllowed = errors.New("method not allowed")
)
