// Package common contains sentinel errors shared across client components.
package common

import "errors"

var (
	// ErrAuthenticationFailed wraps credential rejection or provider network
	// failure during login. The user-facing message comes from the identity
	// error table, not from this sentinel.
	ErrAuthenticationFailed = errors.New("authentication failed")

	// ErrSessionInvalid marks a session rejected for tamper, subject
	// mismatch, or expiry. Always resolved by a forced logout.
	ErrSessionInvalid = errors.New("session invalid")

	ErrNotFound = errors.New("not found")
)
