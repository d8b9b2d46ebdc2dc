package auth

import "errors"

// Authentication failures are reported as values inside Result, never as
// faults propagated across the public contract. Callers map
// ErrInsufficientPermission to 403 and everything else to 401, except
// ErrMisconfigured which is an operator fault.
var (
	ErrNoCredentials          = errors.New("no credentials")
	ErrInvalidSession         = errors.New("invalid or expired session")
	ErrRateLimited            = errors.New("too many failed attempts")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrInsufficientPermission = errors.New("insufficient permissions")
	ErrMisconfigured          = errors.New("no admin key configured")
)
