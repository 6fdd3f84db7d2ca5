package domain

import "errors"

// Common domain errors
var (
	ErrNotFound       = errors.New("resource not found")
	ErrInvalidInput   = errors.New("invalid input")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrForbidden      = errors.New("forbidden")
	ErrInternalServer = errors.New("internal server error")
)

// Auth errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Data errors
var (
	ErrCustomerNotFound = errors.New("customer not found")
)

// Remote mode errors
var (
	// ErrRemoteUnavailable is returned when the upstream prediction API
	// cannot be reached. Propagated as-is: no retry, no fallback to the
	// local evaluator at runtime.
	ErrRemoteUnavailable = errors.New("remote banking API unavailable")
)
