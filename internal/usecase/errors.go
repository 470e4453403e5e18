package usecase

import "errors"

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
	// ErrNetwork marks upstream failures: unreachable endpoint or non-success status.
	ErrNetwork = errors.New("network error")
	// ErrParse marks upstream payloads that do not match the expected shape.
	ErrParse = errors.New("parse error")
)
