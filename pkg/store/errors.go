package store

import "errors"

// Construction errors.
var (
	ErrNilStore     = errors.New("store must not be nil")
	ErrTypeMismatch = errors.New("store does not match the requested model type")
)

// Backend lifecycle and configuration errors. Implementations return
// ErrStoreClosed for operations after their handle has been released.
var (
	ErrStoreClosed    = errors.New("store is closed")
	ErrBackendEmpty   = errors.New("backend must not be empty")
	ErrBackendUnknown = errors.New("unknown backend")
)
