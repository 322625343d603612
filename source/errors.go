package source

import "errors"

// Sentinel errors returned by membership sources.
var (
	// ErrInvalidConfig is returned when the source configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrConnectionRequired is returned when the NATS connection is nil.
	ErrConnectionRequired = errors.New("NATS connection is required")

	// ErrServiceIDRequired is returned when Register is called with an
	// empty service identifier.
	ErrServiceIDRequired = errors.New("service identifier is required")

	// ErrCallbackRequired is returned when Register is called with a nil
	// callback.
	ErrCallbackRequired = errors.New("update callback is required")
)
