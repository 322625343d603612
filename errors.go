package placer

import "errors"

// Sentinel errors returned by the Scheduler.
var (
	// ErrNoHostsAvailable is returned when an assignment is requested while
	// no execution hosts are known.
	ErrNoHostsAvailable = errors.New("no execution hosts available")

	// ErrMembershipRequired is returned when no membership mode is provided.
	ErrMembershipRequired = errors.New("membership mode is required")

	// ErrFeedRequired is returned when dynamic membership is configured
	// without a membership feed.
	ErrFeedRequired = errors.New("membership feed is required")

	// ErrServiceIDRequired is returned when dynamic membership is configured
	// without a service identifier.
	ErrServiceIDRequired = errors.New("service identifier is required")

	// ErrAlreadyRegistered is returned when Init is called on a scheduler
	// that is already registered with its membership feed.
	ErrAlreadyRegistered = errors.New("already registered with membership feed")
)
