package source

import "github.com/arloliu/placer/types"

// Option configures a membership source with optional dependencies.
type Option func(*sourceOptions)

// sourceOptions holds optional source configuration.
type sourceOptions struct {
	logger  types.Logger
	metrics types.MembershipMetrics
}

// WithLogger sets a logger for the source.
//
// Parameters:
//   - logger: Logger implementation
//
// Returns:
//   - Option: Functional option for NewNATS
func WithLogger(logger types.Logger) Option {
	return func(o *sourceOptions) {
		o.logger = logger
	}
}

// WithMetrics sets a metrics collector for the source.
//
// Only the membership-side metrics are used (dropped snapshots).
//
// Parameters:
//   - metrics: MembershipMetrics implementation
//
// Returns:
//   - Option: Functional option for NewNATS
func WithMetrics(metrics types.MembershipMetrics) Option {
	return func(o *sourceOptions) {
		o.metrics = metrics
	}
}
