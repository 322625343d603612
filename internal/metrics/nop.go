// Package metrics provides metrics collector implementations for the Placer library.
package metrics

import "github.com/arloliu/placer/types"

// NopMetrics implements a no-op metrics collector.
//
// All metrics are discarded. Useful for testing or when external
// metrics collection is used.
type NopMetrics struct{}

// Compile-time assertion that NopMetrics implements MetricsCollector.
var _ types.MetricsCollector = (*NopMetrics)(nil)

// NewNop creates a new no-op metrics collector.
//
// Returns:
//   - *NopMetrics: A new no-op metrics collector instance
func NewNop() *NopMetrics {
	return &NopMetrics{}
}

// SchedulerMetrics implementation

// RecordAssignments discards the assignment batch metric.
func (n *NopMetrics) RecordAssignments(_ /* total */, _ /* local */ int) {
	// No-op
}

// SetInitialized discards the initialized flag metric.
func (n *NopMetrics) SetInitialized(_ /* ready */ bool) {
	// No-op
}

// MembershipMetrics implementation

// RecordMembershipUpdate discards the membership update metric.
func (n *NopMetrics) RecordMembershipUpdate(_ /* duration */ float64) {
	// No-op
}

// RecordMalformedMember discards the malformed member counter.
func (n *NopMetrics) RecordMalformedMember() {
	// No-op
}

// RecordSnapshotDropped discards the dropped snapshot counter.
func (n *NopMetrics) RecordSnapshotDropped() {
	// No-op
}

// SetKnownHosts discards the known hosts gauge.
func (n *NopMetrics) SetKnownHosts(_ /* count */ int) {
	// No-op
}

// SetLocalityKeys discards the locality keys gauge.
func (n *NopMetrics) SetLocalityKeys(_ /* count */ int) {
	// No-op
}
