package types

// MetricsCollector defines methods for recording operational metrics.
//
// Implementations should be non-blocking and handle failures gracefully.
// Methods may be called concurrently from assignment and membership-update
// paths and must be thread-safe.
//
// This interface composes smaller, domain-focused interfaces for better modularity.
type MetricsCollector interface {
	SchedulerMetrics
	MembershipMetrics
}

// SchedulerMetrics defines metrics for the assignment path.
type SchedulerMetrics interface {
	// RecordAssignments records a completed assignment batch.
	//
	// Parameters:
	//   - total: Number of assignments made in the batch
	//   - local: Number of those satisfied by a data-local host
	RecordAssignments(total, local int)

	// SetInitialized sets the scheduler's initialized/ready flag (gauge metric).
	SetInitialized(ready bool)
}

// MembershipMetrics defines metrics for membership update operations.
type MembershipMetrics interface {
	// RecordMembershipUpdate records a completed locality map rebuild.
	//
	// Parameters:
	//   - duration: Rebuild time in seconds
	RecordMembershipUpdate(duration float64)

	// RecordMalformedMember records a membership entry skipped because it
	// carried no usable address.
	RecordMalformedMember()

	// RecordSnapshotDropped records a pending membership snapshot dropped
	// by a feed because a newer one superseded it before delivery.
	RecordSnapshotDropped()

	// SetKnownHosts sets the current number of known execution hosts (gauge metric).
	SetKnownHosts(count int)

	// SetLocalityKeys sets the current number of locality map keys (gauge metric).
	SetLocalityKeys(count int)
}
