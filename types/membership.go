package types

// Member describes one execution host in a membership snapshot.
type Member struct {
	// Host is the advertised service address of the execution host.
	Host Host `json:"host"`

	// LocalAddrs lists the literal addresses this host is considered
	// local for. A host co-located with a storage daemon typically
	// reports that daemon's IP here. When empty, the host is local for
	// its own advertised address.
	LocalAddrs []string `json:"localAddrs,omitempty"`
}

// MembershipView is a complete, point-in-time snapshot of the known
// execution hosts.
//
// The membership feed always delivers full snapshots, never incremental
// deltas; the scheduler replaces its entire locality map on each view.
type MembershipView struct {
	Members []Member `json:"members"`
}

// UpdateCallback receives complete membership snapshots from a feed.
type UpdateCallback func(view MembershipView)

// SubscriptionID identifies a registration with a membership feed.
// It is opaque to the scheduler; only the feed that issued it can
// interpret it.
type SubscriptionID uint64

// MembershipSource is the membership feed the scheduler subscribes to
// for updates to the set of available execution hosts.
//
// Implementations must invoke callbacks with complete snapshots and must
// not invoke a callback after Unregister for its registration returns.
// The scheduler holds a borrowed reference to the source and never
// closes it; the owner manages the source's lifetime.
type MembershipSource interface {
	// Register subscribes the callback to membership updates for the
	// given service identifier.
	//
	// Parameters:
	//   - serviceID: Service whose membership should be observed
	//   - cb: Callback invoked with each complete snapshot
	//
	// Returns:
	//   - SubscriptionID: Handle for Unregister
	//   - error: Registration failure (feed unreachable, identifier conflict)
	Register(serviceID string, cb UpdateCallback) (SubscriptionID, error)

	// Unregister cancels a registration. Callbacks stop before it returns.
	//
	// Parameters:
	//   - id: Handle returned by Register
	//
	// Returns:
	//   - error: nil if the registration was removed or already gone
	Unregister(id SubscriptionID) error
}
