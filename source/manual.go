package source

import (
	"sync"

	"github.com/arloliu/placer/types"
)

// Manual implements an in-process membership feed driven by the caller.
//
// Snapshots handed to Publish are delivered synchronously to every
// callback registered for that service. Useful for tests and for
// embedders that already distribute membership through another channel.
type Manual struct {
	mu     sync.Mutex
	nextID types.SubscriptionID
	regs   map[types.SubscriptionID]manualRegistration
}

// Compile-time assertion that Manual implements MembershipSource.
var _ types.MembershipSource = (*Manual)(nil)

type manualRegistration struct {
	serviceID string
	cb        types.UpdateCallback
}

// NewManual creates a new in-process membership feed.
//
// Returns:
//   - *Manual: Initialized feed with no registrations
func NewManual() *Manual {
	return &Manual{
		regs: make(map[types.SubscriptionID]manualRegistration),
	}
}

// Register subscribes the callback to snapshots published for serviceID.
//
// Parameters:
//   - serviceID: Service whose membership should be observed
//   - cb: Callback invoked synchronously from Publish
//
// Returns:
//   - types.SubscriptionID: Handle for Unregister
//   - error: Argument validation error
func (m *Manual) Register(serviceID string, cb types.UpdateCallback) (types.SubscriptionID, error) {
	if serviceID == "" {
		return 0, ErrServiceIDRequired
	}
	if cb == nil {
		return 0, ErrCallbackRequired
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	id := m.nextID
	m.regs[id] = manualRegistration{serviceID: serviceID, cb: cb}

	return id, nil
}

// Unregister cancels a registration. Unknown handles are not an error.
//
// Parameters:
//   - id: Handle returned by Register
//
// Returns:
//   - error: Always nil
func (m *Manual) Unregister(id types.SubscriptionID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.regs, id)

	return nil
}

// Publish delivers a complete membership snapshot to every callback
// registered for the given service. Callbacks run synchronously on the
// caller's goroutine, in registration order.
//
// Parameters:
//   - serviceID: Service the snapshot belongs to
//   - view: Complete membership snapshot
func (m *Manual) Publish(serviceID string, view types.MembershipView) {
	m.mu.Lock()
	callbacks := make([]types.UpdateCallback, 0, len(m.regs))
	for id := types.SubscriptionID(1); id <= m.nextID; id++ {
		if r, ok := m.regs[id]; ok && r.serviceID == serviceID {
			callbacks = append(callbacks, r.cb)
		}
	}
	m.mu.Unlock()

	// Invoke outside the lock so a callback can re-enter the feed.
	for _, cb := range callbacks {
		cb(view)
	}
}

// Registrations returns the number of active registrations, for tests.
func (m *Manual) Registrations() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.regs)
}
