package placer

import (
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/arloliu/placer/internal/logging"
	"github.com/arloliu/placer/internal/metrics"
	"github.com/arloliu/placer/types"
)

// Membership selects how the Scheduler learns the set of execution hosts.
//
// Exactly one of the two modes is chosen at construction:
//   - DynamicMembership: subscribe to a membership feed for live updates
//   - StaticMembership: a fixed host list that never changes
type Membership interface {
	membershipMode()
}

// DynamicMembership subscribes the scheduler to a membership feed for
// live updates to the set of available execution hosts.
type DynamicMembership struct {
	// ServiceID is the service identifier to subscribe to for execution
	// host membership information.
	ServiceID string

	// Feed is the membership feed to register with. The scheduler borrows
	// this reference and never closes it; the caller owns its lifetime.
	Feed types.MembershipSource
}

func (DynamicMembership) membershipMode() {}

// StaticMembership fixes the set of execution hosts at construction.
//
// Each host is considered local for its own address. Init and Close
// become no-ops in this mode.
type StaticMembership struct {
	// Hosts is the fixed list of execution hosts.
	Hosts []types.Host
}

func (StaticMembership) membershipMode() {}

// hostGroup is the ordered sequence of execution hosts local to one
// address key, together with the round-robin position within it.
type hostGroup struct {
	hosts []types.Host
	next  int
}

// Stats is a diagnostic snapshot of the scheduler's locality counters.
type Stats struct {
	// TotalAssignments is the number of assignments made since construction.
	TotalAssignments int64

	// LocalAssignments is the number of assignments satisfied by a
	// data-local host.
	LocalAssignments int64

	// KnownHosts is the number of execution hosts in the current view.
	KnownHosts int

	// LocalityKeys is the number of address keys in the locality map.
	LocalityKeys int
}

// Scheduler assigns execution hosts to data locations, preferring hosts
// physically co-located with the data and falling back to fair
// round-robin assignment otherwise.
//
// Thread Safety:
//   - All public methods are safe for concurrent use
//   - Membership updates replace the locality map wholesale; an
//     assignment call observes a single map version throughout its own
//     execution, never an intermediate state
//
// Lifecycle:
//   - Create with New()
//   - Call Init() to register with the membership feed (dynamic mode)
//   - Call Close() to unregister; safe to call multiple times
type Scheduler struct {
	// Dynamic mode registration. Nil feed means static mode.
	feed      types.MembershipSource
	serviceID string

	logger  types.Logger
	metrics types.MetricsCollector

	// mu guards the locality map, the round-robin cursors, and the
	// locality counters. Updates are rare relative to reads but are not
	// optimized specially; atomic map replacement matters more than
	// read throughput here.
	mu        sync.Mutex
	groups    map[string]*hostGroup
	keys      []string // sorted address keys; cursor iteration order
	nextKey   int      // round-robin cursor for non-local assignment
	hostCount int

	totalAssignments int64
	localAssignments int64

	// regMu guards registration state separately from mu so that Init
	// and Close never call out to the feed while holding mu.
	regMu      sync.Mutex
	subID      types.SubscriptionID
	registered bool
}

// New creates a new Scheduler in the given membership mode.
//
// In static mode the locality map is populated immediately, with each
// host local for its own address. In dynamic mode the map starts empty
// and is filled by the first membership snapshot after Init.
//
// Returns a concrete *Scheduler struct following the "accept interfaces,
// return structs" principle.
//
// Parameters:
//   - membership: DynamicMembership or StaticMembership
//   - opts: Optional configuration (metrics, logger)
//
// Returns:
//   - *Scheduler: Initialized scheduler instance
//   - error: Validation error if the membership mode is incomplete
//
// Example:
//
//	feed, _ := source.NewNATS(natsConn, source.DefaultConfig())
//	sched, err := placer.New(placer.DynamicMembership{
//	    ServiceID: "query-exec",
//	    Feed:      feed,
//	})
func New(membership Membership, opts ...Option) (*Scheduler, error) {
	if membership == nil {
		return nil, ErrMembershipRequired
	}

	// Apply options
	options := &schedulerOptions{}
	for _, opt := range opts {
		opt(options)
	}

	// Provide safe defaults for optional dependencies to avoid nil checks everywhere
	metricsCollector := options.metrics
	if metricsCollector == nil {
		metricsCollector = metrics.NewNop()
	}

	loggerInstance := options.logger
	if loggerInstance == nil {
		loggerInstance = logging.NewNop()
	}

	s := &Scheduler{
		logger:  loggerInstance,
		metrics: metricsCollector,
		groups:  make(map[string]*hostGroup),
	}

	switch m := membership.(type) {
	case DynamicMembership:
		if m.Feed == nil {
			return nil, ErrFeedRequired
		}
		if m.ServiceID == "" {
			return nil, ErrServiceIDRequired
		}
		s.feed = m.Feed
		s.serviceID = m.ServiceID
	case StaticMembership:
		view := types.MembershipView{Members: make([]types.Member, 0, len(m.Hosts))}
		for _, h := range m.Hosts {
			view.Members = append(view.Members, types.Member{Host: h})
		}
		s.groups, s.keys, s.hostCount = s.buildLocalityMap(view)
		s.metrics.SetKnownHosts(s.hostCount)
		s.metrics.SetLocalityKeys(len(s.keys))
	default:
		return nil, fmt.Errorf("%w: unsupported membership mode %T", ErrMembershipRequired, membership)
	}

	return s, nil
}

// Init registers the scheduler with its membership feed.
//
// In static mode this is a no-op that always succeeds: the locality map
// was populated at construction and never changes.
//
// Returns:
//   - error: Registration failure, or ErrAlreadyRegistered on a second call
func (s *Scheduler) Init() error {
	s.regMu.Lock()
	defer s.regMu.Unlock()

	if s.feed == nil {
		s.metrics.SetInitialized(true)

		return nil
	}

	if s.registered {
		return ErrAlreadyRegistered
	}

	id, err := s.feed.Register(s.serviceID, s.UpdateMembership)
	if err != nil {
		return fmt.Errorf("failed to register with membership feed: %w", err)
	}

	s.subID = id
	s.registered = true
	s.metrics.SetInitialized(true)
	s.logger.Info("registered with membership feed", "serviceID", s.serviceID, "subscriptionID", id)

	return nil
}

// Close unregisters the scheduler from its membership feed.
//
// Idempotent: calling Close when not registered, or calling it twice,
// returns nil without double-releasing the subscription.
//
// Returns:
//   - error: Unregistration failure from the feed
func (s *Scheduler) Close() error {
	s.regMu.Lock()
	defer s.regMu.Unlock()

	s.metrics.SetInitialized(false)

	if !s.registered {
		return nil
	}

	s.registered = false

	if err := s.feed.Unregister(s.subID); err != nil {
		return fmt.Errorf("failed to unregister from membership feed: %w", err)
	}

	s.logger.Info("unregistered from membership feed", "serviceID", s.serviceID)

	return nil
}

// UpdateMembership replaces the host locality map from a complete
// membership snapshot.
//
// A brand-new map is built from scratch: every address a host is local
// for becomes a key, and the host is appended to that key's sequence.
// The new map atomically replaces the old one and both the global and
// per-key round-robin cursors reset to the first position. Readers see
// either the complete old map or the complete new map, never an
// intermediate state.
//
// Entries with no usable address are skipped rather than aborting the
// whole rebuild. An empty view empties the map; subsequent assignment
// calls return ErrNoHostsAvailable until a non-empty view arrives.
//
// This method is the update callback handed to the membership feed, and
// may also be invoked directly by embedders that distribute membership
// through another channel.
//
// Parameters:
//   - view: Complete point-in-time snapshot of known execution hosts
func (s *Scheduler) UpdateMembership(view types.MembershipView) {
	start := time.Now()
	groups, keys, hostCount := s.buildLocalityMap(view)

	s.mu.Lock()
	s.groups = groups
	s.keys = keys
	s.hostCount = hostCount
	s.nextKey = 0
	s.mu.Unlock()

	s.metrics.SetKnownHosts(hostCount)
	s.metrics.SetLocalityKeys(len(keys))
	s.metrics.RecordMembershipUpdate(time.Since(start).Seconds())
	s.logger.Debug("membership updated", "hosts", hostCount, "keys", len(keys))
}

// buildLocalityMap constructs a fresh locality map from a membership
// snapshot. It does not touch shared state and acquires no locks; the
// caller swaps the result in under mu.
func (s *Scheduler) buildLocalityMap(view types.MembershipView) (map[string]*hostGroup, []string, int) {
	groups := make(map[string]*hostGroup, len(view.Members))
	hostCount := 0

	for _, member := range view.Members {
		if member.Host.Addr == "" {
			s.logger.Warn("skipping membership entry with no usable address", "port", member.Host.Port)
			s.metrics.RecordMalformedMember()

			continue
		}

		addrs := make([]string, 0, len(member.LocalAddrs))
		for _, addr := range member.LocalAddrs {
			if addr != "" {
				addrs = append(addrs, addr)
			}
		}
		if len(addrs) == 0 {
			// No explicit locality; the host is local for its own address.
			addrs = append(addrs, member.Host.Addr)
		}

		for _, addr := range addrs {
			g, ok := groups[addr]
			if !ok {
				g = &hostGroup{}
				groups[addr] = g
			}
			g.hosts = append(g.hosts, member.Host)
		}
		hostCount++
	}

	// Keys must be literal addresses matching the storage layer's data
	// location strings; sorting them gives the round-robin cursor a
	// deterministic iteration order across rebuilds.
	keys := make([]string, 0, len(groups))
	for key := range groups {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	return groups, keys, hostCount
}

// GetHosts assigns an execution host to each data location in the batch.
//
// The result has one host per input location, in input order. A location
// whose address matches a locality map key is assigned one of that key's
// hosts, rotating among them so repeated lookups for the same address
// spread load across co-located hosts. A location with no local host is
// assigned via the global round-robin cursor across all map keys,
// spreading non-local work fairly over the whole cluster.
//
// Parameters:
//   - locations: Data locations to assign, one host chosen per entry
//
// Returns:
//   - []types.Host: Chosen hosts, same order and count as locations
//   - error: ErrNoHostsAvailable when no execution hosts are known; the
//     whole batch fails and no partial results are returned
func (s *Scheduler) GetHosts(locations []types.DataLocation) ([]types.Host, error) {
	s.mu.Lock()
	hosts, local, err := s.assignLocked(locations)
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	s.metrics.RecordAssignments(len(hosts), local)

	return hosts, nil
}

// GetHost assigns an execution host to a single data location.
//
// Semantically equivalent to GetHosts with a one-element batch, with the
// same error condition and the same side effects on the shared cursors
// and counters.
//
// Parameters:
//   - location: Data location to assign
//
// Returns:
//   - types.Host: Chosen host
//   - error: ErrNoHostsAvailable when no execution hosts are known
func (s *Scheduler) GetHost(location types.DataLocation) (types.Host, error) {
	hosts, err := s.GetHosts([]types.DataLocation{location})
	if err != nil {
		return types.Host{}, err
	}

	return hosts[0], nil
}

// assignLocked performs the batch assignment under mu and returns the
// chosen hosts together with the number of local hits.
func (s *Scheduler) assignLocked(locations []types.DataLocation) ([]types.Host, int, error) {
	if len(s.keys) == 0 {
		return nil, 0, ErrNoHostsAvailable
	}

	hosts := make([]types.Host, 0, len(locations))
	local := 0

	for _, loc := range locations {
		if g, ok := s.groups[loc.Addr]; ok && len(g.hosts) > 0 {
			h := g.hosts[g.next]
			g.next = (g.next + 1) % len(g.hosts)
			hosts = append(hosts, h)
			s.totalAssignments++
			s.localAssignments++
			local++

			continue
		}

		h, ok := s.nextNonlocalLocked()
		if !ok {
			return nil, 0, ErrNoHostsAvailable
		}
		hosts = append(hosts, h)
		s.totalAssignments++
	}

	return hosts, local, nil
}

// nextNonlocalLocked returns the first host of the key under the global
// round-robin cursor and advances the cursor, skipping keys whose
// sequence is empty. Reports false when no key has any host.
func (s *Scheduler) nextNonlocalLocked() (types.Host, bool) {
	for range s.keys {
		g := s.groups[s.keys[s.nextKey]]
		s.nextKey = (s.nextKey + 1) % len(s.keys)
		if len(g.hosts) > 0 {
			return g.hosts[0], true
		}
	}

	return types.Host{}, false
}

// HasLocalHost reports whether the locality map currently has an entry
// for the location's address.
//
// This checks key presence only, not sequence non-emptiness, matching
// the lookup the storage layer cares about: "is this address known to
// the cluster at all". The assignment path additionally requires a
// non-empty sequence for a local hit.
//
// Parameters:
//   - location: Data location to check
//
// Returns:
//   - bool: true iff the address key exists in the map
func (s *Scheduler) HasLocalHost(location types.DataLocation) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.groups[location.Addr]

	return ok
}

// GetAllKnownHosts returns every execution host across every key of the
// locality map, for diagnostic and administrative use.
//
// A host local for multiple addresses appears once per key. Ordering
// follows the map's key order at call time.
//
// Returns:
//   - []types.Host: Flattened host sequences across all keys
func (s *Scheduler) GetAllKnownHosts() []types.Host {
	s.mu.Lock()
	defer s.mu.Unlock()

	hosts := make([]types.Host, 0, len(s.keys))
	for _, key := range s.keys {
		hosts = append(hosts, s.groups[key].hosts...)
	}

	return hosts
}

// Stats returns a snapshot of the scheduler's locality counters.
//
// Counters are observational only; they never affect assignment.
//
// Returns:
//   - Stats: Current counter and map size snapshot
func (s *Scheduler) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Stats{
		TotalAssignments: s.totalAssignments,
		LocalAssignments: s.localAssignments,
		KnownHosts:       s.hostCount,
		LocalityKeys:     len(s.keys),
	}
}
