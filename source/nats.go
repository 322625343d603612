package source

import (
	"encoding/json"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/nats-io/nats.go"
	"github.com/puzpuzpuz/xsync/v4"

	"github.com/arloliu/placer/internal/logging"
	"github.com/arloliu/placer/internal/metrics"
	"github.com/arloliu/placer/types"
)

// NATS implements types.MembershipSource over core NATS pub/sub.
//
// The cluster's membership service publishes complete MembershipView
// snapshots as JSON on "<SubjectPrefix>.<serviceID>". The subscription
// handler only decodes and enqueues; a dedicated goroutine per
// registration delivers snapshots to the callback, so at most one
// update is in flight per registration and a slow callback never blocks
// the NATS client.
//
// Snapshots are full state, never deltas. When deliveries back up, the
// oldest pending snapshot is dropped in favor of the newest.
type NATS struct {
	conn    *nats.Conn
	cfg     Config
	logger  types.Logger
	metrics types.MembershipMetrics

	nextID atomic.Uint64
	regs   *xsync.Map[uint64, *registration]
}

// Compile-time assertion that NATS implements MembershipSource.
var _ types.MembershipSource = (*NATS)(nil)

// registration tracks one callback subscribed to a service's snapshots.
type registration struct {
	sub   *nats.Subscription
	views chan types.MembershipView
	done  chan struct{}
	wg    sync.WaitGroup
}

// NewNATS creates a new NATS-backed membership source.
//
// Parameters:
//   - conn: NATS connection (borrowed; the source never closes it)
//   - cfg: Source configuration; zero values are filled with defaults
//   - opts: Optional logger and metrics
//
// Returns:
//   - *NATS: Initialized membership source
//   - error: ErrConnectionRequired or a configuration validation error
//
// Example:
//
//	feed, err := source.NewNATS(nc, source.DefaultConfig())
//	if err != nil { /* handle */ }
//	sched, err := placer.New(placer.DynamicMembership{ServiceID: "query-exec", Feed: feed})
func NewNATS(conn *nats.Conn, cfg Config, opts ...Option) (*NATS, error) {
	if conn == nil {
		return nil, ErrConnectionRequired
	}

	SetDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	options := &sourceOptions{}
	for _, opt := range opts {
		opt(options)
	}

	loggerInstance := options.logger
	if loggerInstance == nil {
		loggerInstance = logging.NewNop()
	}

	metricsCollector := options.metrics
	if metricsCollector == nil {
		metricsCollector = metrics.NewNop()
	}

	return &NATS{
		conn:    conn,
		cfg:     cfg,
		logger:  loggerInstance,
		metrics: metricsCollector,
		regs:    xsync.NewMap[uint64, *registration](),
	}, nil
}

// Register subscribes the callback to membership snapshots for the
// given service identifier.
//
// Parameters:
//   - serviceID: Service whose membership should be observed
//   - cb: Callback invoked with each decoded snapshot
//
// Returns:
//   - types.SubscriptionID: Handle for Unregister
//   - error: Subscription failure or argument validation error
func (n *NATS) Register(serviceID string, cb types.UpdateCallback) (types.SubscriptionID, error) {
	if serviceID == "" {
		return 0, ErrServiceIDRequired
	}
	if cb == nil {
		return 0, ErrCallbackRequired
	}

	r := &registration{
		views: make(chan types.MembershipView, n.cfg.QueueSize),
		done:  make(chan struct{}),
	}

	subject := n.cfg.SubjectPrefix + "." + serviceID
	sub, err := n.conn.Subscribe(subject, func(msg *nats.Msg) {
		n.handleSnapshot(r, subject, msg.Data)
	})
	if err != nil {
		return 0, fmt.Errorf("failed to subscribe to %s: %w", subject, err)
	}
	r.sub = sub

	r.wg.Add(1)
	go n.deliver(r, cb)

	id := n.nextID.Add(1)
	n.regs.Store(id, r)
	n.logger.Debug("registered membership subscription", "subject", subject, "subscriptionID", id)

	return types.SubscriptionID(id), nil
}

// Unregister cancels a registration and waits for in-flight callback
// delivery to finish. Unregistering an unknown or already-cancelled
// handle is not an error.
//
// Parameters:
//   - id: Handle returned by Register
//
// Returns:
//   - error: Unsubscribe failure from the NATS client
func (n *NATS) Unregister(id types.SubscriptionID) error {
	r, ok := n.regs.LoadAndDelete(uint64(id))
	if !ok {
		return nil
	}

	err := r.sub.Unsubscribe()
	close(r.done)
	r.wg.Wait()

	if err != nil {
		return fmt.Errorf("failed to unsubscribe: %w", err)
	}

	return nil
}

// handleSnapshot decodes one published snapshot and enqueues it for
// delivery. Runs on the NATS client's message dispatch goroutine, so it
// must never block.
func (n *NATS) handleSnapshot(r *registration, subject string, data []byte) {
	var view types.MembershipView
	if err := json.Unmarshal(data, &view); err != nil {
		n.logger.Warn("discarding undecodable membership snapshot", "subject", subject, "error", err)

		return
	}

	select {
	case r.views <- view:
	default:
		// Buffer full: drop the oldest pending snapshot so the newest
		// view wins. Messages on one subscription are dispatched
		// serially, so there is no competing producer.
		select {
		case <-r.views:
			n.metrics.RecordSnapshotDropped()
			n.logger.Warn("dropped stale membership snapshot", "subject", subject)
		default:
		}
		select {
		case r.views <- view:
		default:
		}
	}
}

// deliver drains decoded snapshots to the callback, one at a time.
func (n *NATS) deliver(r *registration, cb types.UpdateCallback) {
	defer r.wg.Done()

	for {
		select {
		case <-r.done:
			return
		case view := <-r.views:
			cb(view)
		}
	}
}
