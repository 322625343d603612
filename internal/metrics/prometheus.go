package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/arloliu/placer/types"
)

// PrometheusCollector implements types.MetricsCollector backed by Prometheus.
//
// It exposes the scheduler's locality counters (total and local assignments),
// the initialized flag, and membership rebuild instrumentation.
type PrometheusCollector struct {
	reg       prometheus.Registerer
	namespace string
	once      sync.Once

	// Scheduler metrics
	assignmentsTotal      prometheus.Counter
	localAssignmentsTotal prometheus.Counter
	initializedGauge      prometheus.Gauge

	// Membership metrics
	updateDuration         prometheus.Histogram
	malformedMembersTotal  prometheus.Counter
	droppedSnapshotsTotal  prometheus.Counter
	knownHostsGauge        prometheus.Gauge
	localityKeysGauge      prometheus.Gauge
	membershipUpdatesTotal prometheus.Counter
}

// Compile-time assertion that PrometheusCollector implements MetricsCollector.
var _ types.MetricsCollector = (*PrometheusCollector)(nil)

// NewPrometheus creates a new Prometheus-backed metrics collector.
//
// Parameters:
//   - reg: Prometheus registerer interface (uses prometheus.DefaultRegisterer if nil)
//   - namespace: Prometheus metrics namespace (defaults to "placer" if empty)
//
// Returns:
//   - *PrometheusCollector: A MetricsCollector implementation using Prometheus
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = "placer"
	}

	return &PrometheusCollector{reg: reg, namespace: namespace}
}

func (p *PrometheusCollector) ensureRegistered() {
	p.once.Do(func() {
		p.assignmentsTotal = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "scheduler",
			Name:      "assignments_total",
			Help:      "Total host assignments made.",
		})

		p.localAssignmentsTotal = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "scheduler",
			Name:      "local_assignments_total",
			Help:      "Total assignments satisfied by a data-local host.",
		})

		p.initializedGauge = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "scheduler",
			Name:      "initialized",
			Help:      "Scheduler initialization status (1=initialized,0=not).",
		})

		p.updateDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "membership",
			Name:      "update_duration_seconds",
			Help:      "Locality map rebuild duration in seconds.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 12), // 0.1ms .. ~0.4s
		})

		p.malformedMembersTotal = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "membership",
			Name:      "malformed_members_total",
			Help:      "Membership entries skipped for carrying no usable address.",
		})

		p.droppedSnapshotsTotal = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "membership",
			Name:      "dropped_snapshots_total",
			Help:      "Pending snapshots superseded before delivery.",
		})

		p.knownHostsGauge = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "membership",
			Name:      "known_hosts",
			Help:      "Current number of known execution hosts.",
		})

		p.localityKeysGauge = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "membership",
			Name:      "locality_keys",
			Help:      "Current number of locality map keys.",
		})

		p.membershipUpdatesTotal = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "membership",
			Name:      "updates_total",
			Help:      "Total membership views applied.",
		})

		p.reg.MustRegister(p.assignmentsTotal)
		p.reg.MustRegister(p.localAssignmentsTotal)
		p.reg.MustRegister(p.initializedGauge)
		p.reg.MustRegister(p.updateDuration)
		p.reg.MustRegister(p.malformedMembersTotal)
		p.reg.MustRegister(p.droppedSnapshotsTotal)
		p.reg.MustRegister(p.knownHostsGauge)
		p.reg.MustRegister(p.localityKeysGauge)
		p.reg.MustRegister(p.membershipUpdatesTotal)
	})
}

// SchedulerMetrics implementation

// RecordAssignments records a completed assignment batch.
func (p *PrometheusCollector) RecordAssignments(total, local int) {
	p.ensureRegistered()
	p.assignmentsTotal.Add(float64(total))
	p.localAssignmentsTotal.Add(float64(local))
}

// SetInitialized sets the initialized gauge (1 ready, 0 not).
func (p *PrometheusCollector) SetInitialized(ready bool) {
	p.ensureRegistered()
	if ready {
		p.initializedGauge.Set(1)
	} else {
		p.initializedGauge.Set(0)
	}
}

// MembershipMetrics implementation

// RecordMembershipUpdate observes a locality map rebuild duration.
func (p *PrometheusCollector) RecordMembershipUpdate(duration float64) {
	p.ensureRegistered()
	p.membershipUpdatesTotal.Inc()
	p.updateDuration.Observe(duration)
}

// RecordMalformedMember increments the skipped member counter.
func (p *PrometheusCollector) RecordMalformedMember() {
	p.ensureRegistered()
	p.malformedMembersTotal.Inc()
}

// RecordSnapshotDropped increments the dropped snapshot counter.
func (p *PrometheusCollector) RecordSnapshotDropped() {
	p.ensureRegistered()
	p.droppedSnapshotsTotal.Inc()
}

// SetKnownHosts sets the known hosts gauge.
func (p *PrometheusCollector) SetKnownHosts(count int) {
	p.ensureRegistered()
	p.knownHostsGauge.Set(float64(count))
}

// SetLocalityKeys sets the locality keys gauge.
func (p *PrometheusCollector) SetLocalityKeys(count int) {
	p.ensureRegistered()
	p.localityKeysGauge.Set(float64(count))
}
