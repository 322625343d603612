package metrics

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/placer/types"
)

func TestNopMetrics_ImplementsInterface(t *testing.T) {
	var collector types.MetricsCollector = NewNop()
	require.NotNil(t, collector)
}

func TestNopMetrics_MethodsDoNotPanic(t *testing.T) {
	n := NewNop()

	require.NotPanics(t, func() {
		n.RecordAssignments(10, 7)
		n.SetInitialized(true)
		n.SetInitialized(false)
		n.RecordMembershipUpdate(0.001)
		n.RecordMalformedMember()
		n.RecordSnapshotDropped()
		n.SetKnownHosts(3)
		n.SetLocalityKeys(2)
	})
}
