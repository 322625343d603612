package source

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/placer/types"
)

func TestManual_RegisterValidation(t *testing.T) {
	feed := NewManual()

	t.Run("rejects empty service identifier", func(t *testing.T) {
		_, err := feed.Register("", func(types.MembershipView) {})
		require.ErrorIs(t, err, ErrServiceIDRequired)
	})

	t.Run("rejects nil callback", func(t *testing.T) {
		_, err := feed.Register("query-exec", nil)
		require.ErrorIs(t, err, ErrCallbackRequired)
	})
}

func TestManual_PublishDeliversToMatchingRegistrations(t *testing.T) {
	feed := NewManual()

	var gotA, gotB []types.MembershipView
	_, err := feed.Register("service-a", func(v types.MembershipView) { gotA = append(gotA, v) })
	require.NoError(t, err)
	_, err = feed.Register("service-b", func(v types.MembershipView) { gotB = append(gotB, v) })
	require.NoError(t, err)

	view := types.MembershipView{Members: []types.Member{
		{Host: types.Host{Addr: "10.0.0.1", Port: 21000}},
	}}
	feed.Publish("service-a", view)

	require.Len(t, gotA, 1)
	require.Equal(t, view, gotA[0])
	require.Empty(t, gotB)
}

func TestManual_Unregister(t *testing.T) {
	feed := NewManual()

	var calls int
	id, err := feed.Register("query-exec", func(types.MembershipView) { calls++ })
	require.NoError(t, err)
	require.Equal(t, 1, feed.Registrations())

	require.NoError(t, feed.Unregister(id))
	require.Equal(t, 0, feed.Registrations())

	feed.Publish("query-exec", types.MembershipView{})
	require.Zero(t, calls)

	// Unknown or already-cancelled handles are not an error.
	require.NoError(t, feed.Unregister(id))
	require.NoError(t, feed.Unregister(types.SubscriptionID(42)))
}

func TestManual_CallbackCanReenterFeed(t *testing.T) {
	feed := NewManual()

	var id types.SubscriptionID
	var err error
	id, err = feed.Register("query-exec", func(types.MembershipView) {
		// Re-entering the feed from a callback must not deadlock.
		require.NoError(t, feed.Unregister(id))
	})
	require.NoError(t, err)

	feed.Publish("query-exec", types.MembershipView{})
	require.Equal(t, 0, feed.Registrations())
}
