package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHost_String(t *testing.T) {
	require.Equal(t, "10.0.0.1:21000", Host{Addr: "10.0.0.1", Port: 21000}.String())
	require.Equal(t, "[::1]:21000", Host{Addr: "::1", Port: 21000}.String())
}

func TestHost_Compare(t *testing.T) {
	a := Host{Addr: "10.0.0.1", Port: 21000}
	b := Host{Addr: "10.0.0.2", Port: 21000}
	c := Host{Addr: "10.0.0.1", Port: 21001}

	require.Equal(t, 0, a.Compare(a))
	require.Equal(t, -1, a.Compare(b))
	require.Equal(t, 1, b.Compare(a))
	require.Equal(t, -1, a.Compare(c))
	require.Equal(t, 1, c.Compare(a))
}

func TestDataLocation_String(t *testing.T) {
	require.Equal(t, "10.0.0.1:50010", DataLocation{Addr: "10.0.0.1", Port: 50010}.String())
}

func TestMembershipView_JSONRoundTrip(t *testing.T) {
	// The snapshot wire format carried by the membership feed.
	view := MembershipView{Members: []Member{
		{Host: Host{Addr: "10.0.0.1", Port: 21000}},
		{Host: Host{Addr: "10.0.0.2", Port: 21000}, LocalAddrs: []string{"10.0.0.2", "10.0.0.5"}},
	}}

	data, err := json.Marshal(view)
	require.NoError(t, err)

	var decoded MembershipView
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, view, decoded)
}
