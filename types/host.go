package types

import (
	"net"
	"strconv"
)

// Host identifies an execution host by address and port.
//
// Host is an immutable value type; it is the unit returned by the
// scheduler's assignment operations.
type Host struct {
	// Addr is the host address. For locality matching this must be a
	// literal address (e.g., an IP string), never a resolvable hostname.
	Addr string `json:"addr"`

	// Port is the service port the host accepts work on.
	Port int `json:"port"`
}

// String returns the canonical "addr:port" form of the host.
//
// Returns:
//   - string: net.JoinHostPort rendering, e.g. "10.0.0.1:21000"
func (h Host) String() string {
	return net.JoinHostPort(h.Addr, strconv.Itoa(h.Port))
}

// Compare orders hosts by address first, then port.
//
// Returns:
//   - int: -1 if h < o, 0 if equal, +1 if h > o
func (h Host) Compare(o Host) int {
	if h.Addr != o.Addr {
		if h.Addr < o.Addr {
			return -1
		}

		return 1
	}
	if h.Port == o.Port {
		return 0
	}
	if h.Port < o.Port {
		return -1
	}

	return 1
}

// DataLocation identifies where a unit of input data physically resides.
//
// Only Addr participates in locality matching; the port reported by the
// storage layer is irrelevant for that purpose. Addr must structurally
// match the keys of the scheduler's locality map: literal addresses on
// both sides, or every match silently fails.
type DataLocation struct {
	// Addr is the literal address (typically an IP) of the data's host.
	Addr string `json:"addr"`

	// Port is the storage service port. Ignored for locality matching.
	Port int `json:"port"`
}

// String returns the canonical "addr:port" form of the location.
func (d DataLocation) String() string {
	return net.JoinHostPort(d.Addr, strconv.Itoa(d.Port))
}
