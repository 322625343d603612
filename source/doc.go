// Package source provides built-in membership feed implementations.
//
// Membership feeds deliver complete snapshots of the known execution
// hosts to registered callbacks. The package includes:
//
//   - NATS: Snapshots published as JSON on a NATS subject per service
//   - Manual: In-process feed driven by the caller, for tests and embedding
//
// Custom feeds can be implemented by satisfying the types.MembershipSource
// interface.
package source
