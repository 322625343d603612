// Package types provides core type definitions and interfaces for the Placer library.
//
// This package contains shared types that are used across multiple packages in the
// Placer library. By keeping these types in a separate package, we avoid import cycles
// between the main placer package and its internal implementations.
//
// Key types:
//   - Host: Execution host address (host:port)
//   - DataLocation: Physical source of a unit of input data
//   - MembershipView: Point-in-time snapshot of known execution hosts
//   - MembershipSource: Membership feed subscription interface
//   - Logger: Structured logging interface
//   - MetricsCollector: Metrics recording interface
package types
