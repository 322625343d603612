package placer

import "github.com/arloliu/placer/types"

// Re-export types from the internal types package.
//
// This file provides a stable, backward-compatible public API for the library's
// core types and interfaces. It uses type aliases to re-export definitions
// from the `types` subpackage, which contains the actual implementations.
//
// This pattern solves the "import cycle" problem by allowing internal packages
// to depend on `types` without depending on the root `placer` package, while
// still providing a convenient `placer.Host`, `placer.Logger`, etc. for users.
type (
	Host           = types.Host
	DataLocation   = types.DataLocation
	Member         = types.Member
	MembershipView = types.MembershipView
	SubscriptionID = types.SubscriptionID
	UpdateCallback = types.UpdateCallback
)

// Re-export interfaces from the internal types package for convenience.
type (
	MembershipSource = types.MembershipSource
	MetricsCollector = types.MetricsCollector
	Logger           = types.Logger
)
