// Package placer provides a Go library for locality-aware assignment of
// distributed query work to execution hosts.
//
// Placer maps the physical location of each unit of input data to an
// execution host that should process it, preferring a host co-located
// with the data and falling back to fair round-robin assignment when no
// local host is known. It is designed for distributed data-processing
// engines that split work across many machines and want to minimize
// network I/O by routing work to where data already resides.
//
// # Quick Start
//
// Dynamic membership, fed by a NATS-based membership service:
//
//	feed, err := source.NewNATS(natsConn, source.DefaultConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	sched, err := placer.New(placer.DynamicMembership{
//	    ServiceID: "query-exec",
//	    Feed:      feed,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if err := sched.Init(); err != nil {
//	    log.Fatal(err)
//	}
//	defer sched.Close()
//
//	host, err := sched.GetHost(placer.DataLocation{Addr: "10.0.0.2", Port: 50010})
//
// Static membership, with a fixed host list:
//
//	sched, err := placer.New(placer.StaticMembership{
//	    Hosts: []placer.Host{
//	        {Addr: "10.0.0.1", Port: 21000},
//	        {Addr: "10.0.0.2", Port: 21000},
//	    },
//	})
//
// # Key Features
//
//   - Locality Matching: Data locations are matched against literal host
//     addresses reported by the storage layer
//   - Fair Fallback: Non-local work round-robins across the entire
//     cluster; multiple co-located hosts round-robin within their address
//   - Atomic Membership Updates: The locality map is replaced wholesale
//     on each snapshot; assignments never observe a half-applied view
//   - Pluggable Feeds: Any types.MembershipSource can deliver snapshots;
//     NATS and in-process implementations are included
//
// # Scope
//
// Placer does not decide data placement, does not health-check hosts (it
// trusts the membership feed), and does not dispatch work to the chosen
// host. Those concerns belong to the surrounding engine.
package placer
