// Package algo is the algorithm façade of spec.md §4.8 and Design Notes §9:
// each algorithm family that has more than one implementation (MST,
// minimum mean cycle, elementary-cycle enumeration) is selected through an
// enumerated implementation option rather than a string-keyed global
// factory registry. An unrecognized selector value fails with
// ErrOptionUnknown at builder-construction time, never silently falling
// back to a default.
//
// Each builder exposes two entry points, per spec §6's "Algorithms" surface:
// a protected-looking Compute that takes a *core.IndexGraph directly
// (exported here since Go has no package-private-to-some-callers
// visibility, but documented as the index-space variant algorithm
// implementations and other façades should call), and a public
// ComputeIdentity* function (ComputeIdentityMST, ComputeIdentityMeanCycle,
// ComputeIdentityCycles) that takes an identgraph.Graph, translates an
// identifier-keyed weight function into index space, and runs Compute over
// g.Index(). Results are returned as computed over the index graph; they
// are not translated back to identifiers.
package algo
