// Package graphgen builds common graph topologies (cycle, path, star, wheel,
// complete, grid, random-sparse) directly against a *core.IndexGraph.
//
// Adapted from the teacher's builder package: the same Constructor closure
// shape and BuildGraph orchestrator (resolve functional options once, apply
// each constructor to the graph in order, wrap the first error with its
// call-site context), retargeted from the teacher's string-keyed
// *core.Graph to the dense-index *core.IndexGraph. The teacher's idFn
// indirection (vertex IDs are an arbitrary string scheme) has no
// counterpart here: IndexGraph vertices are already the dense integers
// 0..n-1, so constructors add vertices via AddVertices and use the
// resulting indices directly. Weighting is no longer a graph-mode flag
// baked into core (the teacher's core.Graph.Weighted()); callers pass an
// optional weights.Dense[float64] and constructors fill it in alongside
// topology when non-nil, leaving the graph purely structural otherwise.
package graphgen
