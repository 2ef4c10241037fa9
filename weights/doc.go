// Package weights implements the vertex/edge weight containers of spec §4.5:
// sparse and dense maps from a core.IndexGraph vertex or edge index to a
// value of fixed type, living in index space and re-indexing themselves on
// every structural edit by registering as a core.RemovalListener. No teacher
// package has a direct analog (lvlath/core bakes a single int64 Weight field
// into its Edge struct); this is grounded on that same "weight rides along
// with the index space" idea, generalized via Go generics to any value type
// and lifted out of the edge struct into a standalone, swap-remove-aware
// container per spec's component 5.
package weights
