// Package gpath implements the Path abstraction of spec §4.3 over a
// core.IndexGraph, plus the BFS-based FindPath and ReachableVertices
// operations. The cycles and hamilton packages emit their results as
// Paths; distance measures (via package sssp) and cycle enumeration compute
// reachability with their own routines, not with these two. Grounded on
// lvlath/bfs's BFSResult.PathTo parent-edge reconstruction, generalized from
// a vertex-ID parent map to an edge-index parent array so undirected and
// directed graphs share one reconstruction routine.
package gpath
