// Package core implements the dense index graph: the substrate every
// algorithm in this module runs on.
//
// What
//
//   - A directed or undirected graph over a compact vertex range {0..n-1}
//     and edge range {0..m-1}; no holes ever appear in either range.
//   - Self-loops and parallel edges are permitted only when the graph was
//     constructed with WithSelfLoops / WithParallelEdges.
//   - Vertex and edge removal swap-remove the last index into the freed
//     slot in O(1) amortized time and fire a removal listener so that
//     dependent containers (weights, the identity mapping) can follow suit.
//
// Why
//
//   - Dense contiguous indices let every algorithm in this module use plain
//     slices ([]bool, []float64, [][]int) instead of hash maps, which is
//     the whole performance case for separating the index graph from the
//     caller-facing identity graph (see package identgraph).
//
// Concurrency
//
//	IndexGraph guards its vertex table and its edge/adjacency table with two
//	independent sync.RWMutex locks (muVert, muEdgeAdj), so two goroutines may
//	read concurrently and algorithms over read-only graphs never contend with
//	each other. Graph mutation concurrent with algorithm execution is not a
//	supported usage (spec §5): a single IndexGraph instance is meant to be
//	driven by one algorithm at a time, but const query methods remain safe
//	to call from multiple goroutines at once.
package core
