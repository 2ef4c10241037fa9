// Package containers implements the primitive containers the algorithms
// catalog is built on: a dense bitmap, a bitmap-backed set with popcount,
// an immutable small-int-set, a FIFO int queue, a min-heap keyed by an
// external weight function, and two union-find variants (plain and
// reference-counted value-bearing). None of these know about graphs; they
// are pure integer-indexed data structures, grounded on the union-find in
// gonum.org/v1/gonum/graph/topo/disjoint.go generalized from map-of-pointers
// to slice-of-ints for the dense index space core.IndexGraph provides.
package containers
