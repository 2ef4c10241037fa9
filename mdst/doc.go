// Package mdst computes a minimum-weight arborescence (minimum directed
// spanning tree) rooted at a given vertex, via Tarjan's contraction
// algorithm for Edmonds' optimum-branching problem (spec §4.6). Grounded on
// the teacher's mst package's heap-of-edges idiom, generalized to directed
// graphs with cycle contraction instead of plain union-find merging.
package mdst
