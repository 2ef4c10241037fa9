// Package partition implements the VertexPartition abstraction of spec
// §4.4: a block index per vertex, plus lazily materialized block-vertex,
// in-block-edge, and cross-block-edge sets. Cross-edge storage switches
// between a dense 2-D table and a hashed block-pair key depending on
// k² vs. 4m, grounded on the teacher's matrix package's own dense-vs-sparse
// storage trade-off (matrix/impl_adjacency.go vs matrix/impl_incidence.go).
package partition
