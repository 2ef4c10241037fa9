// Package mst computes minimum spanning forests of undirected, weighted
// core.IndexGraphs (spec §4.5): Kruskal, Borůvka (plus a secondary
// contraction entry point consumed by Karger-Klein-Tarjan), Yao,
// Fredman-Tarjan, and the randomized Karger-Klein-Tarjan algorithm.
// Grounded on the teacher's prim_kruskal package's union-find-driven
// Kruskal loop and heap-driven Prim loop, retargeted from string-keyed
// *core.Graph to dense-index *core.IndexGraph plus an explicit edge-weight
// function, and extended with the remaining catalog entries which the
// teacher does not implement.
package mst
