// Package clique enumerates maximal cliques of an undirected
// core.IndexGraph via Bron-Kerbosch with the Tomita pivot prune
// (spec §4.8), exposed as an explicit tagged-state iterator that advances
// lazily (Design Notes §9): each Next call resumes the search, unlike the
// cycles package's enumerators, which run theirs up front. Independent sets are obtained by running the same iterator
// over the complement graph. Grounded on containers.Bitmap for O(1)
// adjacency tests, the dense-bitmap idiom spec §4.8 calls for explicitly.
package clique
