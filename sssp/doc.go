// Package sssp computes single-source shortest-path distances over a
// core.IndexGraph: unweighted BFS distances and Dijkstra for non-negative
// edge weights, plus an all-pairs table built by repeated Dijkstra runs.
// distance (spec §4.11) builds its eccentricity table on top of this
// package's AllPairs. Grounded on the teacher's dijkstra package's
// lazy-decrease-key heap loop and upfront negative-weight pre-scan,
// retargeted from string-keyed *core.Graph to dense-index *core.IndexGraph.
package sssp
