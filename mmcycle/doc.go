// Package mmcycle finds a cycle of minimum mean weight (total weight divided
// by edge count) in a directed graph, or reports the graph is acyclic (spec
// §4.9). Two independent implementations are provided, Howard's policy
// iteration and the Dasdan-Gupta/Karp shortest-walk formula; both restrict
// their search to one strongly connected component at a time (grounded on
// partition.VertexPartition) since a minimum mean cycle can only lie inside
// a single component, and return the lightest cycle found across all
// components.
package mmcycle
