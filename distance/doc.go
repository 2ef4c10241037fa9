// Package distance computes eccentricity, radius, diameter, center, and
// periphery over an all-pairs shortest-path table (spec §4.11), grounded
// on the teacher's matrix package's Floyd-Warshall all-pairs routine
// generalized to consume a sssp.AllPairsTable instead of owning its own
// dense matrix storage.
package distance
