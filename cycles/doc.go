// Package cycles enumerates elementary (simple) cycles of a directed
// core.IndexGraph via two algorithms sharing one contract (spec §4.7):
// Tarjan's marked-stack DFS and Johnson's blocking-set DFS. Both expose an
// Iterator with a Next method yielding one gpath.Path at a time. The search
// itself is not lazy: each constructor runs it to completion, and Next
// hands out the cycles already found.
// Grounded on the teacher's dfs package's marked-stack cycle detector
// (dfs/cycle.go), generalized from "detect one cycle" to "enumerate every
// elementary cycle".
package cycles
