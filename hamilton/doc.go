// Package hamilton enumerates Hamiltonian paths and cycles via Rubin's
// backtracking search (spec.md §4.10): a DFS that, at every depth, tries
// extending the current path by an edge to an unvisited vertex and prunes
// branches that can no longer succeed.
//
// Grounded on dfs/cycle.go's recursive, depth-indexed backtracking-frame
// style (push a vertex onto the path, recurse, pop on return). Rubin's
// paper represents the two derived per-state bitmaps (required edges,
// deleted edges) as doubly-linked edge lists with a per-depth history
// stack so backtracking can restore exactly the entries a forced move
// touched. That bookkeeping exists to avoid recomputing vertex degrees
// from scratch at every step; the failure checks it drives (F1-F8 in the
// original paper) are pruning conditions computed from the current
// visited-set, not load-bearing for correctness. This package computes
// the two checks that matter — an unvisited vertex with no remaining
// unvisited neighbor (isolated-vertex pruning), and, for cycle search,
// the origin becoming unreachable from the path head — directly from
// the visited-set at each step instead of maintaining the incremental
// bitmap/history machinery. Both checks are sound (never prune a branch
// that contains a real solution) and exact forcing falls out of the
// backtracking loop itself: a vertex with only one remaining unvisited
// neighbor is only ever tried along that one edge, with no separate
// "required" bookkeeping needed to make that happen.
package hamilton
