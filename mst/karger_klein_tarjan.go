package mst

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/graphalgo/core"
)

// KargerKleinTarjan computes a minimum spanning forest with the randomized
// linear-expected-time algorithm (spec §4.5): run two rounds of Borůvka,
// producing a partial forest F0 and a smaller contracted graph G0; take a
// random half subgraph G1 of G0; recursively compute its MST F1; keep only
// the G0 edges that are "light" with respect to F1 (not the heaviest edge
// on their F1 tree path), and recurse on those light edges only. rng, if
// non-nil, drives the random sampling step; a nil rng falls back to a
// fixed-seed default source.
func KargerKleinTarjan(g *core.IndexGraph, w Weight, rng *rand.Rand) (*Result, error) {
	if err := checkUndirected(g); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}

	edges, err := kktRecurse(g, w, rng)
	if err != nil {
		return nil, err
	}

	return newResult(edges, w), nil
}

// kktRecurse returns a minimum spanning forest of g, in terms of g's own
// edge indices.
func kktRecurse(g *core.IndexGraph, w Weight, rng *rand.Rand) ([]int, error) {
	if g.NumEdges() == 0 || g.NumVertices() <= 1 {
		return nil, nil
	}

	f0, g0, _, origOfEdge, err := boruvkaCore(g, w, 2)
	if err != nil {
		return nil, err
	}
	if g0.NumEdges() == 0 || g0.NumVertices() <= 1 {
		return f0, nil
	}
	w0 := func(e0 int) float64 { return w(origOfEdge[e0]) }

	g1, g1Orig, err := randomHalfSubgraph(g0, rng)
	if err != nil {
		return nil, err
	}
	w1 := func(e1 int) float64 { return w0(g1Orig[e1]) }

	f1InG1, err := kktRecurse(g1, w1, rng)
	if err != nil {
		return nil, err
	}
	f1InG0 := make([]int, len(f1InG1))
	for i, e1 := range f1InG1 {
		f1InG0[i] = g1Orig[e1]
	}

	maxima := treePathMaxima(g0, f1InG0, w0)
	treeSet := make(map[int]bool, len(f1InG0))
	for _, e0 := range f1InG0 {
		treeSet[e0] = true
	}

	light := make([]int, 0, g0.NumEdges())
	for _, e0 := range g0.Edges() {
		if treeSet[e0] {
			light = append(light, e0)

			continue
		}
		u, v, err := g0.EdgeEndpoints(e0)
		if err != nil {
			return nil, err
		}
		if w0(e0) < maxima(u, v) {
			light = append(light, e0)
		}
	}

	sub, subOrig, err := inducedSubgraph(g0, light)
	if err != nil {
		return nil, err
	}
	wsub := func(es int) float64 { return w0(subOrig[es]) }

	lightMST, err := kktRecurse(sub, wsub, rng)
	if err != nil {
		return nil, err
	}

	result := make([]int, 0, len(f0)+len(lightMST))
	result = append(result, f0...)
	for _, es := range lightMST {
		result = append(result, origOfEdge[subOrig[es]])
	}

	return result, nil
}

// randomHalfSubgraph returns a copy of g0 over the same vertex set,
// keeping each edge independently with probability 1/2, plus a map from
// the copy's edge indices back to g0's.
func randomHalfSubgraph(g0 *core.IndexGraph, rng *rand.Rand) (*core.IndexGraph, []int, error) {
	keep := make([]int, 0, g0.NumEdges()/2+1)
	for _, e := range g0.Edges() {
		if rng.Intn(2) == 0 {
			keep = append(keep, e)
		}
	}

	return inducedSubgraph(g0, keep)
}

// inducedSubgraph returns a copy of g0 restricted to the given g0 edge
// indices, over the same vertex set, plus a map from the copy's edge
// indices back to g0's.
func inducedSubgraph(g0 *core.IndexGraph, keep []int) (*core.IndexGraph, []int, error) {
	h := core.NewUndirected(core.WithParallelEdges(), core.WithSelfLoops())
	h.AddVertices(g0.NumVertices())
	origOf := make([]int, 0, len(keep))
	for _, e := range keep {
		u, v, err := g0.EdgeEndpoints(e)
		if err != nil {
			return nil, nil, err
		}
		if _, err := h.AddEdge(u, v); err != nil {
			return nil, nil, err
		}
		origOf = append(origOf, e)
	}

	return h, origOf, nil
}

// treePathMaxima returns a function giving, for any (u, v) connected by the
// forest formed by treeEdges (g0 edge indices), the maximum w0-weight edge
// on the tree path between u and v, or +Inf if u and v are not connected by
// treeEdges (so an edge joining two trees always counts as light). Implemented as a direct per-query DFS: simple and correct,
// not the linear-total-time offline oracle of the original algorithm.
func treePathMaxima(g0 *core.IndexGraph, treeEdges []int, w0 Weight) func(u, v int) float64 {
	n := g0.NumVertices()
	type neighbor struct {
		to int
		e  int
	}
	adj := make([][]neighbor, n)
	for _, e := range treeEdges {
		u, v, err := g0.EdgeEndpoints(e)
		if err != nil {
			continue
		}
		adj[u] = append(adj[u], neighbor{to: v, e: e})
		adj[v] = append(adj[v], neighbor{to: u, e: e})
	}

	return func(u, v int) float64 {
		visited := make([]bool, n)
		best := math.Inf(1)
		var dfs func(cur int, acc float64) (float64, bool)
		dfs = func(cur int, acc float64) (float64, bool) {
			if cur == v {
				return acc, true
			}
			visited[cur] = true
			for _, nb := range adj[cur] {
				if visited[nb.to] {
					continue
				}
				next := acc
				if ew := w0(nb.e); ew > next {
					next = ew
				}
				if r, ok := dfs(nb.to, next); ok {
					return r, true
				}
			}

			return 0, false
		}
		if r, ok := dfs(u, 0); ok {
			best = r
		}

		return best
	}
}
