package mst

import (
	"github.com/katalvlaran/graphalgo/containers"
	"github.com/katalvlaran/graphalgo/core"
)

// Boruvka computes a minimum spanning forest by repeated rounds of
// "cheapest outgoing edge per component" until no further contraction
// occurs (spec §4.5). Complexity: O(m log n).
func Boruvka(g *core.IndexGraph, w Weight) (*Result, error) {
	edges, _, _, _, err := boruvkaCore(g, w, 0)
	if err != nil {
		return nil, err
	}

	return newResult(edges, w), nil
}

// BoruvkaContract runs the same rounds as Boruvka but, instead of the
// accepted edge set, returns the final contracted graph, the vertex-to-super-vertex map, and a map from each
// contracted edge index back to the original edge it was built from (so a
// caller can still look up weights on the contracted graph) — the
// secondary entry point spec §4.5 calls out as consumed by
// Karger-Klein-Tarjan.
func BoruvkaContract(g *core.IndexGraph, w Weight) (contracted *core.IndexGraph, vertexMap, origOfEdge []int, err error) {
	_, contracted, vertexMap, origOfEdge, err = boruvkaCore(g, w, 0)

	return contracted, vertexMap, origOfEdge, err
}

// boruvkaCore runs up to maxRounds rounds of Borůvka (0 means run to
// convergence) and returns the accepted original-edge set, the contracted
// multigraph after those rounds (vertices = surviving components), the map
// from original vertex index to super-vertex index, and a parallel map
// from each contracted edge index to the original edge it came from.
func boruvkaCore(g *core.IndexGraph, w Weight, maxRounds int) ([]int, *core.IndexGraph, []int, []int, error) {
	if err := checkUndirected(g); err != nil {
		return nil, nil, nil, nil, err
	}

	n := g.NumVertices()
	uf := containers.NewUnionFind(n)
	accepted := make([]int, 0, n)

	for round := 0; maxRounds == 0 || round < maxRounds; round++ {
		cheapest := make(map[int]int) // component root -> best edge index
		changed := false
		for _, e := range g.Edges() {
			u, v, err := g.EdgeEndpoints(e)
			if err != nil {
				return nil, nil, nil, nil, err
			}
			if u == v {
				continue
			}
			ru, rv := uf.Find(u), uf.Find(v)
			if ru == rv {
				continue
			}
			if best, ok := cheapest[ru]; !ok || w(e) < w(best) {
				cheapest[ru] = e
			}
			if best, ok := cheapest[rv]; !ok || w(e) < w(best) {
				cheapest[rv] = e
			}
		}
		if len(cheapest) == 0 {
			break
		}

		seen := make(map[int]bool, len(cheapest))
		for _, e := range cheapest {
			if seen[e] {
				continue
			}
			seen[e] = true
			u, v, _ := g.EdgeEndpoints(e)
			if uf.Union(u, v) {
				accepted = append(accepted, e)
				changed = true
			}
		}
		if !changed {
			break
		}
	}

	// Build the contracted graph: one vertex per surviving component.
	vertexMap := make([]int, n)
	superOf := make(map[int]int)
	for v := 0; v < n; v++ {
		root := uf.Find(v)
		sv, ok := superOf[root]
		if !ok {
			sv = len(superOf)
			superOf[root] = sv
		}
		vertexMap[v] = sv
	}

	contracted := core.NewUndirected(core.WithParallelEdges(), core.WithSelfLoops())
	contracted.AddVertices(len(superOf))
	origOfEdge := make([]int, 0, len(g.Edges()))
	for _, e := range g.Edges() {
		u, v, err := g.EdgeEndpoints(e)
		if err != nil {
			return nil, nil, nil, nil, err
		}
		su, sv := vertexMap[u], vertexMap[v]
		if su == sv {
			continue
		}
		if _, err := contracted.AddEdge(su, sv); err != nil {
			return nil, nil, nil, nil, err
		}
		origOfEdge = append(origOfEdge, e)
	}

	return accepted, contracted, vertexMap, origOfEdge, nil
}
