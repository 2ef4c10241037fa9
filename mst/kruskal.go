package mst

import (
	"sort"

	"github.com/katalvlaran/graphalgo/containers"
	"github.com/katalvlaran/graphalgo/core"
)

// Kruskal computes a minimum spanning forest by sorting edges ascending by
// weight and accepting an edge iff its endpoints are in different
// union-find classes (spec §4.5). Complexity: O(m log m).
func Kruskal(g *core.IndexGraph, w Weight) (*Result, error) {
	if err := checkUndirected(g); err != nil {
		return nil, err
	}

	edges := g.Edges()
	sorted := append([]int(nil), edges...)
	sort.SliceStable(sorted, func(i, j int) bool { return w(sorted[i]) < w(sorted[j]) })

	uf := containers.NewUnionFind(g.NumVertices())
	accepted := make([]int, 0, g.NumVertices())
	for _, e := range sorted {
		u, v, err := g.EdgeEndpoints(e)
		if err != nil {
			return nil, err
		}
		if u == v {
			continue // self-loop: never part of a spanning forest
		}
		if uf.Union(u, v) {
			accepted = append(accepted, e)
		}
	}

	return newResult(accepted, w), nil
}
