package sssp

import (
	"math"

	"github.com/katalvlaran/graphalgo/containers"
	"github.com/katalvlaran/graphalgo/core"
)

// BFS computes unweighted shortest-path distances (edge counts) from
// source to every vertex of g via breadth-first search, grounded on the
// teacher's bfs package's BFSResult.PathTo parent-edge reconstruction.
func BFS(g *core.IndexGraph, source int) (*Result, error) {
	if !g.HasVertex(source) {
		return nil, ErrNoSuchVertex
	}

	n := g.NumVertices()
	dist := make([]float64, n)
	parent := make([]int, n)
	for v := range dist {
		dist[v] = math.Inf(1)
		parent[v] = -1
	}
	dist[source] = 0

	q := containers.NewIntQueue(n)
	q.Push(source)
	for !q.Empty() {
		v := q.Pop()
		out, err := g.OutEdges(v)
		if err != nil {
			return nil, err
		}
		for _, e := range out {
			u, err := g.EdgeEndpoint(e, v)
			if err != nil {
				return nil, err
			}
			if u == v || !math.IsInf(dist[u], 1) {
				continue
			}
			dist[u] = dist[v] + 1
			parent[u] = e
			q.Push(u)
		}
	}

	return &Result{g: g, Source: source, Dist: dist, Parent: parent}, nil
}
