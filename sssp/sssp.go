package sssp

import (
	"errors"
	"math"

	"github.com/katalvlaran/graphalgo/core"
)

// ErrNoSuchVertex indicates Dijkstra or BFS was asked to start from a
// vertex index outside the graph's current range.
var ErrNoSuchVertex = errors.New("sssp: no such source vertex")

// Result holds per-vertex shortest distances from a single source and a
// parent-edge array for path reconstruction. Dist[v] is math.Inf(1) for an
// unreachable v.
type Result struct {
	g      *core.IndexGraph
	Source int
	Dist   []float64
	Parent []int // Parent[v] is the edge used to reach v, or -1 if v == Source or unreachable
}

// PathTo reconstructs the edge list of the shortest path from Source to v,
// or nil if v is unreachable.
func (r *Result) PathTo(v int) []int {
	if math.IsInf(r.Dist[v], 1) {
		return nil
	}
	var edges []int
	cur := v
	for cur != r.Source {
		e := r.Parent[cur]
		if e < 0 {
			break
		}
		other, err := r.g.EdgeEndpoint(e, cur)
		if err != nil {
			break
		}
		edges = append(edges, e)
		cur = other
	}
	for i, j := 0, len(edges)-1; i < j; i, j = i+1, j-1 {
		edges[i], edges[j] = edges[j], edges[i]
	}

	return edges
}
