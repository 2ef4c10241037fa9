package sssp

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/graphalgo/containers"
	"github.com/katalvlaran/graphalgo/core"
)

// ErrNegativeWeight indicates Dijkstra detected an edge with weight < 0
// during its upfront pre-scan; Dijkstra's correctness depends on every
// edge weight being non-negative.
var ErrNegativeWeight = errors.New("sssp: negative edge weight")

// Weight yields the weight of edge e; Dijkstra requires w(e) >= 0 for
// every e.
type Weight func(e int) float64

// Dijkstra computes shortest distances from source to every vertex of g
// using a binary min-heap keyed directly by current best distance, with
// Fix-based decrease-key (spec §2 item 7). Fails with ErrNegativeWeight if
// any edge has w(e) < 0, ErrNoSuchVertex if source is out of range.
func Dijkstra(g *core.IndexGraph, w Weight, source int) (*Result, error) {
	if !g.HasVertex(source) {
		return nil, ErrNoSuchVertex
	}
	for _, e := range g.Edges() {
		if w(e) < 0 {
			return nil, fmt.Errorf("%w: edge %d", ErrNegativeWeight, e)
		}
	}

	n := g.NumVertices()
	dist := make([]float64, n)
	parent := make([]int, n)
	for v := range dist {
		dist[v] = math.Inf(1)
		parent[v] = -1
	}
	dist[source] = 0

	done := make([]bool, n)
	h := containers.NewHeap(func(v int) float64 { return dist[v] })
	h.Push(source)

	for !h.Empty() {
		v := h.Pop()
		done[v] = true

		out, err := g.OutEdges(v)
		if err != nil {
			return nil, err
		}
		for _, e := range out {
			u, err := g.EdgeEndpoint(e, v)
			if err != nil {
				return nil, err
			}
			if u == v || done[u] {
				continue
			}
			nd := dist[v] + w(e)
			if nd < dist[u] {
				dist[u] = nd
				parent[u] = e
				if h.Contains(u) {
					h.Fix(u)
				} else {
					h.Push(u)
				}
			}
		}
	}

	return &Result{g: g, Source: source, Dist: dist, Parent: parent}, nil
}
