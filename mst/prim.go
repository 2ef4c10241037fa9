package mst

import (
	"github.com/katalvlaran/graphalgo/containers"
	"github.com/katalvlaran/graphalgo/core"
)

// Prim computes a minimum spanning forest by growing a tree from each
// unvisited vertex in turn, using a binary min-heap of candidate edges
// keyed by weight (spec §4.5). Disconnected graphs produce one tree per
// component, so the overall result is a forest. Complexity: O(m log m).
func Prim(g *core.IndexGraph, w Weight) (*Result, error) {
	if err := checkUndirected(g); err != nil {
		return nil, err
	}

	n := g.NumVertices()
	visited := containers.NewBitSet(n)
	accepted := make([]int, 0, n)

	for root := 0; root < n; root++ {
		if visited.Contains(root) {
			continue
		}
		visited.Add(root)

		h := containers.NewHeap(w)
		pushFrontier := func(v int) error {
			out, err := g.OutEdges(v)
			if err != nil {
				return err
			}
			for _, e := range out {
				other, err := g.EdgeEndpoint(e, v)
				if err != nil {
					return err
				}
				if other == v || visited.Contains(other) {
					continue
				}
				if !h.Contains(e) {
					h.Push(e)
				}
			}

			return nil
		}
		if err := pushFrontier(root); err != nil {
			return nil, err
		}

		for !h.Empty() {
			e := h.Pop()
			src, dst, err := g.EdgeEndpoints(e)
			if err != nil {
				return nil, err
			}
			next := dst
			if visited.Contains(dst) {
				next = src
			}
			if visited.Contains(next) {
				continue
			}
			visited.Add(next)
			accepted = append(accepted, e)
			if err := pushFrontier(next); err != nil {
				return nil, err
			}
		}
	}

	return newResult(accepted, w), nil
}
