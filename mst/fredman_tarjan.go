package mst

import (
	"math"

	"github.com/katalvlaran/graphalgo/containers"
	"github.com/katalvlaran/graphalgo/core"
)

// FredmanTarjan computes a minimum spanning forest by interleaving
// Prim-style tree growth with super-vertex contraction (spec §4.5): each
// pass grows a tree from every not-yet-processed super-vertex using a
// binary heap of candidate out-edges, accepting and contracting as soon as
// an edge reaches outside the current tree; a tree's growth halts once its
// heap has grown past 2^⌈2m/n_i⌉ entries (n_i = number of active
// super-vertices entering the pass), matching the teacher's style of
// explicit numeric stopping thresholds over an otherwise ordinary
// heap-driven growth loop.
func FredmanTarjan(g *core.IndexGraph, w Weight) (*Result, error) {
	if err := checkUndirected(g); err != nil {
		return nil, err
	}

	n := g.NumVertices()
	m := g.NumEdges()
	if n == 0 {
		return newResult(nil, w), nil
	}

	uf := containers.NewUnionFind(n)
	accepted := make([]int, 0, n)

	frontierOf := func(sv int) ([]int, error) {
		var out []int
		for v := 0; v < n; v++ {
			if uf.Find(v) != sv {
				continue
			}
			es, err := g.OutEdges(v)
			if err != nil {
				return nil, err
			}
			for _, e := range es {
				u, vv, _ := g.EdgeEndpoints(e)
				if u == vv {
					continue
				}
				out = append(out, e)
			}
		}

		return out, nil
	}

	for {
		active := make(map[int]bool)
		for v := 0; v < n; v++ {
			active[uf.Find(v)] = true
		}
		if len(active) <= 1 {
			break
		}
		nActive := len(active)
		bound := int(math.Ceil(2 * float64(m) / float64(nActive)))
		if bound < 0 {
			bound = 0
		}
		threshold := 1 << uint(bound)

		processed := make(map[int]bool, len(active))
		changedThisPass := false

		for root := range active {
			curRoot := root
			if processed[uf.Find(curRoot)] {
				continue
			}

			h := containers.NewHeap(w)
			push := func(sv int) error {
				frontier, err := frontierOf(sv)
				if err != nil {
					return err
				}
				for _, e := range frontier {
					if !h.Contains(e) {
						h.Push(e)
					}
				}

				return nil
			}
			if err := push(uf.Find(curRoot)); err != nil {
				return nil, err
			}

			for !h.Empty() && h.Len() <= threshold {
				e := h.Pop()
				u, v, err := g.EdgeEndpoints(e)
				if err != nil {
					return nil, err
				}
				ru, rv := uf.Find(u), uf.Find(v)
				if ru == rv {
					continue
				}
				accepted = append(accepted, e)
				uf.Union(ru, rv)
				changedThisPass = true
				if err := push(uf.Find(u)); err != nil {
					return nil, err
				}
			}
			processed[uf.Find(curRoot)] = true
		}

		if !changedThisPass {
			break
		}
	}

	return newResult(accepted, w), nil
}
