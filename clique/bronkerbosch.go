package clique

import (
	"errors"

	"github.com/katalvlaran/graphalgo/containers"
	"github.com/katalvlaran/graphalgo/core"
)

// ErrDirectedGraphRejected indicates clique enumeration was called on a
// directed graph; maximal-clique search is only defined for undirected
// graphs.
var ErrDirectedGraphRejected = errors.New("clique: directed graph rejected")

// frame is one explicit call-stack entry of the Bron-Kerbosch recursion,
// advanced in place by Iterator.Next (Design Notes §9: iterator state
// machines as explicit tagged-state structs, not goroutines).
type frame struct {
	r       []int // clique accumulated so far
	p       []int // candidates remaining to extend r, in original call order
	x       []int // excluded vertices already explored for this r
	idx     int   // next unprocessed position in p
	checked bool  // whether the Tomita dominating-X prune has been evaluated
	skip    bool  // prune result: true means this whole frame yields nothing
}

// Iterator enumerates the maximal cliques of an undirected graph one at a
// time via Next.
type Iterator struct {
	g     *core.IndexGraph
	adj   []*containers.Bitmap
	stack []*frame
}

// NewIterator builds an Iterator over g's maximal cliques (spec §4.8).
// Fails with ErrDirectedGraphRejected if g is directed.
func NewIterator(g *core.IndexGraph) (*Iterator, error) {
	if g.Directed() {
		return nil, ErrDirectedGraphRejected
	}

	n := g.NumVertices()
	adj := make([]*containers.Bitmap, n)
	for v := 0; v < n; v++ {
		adj[v] = containers.NewBitmap(n)
	}
	for _, e := range g.Edges() {
		u, v, err := g.EdgeEndpoints(e)
		if err != nil {
			return nil, err
		}
		if u == v {
			continue
		}
		adj[u].Set(v)
		adj[v].Set(u)
	}

	p := make([]int, n)
	for v := range p {
		p[v] = v
	}

	it := &Iterator{g: g, adj: adj}
	it.stack = []*frame{{r: nil, p: p, x: nil}}

	return it, nil
}

// dominatesAll reports whether every vertex in p is adjacent to w.
func (it *Iterator) dominatesAll(w int, p []int) bool {
	for _, u := range p {
		if !it.adj[w].Get(u) {
			return false
		}
	}

	return true
}

func intersectAdj(candidates []int, adj *containers.Bitmap) []int {
	out := make([]int, 0, len(candidates))
	for _, c := range candidates {
		if adj.Get(c) {
			out = append(out, c)
		}
	}

	return out
}

// Next advances the search and returns the next maximal clique found, or
// (nil, false) once enumeration is exhausted.
func (it *Iterator) Next() ([]int, bool) {
	for len(it.stack) > 0 {
		top := it.stack[len(it.stack)-1]

		if !top.checked {
			top.checked = true
			for _, w := range top.x {
				if it.dominatesAll(w, top.p) {
					top.skip = true

					break
				}
			}
		}

		if top.skip || top.idx >= len(top.p) {
			it.stack = it.stack[:len(it.stack)-1]

			continue
		}

		v := top.p[top.idx]
		top.idx++

		remainingP := top.p[top.idx:]
		dynamicX := make([]int, 0, len(top.x)+top.idx-1)
		dynamicX = append(dynamicX, top.x...)
		dynamicX = append(dynamicX, top.p[:top.idx-1]...)

		childP := intersectAdj(remainingP, it.adj[v])
		childX := intersectAdj(dynamicX, it.adj[v])

		childR := make([]int, len(top.r)+1)
		copy(childR, top.r)
		childR[len(top.r)] = v

		if len(childP) == 0 && len(childX) == 0 {
			return childR, true
		}

		it.stack = append(it.stack, &frame{r: childR, p: childP, x: childX})
	}

	return nil, false
}

// All drains the iterator into a slice. Provided for callers that do not
// need lazy evaluation; large graphs should prefer Next.
func (it *Iterator) All() [][]int {
	var out [][]int
	for {
		c, ok := it.Next()
		if !ok {
			return out
		}
		out = append(out, c)
	}
}
