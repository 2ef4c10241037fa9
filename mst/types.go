package mst

import (
	"errors"

	"github.com/katalvlaran/graphalgo/core"
)

// ErrDirectedGraphRejected indicates an MST algorithm was called on a
// directed graph; spec §4.5 restricts the whole family to undirected
// graphs.
var ErrDirectedGraphRejected = errors.New("mst: directed graph rejected")

// Weight yields the weight of edge e. All mst algorithms treat it as a
// pure function of e for the duration of one call.
type Weight func(e int) float64

// Result is the immutable output of an MST algorithm: the edge set of a
// minimum-weight spanning forest of g (spec §4.5).
type Result struct {
	edges       []int
	totalWeight float64
}

// Edges returns the forest's edge set. The caller must not mutate it.
func (r *Result) Edges() []int { return r.edges }

// TotalWeight returns the sum of w(e) over Edges().
func (r *Result) TotalWeight() float64 { return r.totalWeight }

func newResult(edges []int, w Weight) *Result {
	total := 0.0
	for _, e := range edges {
		total += w(e)
	}

	return &Result{edges: edges, totalWeight: total}
}

func checkUndirected(g *core.IndexGraph) error {
	if g.Directed() {
		return ErrDirectedGraphRejected
	}

	return nil
}
