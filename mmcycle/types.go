package mmcycle

import (
	"errors"

	"github.com/katalvlaran/graphalgo/core"
	"github.com/katalvlaran/graphalgo/gpath"
)

// ErrDirectedGraphRequired indicates an mmcycle algorithm was called on an
// undirected graph; mean-cycle weight is only meaningful for directed
// graphs (spec §4.9).
var ErrDirectedGraphRequired = errors.New("mmcycle: directed graph required")

// Weight yields the weight of edge e; both algorithms require finite
// weights (spec §4.9).
type Weight func(e int) float64

// Result is a cycle of minimum mean weight found in g, or nil if g is
// acyclic.
type Result struct {
	cycle *gpath.Path
	mean  float64
}

// Cycle returns the witnessing minimum-mean cycle.
func (r *Result) Cycle() *gpath.Path { return r.cycle }

// Mean returns the cycle's total weight divided by its edge count.
func (r *Result) Mean() float64 { return r.mean }

func checkDirected(g *core.IndexGraph) error {
	if !g.Directed() {
		return ErrDirectedGraphRequired
	}

	return nil
}
