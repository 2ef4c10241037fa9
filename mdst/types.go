package mdst

import (
	"errors"

	"github.com/katalvlaran/graphalgo/core"
)

// ErrDirectedGraphRequired indicates Tarjan was called on an undirected
// graph; an arborescence is only meaningful for directed graphs (spec §4.6).
var ErrDirectedGraphRequired = errors.New("mdst: directed graph required")

// ErrNoSuchVertex indicates the root is not a vertex of g.
var ErrNoSuchVertex = errors.New("mdst: no such vertex")

// ErrNoArborescence indicates some vertex reachable from the root ran out
// of candidate incoming edges before the algorithm resolved it. This
// should never happen after the reachable-subgraph restriction and
// strong-connectivity augmentation Tarjan performs internally; surfacing
// it instead of panicking guards against a latent bug rather than hiding one.
var ErrNoArborescence = errors.New("mdst: no arborescence exists")

// Weight yields the weight of edge e.
type Weight func(e int) float64

// Result is the immutable output of Tarjan: the edge set of a minimum-weight
// arborescence rooted at Root, spanning every vertex reachable from Root.
type Result struct {
	root        int
	edges       []int
	totalWeight float64
}

// Root returns the vertex the arborescence is rooted at.
func (r *Result) Root() int { return r.root }

// Edges returns the arborescence's edge set, one per spanned non-root
// vertex. The caller must not mutate it.
func (r *Result) Edges() []int { return r.edges }

// TotalWeight returns the sum of w(e) over Edges().
func (r *Result) TotalWeight() float64 { return r.totalWeight }

func checkDirected(g *core.IndexGraph) error {
	if !g.Directed() {
		return ErrDirectedGraphRequired
	}

	return nil
}
