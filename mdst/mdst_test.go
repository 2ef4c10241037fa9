package mdst_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphalgo/core"
	"github.com/katalvlaran/graphalgo/mdst"
)

// Vertices {0,1,2}; edges (0,1) w=1, (0,2) w=1, (1,2) w=5, (2,1) w=5. Root 0.
func threeNode(r *require.Assertions) (*core.IndexGraph, map[int]float64) {
	g := core.NewDirected()
	g.AddVertices(3)
	weights := make(map[int]float64)
	edges := []struct {
		u, v int
		w    float64
	}{
		{0, 1, 1},
		{0, 2, 1},
		{1, 2, 5},
		{2, 1, 5},
	}
	for _, e := range edges {
		idx, err := g.AddEdge(e.u, e.v)
		r.NoError(err)
		weights[idx] = e.w
	}

	return g, weights
}

func TestTarjanThreeNode(t *testing.T) {
	r := require.New(t)
	g, weights := threeNode(r)
	w := func(e int) float64 { return weights[e] }

	res, err := mdst.Tarjan(g, w, 0)
	r.NoError(err)
	r.Equal(2.0, res.TotalWeight())
	r.Len(res.Edges(), 2)

	for _, e := range res.Edges() {
		u, v, err := g.EdgeEndpoints(e)
		r.NoError(err)
		r.Equal(0, u)
		r.Contains([]int{1, 2}, v)
	}
}

func TestTarjanUndirectedRejected(t *testing.T) {
	r := require.New(t)
	g := core.NewUndirected()
	g.AddVertices(2)
	_, err := mdst.Tarjan(g, func(int) float64 { return 1 }, 0)
	r.ErrorIs(err, mdst.ErrDirectedGraphRequired)
}

func TestTarjanNoSuchRoot(t *testing.T) {
	r := require.New(t)
	g := core.NewDirected()
	g.AddVertices(2)
	_, err := mdst.Tarjan(g, func(int) float64 { return 1 }, 5)
	r.ErrorIs(err, mdst.ErrNoSuchVertex)
}

// A 2-cycle 1<->2 that root 0 enters only through the heavier edge 0->1,
// plus vertex 3 reached only through the expensive edge 0->3: the
// arborescence must break the cycle at the edge entering 1 (keeping 1->2)
// and still take 0->3.
func TestTarjanCycleContraction(t *testing.T) {
	r := require.New(t)
	g := core.NewDirected()
	g.AddVertices(4)
	weights := make(map[int]float64)
	add := func(u, v int, w float64) {
		idx, err := g.AddEdge(u, v)
		r.NoError(err)
		weights[idx] = w
	}
	add(0, 1, 10) // only path from root into the cycle
	add(1, 2, 1)
	add(2, 1, 1)
	add(0, 3, 100) // the only edge into 3

	wfn := func(e int) float64 { return weights[e] }
	res, err := mdst.Tarjan(g, wfn, 0)
	r.NoError(err)
	r.Len(res.Edges(), 3)
	r.Equal(10.0+1.0+100.0, res.TotalWeight())
}
