package mst_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphalgo/core"
	"github.com/katalvlaran/graphalgo/mst"
)

// diamond builds a 4-vertex undirected graph with a unique MST of weight 6:
// edges (0-1:1) (0-2:4) (1-2:2) (1-3:5) (2-3:3).
func diamond(r *require.Assertions) (*core.IndexGraph, mst.Weight) {
	g := core.NewUndirected()
	g.AddVertices(4)
	type we struct {
		u, v int
		w    float64
	}
	spec := []we{{0, 1, 1}, {0, 2, 4}, {1, 2, 2}, {1, 3, 5}, {2, 3, 3}}
	weight := make(map[int]float64)
	for _, s := range spec {
		e, err := g.AddEdge(s.u, s.v)
		r.NoError(err)
		weight[e] = s.w
	}

	return g, func(e int) float64 { return weight[e] }
}

func TestKruskalMinimal(t *testing.T) {
	r := require.New(t)
	g, w := diamond(r)
	res, err := mst.Kruskal(g, w)
	r.NoError(err)
	r.Len(res.Edges(), 3)
	r.InDelta(6.0, res.TotalWeight(), 1e-9)
}

func TestPrimMatchesKruskal(t *testing.T) {
	r := require.New(t)
	g, w := diamond(r)
	kr, err := mst.Kruskal(g, w)
	r.NoError(err)
	pr, err := mst.Prim(g, w)
	r.NoError(err)
	r.InDelta(kr.TotalWeight(), pr.TotalWeight(), 1e-9)
}

func TestBoruvkaMatchesKruskal(t *testing.T) {
	r := require.New(t)
	g, w := diamond(r)
	kr, err := mst.Kruskal(g, w)
	r.NoError(err)
	bo, err := mst.Boruvka(g, w)
	r.NoError(err)
	r.InDelta(kr.TotalWeight(), bo.TotalWeight(), 1e-9)
}

func TestYaoMatchesKruskal(t *testing.T) {
	r := require.New(t)
	g, w := diamond(r)
	kr, err := mst.Kruskal(g, w)
	r.NoError(err)
	yo, err := mst.Yao(g, w)
	r.NoError(err)
	r.InDelta(kr.TotalWeight(), yo.TotalWeight(), 1e-9)
}

func TestFredmanTarjanMatchesKruskal(t *testing.T) {
	r := require.New(t)
	g, w := diamond(r)
	kr, err := mst.Kruskal(g, w)
	r.NoError(err)
	ft, err := mst.FredmanTarjan(g, w)
	r.NoError(err)
	r.InDelta(kr.TotalWeight(), ft.TotalWeight(), 1e-9)
}

func TestKargerKleinTarjanMatchesKruskal(t *testing.T) {
	r := require.New(t)
	g, w := diamond(r)
	kr, err := mst.Kruskal(g, w)
	r.NoError(err)
	kkt, err := mst.KargerKleinTarjan(g, w, nil)
	r.NoError(err)
	r.InDelta(kr.TotalWeight(), kkt.TotalWeight(), 1e-9)
}

func TestDirectedGraphRejected(t *testing.T) {
	r := require.New(t)
	g := core.NewDirected()
	g.AddVertices(2)
	_, err := g.AddEdge(0, 1)
	r.NoError(err)
	w := func(e int) float64 { return 1 }

	_, err = mst.Kruskal(g, w)
	r.ErrorIs(err, mst.ErrDirectedGraphRejected)
}

func TestBoruvkaContract(t *testing.T) {
	r := require.New(t)
	g, w := diamond(r)
	contracted, vmap, origOfEdge, err := mst.BoruvkaContract(g, w)
	r.NoError(err)
	r.Equal(1, contracted.NumVertices()) // diamond is connected, converges to one super-vertex
	r.Len(vmap, 4)
	r.Empty(origOfEdge)
}

func TestDisconnectedProducesForest(t *testing.T) {
	r := require.New(t)
	g := core.NewUndirected()
	g.AddVertices(4)
	_, err := g.AddEdge(0, 1)
	r.NoError(err)
	_, err = g.AddEdge(2, 3)
	r.NoError(err)
	w := func(e int) float64 { return 1 }

	res, err := mst.Kruskal(g, w)
	r.NoError(err)
	r.Len(res.Edges(), 2)
}
