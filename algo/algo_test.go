package algo_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphalgo/algo"
	"github.com/katalvlaran/graphalgo/core"
	"github.com/katalvlaran/graphalgo/identgraph"
)

func fourCycle(r *require.Assertions) (*core.IndexGraph, map[int]float64) {
	g := core.NewUndirected()
	g.AddVertices(4)
	w := make(map[int]float64)
	add := func(u, v int, weight float64) {
		e, err := g.AddEdge(u, v)
		r.NoError(err)
		w[e] = weight
	}
	add(0, 1, 1)
	add(1, 2, 2)
	add(2, 3, 3)
	add(3, 0, 4)

	return g, w
}

func TestMSTBuilderUnknownImpl(t *testing.T) {
	r := require.New(t)
	_, err := algo.NewMST(algo.MSTImpl(99))
	r.ErrorIs(err, algo.ErrOptionUnknown)
}

func TestMSTBuilderKruskalMatchesWeight(t *testing.T) {
	r := require.New(t)
	g, w := fourCycle(r)
	b, err := algo.NewMST(algo.MSTKruskal)
	r.NoError(err)
	res, err := b.Compute(g, func(e int) float64 { return w[e] })
	r.NoError(err)
	r.InDelta(6.0, res.TotalWeight(), 1e-9)
}

func TestMSTBuilderKargerKleinTarjanRunsWithDefaultRNG(t *testing.T) {
	r := require.New(t)
	g, w := fourCycle(r)
	b, err := algo.NewMST(algo.MSTKargerKleinTarjan)
	r.NoError(err)
	res, err := b.Compute(g, func(e int) float64 { return w[e] })
	r.NoError(err)
	r.InDelta(6.0, res.TotalWeight(), 1e-9)
}

func TestMeanCycleBuilderUnknownImpl(t *testing.T) {
	r := require.New(t)
	_, err := algo.NewMeanCycle(algo.MeanCycleImpl(99))
	r.ErrorIs(err, algo.ErrOptionUnknown)
}

func TestCycleEnumBuilderUnknownImpl(t *testing.T) {
	r := require.New(t)
	_, err := algo.NewCycleEnum(algo.CycleEnumImpl(99))
	r.ErrorIs(err, algo.ErrOptionUnknown)
}

func TestCycleEnumBuilderTarjanFindsTriangle(t *testing.T) {
	r := require.New(t)
	g := core.NewDirected()
	g.AddVertices(3)
	for _, e := range [][2]int{{0, 1}, {1, 2}, {2, 0}} {
		_, err := g.AddEdge(e[0], e[1])
		r.NoError(err)
	}
	b, err := algo.NewCycleEnum(algo.CycleEnumTarjan)
	r.NoError(err)
	it, err := b.Compute(g)
	r.NoError(err)
	r.Len(it.All(), 1)
}

func TestComputeIdentityMST(t *testing.T) {
	r := require.New(t)
	ig := identgraph.NewUndirected[string, string]()
	for _, v := range []string{"a", "b", "c"} {
		_, err := ig.AddVertex(v)
		r.NoError(err)
	}
	weights := map[string]float64{"ab": 1, "bc": 2, "ca": 3}
	_, err := ig.AddEdge("a", "b", "ab")
	r.NoError(err)
	_, err = ig.AddEdge("b", "c", "bc")
	r.NoError(err)
	_, err = ig.AddEdge("c", "a", "ca")
	r.NoError(err)

	b, err := algo.NewMST(algo.MSTKruskal)
	r.NoError(err)
	res, err := algo.ComputeIdentityMST(b, ig, func(id string) float64 { return weights[id] })
	r.NoError(err)
	r.InDelta(3.0, res.TotalWeight(), 1e-9)
}
