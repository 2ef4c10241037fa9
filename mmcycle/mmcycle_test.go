package mmcycle_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphalgo/core"
	"github.com/katalvlaran/graphalgo/mmcycle"
)

// A triangle 0->1->2->0 (mean 2) plus a lighter two-cycle 3<->4 (mean 1):
// the minimum mean cycle is the two-cycle.
func twoComponents(r *require.Assertions) (*core.IndexGraph, map[int]float64) {
	g := core.NewDirected()
	g.AddVertices(5)
	weights := make(map[int]float64)
	add := func(u, v int, w float64) {
		idx, err := g.AddEdge(u, v)
		r.NoError(err)
		weights[idx] = w
	}
	add(0, 1, 2)
	add(1, 2, 2)
	add(2, 0, 2)
	add(3, 4, 1)
	add(4, 3, 1)

	return g, weights
}

func TestHowardFindsLighterComponent(t *testing.T) {
	r := require.New(t)
	g, weights := twoComponents(r)
	w := func(e int) float64 { return weights[e] }

	res, err := mmcycle.Howard(g, w)
	r.NoError(err)
	r.NotNil(res)
	r.InDelta(1.0, res.Mean(), 1e-9)
}

func TestDasdanGuptaFindsLighterComponent(t *testing.T) {
	r := require.New(t)
	g, weights := twoComponents(r)
	w := func(e int) float64 { return weights[e] }

	res, err := mmcycle.DasdanGupta(g, w)
	r.NoError(err)
	r.NotNil(res)
	r.InDelta(1.0, res.Mean(), 1e-9)
}

func TestAcyclicGraphYieldsNil(t *testing.T) {
	r := require.New(t)
	g := core.NewDirected()
	g.AddVertices(3)
	_, err := g.AddEdge(0, 1)
	r.NoError(err)
	_, err = g.AddEdge(1, 2)
	r.NoError(err)
	w := func(int) float64 { return 1 }

	res, err := mmcycle.Howard(g, w)
	r.NoError(err)
	r.Nil(res)

	res2, err := mmcycle.DasdanGupta(g, w)
	r.NoError(err)
	r.Nil(res2)
}

func TestUndirectedRejected(t *testing.T) {
	r := require.New(t)
	g := core.NewUndirected()
	g.AddVertices(2)
	_, err := mmcycle.Howard(g, func(int) float64 { return 1 })
	r.ErrorIs(err, mmcycle.ErrDirectedGraphRequired)
}
