package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphalgo/core"
)

func TestRoundTrip(t *testing.T) {
	r := require.New(t)
	g := core.NewDirected()
	vs := g.AddVertices(4)
	r.Equal([]int{0, 1, 2, 3}, vs)

	e0, err := g.AddEdge(0, 1)
	r.NoError(err)
	e1, err := g.AddEdge(1, 2)
	r.NoError(err)

	src, err := g.EdgeSource(e0)
	r.NoError(err)
	r.Equal(0, src)

	out0, err := g.OutEdges(0)
	r.NoError(err)
	r.Contains(out0, e0)

	in1, err := g.InEdges(1)
	r.NoError(err)
	r.Contains(in1, e0)
	r.NotContains(in1, e1)
}

func TestSelfLoopAndParallelPolicy(t *testing.T) {
	r := require.New(t)
	g := core.NewUndirected()
	_, err := g.AddEdge(0, 0)
	r.ErrorIs(err, core.ErrNoSuchVertex)

	g.AddVertices(2)
	_, err = g.AddEdge(0, 0)
	r.ErrorIs(err, core.ErrSelfLoopForbidden)

	_, err = g.AddEdge(0, 1)
	r.NoError(err)
	_, err = g.AddEdge(0, 1)
	r.ErrorIs(err, core.ErrParallelEdgeForbidden)

	g2 := core.NewUndirected(core.WithSelfLoops(), core.WithParallelEdges())
	g2.AddVertices(1)
	_, err = g2.AddEdge(0, 0)
	r.NoError(err)
	_, err = g2.AddEdge(0, 0)
	r.NoError(err)
}

func TestSwapRemoveStability(t *testing.T) {
	r := require.New(t)
	g := core.NewUndirected()
	g.AddVertices(4) // 0,1,2,3
	// edges: 0-1, 1-2, 2-3, 0-3
	_, err := g.AddEdge(0, 1)
	r.NoError(err)
	e12, err := g.AddEdge(1, 2)
	r.NoError(err)
	e23, err := g.AddEdge(2, 3)
	r.NoError(err)
	_, err = g.AddEdge(0, 3)
	r.NoError(err)

	// Remove vertex 1 (touches edges 0-1 and 1-2).
	r.NoError(g.RemoveVertex(1))
	r.Equal(3, g.NumVertices())

	// Former vertex 3 (last index) now occupies slot 1.
	out1, err := g.OutEdges(1)
	r.NoError(err)
	r.Len(out1, 2) // 2-3 and 0-3, both incident to (former-3, now-1)

	for _, e := range out1 {
		u, v, err := g.EdgeEndpoints(e)
		r.NoError(err)
		r.True(u == 1 || v == 1)
	}

	// Edge indices referring to removed edges must not dangle.
	_ = e12
	_ = e23
	r.Equal(2, g.NumEdges())
}

func TestRemoveEdgeSwap(t *testing.T) {
	r := require.New(t)
	g := core.NewDirected()
	g.AddVertices(3)
	e0, err := g.AddEdge(0, 1)
	r.NoError(err)
	e1, err := g.AddEdge(1, 2)
	r.NoError(err)

	r.NoError(g.RemoveEdge(e0))
	r.Equal(1, g.NumEdges())

	// e1 (the former last edge) now lives at e0's old slot, if it moved.
	src, dst, err := g.EdgeEndpoints(0)
	r.NoError(err)
	r.Equal(1, src)
	r.Equal(2, dst)
	_ = e1
}

func TestMoveEdge(t *testing.T) {
	r := require.New(t)
	g := core.NewDirected()
	g.AddVertices(3)
	e, err := g.AddEdge(0, 1)
	r.NoError(err)

	r.NoError(g.MoveEdge(e, 2, 1))
	src, dst, err := g.EdgeEndpoints(e)
	r.NoError(err)
	r.Equal(2, src)
	r.Equal(1, dst)

	out0, err := g.OutEdges(0)
	r.NoError(err)
	r.Empty(out0)
	out2, err := g.OutEdges(2)
	r.NoError(err)
	r.Contains(out2, e)
}

func TestEdgeEndpointSelfLoop(t *testing.T) {
	r := require.New(t)
	g := core.NewUndirected(core.WithSelfLoops())
	g.AddVertices(1)
	e, err := g.AddEdge(0, 0)
	r.NoError(err)

	other, err := g.EdgeEndpoint(e, 0)
	r.NoError(err)
	r.Equal(0, other)

	_, err = g.EdgeEndpoint(e, 5)
	r.ErrorIs(err, core.ErrNotEndpoint)
}
