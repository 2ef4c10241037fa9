package hamilton_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphalgo/core"
	"github.com/katalvlaran/graphalgo/hamilton"
)

// An undirected 4-cycle: 0-1-2-3-0.
func square(r *require.Assertions) *core.IndexGraph {
	g := core.NewUndirected()
	g.AddVertices(4)
	for _, e := range [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}} {
		_, err := g.AddEdge(e[0], e[1])
		r.NoError(err)
	}

	return g
}

func TestCycleIteratorFindsSquareCycleOnce(t *testing.T) {
	r := require.New(t)
	g := square(r)
	it, err := hamilton.NewCycleIterator(g, 0)
	r.NoError(err)
	all := it.All()
	r.Len(all, 1)
	vs, err := all[0].Vertices()
	r.NoError(err)
	r.Len(vs, 5)
	r.Equal(0, vs[0])
	r.Equal(0, vs[len(vs)-1])
}

func TestPathIteratorFindsBothDirections(t *testing.T) {
	r := require.New(t)
	g := square(r)
	it, err := hamilton.NewPathIterator(g, 0)
	r.NoError(err)
	all := it.All()
	r.Len(all, 2)
	for _, p := range all {
		vs, err := p.Vertices()
		r.NoError(err)
		r.Len(vs, 4)
		r.Equal(0, vs[0])
	}
}

func TestDirectedTriangleCycle(t *testing.T) {
	r := require.New(t)
	g := core.NewDirected()
	g.AddVertices(3)
	for _, e := range [][2]int{{0, 1}, {1, 2}, {2, 0}} {
		_, err := g.AddEdge(e[0], e[1])
		r.NoError(err)
	}

	it, err := hamilton.NewCycleIterator(g, 0)
	r.NoError(err)
	all := it.All()
	r.Len(all, 1)
}

func TestNoHamiltonianCycleYieldsEmpty(t *testing.T) {
	r := require.New(t)
	g := core.NewUndirected()
	g.AddVertices(4)
	for _, e := range [][2]int{{0, 1}, {1, 2}, {2, 3}} {
		_, err := g.AddEdge(e[0], e[1])
		r.NoError(err)
	}

	it, err := hamilton.NewCycleIterator(g, 0)
	r.NoError(err)
	r.Empty(it.All())

	pit, err := hamilton.NewPathIterator(g, 0)
	r.NoError(err)
	r.Len(pit.All(), 1)
}

func TestNoSuchVertex(t *testing.T) {
	r := require.New(t)
	g := square(r)
	_, err := hamilton.NewPathIterator(g, 9)
	r.ErrorIs(err, hamilton.ErrNoSuchVertex)
}
