package cycles_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphalgo/core"
	"github.com/katalvlaran/graphalgo/cycles"
	"github.com/katalvlaran/graphalgo/gpath"
)

// Two elementary cycles: {0,1,2} and {2,3}.
func twoCycles(r *require.Assertions) *core.IndexGraph {
	g := core.NewDirected()
	g.AddVertices(4)
	edges := [][2]int{{0, 1}, {1, 2}, {2, 0}, {2, 3}, {3, 2}}
	for _, e := range edges {
		_, err := g.AddEdge(e[0], e[1])
		r.NoError(err)
	}

	return g
}

func vertexSets(r *require.Assertions, paths []*gpath.Path) [][]int {
	out := make([][]int, len(paths))
	for i, p := range paths {
		vs, err := p.Vertices()
		r.NoError(err)
		vs = append([]int(nil), vs...)
		if len(vs) > 1 && vs[0] == vs[len(vs)-1] {
			vs = vs[:len(vs)-1]
		}
		sort.Ints(vs)
		out[i] = vs
	}
	sort.Slice(out, func(i, j int) bool {
		if len(out[i]) != len(out[j]) {
			return len(out[i]) < len(out[j])
		}
		for k := range out[i] {
			if out[i][k] != out[j][k] {
				return out[i][k] < out[j][k]
			}
		}

		return false
	})

	return out
}

func TestTarjanFindsBothCycles(t *testing.T) {
	r := require.New(t)
	g := twoCycles(r)
	it, err := cycles.NewTarjanIterator(g)
	r.NoError(err)
	all := it.All()
	r.Len(all, 2)
	got := vertexSets(r, all)
	want := [][]int{{2, 3}, {0, 1, 2}}
	r.Equal(want, got)
}

func TestJohnsonFindsBothCycles(t *testing.T) {
	r := require.New(t)
	g := twoCycles(r)
	it, err := cycles.NewJohnsonIterator(g)
	r.NoError(err)
	all := it.All()
	r.Len(all, 2)
	got := vertexSets(r, all)
	want := [][]int{{2, 3}, {0, 1, 2}}
	r.Equal(want, got)
}

func TestTarjanParallelEdgesRejected(t *testing.T) {
	r := require.New(t)
	g := core.NewDirected(core.WithParallelEdges())
	g.AddVertices(2)
	_, err := g.AddEdge(0, 1)
	r.NoError(err)
	_, err = g.AddEdge(0, 1)
	r.NoError(err)
	_, err = cycles.NewTarjanIterator(g)
	r.ErrorIs(err, cycles.ErrParallelEdgesRejected)
}

func TestJohnsonParallelEdgesRejected(t *testing.T) {
	r := require.New(t)
	g := core.NewDirected(core.WithParallelEdges())
	g.AddVertices(2)
	_, err := g.AddEdge(0, 1)
	r.NoError(err)
	_, err = g.AddEdge(0, 1)
	r.NoError(err)
	_, err = cycles.NewJohnsonIterator(g)
	r.ErrorIs(err, cycles.ErrParallelEdgesRejected)
}

func TestNoCyclesYieldsEmpty(t *testing.T) {
	r := require.New(t)
	g := core.NewDirected()
	g.AddVertices(3)
	_, err := g.AddEdge(0, 1)
	r.NoError(err)
	_, err = g.AddEdge(1, 2)
	r.NoError(err)

	it, err := cycles.NewTarjanIterator(g)
	r.NoError(err)
	r.Empty(it.All())

	it2, err := cycles.NewJohnsonIterator(g)
	r.NoError(err)
	r.Empty(it2.All())
}
