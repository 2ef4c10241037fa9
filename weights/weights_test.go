package weights_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphalgo/core"
	"github.com/katalvlaran/graphalgo/weights"
)

func TestDenseEdgeWeightsReindex(t *testing.T) {
	r := require.New(t)
	g := core.NewUndirected()
	g.AddVertices(4)
	e0, _ := g.AddEdge(0, 1)
	e1, _ := g.AddEdge(1, 2)
	e2, _ := g.AddEdge(2, 3)

	w := weights.NewDenseEdgeWeights[float64](g, 0)
	w.Set(e0, 1.5)
	w.Set(e1, 2.5)
	w.Set(e2, 3.5)

	r.NoError(g.RemoveEdge(e0)) // e2 (last) swaps into e0's slot
	r.Equal(3.5, w.Get(e0))
	r.Equal(2.5, w.Get(e1))
	r.Equal(2, w.Len())
}

func TestWeightSum(t *testing.T) {
	r := require.New(t)
	g := core.NewUndirected()
	g.AddVertices(3)
	e0, _ := g.AddEdge(0, 1)
	e1, _ := g.AddEdge(1, 2)

	w := weights.NewDenseEdgeWeights[int64](g, 0)
	w.Set(e0, 3)
	w.Set(e1, 4)

	r.Equal(int64(7), weights.Sum[int64](w, []int{e0, e1}))
}

func TestRegistry(t *testing.T) {
	r := require.New(t)
	g := core.NewUndirected()
	g.AddVertices(2)
	reg := weights.NewRegistry(g)
	weights.AddVerticesWeights[string](reg, "label", "")

	got, err := weights.GetVerticesWeights[string](reg, "label")
	r.NoError(err)
	got.Set(0, "alpha")
	r.Equal("alpha", got.Get(0))

	_, err = weights.GetVerticesWeights[int](reg, "label")
	r.Error(err)

	_, err = weights.GetVerticesWeights[string](reg, "missing")
	r.ErrorIs(err, weights.ErrUnknownKey)
}
