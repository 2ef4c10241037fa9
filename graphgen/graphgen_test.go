package graphgen_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphalgo/core"
	"github.com/katalvlaran/graphalgo/graphgen"
	"github.com/katalvlaran/graphalgo/weights"
)

func TestCycleBuildsRing(t *testing.T) {
	r := require.New(t)
	g := core.NewUndirected()
	w := weights.NewDenseEdgeWeights(g, 0.0)
	err := graphgen.Build(g, w, []graphgen.Option{graphgen.WithWeightFn(func(_ *rand.Rand) float64 { return 2 })}, graphgen.Cycle(4))
	r.NoError(err)
	r.Equal(4, g.NumVertices())
	r.Equal(4, g.NumEdges())
	for _, e := range g.Edges() {
		r.Equal(2.0, w.Get(e))
	}
}

func TestCycleTooFewVertices(t *testing.T) {
	r := require.New(t)
	g := core.NewUndirected()
	err := graphgen.Build(g, nil, nil, graphgen.Cycle(2))
	r.ErrorIs(err, graphgen.ErrTooFewVertices)
}

func TestWheelBuildsRingPlusHub(t *testing.T) {
	r := require.New(t)
	g := core.NewUndirected()
	err := graphgen.Build(g, nil, nil, graphgen.Wheel(5))
	r.NoError(err)
	r.Equal(5, g.NumVertices())
	r.Equal(4+4, g.NumEdges())
}

func TestCompleteK4(t *testing.T) {
	r := require.New(t)
	g := core.NewUndirected()
	err := graphgen.Build(g, nil, nil, graphgen.Complete(4))
	r.NoError(err)
	r.Equal(4, g.NumVertices())
	r.Equal(6, g.NumEdges())
}

func TestGridWiresNeighbors(t *testing.T) {
	r := require.New(t)
	g := core.NewUndirected()
	err := graphgen.Build(g, nil, nil, graphgen.Grid(2, 3))
	r.NoError(err)
	r.Equal(6, g.NumVertices())
	r.Equal(7, g.NumEdges())
}

func TestRandomSparseDeterministicFull(t *testing.T) {
	r := require.New(t)
	g := core.NewUndirected()
	err := graphgen.Build(g, nil, nil, graphgen.RandomSparse(4, 1.0))
	r.NoError(err)
	r.Equal(4, g.NumVertices())
	r.Equal(6, g.NumEdges())
}

func TestRandomSparseNeedsRNG(t *testing.T) {
	r := require.New(t)
	g := core.NewUndirected()
	err := graphgen.Build(g, nil, nil, graphgen.RandomSparse(4, 0.5))
	r.ErrorIs(err, graphgen.ErrNeedRandSource)
}

func TestRandomSparseSeeded(t *testing.T) {
	r := require.New(t)
	g1 := core.NewUndirected()
	err := graphgen.Build(g1, nil, []graphgen.Option{graphgen.WithSeed(42)}, graphgen.RandomSparse(6, 0.5))
	r.NoError(err)

	g2 := core.NewUndirected()
	err = graphgen.Build(g2, nil, []graphgen.Option{graphgen.WithSeed(42)}, graphgen.RandomSparse(6, 0.5))
	r.NoError(err)

	r.Equal(g1.NumEdges(), g2.NumEdges())
}

func TestPathAndStarCompose(t *testing.T) {
	r := require.New(t)
	g := core.NewUndirected()
	err := graphgen.Build(g, nil, nil, graphgen.Path(3), graphgen.Star(2))
	r.NoError(err)
	r.Equal(5, g.NumVertices())
	r.Equal(3, g.NumEdges())
}
