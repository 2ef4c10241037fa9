package distance_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphalgo/core"
	"github.com/katalvlaran/graphalgo/distance"
	"github.com/katalvlaran/graphalgo/sssp"
)

// star builds an unweighted star graph: center 0 connected to leaves 1,2,3.
func star(r *require.Assertions) *core.IndexGraph {
	g := core.NewUndirected()
	g.AddVertices(4)
	for _, leaf := range []int{1, 2, 3} {
		_, err := g.AddEdge(0, leaf)
		r.NoError(err)
	}

	return g
}

func TestStarMeasures(t *testing.T) {
	r := require.New(t)
	g := star(r)
	table, err := sssp.AllPairsBFS(g)
	r.NoError(err)
	m := distance.NewMeasures(table)

	r.Equal(1.0, m.Eccentricity(0))
	r.Equal(2.0, m.Eccentricity(1))
	r.Equal(1.0, m.Radius())
	r.Equal(2.0, m.Diameter())
	r.Equal([]int{0}, m.Center())
	r.ElementsMatch([]int{1, 2, 3}, m.Periphery())
}

func TestDisconnectedInfiniteEccentricity(t *testing.T) {
	r := require.New(t)
	g := core.NewUndirected()
	g.AddVertices(2)
	table, err := sssp.AllPairsBFS(g)
	r.NoError(err)
	m := distance.NewMeasures(table)

	r.True(math.IsInf(m.Eccentricity(0), 1))
	r.True(math.IsInf(m.Radius(), 1))
	r.True(math.IsInf(m.Diameter(), 1))
	r.ElementsMatch([]int{0, 1}, m.Center())
}
