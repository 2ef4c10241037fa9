package sssp_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphalgo/core"
	"github.com/katalvlaran/graphalgo/sssp"
)

func line(r *require.Assertions) (*core.IndexGraph, sssp.Weight) {
	g := core.NewUndirected()
	g.AddVertices(4)
	weight := map[int]float64{}
	e0, err := g.AddEdge(0, 1)
	r.NoError(err)
	weight[e0] = 1
	e1, err := g.AddEdge(1, 2)
	r.NoError(err)
	weight[e1] = 2
	e2, err := g.AddEdge(2, 3)
	r.NoError(err)
	weight[e2] = 3

	return g, func(e int) float64 { return weight[e] }
}

func TestDijkstraDistances(t *testing.T) {
	r := require.New(t)
	g, w := line(r)
	res, err := sssp.Dijkstra(g, w, 0)
	r.NoError(err)
	r.Equal(0.0, res.Dist[0])
	r.Equal(1.0, res.Dist[1])
	r.Equal(3.0, res.Dist[2])
	r.Equal(6.0, res.Dist[3])

	path := res.PathTo(3)
	r.Len(path, 3)
}

func TestDijkstraNegativeWeightRejected(t *testing.T) {
	r := require.New(t)
	g, _ := line(r)
	w := func(e int) float64 { return -1 }
	_, err := sssp.Dijkstra(g, w, 0)
	r.ErrorIs(err, sssp.ErrNegativeWeight)
}

func TestBFSUnweighted(t *testing.T) {
	r := require.New(t)
	g, _ := line(r)
	res, err := sssp.BFS(g, 0)
	r.NoError(err)
	r.Equal(0.0, res.Dist[0])
	r.Equal(1.0, res.Dist[1])
	r.Equal(2.0, res.Dist[2])
	r.Equal(3.0, res.Dist[3])
}

func TestBFSUnreachable(t *testing.T) {
	r := require.New(t)
	g, _ := line(r)
	g.AddVertex() // vertex 4, isolated
	res, err := sssp.BFS(g, 0)
	r.NoError(err)
	r.True(math.IsInf(res.Dist[4], 1))
	r.Nil(res.PathTo(4))
}

func TestAllPairsDijkstra(t *testing.T) {
	r := require.New(t)
	g, w := line(r)
	table, err := sssp.AllPairsDijkstra(g, w)
	r.NoError(err)
	r.Equal(6.0, table.Table[0][3])
	r.Equal(6.0, table.Table[3][0])
}
