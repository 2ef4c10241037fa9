package gpath_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphalgo/core"
	"github.com/katalvlaran/graphalgo/gpath"
)

func chain(r *require.Assertions) (*core.IndexGraph, []int) {
	g := core.NewUndirected()
	g.AddVertices(4)
	e0, err := g.AddEdge(0, 1)
	r.NoError(err)
	e1, err := g.AddEdge(1, 2)
	r.NoError(err)
	e2, err := g.AddEdge(2, 3)
	r.NoError(err)

	return g, []int{e0, e1, e2}
}

func TestFindPathReconstructsChain(t *testing.T) {
	r := require.New(t)
	g, edges := chain(r)

	p, err := gpath.FindPath(g, 0, 3)
	r.NoError(err)
	r.NotNil(p)
	r.Equal(edges, p.Edges())

	vs, err := p.Vertices()
	r.NoError(err)
	r.Equal([]int{0, 1, 2, 3}, vs)

	simple, err := p.IsSimple()
	r.NoError(err)
	r.True(simple)
}

func TestFindPathUnreachable(t *testing.T) {
	r := require.New(t)
	g, _ := chain(r)
	g.AddVertex() // vertex 4, isolated

	p, err := gpath.FindPath(g, 0, 4)
	r.NoError(err)
	r.Nil(p)
}

func TestFindPathSameVertex(t *testing.T) {
	r := require.New(t)
	g, _ := chain(r)

	p, err := gpath.FindPath(g, 2, 2)
	r.NoError(err)
	r.NotNil(p)
	r.Empty(p.Edges())
}

func TestReachableVertices(t *testing.T) {
	r := require.New(t)
	g, _ := chain(r)
	g.AddVertex() // vertex 4, isolated

	reach, err := gpath.ReachableVertices(g, []int{0})
	r.NoError(err)
	r.True(reach.Contains(0))
	r.True(reach.Contains(1))
	r.True(reach.Contains(2))
	r.True(reach.Contains(3))
	r.False(reach.Contains(4))
}

func TestReachableVerticesMultiSource(t *testing.T) {
	r := require.New(t)
	g := core.NewDirected()
	g.AddVertices(4)
	_, err := g.AddEdge(0, 1)
	r.NoError(err)
	_, err = g.AddEdge(2, 3)
	r.NoError(err)

	reach, err := gpath.ReachableVertices(g, []int{0, 2})
	r.NoError(err)
	r.Equal(4, reach.Size())
}
