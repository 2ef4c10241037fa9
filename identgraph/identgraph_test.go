package identgraph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphalgo/identgraph"
	"github.com/katalvlaran/graphalgo/idmap"
)

func TestIdentityBijectionLive(t *testing.T) {
	r := require.New(t)
	g := identgraph.NewUndirected[string, string]()
	_, err := g.AddVertex("A")
	r.NoError(err)
	_, err = g.AddVertex("B")
	r.NoError(err)
	_, err = g.AddVertex("C")
	r.NoError(err)

	_, err = g.AddEdge("A", "B", "e1")
	r.NoError(err)
	_, err = g.AddEdge("B", "C", "e2")
	r.NoError(err)

	out, err := g.OutEdges("B")
	r.NoError(err)
	r.ElementsMatch([]string{"e1", "e2"}, out)

	// Removing A should remove e1 and leave B's view live/up to date.
	r.NoError(g.RemoveVertex("A"))
	out, err = g.OutEdges("B")
	r.NoError(err)
	r.Equal([]string{"e2"}, out)

	_, err = g.AddVertex("C")
	r.ErrorIs(err, idmap.ErrDuplicateIdentifier)
}

func TestAddEdgeUnknownVertex(t *testing.T) {
	r := require.New(t)
	g := identgraph.NewDirected[int, int]()
	_, err := g.AddVertex(1)
	r.NoError(err)
	_, err = g.AddEdge(1, 2, 100)
	r.ErrorIs(err, identgraph.ErrNoSuchVertex)
}
