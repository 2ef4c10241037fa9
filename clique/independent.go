package clique

import "github.com/katalvlaran/graphalgo/core"

// Complement builds the complement of an undirected simple graph g: same
// vertex set, an edge between u and v (u != v) iff g has none.
func Complement(g *core.IndexGraph) (*core.IndexGraph, error) {
	n := g.NumVertices()
	present := make(map[[2]int]bool, g.NumEdges())
	for _, e := range g.Edges() {
		u, v, err := g.EdgeEndpoints(e)
		if err != nil {
			return nil, err
		}
		if u > v {
			u, v = v, u
		}
		present[[2]int{u, v}] = true
	}

	c := core.NewUndirected()
	c.AddVertices(n)
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			if present[[2]int{u, v}] {
				continue
			}
			if _, err := c.AddEdge(u, v); err != nil {
				return nil, err
			}
		}
	}

	return c, nil
}

// NewIndependentSetIterator enumerates g's maximal independent sets by
// running maximal-clique enumeration over g's complement (spec §4.8).
func NewIndependentSetIterator(g *core.IndexGraph) (*Iterator, error) {
	comp, err := Complement(g)
	if err != nil {
		return nil, err
	}

	return NewIterator(comp)
}
