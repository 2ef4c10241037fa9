package gpath

import (
	"github.com/katalvlaran/graphalgo/containers"
	"github.com/katalvlaran/graphalgo/core"
)

// FindPath runs BFS from s, reconstructing a shortest (fewest-edges) path to
// t via a parent-edge array (spec §4.3). Returns (nil, nil) if t is
// unreachable from s.
func FindPath(g *core.IndexGraph, s, t int) (*Path, error) {
	if !g.HasVertex(s) || !g.HasVertex(t) {
		return nil, nil
	}
	n := g.NumVertices()
	visited := containers.NewBitSet(n)
	parentEdge := make([]int, n)
	parentVertex := make([]int, n)

	q := containers.NewIntQueue(n)
	visited.Add(s)
	q.Push(s)
	found := s == t
	for !q.Empty() && !found {
		u := q.Pop()
		out, err := g.OutEdges(u)
		if err != nil {
			return nil, err
		}
		for _, e := range out {
			v, err := g.EdgeEndpoint(e, u)
			if err != nil {
				return nil, err
			}
			if !visited.Add(v) {
				continue
			}
			parentEdge[v] = e
			parentVertex[v] = u
			if v == t {
				found = true

				break
			}
			q.Push(v)
		}
	}
	if !visited.Contains(t) {
		return nil, nil
	}

	// Walk parent pointers from t back to s, then reverse.
	var edges []int
	cur := t
	for cur != s {
		edges = append(edges, parentEdge[cur])
		cur = parentVertex[cur]
	}
	for i, j := 0, len(edges)-1; i < j; i, j = i+1, j-1 {
		edges[i], edges[j] = edges[j], edges[i]
	}

	return New(g, s, t, edges), nil
}

// ReachableVertices performs a multi-source BFS from sources, returning
// every vertex reachable from any of them (including the sources
// themselves) as a BitSet visit-set (spec §4.3).
func ReachableVertices(g *core.IndexGraph, sources []int) (*containers.BitSet, error) {
	n := g.NumVertices()
	visited := containers.NewBitSet(n)
	q := containers.NewIntQueue(n)
	for _, s := range sources {
		if !g.HasVertex(s) {
			continue
		}
		if visited.Add(s) {
			q.Push(s)
		}
	}
	for !q.Empty() {
		u := q.Pop()
		out, err := g.OutEdges(u)
		if err != nil {
			return nil, err
		}
		for _, e := range out {
			v, err := g.EdgeEndpoint(e, u)
			if err != nil {
				return nil, err
			}
			if visited.Add(v) {
				q.Push(v)
			}
		}
	}

	return visited, nil
}
