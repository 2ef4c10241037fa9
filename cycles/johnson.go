package cycles

import (
	"github.com/katalvlaran/graphalgo/core"
	"github.com/katalvlaran/graphalgo/gpath"
)

// NewJohnsonIterator enumerates every elementary cycle of g the same way
// as NewTarjanIterator, restricted per v_start to the strongly connected
// component of v_start in the subgraph induced by vertices >= v_start, and
// using a per-vertex blocking set instead of Tarjan's plain marked-stack
// (spec §4.7): a vertex is blocked on entry; on return without finding a
// cycle through it, it is added to the blocking set of each out-neighbor;
// on return after finding a cycle, it (and transitively everything it
// unblocks) is unblocked. Fails with ErrParallelEdgesRejected if g has
// parallel edges.
func NewJohnsonIterator(g *core.IndexGraph) (*Iterator, error) {
	if err := checkNoParallelEdges(g); err != nil {
		return nil, err
	}

	n := g.NumVertices()
	var queue []*gpath.Path

	for vStart := 0; vStart < n; vStart++ {
		sub, vertexOf, origEdges, err := inducedFrom(g, vStart)
		if err != nil {
			return nil, err
		}
		localStart, ok := vertexOf[vStart]
		if !ok {
			continue
		}

		sccOf, err := stronglyConnectedComponent(sub, localStart)
		if err != nil {
			return nil, err
		}

		blocked := make([]bool, sub.NumVertices())
		blockedBy := make([][]int, sub.NumVertices())

		var unblock func(v int)
		unblock = func(v int) {
			blocked[v] = false
			bs := blockedBy[v]
			blockedBy[v] = nil
			for _, w := range bs {
				if blocked[w] {
					unblock(w)
				}
			}
		}

		var dfs func(v int, path []int) (bool, error)
		dfs = func(v int, path []int) (bool, error) {
			blocked[v] = true
			foundAny := false

			out, err := sub.OutEdges(v)
			if err != nil {
				return false, err
			}
			for _, e := range out {
				u, err := sub.EdgeEndpoint(e, v)
				if err != nil {
					return false, err
				}
				if !sccOf[u] || u == v {
					continue
				}
				origE := origEdges[e]
				if u == localStart {
					full := append(append([]int(nil), path...), origE)
					queue = append(queue, gpath.New(g, vStart, vStart, full))
					foundAny = true

					continue
				}
				if blocked[u] {
					continue
				}
				childPath := make([]int, len(path)+1)
				copy(childPath, path)
				childPath[len(path)] = origE
				found, err := dfs(u, childPath)
				if err != nil {
					return false, err
				}
				if found {
					foundAny = true
				}
			}

			if foundAny {
				unblock(v)
			} else {
				for _, e := range out {
					u, err := sub.EdgeEndpoint(e, v)
					if err != nil {
						continue
					}
					if !sccOf[u] {
						continue
					}
					blockedBy[u] = append(blockedBy[u], v)
				}
			}

			return foundAny, nil
		}

		if _, err := dfs(localStart, nil); err != nil {
			return nil, err
		}
	}

	return &Iterator{queue: queue}, nil
}

// inducedFrom builds the subgraph of g induced by vertices with index >=
// vStart, returning it together with a map from original vertex index to
// local index and a parallel map from each local edge index back to the
// original edge it came from.
func inducedFrom(g *core.IndexGraph, vStart int) (*core.IndexGraph, map[int]int, []int, error) {
	n := g.NumVertices()
	vertexOf := make(map[int]int)
	var locals []int
	for v := vStart; v < n; v++ {
		vertexOf[v] = len(locals)
		locals = append(locals, v)
	}

	sub := core.NewDirected(core.WithSelfLoops())
	sub.AddVertices(len(locals))
	origEdges := make([]int, 0, g.NumEdges())
	for _, e := range g.Edges() {
		u, v, err := g.EdgeEndpoints(e)
		if err != nil {
			return nil, nil, nil, err
		}
		lu, ok1 := vertexOf[u]
		lv, ok2 := vertexOf[v]
		if !ok1 || !ok2 {
			continue
		}
		if _, err := sub.AddEdge(lu, lv); err != nil {
			return nil, nil, nil, err
		}
		origEdges = append(origEdges, e)
	}

	return sub, vertexOf, origEdges, nil
}

// stronglyConnectedComponent returns a membership set for the SCC
// containing start, computed via two BFS/reachability passes (forward and
// on the reverse graph) intersected.
func stronglyConnectedComponent(g *core.IndexGraph, start int) ([]bool, error) {
	fwd, err := reachableSet(g, start, false)
	if err != nil {
		return nil, err
	}
	bwd, err := reachableSet(g, start, true)
	if err != nil {
		return nil, err
	}
	n := g.NumVertices()
	out := make([]bool, n)
	for v := 0; v < n; v++ {
		out[v] = fwd[v] && bwd[v]
	}

	return out, nil
}

func reachableSet(g *core.IndexGraph, start int, reverse bool) ([]bool, error) {
	n := g.NumVertices()
	visited := make([]bool, n)
	visited[start] = true
	stack := []int{start}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		var edges []int
		var err error
		if reverse {
			edges, err = g.InEdges(v)
		} else {
			edges, err = g.OutEdges(v)
		}
		if err != nil {
			return nil, err
		}
		for _, e := range edges {
			u, err := g.EdgeEndpoint(e, v)
			if err != nil {
				return nil, err
			}
			if !visited[u] {
				visited[u] = true
				stack = append(stack, u)
			}
		}
	}

	return visited, nil
}
