package hamilton

import (
	"github.com/katalvlaran/graphalgo/core"
	"github.com/katalvlaran/graphalgo/gpath"
)

// NewPathIterator enumerates every Hamiltonian path of g rooted at origin:
// a simple path visiting every vertex exactly once, starting at origin
// (spec §4.10).
func NewPathIterator(g *core.IndexGraph, origin int) (*Iterator, error) {
	queue, err := search(g, origin, false)
	if err != nil {
		return nil, err
	}

	return &Iterator{queue: queue}, nil
}

// NewCycleIterator enumerates every Hamiltonian cycle of g passing through
// origin: a simple cycle visiting every vertex exactly once before
// returning to origin (spec §4.10). For undirected graphs each cycle is
// emitted exactly once, never once per traversal direction: the edge used
// to leave origin is fixed for the branch, and the edge used to return to
// origin is only accepted if its edge index exceeds the departure edge's.
func NewCycleIterator(g *core.IndexGraph, origin int) (*Iterator, error) {
	queue, err := search(g, origin, true)
	if err != nil {
		return nil, err
	}

	return &Iterator{queue: queue}, nil
}

// search runs Rubin's backtracking DFS from origin and returns every
// completed Hamiltonian path (wantCycle == false) or cycle (wantCycle ==
// true) found, in the order discovered.
func search(g *core.IndexGraph, origin int, wantCycle bool) ([]*gpath.Path, error) {
	if err := checkOrigin(g, origin); err != nil {
		return nil, err
	}

	n := g.NumVertices()
	var queue []*gpath.Path

	if n == 1 {
		if !wantCycle {
			queue = append(queue, gpath.New(g, origin, origin, nil))

			return queue, nil
		}
		out, err := g.OutEdges(origin)
		if err != nil {
			return nil, err
		}
		for _, e := range out {
			u, err := g.EdgeEndpoint(e, origin)
			if err != nil {
				return nil, err
			}
			if u == origin {
				queue = append(queue, gpath.New(g, origin, origin, []int{e}))
			}
		}

		return queue, nil
	}

	directed := g.Directed()
	visited := make([]bool, n)
	visited[origin] = true
	path := []int{origin}
	var edges []int

	var dfs func() error
	dfs = func() error {
		head := path[len(path)-1]

		if len(path) == n {
			if !wantCycle {
				queue = append(queue, gpath.New(g, origin, head, append([]int(nil), edges...)))

				return nil
			}

			out, err := g.OutEdges(head)
			if err != nil {
				return err
			}
			for _, e := range out {
				u, err := g.EdgeEndpoint(e, head)
				if err != nil {
					return err
				}
				if u != origin {
					continue
				}
				if !directed && e <= edges[0] {
					continue
				}
				queue = append(queue, gpath.New(g, origin, origin, append(append([]int(nil), edges...), e)))
			}

			return nil
		}

		out, err := g.OutEdges(head)
		if err != nil {
			return err
		}
		for _, e := range out {
			u, err := g.EdgeEndpoint(e, head)
			if err != nil {
				return err
			}
			if visited[u] {
				continue
			}

			visited[u] = true
			path = append(path, u)
			edges = append(edges, e)

			ok, cErr := connectivityOK(g, u, origin, visited, wantCycle)
			if cErr != nil {
				return cErr
			}
			if ok {
				if dErr := dfs(); dErr != nil {
					return dErr
				}
			}

			path = path[:len(path)-1]
			edges = edges[:len(edges)-1]
			visited[u] = false
		}

		return nil
	}

	if err := dfs(); err != nil {
		return nil, err
	}

	return queue, nil
}

// connectivityOK reports whether every unvisited vertex remains reachable
// from head by passing only through unvisited vertices and origin (the one
// visited vertex the walk may cross), and, when needOrigin, that origin
// itself is reached too (the final closing step of a Hamiltonian cycle
// returns to the already-visited origin). This is a sound pruning check only: failing it proves
// no completion of the current path exists, but passing it does not
// guarantee one does (spec §4.10's F1/F3/F4 failure checks, computed
// directly from the current visited-set rather than incrementally
// maintained bitmaps).
func connectivityOK(g *core.IndexGraph, head, origin int, visited []bool, needOrigin bool) (bool, error) {
	n := g.NumVertices()
	reached := make([]bool, n)
	reached[head] = true
	stack := []int{head}

	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		out, err := g.OutEdges(v)
		if err != nil {
			return false, err
		}
		for _, e := range out {
			u, err := g.EdgeEndpoint(e, v)
			if err != nil {
				return false, err
			}
			if reached[u] {
				continue
			}
			if visited[u] && u != origin {
				continue
			}
			reached[u] = true
			stack = append(stack, u)
		}
	}

	for v := 0; v < n; v++ {
		if !visited[v] && !reached[v] {
			return false, nil
		}
	}
	if needOrigin && !reached[origin] {
		return false, nil
	}

	return true, nil
}
