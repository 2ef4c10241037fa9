package cycles

import (
	"github.com/katalvlaran/graphalgo/core"
	"github.com/katalvlaran/graphalgo/gpath"
)

// NewTarjanIterator enumerates every elementary cycle of g using a DFS
// rooted successively at each vertex v_start, marking vertices currently
// on the search path and only considering vertices with index >= v_start
// so each cycle is rooted at (and emitted once by) its minimum-index
// vertex (spec §4.7). Fails with ErrParallelEdgesRejected if g has
// parallel edges.
func NewTarjanIterator(g *core.IndexGraph) (*Iterator, error) {
	if err := checkNoParallelEdges(g); err != nil {
		return nil, err
	}

	n := g.NumVertices()
	marked := make([]bool, n)
	var queue []*gpath.Path

	var dfs func(vStart, v int, path []int) (foundCycle bool, err error)
	dfs = func(vStart, v int, path []int) (bool, error) {
		marked[v] = true
		foundAny := false

		out, err := g.OutEdges(v)
		if err != nil {
			return false, err
		}
		for _, e := range out {
			u, err := g.EdgeEndpoint(e, v)
			if err != nil {
				return false, err
			}
			if u < vStart || u == v {
				continue
			}
			if u == vStart {
				queue = append(queue, gpath.New(g, vStart, vStart, append(append([]int(nil), path...), e)))
				foundAny = true

				continue
			}
			if marked[u] {
				continue
			}
			childPath := make([]int, len(path)+1)
			copy(childPath, path)
			childPath[len(path)] = e
			found, err := dfs(vStart, u, childPath)
			if err != nil {
				return false, err
			}
			if found {
				foundAny = true
			}
		}

		marked[v] = false

		return foundAny, nil
	}

	for vStart := 0; vStart < n; vStart++ {
		for i := range marked {
			marked[i] = false
		}
		if _, err := dfs(vStart, vStart, nil); err != nil {
			return nil, err
		}
	}

	return &Iterator{queue: queue}, nil
}
