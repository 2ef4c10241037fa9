package core

// AddEdge inserts a new edge u->v (or u-v when undirected) and returns its
// index. Fails with ErrNoSuchVertex if either endpoint is out of range,
// ErrSelfLoopForbidden if u == v on a graph built without WithSelfLoops, and
// ErrParallelEdgeForbidden if an (u,v) edge already exists on a graph built
// without WithParallelEdges. Complexity: O(1) amortized, O(deg) for the
// parallel-edge check.
func (g *IndexGraph) AddEdge(u, v int) (int, error) {
	g.muVert.RLock()
	ok := g.hasVertexLocked(u) && g.hasVertexLocked(v)
	g.muVert.RUnlock()
	if !ok {
		return -1, ErrNoSuchVertex
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if u == v && !g.allowSelfLoops {
		return -1, ErrSelfLoopForbidden
	}
	if !g.allowParallel && g.containsEdgeLocked(u, v) {
		return -1, ErrParallelEdgeForbidden
	}

	idx := len(g.edges)
	g.edges = append(g.edges, edge{src: u, dst: v})
	g.linkEdgeLocked(idx, u, v)

	return idx, nil
}

// linkEdgeLocked records edge idx (u->v) into the adjacency tables. Caller
// must hold muEdgeAdj for writing.
func (g *IndexGraph) linkEdgeLocked(idx, u, v int) {
	g.out[u] = append(g.out[u], idx)
	if g.directed {
		g.in[v] = append(g.in[v], idx)
	} else if v != u {
		g.out[v] = append(g.out[v], idx)
	}
}

// containsEdgeLocked reports whether an (u,v) edge exists. Caller must hold
// muEdgeAdj (read or write). Complexity: O(deg(u)).
func (g *IndexGraph) containsEdgeLocked(u, v int) bool {
	for _, e := range g.out[u] {
		if g.edges[e].dst == v || (!g.directed && g.edges[e].src == v) {
			return true
		}
	}

	return false
}

// ContainsEdge reports whether any edge connects u to v (directed: u->v;
// undirected: either order). Complexity: O(deg(u)).
func (g *IndexGraph) ContainsEdge(u, v int) bool {
	g.muVert.RLock()
	ok := g.hasVertexLocked(u) && g.hasVertexLocked(v)
	g.muVert.RUnlock()
	if !ok {
		return false
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return g.containsEdgeLocked(u, v)
}

// NumEdges returns the current size of the edge range {0..m-1}.
func (g *IndexGraph) NumEdges() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

func (g *IndexGraph) hasEdgeLocked(e int) bool {
	return e >= 0 && e < len(g.edges)
}

// EdgeSource returns edgeSource(e).
func (g *IndexGraph) EdgeSource(e int) (int, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	if !g.hasEdgeLocked(e) {
		return -1, ErrNoSuchEdge
	}

	return g.edges[e].src, nil
}

// EdgeTarget returns edgeTarget(e).
func (g *IndexGraph) EdgeTarget(e int) (int, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	if !g.hasEdgeLocked(e) {
		return -1, ErrNoSuchEdge
	}

	return g.edges[e].dst, nil
}

// EdgeEndpoints returns (source, target) in a single call.
func (g *IndexGraph) EdgeEndpoints(e int) (int, int, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	if !g.hasEdgeLocked(e) {
		return -1, -1, ErrNoSuchEdge
	}

	return g.edges[e].src, g.edges[e].dst, nil
}

// EdgeEndpoint returns the endpoint of e other than v. For a self-loop it
// returns v itself. Fails with ErrNotEndpoint if v is neither endpoint.
func (g *IndexGraph) EdgeEndpoint(e, v int) (int, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	if !g.hasEdgeLocked(e) {
		return -1, ErrNoSuchEdge
	}
	ed := g.edges[e]
	switch {
	case ed.src == ed.dst:
		if v != ed.src {
			return -1, ErrNotEndpoint
		}

		return v, nil
	case v == ed.src:
		return ed.dst, nil
	case v == ed.dst:
		return ed.src, nil
	default:
		return -1, ErrNotEndpoint
	}
}

// OutEdges returns the set of edges with edgeSource(e) = v (directed) or one
// endpoint = v (undirected). The returned slice must not be mutated by the
// caller and is only valid until the next structural edit. Iteration order
// is edge-index-ascending for a freshly built graph but becomes unspecified
// (though still deterministic for a fixed graph state) after removals.
func (g *IndexGraph) OutEdges(v int) ([]int, error) {
	g.muVert.RLock()
	ok := g.hasVertexLocked(v)
	g.muVert.RUnlock()
	if !ok {
		return nil, ErrNoSuchVertex
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return g.out[v], nil
}

// InEdges mirrors OutEdges for incoming edges; for undirected graphs it
// returns exactly the same set as OutEdges.
func (g *IndexGraph) InEdges(v int) ([]int, error) {
	g.muVert.RLock()
	ok := g.hasVertexLocked(v)
	directed := g.directed
	g.muVert.RUnlock()
	if !ok {
		return nil, ErrNoSuchVertex
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	if !directed {
		return g.out[v], nil
	}

	return g.in[v], nil
}

// Degree returns len(OutEdges(v)) + len(InEdges(v)) for directed graphs, or
// len(OutEdges(v)) for undirected graphs (self-loops count once, matching
// the single adjacency entry created for them).
func (g *IndexGraph) Degree(v int) (int, error) {
	out, err := g.OutEdges(v)
	if err != nil {
		return 0, err
	}
	if !g.Directed() {
		return len(out), nil
	}
	in, err := g.InEdges(v)
	if err != nil {
		return 0, err
	}

	return len(out) + len(in), nil
}

// RemoveEdge swap-removes e from the edge range, updating adjacency tables
// of both endpoints, and fires OnEdgeRemoved. Complexity: O(deg(src(e)) +
// deg(dst(e)) + deg(src(last)) + deg(dst(last))).
func (g *IndexGraph) RemoveEdge(e int) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	if !g.hasEdgeLocked(e) {
		return ErrNoSuchEdge
	}
	g.removeEdgeLocked(e)

	return nil
}

// unlinkEdgeLocked removes idx from every adjacency list it appears in.
// Caller must hold muEdgeAdj for writing.
func (g *IndexGraph) unlinkEdgeLocked(idx int) {
	ed := g.edges[idx]
	g.out[ed.src] = removeValue(g.out[ed.src], idx)
	if g.directed {
		g.in[ed.dst] = removeValue(g.in[ed.dst], idx)
	} else if ed.dst != ed.src {
		g.out[ed.dst] = removeValue(g.out[ed.dst], idx)
	}
}

// removeEdgeLocked performs the swap-remove of edge e and notifies
// listeners. Caller must hold muEdgeAdj for writing.
func (g *IndexGraph) removeEdgeLocked(e int) {
	g.unlinkEdgeLocked(e)

	last := len(g.edges) - 1
	if e != last {
		moved := g.edges[last]
		g.edges[e] = moved
		// Retarget adjacency entries that referenced `last` to reference `e`.
		g.out[moved.src] = replaceValue(g.out[moved.src], last, e)
		if g.directed {
			g.in[moved.dst] = replaceValue(g.in[moved.dst], last, e)
		} else if moved.dst != moved.src {
			g.out[moved.dst] = replaceValue(g.out[moved.dst], last, e)
		}
	}
	g.edges = g.edges[:last]

	g.notifyEdgeRemoved(e, last, e)
}

func (g *IndexGraph) notifyEdgeRemoved(removed, movedFrom, movedTo int) {
	for _, l := range g.listeners {
		l.OnEdgeRemoved(removed, movedFrom, movedTo)
	}
}

// MoveEdge changes the endpoints of e in place, preserving e's index.
// Subject to the same self-loop/parallel-edge policy as AddEdge.
func (g *IndexGraph) MoveEdge(e, u, v int) error {
	g.muVert.RLock()
	ok := g.hasVertexLocked(u) && g.hasVertexLocked(v)
	g.muVert.RUnlock()
	if !ok {
		return ErrNoSuchVertex
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	if !g.hasEdgeLocked(e) {
		return ErrNoSuchEdge
	}
	if u == v && !g.allowSelfLoops {
		return ErrSelfLoopForbidden
	}
	if !g.allowParallel && g.containsEdgeLocked(u, v) {
		return ErrParallelEdgeForbidden
	}

	g.unlinkEdgeLocked(e)
	g.edges[e] = edge{src: u, dst: v}
	g.linkEdgeLocked(e, u, v)

	return nil
}

// removeValue returns s with the first occurrence of x swap-removed.
func removeValue(s []int, x int) []int {
	for i, v := range s {
		if v == x {
			last := len(s) - 1
			s[i] = s[last]

			return s[:last]
		}
	}

	return s
}

// replaceValue replaces the first occurrence of old with val in s.
func replaceValue(s []int, old, val int) []int {
	for i, v := range s {
		if v == old {
			s[i] = val

			return s
		}
	}

	return s
}
