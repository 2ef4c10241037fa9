package core

import (
	"errors"
	"sync"
)

// Sentinel errors for index-graph operations.
var (
	// ErrNoSuchVertex indicates an operation referenced a vertex index outside {0..n-1}.
	ErrNoSuchVertex = errors.New("core: no such vertex")

	// ErrNoSuchEdge indicates an operation referenced an edge index outside {0..m-1}.
	ErrNoSuchEdge = errors.New("core: no such edge")

	// ErrSelfLoopForbidden indicates an edge u->u was attempted on a graph built without WithSelfLoops.
	ErrSelfLoopForbidden = errors.New("core: self-loop not allowed")

	// ErrParallelEdgeForbidden indicates a second (u,v) edge was attempted on a graph
	// built without WithParallelEdges.
	ErrParallelEdgeForbidden = errors.New("core: parallel edge not allowed")

	// ErrNotEndpoint indicates edgeEndpoint was asked for the "other" endpoint of an
	// edge relative to a vertex that is not one of its endpoints.
	ErrNotEndpoint = errors.New("core: vertex is not an endpoint of edge")
)

// GraphOption configures an IndexGraph at construction time. Every flag set
// by an option is immutable for the lifetime of the graph (spec §3 Lifecycle).
type GraphOption func(*IndexGraph)

// WithSelfLoops permits edges whose source and target are the same vertex.
func WithSelfLoops() GraphOption {
	return func(g *IndexGraph) { g.allowSelfLoops = true }
}

// WithParallelEdges permits more than one edge between the same ordered
// (directed) or unordered (undirected) pair of vertices.
func WithParallelEdges() GraphOption {
	return func(g *IndexGraph) { g.allowParallel = true }
}

// WithExpectedVertices pre-sizes internal slices for n vertices; purely an
// allocation hint, it never changes observable behavior.
func WithExpectedVertices(n int) GraphOption {
	return func(g *IndexGraph) { g.hintVertices = n }
}

// WithExpectedEdges pre-sizes internal slices for m edges; purely an
// allocation hint, it never changes observable behavior.
func WithExpectedEdges(m int) GraphOption {
	return func(g *IndexGraph) { g.hintEdges = m }
}

// RemovalListener is notified whenever the index graph swap-removes a
// vertex or an edge, so that a dependent container (a weight container,
// the identity mapping) can apply the identical swap-remove to its own
// per-index data. movedFrom is the index that used to hold the data now
// living at movedTo; movedFrom == movedTo means no slot moved (the removed
// index was already the last one).
type RemovalListener interface {
	OnVertexRemoved(removed, movedFrom, movedTo int)
	OnEdgeRemoved(removed, movedFrom, movedTo int)
}

// edge is the internal dense-edge record.
type edge struct {
	src, dst int
}

// IndexGraph is the dense {0..n-1}/{0..m-1} graph described by spec §3-4.1.
//
// muVert guards n, vertex-indexed adjacency tables and vertex listeners;
// muEdgeAdj guards m, the edge endpoint table and the adjacency contents.
// The two locks are never held nested in the same order twice (vertex lock
// is always acquired first), matching the teacher's locking discipline.
type IndexGraph struct {
	muVert    sync.RWMutex
	muEdgeAdj sync.RWMutex

	directed      bool
	allowSelfLoops bool
	allowParallel  bool
	hintVertices   int
	hintEdges      int

	n int

	edges []edge

	// out[v] lists edge indices with edgeSource(e) == v (directed) or v as
	// either endpoint (undirected). in[v] mirrors for incoming edges; for
	// undirected graphs in == out per spec §3 Adjacency.
	out [][]int
	in  [][]int

	listeners []RemovalListener
}

// newBase applies shared construction for both directed and undirected graphs.
func newBase(directed bool, opts []GraphOption) *IndexGraph {
	g := &IndexGraph{directed: directed}
	for _, opt := range opts {
		opt(g)
	}
	if g.hintVertices > 0 {
		g.out = make([][]int, 0, g.hintVertices)
		g.in = make([][]int, 0, g.hintVertices)
	}
	if g.hintEdges > 0 {
		g.edges = make([]edge, 0, g.hintEdges)
	}

	return g
}

// NewDirected constructs an empty directed IndexGraph.
func NewDirected(opts ...GraphOption) *IndexGraph {
	return newBase(true, opts)
}

// NewUndirected constructs an empty undirected IndexGraph.
func NewUndirected(opts ...GraphOption) *IndexGraph {
	return newBase(false, opts)
}

// Directed reports the construction-time directedness flag.
func (g *IndexGraph) Directed() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.directed
}

// AllowsSelfLoops reports the construction-time self-loop policy.
func (g *IndexGraph) AllowsSelfLoops() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowSelfLoops
}

// AllowsParallelEdges reports the construction-time parallel-edge policy.
func (g *IndexGraph) AllowsParallelEdges() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowParallel
}

// AddListener registers a RemovalListener, invoked on every subsequent
// swap-remove of a vertex or edge. Listeners are never invoked in any
// guaranteed order relative to each other.
func (g *IndexGraph) AddListener(l RemovalListener) {
	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.listeners = append(g.listeners, l)
}

// GraphStats is an O(n+m) read-only snapshot, used by tests and callers that
// want a cheap diagnostic summary without walking the adjacency tables
// themselves.
type GraphStats struct {
	Directed      bool
	AllowsLoops   bool
	AllowsParallel bool
	N, M          int
	SelfLoops     int
}

// Stats produces an O(n+m) snapshot of the graph's configuration and size.
func (g *IndexGraph) Stats() GraphStats {
	g.muVert.RLock()
	s := GraphStats{
		Directed:       g.directed,
		AllowsLoops:    g.allowSelfLoops,
		AllowsParallel: g.allowParallel,
		N:              g.n,
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	s.M = len(g.edges)
	for _, e := range g.edges {
		if e.src == e.dst {
			s.SelfLoops++
		}
	}
	g.muEdgeAdj.RUnlock()

	return s
}
