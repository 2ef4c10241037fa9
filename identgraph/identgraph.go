// Package identgraph implements the identity graph façade of spec §3-4:
// every operation of core.IndexGraph, parametrized by caller-supplied
// vertex and edge identifiers instead of dense indices. Every method is a
// pure forwarder — translate identifiers to indices via idmap, delegate to
// the index graph, translate results back — grounded on
// gonum.org/v1/gonum/graph.Node's ID()-forwarding idiom, generalized from a
// fixed int ID to an arbitrary comparable type via Go generics (spec's
// Design Notes §9: "collapse into a variant set... built by composition
// over the index graph — never by inheritance").
package identgraph

import (
	"errors"

	"github.com/katalvlaran/graphalgo/core"
	"github.com/katalvlaran/graphalgo/idmap"
)

// Sentinel errors for identity-graph operations. A duplicate identifier is
// reported with idmap.ErrDuplicateIdentifier itself; this package defines
// no sentinel of its own for it.
var (
	// ErrNoSuchVertex indicates an operation referenced an unknown vertex identifier.
	ErrNoSuchVertex = errors.New("identgraph: no such vertex")

	// ErrNoSuchEdge indicates an operation referenced an unknown edge identifier.
	ErrNoSuchEdge = errors.New("identgraph: no such edge")
)

// Graph is the identity-keyed façade over a core.IndexGraph. VId and EId may
// be any hashable (comparable) type — strings, ints, structs of comparable
// fields, etc. (spec §3: "Identifiers may be of any hashable type").
type Graph[VId comparable, EId comparable] struct {
	idx  *core.IndexGraph
	vids *idmap.Mapping[VId]
	eids *idmap.Mapping[EId]
}

// NewDirected builds an empty identity graph over a directed index graph.
func NewDirected[VId comparable, EId comparable](opts ...core.GraphOption) *Graph[VId, EId] {
	return newGraph[VId, EId](core.NewDirected(opts...))
}

// NewUndirected builds an empty identity graph over an undirected index graph.
func NewUndirected[VId comparable, EId comparable](opts ...core.GraphOption) *Graph[VId, EId] {
	return newGraph[VId, EId](core.NewUndirected(opts...))
}

func newGraph[VId comparable, EId comparable](idx *core.IndexGraph) *Graph[VId, EId] {
	g := &Graph[VId, EId]{idx: idx, vids: idmap.New[VId](), eids: idmap.New[EId]()}
	idx.AddListener(g)

	return g
}

// OnVertexRemoved implements core.RemovalListener: mirror the index graph's
// vertex swap-remove onto the identity mapping.
func (g *Graph[VId, EId]) OnVertexRemoved(removed, _, _ int) { g.vids.Remove(removed) }

// OnEdgeRemoved implements core.RemovalListener: mirror the index graph's
// edge swap-remove onto the identity mapping.
func (g *Graph[VId, EId]) OnEdgeRemoved(removed, _, _ int) { g.eids.Remove(removed) }

// Index returns the underlying index graph, for algorithm implementations
// (package algo and the catalog) that operate in index space and let their
// identity-graph entry point do the translation.
func (g *Graph[VId, EId]) Index() *core.IndexGraph { return g.idx }

// Directed reports the graph's directedness.
func (g *Graph[VId, EId]) Directed() bool { return g.idx.Directed() }

// NumVertices returns the number of vertices.
func (g *Graph[VId, EId]) NumVertices() int { return g.vids.Len() }

// NumEdges returns the number of edges.
func (g *Graph[VId, EId]) NumEdges() int { return g.eids.Len() }

// VertexIndex returns the dense index assigned to id, if any.
func (g *Graph[VId, EId]) VertexIndex(id VId) (int, bool) { return g.vids.IndexOf(id) }

// VertexID returns the identifier assigned to a dense vertex index.
func (g *Graph[VId, EId]) VertexID(idx int) VId { return g.vids.IdOf(idx) }

// EdgeIndex returns the dense index assigned to id, if any.
func (g *Graph[VId, EId]) EdgeIndex(id EId) (int, bool) { return g.eids.IndexOf(id) }

// EdgeID returns the identifier assigned to a dense edge index.
func (g *Graph[VId, EId]) EdgeID(idx int) EId { return g.eids.IdOf(idx) }

// AddVertex inserts a new vertex identified by id. Fails with
// idmap.ErrDuplicateIdentifier if id is already present.
func (g *Graph[VId, EId]) AddVertex(id VId) (int, error) {
	if _, ok := g.vids.IndexOf(id); ok {
		return -1, idmap.ErrDuplicateIdentifier
	}
	vidx := g.idx.AddVertex()
	// vidx is, by construction, equal to the next assigned idmap index.
	_, _ = g.vids.Add(id)

	return vidx, nil
}

// RemoveVertex removes the vertex identified by id, and every edge incident
// to it. Fails with ErrNoSuchVertex if id is unknown.
func (g *Graph[VId, EId]) RemoveVertex(id VId) error {
	vidx, ok := g.vids.IndexOf(id)
	if !ok {
		return ErrNoSuchVertex
	}

	return g.idx.RemoveVertex(vidx)
}

// AddEdge inserts a new edge u->v (or u-v when undirected) identified by id.
// Fails with ErrNoSuchVertex if either endpoint is unknown,
// idmap.ErrDuplicateIdentifier if id is already present, or the same
// structural errors core.IndexGraph.AddEdge returns.
func (g *Graph[VId, EId]) AddEdge(u, v VId, id EId) (int, error) {
	ui, ok := g.vids.IndexOf(u)
	if !ok {
		return -1, ErrNoSuchVertex
	}
	vi, ok := g.vids.IndexOf(v)
	if !ok {
		return -1, ErrNoSuchVertex
	}
	if _, ok := g.eids.IndexOf(id); ok {
		return -1, idmap.ErrDuplicateIdentifier
	}

	eidx, err := g.idx.AddEdge(ui, vi)
	if err != nil {
		return -1, err
	}
	_, _ = g.eids.Add(id)

	return eidx, nil
}

// RemoveEdge removes the edge identified by id. Fails with ErrNoSuchEdge if
// id is unknown.
func (g *Graph[VId, EId]) RemoveEdge(id EId) error {
	eidx, ok := g.eids.IndexOf(id)
	if !ok {
		return ErrNoSuchEdge
	}

	return g.idx.RemoveEdge(eidx)
}

// ContainsEdge reports whether any edge connects u to v.
func (g *Graph[VId, EId]) ContainsEdge(u, v VId) bool {
	ui, ok := g.vids.IndexOf(u)
	if !ok {
		return false
	}
	vi, ok := g.vids.IndexOf(v)
	if !ok {
		return false
	}

	return g.idx.ContainsEdge(ui, vi)
}

// EdgeSource returns the source identifier of the edge identified by id.
func (g *Graph[VId, EId]) EdgeSource(id EId) (VId, error) {
	var zero VId
	eidx, ok := g.eids.IndexOf(id)
	if !ok {
		return zero, ErrNoSuchEdge
	}
	sidx, err := g.idx.EdgeSource(eidx)
	if err != nil {
		return zero, err
	}

	return g.vids.IdOf(sidx), nil
}

// EdgeTarget returns the target identifier of the edge identified by id.
func (g *Graph[VId, EId]) EdgeTarget(id EId) (VId, error) {
	var zero VId
	eidx, ok := g.eids.IndexOf(id)
	if !ok {
		return zero, ErrNoSuchEdge
	}
	tidx, err := g.idx.EdgeTarget(eidx)
	if err != nil {
		return zero, err
	}

	return g.vids.IdOf(tidx), nil
}

// EdgeEndpoint returns the endpoint of edge id other than v.
func (g *Graph[VId, EId]) EdgeEndpoint(id EId, v VId) (VId, error) {
	var zero VId
	eidx, ok := g.eids.IndexOf(id)
	if !ok {
		return zero, ErrNoSuchEdge
	}
	vidx, ok := g.vids.IndexOf(v)
	if !ok {
		return zero, ErrNoSuchVertex
	}
	oidx, err := g.idx.EdgeEndpoint(eidx, vidx)
	if err != nil {
		return zero, err
	}

	return g.vids.IdOf(oidx), nil
}

// OutEdges returns the (live, freshly translated) set of outgoing edge
// identifiers for vertex id.
func (g *Graph[VId, EId]) OutEdges(id VId) ([]EId, error) {
	vidx, ok := g.vids.IndexOf(id)
	if !ok {
		return nil, ErrNoSuchVertex
	}
	out, err := g.idx.OutEdges(vidx)
	if err != nil {
		return nil, err
	}

	return g.translateEdges(out), nil
}

// InEdges returns the (live, freshly translated) set of incoming edge
// identifiers for vertex id.
func (g *Graph[VId, EId]) InEdges(id VId) ([]EId, error) {
	vidx, ok := g.vids.IndexOf(id)
	if !ok {
		return nil, ErrNoSuchVertex
	}
	in, err := g.idx.InEdges(vidx)
	if err != nil {
		return nil, err
	}

	return g.translateEdges(in), nil
}

func (g *Graph[VId, EId]) translateEdges(idxs []int) []EId {
	out := make([]EId, len(idxs))
	for i, e := range idxs {
		out[i] = g.eids.IdOf(e)
	}

	return out
}

// Vertices returns every vertex identifier, in index order.
func (g *Graph[VId, EId]) Vertices() []VId {
	out := make([]VId, g.vids.Len())
	for i := range out {
		out[i] = g.vids.IdOf(i)
	}

	return out
}

// Edges returns every edge identifier, in index order.
func (g *Graph[VId, EId]) Edges() []EId {
	out := make([]EId, g.eids.Len())
	for i := range out {
		out[i] = g.eids.IdOf(i)
	}

	return out
}
