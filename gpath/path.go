package gpath

import (
	"errors"

	"github.com/katalvlaran/graphalgo/core"
)

// ErrMalformedPath indicates a Path's edge list does not chain: some edge
// has neither endpoint equal to the vertex reached so far.
var ErrMalformedPath = errors.New("gpath: malformed path")

// Path records a source, a target, and an ordered edge list over a single
// core.IndexGraph instance (spec §4.3). Two Paths are only ever compared
// meaningfully when they share the same graph instance.
type Path struct {
	g      *core.IndexGraph
	source int
	target int
	edges  []int
}

// New builds a Path from an explicit edge list. It does not validate the
// chain eagerly; call Vertices to detect ErrMalformedPath.
func New(g *core.IndexGraph, source, target int, edges []int) *Path {
	return &Path{g: g, source: source, target: target, edges: append([]int(nil), edges...)}
}

// Graph returns the graph this path is defined over.
func (p *Path) Graph() *core.IndexGraph { return p.g }

// Source returns the path's source vertex.
func (p *Path) Source() int { return p.source }

// Target returns the path's target vertex.
func (p *Path) Target() int { return p.target }

// Edges returns the path's ordered edge list. The caller must not mutate it.
func (p *Path) Edges() []int { return p.edges }

// IsCycle reports whether source == target (spec §4.3).
func (p *Path) IsCycle() bool { return p.source == p.target }

// Vertices returns the vertices visited along the path, starting at
// source. For an undirected edge, the next vertex is "the endpoint that is
// not the previous vertex" (spec §4.3); fails with ErrMalformedPath if some
// edge has neither endpoint equal to the vertex reached so far.
func (p *Path) Vertices() ([]int, error) {
	if len(p.edges) == 0 {
		return []int{p.source}, nil
	}
	vs := make([]int, 0, len(p.edges)+1)
	cur := p.source
	vs = append(vs, cur)
	for _, e := range p.edges {
		next, err := p.g.EdgeEndpoint(e, cur)
		if err != nil {
			return nil, ErrMalformedPath
		}
		vs = append(vs, next)
		cur = next
	}

	return vs, nil
}

// IsSimple reports whether no vertex repeats. A cycle is never simple
// except the degenerate isolated-vertex case (source == target, no edges).
func (p *Path) IsSimple() (bool, error) {
	if p.IsCycle() && len(p.edges) > 0 {
		return false, nil
	}
	vs, err := p.Vertices()
	if err != nil {
		return false, err
	}
	seen := make(map[int]struct{}, len(vs))
	for _, v := range vs {
		if _, ok := seen[v]; ok {
			return false, nil
		}
		seen[v] = struct{}{}
	}

	return true, nil
}

// SubPath returns the path (vertices[i], vertices[j], edges[i:j]). For i ==
// j it returns the zero-edge path rooted at vertices[i].
func (p *Path) SubPath(i, j int) (*Path, error) {
	vs, err := p.Vertices()
	if err != nil {
		return nil, err
	}
	if i < 0 || j >= len(vs) || i > j {
		return nil, ErrMalformedPath
	}

	return New(p.g, vs[i], vs[j], p.edges[i:j]), nil
}

// Equal reports whether p and o represent the same path (spec §4.3):
//   - both over the same graph instance,
//   - both cycles or both not,
//   - cycles: any cyclic rotation of one edge list matches the other,
//   - undirected non-cycles: source/target may be swapped and the edge list
//     reversed,
//   - otherwise: identical edge lists in order.
func (p *Path) Equal(o *Path) bool {
	if p.g != o.g || p.IsCycle() != o.IsCycle() || len(p.edges) != len(o.edges) {
		return false
	}
	if p.IsCycle() {
		return isRotation(p.edges, o.edges)
	}
	if sameSlice(p.edges, o.edges) {
		return true
	}
	if p.g.Directed() {
		return false
	}

	return sameSlice(p.edges, reversed(o.edges))
}

func sameSlice(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

func reversed(a []int) []int {
	out := make([]int, len(a))
	for i, v := range a {
		out[len(a)-1-i] = v
	}

	return out
}

func isRotation(a, b []int) bool {
	n := len(a)
	if n == 0 {
		return true
	}
	for shift := 0; shift < n; shift++ {
		match := true
		for i := 0; i < n; i++ {
			if a[i] != b[(i+shift)%n] {
				match = false

				break
			}
		}
		if match {
			return true
		}
	}

	return false
}
