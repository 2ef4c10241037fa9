package weights

import "github.com/katalvlaran/graphalgo/core"

// Container is the common shape both Dense and Sparse implement: a
// fixed-type map from a dense index to a value, always sized so every valid
// index in the subscribed graph has a (possibly default) value (spec §3
// invariant: "Weight containers subscribed to the graph are always sized >=
// current n (resp. m)").
type Container[T any] interface {
	Get(idx int) T
	Set(idx int, v T)
	Len() int
}

// Dense is an array-backed weight container: O(1) get/set, O(n) memory
// regardless of how many indices have a non-default value. Appropriate when
// most vertices/edges carry a meaningful weight.
type Dense[T any] struct {
	values []T
	def    T
}

// NewDenseVertexWeights builds a Dense container subscribed to g's vertex
// range, pre-filled with def for every existing vertex, and registers
// itself to re-index on future vertex removals.
func NewDenseVertexWeights[T any](g *core.IndexGraph, def T) *Dense[T] {
	d := newDense(g.NumVertices(), def)
	g.AddListener(vertexListener[T]{d})

	return d
}

// NewDenseEdgeWeights builds a Dense container subscribed to g's edge range.
func NewDenseEdgeWeights[T any](g *core.IndexGraph, def T) *Dense[T] {
	d := newDense(g.NumEdges(), def)
	g.AddListener(edgeListener[T]{d})

	return d
}

func newDense[T any](n int, def T) *Dense[T] {
	values := make([]T, n)
	for i := range values {
		values[i] = def
	}

	return &Dense[T]{values: values, def: def}
}

// Get returns the value at idx. It does not grow the container: an index
// added to the graph after this container was created is out of range, and
// Get panics on it, until Extend covers it (core.IndexGraph notifies
// listeners of removals only, not insertions).
func (d *Dense[T]) Get(idx int) T { return d.values[idx] }

// Set assigns v at idx.
func (d *Dense[T]) Set(idx int, v T) { d.values[idx] = v }

// Len returns the number of indices currently tracked.
func (d *Dense[T]) Len() int { return len(d.values) }

// Extend grows the container up to n entries, filling new slots with the
// default value. Call this after adding vertices/edges to the subscribed
// graph; core.IndexGraph has no insertion listener (spec describes only a
// removal listener), so growth is the container owner's responsibility.
func (d *Dense[T]) Extend(n int) {
	for len(d.values) < n {
		d.values = append(d.values, d.def)
	}
}

func (d *Dense[T]) removeAt(idx int) {
	last := len(d.values) - 1
	if idx != last {
		d.values[idx] = d.values[last]
	}
	d.values = d.values[:last]
}

// Sparse is a map-backed weight container: O(1) amortized get/set, memory
// proportional to the number of indices with a non-default value.
// Appropriate for attributes most vertices/edges don't carry.
type Sparse[T any] struct {
	values map[int]T
	def    T
	n      int
}

// NewSparseVertexWeights builds a Sparse container subscribed to g's vertex range.
func NewSparseVertexWeights[T any](g *core.IndexGraph, def T) *Sparse[T] {
	s := &Sparse[T]{values: make(map[int]T), def: def, n: g.NumVertices()}
	g.AddListener(vertexListener[T]{s})

	return s
}

// NewSparseEdgeWeights builds a Sparse container subscribed to g's edge range.
func NewSparseEdgeWeights[T any](g *core.IndexGraph, def T) *Sparse[T] {
	s := &Sparse[T]{values: make(map[int]T), def: def, n: g.NumEdges()}
	g.AddListener(edgeListener[T]{s})

	return s
}

// Get returns the value at idx, or the default if never explicitly set.
func (s *Sparse[T]) Get(idx int) T {
	if v, ok := s.values[idx]; ok {
		return v
	}

	return s.def
}

// Set assigns v at idx.
func (s *Sparse[T]) Set(idx int, v T) { s.values[idx] = v }

// Len returns the declared size of the subscribed index range.
func (s *Sparse[T]) Len() int { return s.n }

// Extend records growth of the subscribed index range.
func (s *Sparse[T]) Extend(n int) { s.n = n }

func (s *Sparse[T]) removeAt(idx int) {
	last := s.n - 1
	if idx != last {
		if v, ok := s.values[last]; ok {
			s.values[idx] = v
		} else {
			delete(s.values, idx)
		}
		delete(s.values, last)
	} else {
		delete(s.values, idx)
	}
	s.n = last
}

// reindexable is implemented by both Dense and Sparse; it is not exported
// because the two removal-listener adapters below are the only callers.
type reindexable interface{ removeAt(idx int) }

type vertexListener[T any] struct{ c reindexable }

func (l vertexListener[T]) OnVertexRemoved(removed, _, _ int) { l.c.removeAt(removed) }
func (l vertexListener[T]) OnEdgeRemoved(int, int, int)       {}

type edgeListener[T any] struct{ c reindexable }

func (l edgeListener[T]) OnVertexRemoved(int, int, int)     {}
func (l edgeListener[T]) OnEdgeRemoved(removed, _, _ int) { l.c.removeAt(removed) }
