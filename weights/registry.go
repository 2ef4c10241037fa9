package weights

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/graphalgo/core"
)

// ErrUnknownKey indicates GetVerticesWeights/GetEdgesWeights was called with
// a key no AddVerticesWeights/AddEdgesWeights call has registered.
var ErrUnknownKey = errors.New("weights: unknown key")

// Registry implements spec §6's key-based weight-container API
// (addVerticesWeights(key, type, defaultValue), getVerticesWeights(key)) on
// top of the generic Dense/Sparse containers: a thin, type-erased lookup
// table keyed by string, handing back the concrete Container[T] the caller
// asked for via a type assertion. Prefer constructing Dense[T]/Sparse[T]
// directly when the key is known at the call site; Registry exists for
// callers that genuinely need to look a weight set up by name at runtime
// (e.g. a generic algorithm façade configured by string option).
type Registry struct {
	g        *core.IndexGraph
	vertices map[string]any
	edges    map[string]any
}

// NewRegistry builds an empty Registry bound to g.
func NewRegistry(g *core.IndexGraph) *Registry {
	return &Registry{g: g, vertices: make(map[string]any), edges: make(map[string]any)}
}

// AddVerticesWeights registers a new Dense[T] vertex-weight container under
// key, defaulting every vertex to def.
func AddVerticesWeights[T any](r *Registry, key string, def T) *Dense[T] {
	c := NewDenseVertexWeights(r.g, def)
	r.vertices[key] = c

	return c
}

// AddEdgesWeights registers a new Dense[T] edge-weight container under key.
func AddEdgesWeights[T any](r *Registry, key string, def T) *Dense[T] {
	c := NewDenseEdgeWeights(r.g, def)
	r.edges[key] = c

	return c
}

// GetVerticesWeights retrieves the vertex-weight container registered under
// key, asserting it holds type T. Returns ErrUnknownKey if key was never
// registered, or a type-mismatch error (not wrapping any sentinel) if it was
// registered with a different T.
func GetVerticesWeights[T any](r *Registry, key string) (*Dense[T], error) {
	v, ok := r.vertices[key]
	if !ok {
		return nil, fmt.Errorf("%s: %w", key, ErrUnknownKey)
	}
	c, ok := v.(*Dense[T])
	if !ok {
		return nil, fmt.Errorf("weights: key %q has a different value type", key)
	}

	return c, nil
}

// GetEdgesWeights retrieves the edge-weight container registered under key.
func GetEdgesWeights[T any](r *Registry, key string) (*Dense[T], error) {
	v, ok := r.edges[key]
	if !ok {
		return nil, fmt.Errorf("%s: %w", key, ErrUnknownKey)
	}
	c, ok := v.(*Dense[T])
	if !ok {
		return nil, fmt.Errorf("weights: key %q has a different value type", key)
	}

	return c, nil
}
