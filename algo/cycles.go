package algo

import (
	"github.com/katalvlaran/graphalgo/core"
	"github.com/katalvlaran/graphalgo/cycles"
	"github.com/katalvlaran/graphalgo/identgraph"
)

// CycleEnumImpl enumerates the elementary-cycle-enumeration implementations
// spec.md §4.7 catalogs.
type CycleEnumImpl int

const (
	CycleEnumTarjan CycleEnumImpl = iota
	CycleEnumJohnson
)

// CycleEnumBuilder enumerates elementary cycles using one fixed
// implementation, selected at construction time.
type CycleEnumBuilder struct {
	impl CycleEnumImpl
}

// NewCycleEnum validates impl and returns a CycleEnumBuilder. Fails with
// ErrOptionUnknown if impl is not one of the CycleEnumImpl constants.
func NewCycleEnum(impl CycleEnumImpl) (*CycleEnumBuilder, error) {
	switch impl {
	case CycleEnumTarjan, CycleEnumJohnson:
	default:
		return nil, ErrOptionUnknown
	}

	return &CycleEnumBuilder{impl: impl}, nil
}

// Compute runs the selected implementation directly over an index graph.
func (b *CycleEnumBuilder) Compute(g *core.IndexGraph) (*cycles.Iterator, error) {
	switch b.impl {
	case CycleEnumTarjan:
		return cycles.NewTarjanIterator(g)
	case CycleEnumJohnson:
		return cycles.NewJohnsonIterator(g)
	default:
		return nil, ErrOptionUnknown
	}
}

// ComputeIdentityCycles runs b over an identity graph's index graph. The
// returned iterator's paths are already over that index graph; callers
// translate vertices/edges back to identifiers via g.VertexID/g.EdgeID as
// needed, the same translate-at-the-boundary pattern identgraph.Graph
// itself uses.
func ComputeIdentityCycles[VId comparable, EId comparable](b *CycleEnumBuilder, g *identgraph.Graph[VId, EId]) (*cycles.Iterator, error) {
	return b.Compute(g.Index())
}
