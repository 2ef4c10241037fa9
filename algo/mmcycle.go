package algo

import (
	"github.com/katalvlaran/graphalgo/core"
	"github.com/katalvlaran/graphalgo/identgraph"
	"github.com/katalvlaran/graphalgo/mmcycle"
)

// MeanCycleImpl enumerates the minimum-mean-cycle implementations spec.md
// §4.9 catalogs.
type MeanCycleImpl int

const (
	MeanCycleHoward MeanCycleImpl = iota
	MeanCycleDasdanGupta
)

// MeanCycleBuilder computes a minimum mean cycle using one fixed
// implementation, selected at construction time.
type MeanCycleBuilder struct {
	impl MeanCycleImpl
}

// NewMeanCycle validates impl and returns a MeanCycleBuilder. Fails with
// ErrOptionUnknown if impl is not one of the MeanCycleImpl constants.
func NewMeanCycle(impl MeanCycleImpl) (*MeanCycleBuilder, error) {
	switch impl {
	case MeanCycleHoward, MeanCycleDasdanGupta:
	default:
		return nil, ErrOptionUnknown
	}

	return &MeanCycleBuilder{impl: impl}, nil
}

// Compute runs the selected implementation directly over an index graph.
func (b *MeanCycleBuilder) Compute(g *core.IndexGraph, w mmcycle.Weight) (*mmcycle.Result, error) {
	switch b.impl {
	case MeanCycleHoward:
		return mmcycle.Howard(g, w)
	case MeanCycleDasdanGupta:
		return mmcycle.DasdanGupta(g, w)
	default:
		return nil, ErrOptionUnknown
	}
}

// ComputeIdentityMeanCycle runs b over an identity graph, translating the
// edge-keyed weight function through the identity mapping.
func ComputeIdentityMeanCycle[VId comparable, EId comparable](b *MeanCycleBuilder, g *identgraph.Graph[VId, EId], w func(EId) float64) (*mmcycle.Result, error) {
	return b.Compute(g.Index(), func(e int) float64 { return w(g.EdgeID(e)) })
}
