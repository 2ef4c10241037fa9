package algo

import (
	"math/rand"

	"github.com/katalvlaran/graphalgo/core"
	"github.com/katalvlaran/graphalgo/identgraph"
	"github.com/katalvlaran/graphalgo/mst"
)

// MSTImpl enumerates the minimum-spanning-tree implementations spec.md
// §4.5 catalogs.
type MSTImpl int

const (
	MSTKruskal MSTImpl = iota
	MSTPrim
	MSTBoruvka
	MSTYao
	MSTFredmanTarjan
	MSTKargerKleinTarjan
)

// MSTOption customizes an MSTBuilder.
type MSTOption func(*mstConfig)

type mstConfig struct {
	rng *rand.Rand
}

// WithMSTRand supplies the RNG MSTKargerKleinTarjan needs; ignored by every
// other implementation. Defaults to a fixed seed if never set, so
// MSTKargerKleinTarjan is usable without configuration.
func WithMSTRand(r *rand.Rand) MSTOption {
	return func(c *mstConfig) {
		if r != nil {
			c.rng = r
		}
	}
}

// MSTBuilder computes a minimum spanning forest using one fixed
// implementation, selected at construction time (spec.md Design Notes §9).
type MSTBuilder struct {
	impl MSTImpl
	cfg  mstConfig
}

// NewMST validates impl and resolves opts into an MSTBuilder. Fails with
// ErrOptionUnknown if impl is not one of the MSTImpl constants.
func NewMST(impl MSTImpl, opts ...MSTOption) (*MSTBuilder, error) {
	switch impl {
	case MSTKruskal, MSTPrim, MSTBoruvka, MSTYao, MSTFredmanTarjan, MSTKargerKleinTarjan:
	default:
		return nil, ErrOptionUnknown
	}
	cfg := mstConfig{rng: rand.New(rand.NewSource(1))}
	for _, o := range opts {
		o(&cfg)
	}

	return &MSTBuilder{impl: impl, cfg: cfg}, nil
}

// Compute runs the selected implementation directly over an index graph;
// this is the variant every other package (and ComputeIdentityMST) calls into.
func (b *MSTBuilder) Compute(g *core.IndexGraph, w mst.Weight) (*mst.Result, error) {
	switch b.impl {
	case MSTKruskal:
		return mst.Kruskal(g, w)
	case MSTPrim:
		return mst.Prim(g, w)
	case MSTBoruvka:
		return mst.Boruvka(g, w)
	case MSTYao:
		return mst.Yao(g, w)
	case MSTFredmanTarjan:
		return mst.FredmanTarjan(g, w)
	case MSTKargerKleinTarjan:
		return mst.KargerKleinTarjan(g, w, b.cfg.rng)
	default:
		return nil, ErrOptionUnknown
	}
}

// ComputeIdentityMST runs b over an identity graph, translating the
// edge-keyed weight function through the identity mapping.
func ComputeIdentityMST[VId comparable, EId comparable](b *MSTBuilder, g *identgraph.Graph[VId, EId], w func(EId) float64) (*mst.Result, error) {
	return b.Compute(g.Index(), func(e int) float64 { return w(g.EdgeID(e)) })
}
