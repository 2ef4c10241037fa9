package graphgen

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/graphalgo/core"
	"github.com/katalvlaran/graphalgo/weights"
)

// ErrTooFewVertices indicates a size parameter (n, rows, cols) is smaller
// than the constructor's minimum.
var ErrTooFewVertices = errors.New("graphgen: parameter too small")

// ErrInvalidProbability indicates a probability parameter lies outside
// [0, 1].
var ErrInvalidProbability = errors.New("graphgen: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor was invoked without
// an RNG resolved into the config (WithSeed/WithRand).
var ErrNeedRandSource = errors.New("graphgen: rng is required")

// Config holds the resolved randomness policy for a constructor run: the
// RNG (nil unless WithSeed/WithRand was given; RandomSparse needs one for
// 0 < p < 1) and the function used to draw each edge's weight, which is
// called with that RNG, nil or not, for every edge added and defaults to
// the constant 1.
type Config struct {
	rng      *rand.Rand
	weightFn func(*rand.Rand) float64
}

// Option customizes a Config before construction begins.
type Option func(*Config)

// WithSeed seeds a new deterministic RNG from seed.
func WithSeed(seed int64) Option {
	return func(c *Config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand installs an explicit RNG. A nil r is a no-op.
func WithRand(r *rand.Rand) Option {
	return func(c *Config) {
		if r != nil {
			c.rng = r
		}
	}
}

// WithWeightFn overrides the per-edge weight generator. A nil fn is a no-op.
func WithWeightFn(fn func(*rand.Rand) float64) Option {
	return func(c *Config) {
		if fn != nil {
			c.weightFn = fn
		}
	}
}

func newConfig(opts ...Option) *Config {
	cfg := &Config{weightFn: func(*rand.Rand) float64 { return 1 }}
	for _, o := range opts {
		o(cfg)
	}

	return cfg
}

// Constructor applies one deterministic topology to g, filling in w (if
// non-nil) with each edge's weight as it adds it.
type Constructor func(g *core.IndexGraph, w *weights.Dense[float64], cfg *Config) error

// Build resolves opts into a Config and applies every constructor in order
// against g (and w, if non-nil). g is built by the caller via
// core.NewDirected/core.NewUndirected, since directedness is a constructor
// choice rather than a GraphOption in core. The first constructor error is
// wrapped with its index and returned immediately.
func Build(g *core.IndexGraph, w *weights.Dense[float64], opts []Option, cons ...Constructor) error {
	cfg := newConfig(opts...)
	for i, c := range cons {
		if c == nil {
			return fmt.Errorf("graphgen: nil constructor at index %d", i)
		}
		if err := c(g, w, cfg); err != nil {
			return fmt.Errorf("graphgen: constructor %d: %w", i, err)
		}
	}

	return nil
}

// setWeight records a weight for newly-added edge e, growing w first: w may
// have been constructed before this edge existed, and core.IndexGraph only
// notifies weight containers on removal, not insertion (see weights.Dense.
// Extend), so the constructor that just grew the graph is responsible for
// growing w to match.
func setWeight(w *weights.Dense[float64], e int, cfg *Config) {
	if w == nil {
		return
	}
	w.Extend(e + 1)
	w.Set(e, cfg.weightFn(cfg.rng))
}
