package graphgen

import (
	"fmt"

	"github.com/katalvlaran/graphalgo/core"
	"github.com/katalvlaran/graphalgo/weights"
)

const (
	minCycleNodes    = 3
	minPathNodes     = 2
	minStarNodes     = 2
	minWheelNodes    = 4 // outer ring has n-1 >= 3 vertices
	minCompleteNodes = 1
	minGridDim       = 1
)

// Cycle returns a Constructor that adds n fresh vertices and wires them
// into a simple ring 0 -> 1 -> ... -> (n-1) -> 0 (n >= 3).
func Cycle(n int) Constructor {
	return func(g *core.IndexGraph, w *weights.Dense[float64], cfg *Config) error {
		if n < minCycleNodes {
			return fmt.Errorf("graphgen.Cycle: n=%d < %d: %w", n, minCycleNodes, ErrTooFewVertices)
		}
		ids := g.AddVertices(n)
		for i := 0; i < n; i++ {
			e, err := g.AddEdge(ids[i], ids[(i+1)%n])
			if err != nil {
				return fmt.Errorf("graphgen.Cycle: AddEdge: %w", err)
			}
			setWeight(w, e, cfg)
		}

		return nil
	}
}

// Path returns a Constructor that adds n fresh vertices and wires them into
// a simple path 0 -> 1 -> ... -> (n-1) (n >= 2).
func Path(n int) Constructor {
	return func(g *core.IndexGraph, w *weights.Dense[float64], cfg *Config) error {
		if n < minPathNodes {
			return fmt.Errorf("graphgen.Path: n=%d < %d: %w", n, minPathNodes, ErrTooFewVertices)
		}
		ids := g.AddVertices(n)
		for i := 1; i < n; i++ {
			e, err := g.AddEdge(ids[i-1], ids[i])
			if err != nil {
				return fmt.Errorf("graphgen.Path: AddEdge: %w", err)
			}
			setWeight(w, e, cfg)
		}

		return nil
	}
}

// Star returns a Constructor that adds n fresh vertices — the first is the
// hub, the remaining n-1 are leaves — and wires a spoke from the hub to
// each leaf (n >= 2).
func Star(n int) Constructor {
	return func(g *core.IndexGraph, w *weights.Dense[float64], cfg *Config) error {
		if n < minStarNodes {
			return fmt.Errorf("graphgen.Star: n=%d < %d: %w", n, minStarNodes, ErrTooFewVertices)
		}
		ids := g.AddVertices(n)
		hub := ids[0]
		for i := 1; i < n; i++ {
			e, err := g.AddEdge(hub, ids[i])
			if err != nil {
				return fmt.Errorf("graphgen.Star: AddEdge: %w", err)
			}
			setWeight(w, e, cfg)
		}

		return nil
	}
}

// Wheel returns a Constructor that builds a cycle of n-1 vertices plus one
// hub vertex spoked to every ring vertex (n >= 4).
func Wheel(n int) Constructor {
	return func(g *core.IndexGraph, w *weights.Dense[float64], cfg *Config) error {
		if n < minWheelNodes {
			return fmt.Errorf("graphgen.Wheel: n=%d < %d: %w", n, minWheelNodes, ErrTooFewVertices)
		}
		ringSize := n - 1
		ring := g.AddVertices(ringSize)
		for i := 0; i < ringSize; i++ {
			e, err := g.AddEdge(ring[i], ring[(i+1)%ringSize])
			if err != nil {
				return fmt.Errorf("graphgen.Wheel: AddEdge(ring): %w", err)
			}
			setWeight(w, e, cfg)
		}
		hub := g.AddVertex()
		for i := 0; i < ringSize; i++ {
			e, err := g.AddEdge(hub, ring[i])
			if err != nil {
				return fmt.Errorf("graphgen.Wheel: AddEdge(spoke): %w", err)
			}
			setWeight(w, e, cfg)
		}

		return nil
	}
}

// Complete returns a Constructor that adds n fresh vertices and wires every
// unordered pair {i, j}, i < j (n >= 1).
func Complete(n int) Constructor {
	return func(g *core.IndexGraph, w *weights.Dense[float64], cfg *Config) error {
		if n < minCompleteNodes {
			return fmt.Errorf("graphgen.Complete: n=%d < %d: %w", n, minCompleteNodes, ErrTooFewVertices)
		}
		ids := g.AddVertices(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				e, err := g.AddEdge(ids[i], ids[j])
				if err != nil {
					return fmt.Errorf("graphgen.Complete: AddEdge: %w", err)
				}
				setWeight(w, e, cfg)
			}
		}

		return nil
	}
}

// Grid returns a Constructor that adds a rows*cols 4-neighborhood grid,
// vertex (r, c) occupying index r*cols+c (row-major), wiring each cell to
// its right and bottom neighbor (rows, cols >= 1).
func Grid(rows, cols int) Constructor {
	return func(g *core.IndexGraph, w *weights.Dense[float64], cfg *Config) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("graphgen.Grid: rows=%d cols=%d < %d: %w", rows, cols, minGridDim, ErrTooFewVertices)
		}
		ids := g.AddVertices(rows * cols)
		at := func(r, c int) int { return ids[r*cols+c] }
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					e, err := g.AddEdge(at(r, c), at(r, c+1))
					if err != nil {
						return fmt.Errorf("graphgen.Grid: AddEdge(right): %w", err)
					}
					setWeight(w, e, cfg)
				}
				if r+1 < rows {
					e, err := g.AddEdge(at(r, c), at(r+1, c))
					if err != nil {
						return fmt.Errorf("graphgen.Grid: AddEdge(bottom): %w", err)
					}
					setWeight(w, e, cfg)
				}
			}
		}

		return nil
	}
}

// RandomSparse returns a Constructor that adds n fresh vertices and includes
// each admissible edge independently with probability p: unordered pairs
// {i,j}, i<j for undirected graphs, ordered pairs (i,j) for directed graphs
// (self-loops included only if g.AllowsSelfLoops()). Requires a non-nil RNG
// in cfg for 0 < p < 1 (n >= 1, 0 <= p <= 1).
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.IndexGraph, w *weights.Dense[float64], cfg *Config) error {
		if n < minCompleteNodes {
			return fmt.Errorf("graphgen.RandomSparse: n=%d < %d: %w", n, minCompleteNodes, ErrTooFewVertices)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("graphgen.RandomSparse: p=%g not in [0,1]: %w", p, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > 0 && p < 1 {
			return fmt.Errorf("graphgen.RandomSparse: %w", ErrNeedRandSource)
		}

		ids := g.AddVertices(n)
		include := func(i, j int) bool {
			if cfg.rng == nil {
				return p == 1
			}

			return cfg.rng.Float64() < p
		}

		add := func(u, v int) error {
			e, err := g.AddEdge(u, v)
			if err != nil {
				return fmt.Errorf("graphgen.RandomSparse: AddEdge: %w", err)
			}
			setWeight(w, e, cfg)

			return nil
		}

		if g.Directed() {
			for i := 0; i < n; i++ {
				for j := 0; j < n; j++ {
					if i == j && !g.AllowsSelfLoops() {
						continue
					}
					if include(i, j) {
						if err := add(ids[i], ids[j]); err != nil {
							return err
						}
					}
				}
			}

			return nil
		}

		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if include(i, j) {
					if err := add(ids[i], ids[j]); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
