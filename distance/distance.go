package distance

import (
	"math"
	"sync"

	"github.com/katalvlaran/graphalgo/sssp"
)

// Measures computes eccentricity-derived distance measures over an
// all-pairs shortest-path table (spec §4.11). All derived values are
// cached after first evaluation.
type Measures struct {
	table *sssp.AllPairsTable

	eccOnce sync.Once
	ecc     []float64

	radiusOnce sync.Once
	radius     float64

	diameterOnce sync.Once
	diameter     float64

	centerOnce sync.Once
	center     []int

	peripheryOnce sync.Once
	periphery     []int
}

// NewMeasures builds a Measures view over an already-computed all-pairs
// table.
func NewMeasures(table *sssp.AllPairsTable) *Measures {
	return &Measures{table: table}
}

// Eccentricity returns eccentricity(v) = max_u D[v][u].
func (m *Measures) Eccentricity(v int) float64 {
	m.eccOnce.Do(m.computeEcc)

	return m.ecc[v]
}

func (m *Measures) computeEcc() {
	n := len(m.table.Table)
	m.ecc = make([]float64, n)
	for v := 0; v < n; v++ {
		max := 0.0
		for u := 0; u < n; u++ {
			if m.table.Table[v][u] > max {
				max = m.table.Table[v][u]
			}
		}
		m.ecc[v] = max
	}
}

// Radius returns min_v eccentricity(v).
func (m *Measures) Radius() float64 {
	m.radiusOnce.Do(func() {
		m.eccOnce.Do(m.computeEcc)
		min := math.Inf(1)
		for _, e := range m.ecc {
			if e < min {
				min = e
			}
		}
		m.radius = min
	})

	return m.radius
}

// Diameter returns max_v eccentricity(v).
func (m *Measures) Diameter() float64 {
	m.diameterOnce.Do(func() {
		m.eccOnce.Do(m.computeEcc)
		max := 0.0
		for _, e := range m.ecc {
			if e > max {
				max = e
			}
		}
		m.diameter = max
	})

	return m.diameter
}

// epsilonOf returns 10^-8 * x if x is finite, else 0 (spec §4.11).
func epsilonOf(x float64) float64 {
	if math.IsInf(x, 1) {
		return 0
	}

	return 1e-8 * x
}

// Center returns { v : eccentricity(v) <= radius*(1+epsilon) }.
func (m *Measures) Center() []int {
	m.centerOnce.Do(func() {
		m.eccOnce.Do(m.computeEcc)
		radius := m.Radius()
		threshold := radius * (1 + epsilonOf(radius))
		for v, e := range m.ecc {
			if e <= threshold {
				m.center = append(m.center, v)
			}
		}
	})

	return m.center
}

// Periphery returns { v : eccentricity(v) >= diameter*(1-epsilon) },
// symmetric to Center (spec §4.11).
func (m *Measures) Periphery() []int {
	m.peripheryOnce.Do(func() {
		m.eccOnce.Do(m.computeEcc)
		diameter := m.Diameter()
		threshold := diameter * (1 - epsilonOf(diameter))
		for v, e := range m.ecc {
			if e >= threshold {
				m.periphery = append(m.periphery, v)
			}
		}
	})

	return m.periphery
}
