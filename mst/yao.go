package mst

import (
	"math/bits"
	"sort"

	"github.com/katalvlaran/graphalgo/containers"
	"github.com/katalvlaran/graphalgo/core"
)

// Yao computes a minimum spanning forest via Borůvka-style rounds in which
// each vertex's incident edges are pre-partitioned into ⌈log₂ n⌉ weight
// buckets, so a round only has to scan the first non-empty bucket per
// component to find a candidate lightest outgoing edge instead of every
// incident edge (spec §4.5). Complexity: O(m log log n + n log n).
func Yao(g *core.IndexGraph, w Weight) (*Result, error) {
	if err := checkUndirected(g); err != nil {
		return nil, err
	}

	n := g.NumVertices()
	if n == 0 {
		return newResult(nil, w), nil
	}
	numBuckets := bits.Len(uint(n - 1))
	if numBuckets == 0 {
		numBuckets = 1
	}

	// buckets[v][b] holds v's incident edges assigned to bucket b, sorted
	// ascending by weight.
	buckets := make([][][]int, n)
	for v := 0; v < n; v++ {
		out, err := g.OutEdges(v)
		if err != nil {
			return nil, err
		}
		incident := make([]int, 0, len(out))
		for _, e := range out {
			u, vv, _ := g.EdgeEndpoints(e)
			if u == vv {
				continue
			}
			incident = append(incident, e)
		}
		sort.Slice(incident, func(i, j int) bool { return w(incident[i]) < w(incident[j]) })

		vb := make([][]int, numBuckets)
		bucketSize := (len(incident) + numBuckets - 1) / numBuckets
		if bucketSize == 0 {
			bucketSize = 1
		}
		for i, e := range incident {
			b := i / bucketSize
			if b >= numBuckets {
				b = numBuckets - 1
			}
			vb[b] = append(vb[b], e)
		}
		buckets[v] = vb
	}

	uf := containers.NewUnionFind(n)
	cursor := make([][]int, n) // cursor[v][b] = next unexamined index in buckets[v][b]
	for v := range cursor {
		cursor[v] = make([]int, numBuckets)
	}
	accepted := make([]int, 0, n)

	lightestFrom := func(v int) (int, bool) {
		root := uf.Find(v)
		for b := 0; b < numBuckets; b++ {
			bucket := buckets[v][b]
			for cursor[v][b] < len(bucket) {
				e := bucket[cursor[v][b]]
				u, vv, _ := g.EdgeEndpoints(e)
				other := u
				if other == v {
					other = vv
				}
				if uf.Find(other) == root {
					cursor[v][b]++

					continue
				}

				return e, true
			}
		}

		return 0, false
	}

	for {
		cheapest := make(map[int]int)
		for v := 0; v < n; v++ {
			e, ok := lightestFrom(v)
			if !ok {
				continue
			}
			root := uf.Find(v)
			if best, ok := cheapest[root]; !ok || w(e) < w(best) {
				cheapest[root] = e
			}
		}
		if len(cheapest) == 0 {
			break
		}

		changed := false
		seen := make(map[int]bool, len(cheapest))
		for _, e := range cheapest {
			if seen[e] {
				continue
			}
			seen[e] = true
			u, v, _ := g.EdgeEndpoints(e)
			if uf.Union(u, v) {
				accepted = append(accepted, e)
				changed = true
			}
		}
		if !changed {
			break
		}
	}

	return newResult(accepted, w), nil
}
