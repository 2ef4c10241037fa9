package mmcycle

import "math"

// dasdanGuptaMean computes the minimum mean cycle weight of a strongly
// connected graph via the Dasdan-Gupta/Karp shortest-walk formula: D[k][v]
// is the minimum weight of a walk of exactly k edges ending at v, starting
// simultaneously from every vertex at k=0 (so the formula finds the global
// minimum over the whole component without picking an arbitrary source).
// The minimum mean cycle weight is min_v max_{0<=k<n} (D[n][v]-D[k][v])/(n-k).
func dasdanGuptaMean(n int, outEdges [][]int, edgeDst []int, w func(int) float64) (float64, bool) {
	inf := math.Inf(1)
	d := make([][]float64, n+1)
	for k := range d {
		d[k] = make([]float64, n)
		for v := range d[k] {
			d[k][v] = inf
		}
	}
	for v := 0; v < n; v++ {
		d[0][v] = 0
	}

	for k := 1; k <= n; k++ {
		for u := 0; u < n; u++ {
			if d[k-1][u] == inf {
				continue
			}
			for _, e := range outEdges[u] {
				v := edgeDst[e]
				cand := d[k-1][u] + w(e)
				if cand < d[k][v] {
					d[k][v] = cand
				}
			}
		}
	}

	best := inf
	for v := 0; v < n; v++ {
		if d[n][v] == inf {
			continue
		}
		worst := math.Inf(-1)
		for k := 0; k < n; k++ {
			if d[k][v] == inf {
				continue
			}
			q := (d[n][v] - d[k][v]) / float64(n-k)
			if q > worst {
				worst = q
			}
		}
		if worst < best {
			best = worst
		}
	}

	if math.IsInf(best, 1) || math.IsInf(best, -1) {
		return 0, false
	}

	return best, true
}

// extractMeanCycle recovers an actual cycle of mean weight mu by
// reweighting every edge by -(mu+δ), for a small margin δ, and running
// Bellman-Ford for n rounds: the margin makes every minimum-mean cycle
// strictly negative, so relaxation is still active in the n-th round.
// Walking n steps back via recorded predecessors from a vertex relaxed on
// that final round is guaranteed (by pigeonhole over n+1 visited positions
// across n vertices) to land inside a negative cycle of the predecessor
// graph, whose mean is below mu+δ.
func extractMeanCycle(n int, outEdges [][]int, edgeSrc, edgeDst []int, w func(int) float64, mu float64) []int {
	const epsilon = 1e-9
	shift := mu + 1e-6*(1+math.Abs(mu))

	dist := make([]float64, n)
	predEdge := make([]int, n)
	for v := range predEdge {
		predEdge[v] = -1
	}

	last := -1
	for it := 0; it < n; it++ {
		updated := false
		for u := 0; u < n; u++ {
			for _, e := range outEdges[u] {
				v := edgeDst[e]
				cand := dist[u] + (w(e) - shift)
				if cand < dist[v]-epsilon {
					dist[v] = cand
					predEdge[v] = e
					updated = true
					last = v
				}
			}
		}
		if !updated {
			break
		}
	}
	if last == -1 {
		return nil
	}

	v := last
	for i := 0; i < n; i++ {
		e := predEdge[v]
		if e == -1 {
			return nil
		}
		v = edgeSrc[e]
	}

	var cycleEdges []int
	cur := v
	for {
		e := predEdge[cur]
		if e == -1 {
			return nil
		}
		cycleEdges = append(cycleEdges, e)
		cur = edgeSrc[e]
		if cur == v {
			break
		}
	}
	for i, j := 0, len(cycleEdges)-1; i < j; i, j = i+1, j-1 {
		cycleEdges[i], cycleEdges[j] = cycleEdges[j], cycleEdges[i]
	}

	return cycleEdges
}
