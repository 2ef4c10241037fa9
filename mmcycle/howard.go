package mmcycle

import "math"

// howardPolicyIteration runs Howard's policy iteration for the minimum
// mean cycle on a graph where every vertex has at least one outgoing edge
// (guaranteed by the caller restricting to one non-trivial strongly
// connected component). outEdges[v] lists candidate edge indices leaving
// v; edgeDst[e] is e's target; w(e) is e's weight. Returns the witnessing
// cycle as a local edge-index list; the caller computes its mean weight.
func howardPolicyIteration(n int, outEdges [][]int, edgeDst []int, w func(int) float64) []int {
	const epsilon = 1e-9

	next := make([]int, n)
	for v := 0; v < n; v++ {
		next[v] = outEdges[v][0]
	}

	value := make([]float64, n)
	h := make([]float64, n)
	var cycles [][]int

	for iter := 0; iter < 4*n+16; iter++ {
		cycles = cycles[:0]
		state := make([]int, n) // 0 unvisited, 1 in-progress, 2 done
		cycleID := make([]int, n)

		settleTail := func(path []int, lastKnown int) {
			for i := len(path) - 1; i >= 0; i-- {
				u := path[i]
				nx := edgeDst[next[u]]
				value[u] = value[nx]
				h[u] = h[nx] + w(next[u]) - value[nx]
				cycleID[u] = cycleID[nx]
				state[u] = 2
			}
			_ = lastKnown
		}

		for start := 0; start < n; start++ {
			if state[start] != 0 {
				continue
			}
			var path []int
			v := start
			for state[v] == 0 {
				state[v] = 1
				path = append(path, v)
				v = edgeDst[next[v]]
			}
			if state[v] == 1 {
				idx := 0
				for i, p := range path {
					if p == v {
						idx = i

						break
					}
				}
				cyc := append([]int(nil), path[idx:]...)
				id := len(cycles)
				cycles = append(cycles, cyc)
				total := 0.0
				for _, u := range cyc {
					total += w(next[u])
				}
				mean := total / float64(len(cyc))
				h[cyc[0]] = 0
				cur := cyc[0]
				for i := 1; i < len(cyc); i++ {
					nxt := edgeDst[next[cur]]
					h[nxt] = h[cur] - w(next[cur]) + mean
					cur = nxt
				}
				for _, u := range cyc {
					value[u] = mean
					cycleID[u] = id
					state[u] = 2
				}
				settleTail(path[:idx], v)
			} else {
				settleTail(path, v)
			}
		}

		improved := false
		for v := 0; v < n; v++ {
			bestE := next[v]
			bestMean := value[edgeDst[bestE]]
			bestVal := w(bestE) + h[edgeDst[bestE]]
			for _, e := range outEdges[v] {
				d := edgeDst[e]
				cand := w(e) + h[d]
				if value[d] < bestMean-epsilon || (value[d] <= bestMean+epsilon && cand < bestVal-epsilon) {
					bestMean = value[d]
					bestVal = cand
					bestE = e
				}
			}
			if bestE != next[v] {
				next[v] = bestE
				improved = true
			}
		}

		if !improved {
			break
		}
	}

	bestMean := math.Inf(1)
	var bestCyc []int
	for _, cyc := range cycles {
		total := 0.0
		for _, u := range cyc {
			total += w(next[u])
		}
		mean := total / float64(len(cyc))
		if mean < bestMean {
			bestMean = mean
			bestCyc = cyc
		}
	}

	edges := make([]int, len(bestCyc))
	for i, u := range bestCyc {
		edges[i] = next[u]
	}

	return edges
}
