package mmcycle

import (
	"github.com/katalvlaran/graphalgo/core"
	"github.com/katalvlaran/graphalgo/gpath"
	"github.com/katalvlaran/graphalgo/partition"
)

// Howard finds a minimum-mean cycle of g via policy iteration, or returns
// (nil, nil) if g is acyclic (spec §4.9).
func Howard(g *core.IndexGraph, w Weight) (*Result, error) {
	return run(g, w, howardComponent)
}

// DasdanGupta finds a minimum-mean cycle of g via the Dasdan-Gupta/Karp
// shortest-walk formula, or returns (nil, nil) if g is acyclic (spec §4.9).
func DasdanGupta(g *core.IndexGraph, w Weight) (*Result, error) {
	return run(g, w, dasdanGuptaComponent)
}

// componentSearch runs one algorithm over a single strongly connected
// component's induced subgraph (n, outEdges/edgeSrc/edgeDst in local
// indices, w2 in local edge indices) and returns the witnessing cycle as a
// local edge-index list, or nil if the component has no cycle reachable by
// this search (should not happen for a genuine non-trivial SCC; run skips
// the component if it does).
type componentSearch func(n int, outEdges [][]int, edgeSrc, edgeDst []int, w2 func(int) float64) []int

func howardComponent(n int, outEdges [][]int, edgeSrc, edgeDst []int, w2 func(int) float64) []int {
	return howardPolicyIteration(n, outEdges, edgeDst, w2)
}

func dasdanGuptaComponent(n int, outEdges [][]int, edgeSrc, edgeDst []int, w2 func(int) float64) []int {
	mean, ok := dasdanGuptaMean(n, outEdges, edgeDst, w2)
	if !ok {
		return nil
	}

	return extractMeanCycle(n, outEdges, edgeSrc, edgeDst, w2, mean)
}

func run(g *core.IndexGraph, w Weight, search componentSearch) (*Result, error) {
	if err := checkDirected(g); err != nil {
		return nil, err
	}

	n := g.NumVertices()
	if n == 0 {
		return nil, nil
	}

	block := sccBlocks(g)
	vp, err := partition.New(g, block)
	if err != nil {
		return nil, err
	}
	k := vp.NumberOfBlocks()

	var best *Result
	for b := 0; b < k; b++ {
		verts := vp.BlockVertices(b)
		edges := vp.BlockEdges(b)
		if len(edges) == 0 {
			continue
		}

		localOf := make(map[int]int, len(verts))
		for i, v := range verts {
			localOf[v] = i
		}
		localN := len(verts)
		edgeSrc := make([]int, len(edges))
		edgeDst := make([]int, len(edges))
		origEdge := make([]int, len(edges))
		outEdges := make([][]int, localN)
		for i, e := range edges {
			u, v, err := g.EdgeEndpoints(e)
			if err != nil {
				return nil, err
			}
			lu, lv := localOf[u], localOf[v]
			edgeSrc[i], edgeDst[i], origEdge[i] = lu, lv, e
			outEdges[lu] = append(outEdges[lu], i)
		}

		hasOut := true
		for _, oe := range outEdges {
			if len(oe) == 0 {
				hasOut = false

				break
			}
		}
		if !hasOut {
			continue
		}

		w2 := func(localE int) float64 { return w(origEdge[localE]) }
		localCycle := search(localN, outEdges, edgeSrc, edgeDst, w2)
		if len(localCycle) == 0 {
			continue
		}

		total := 0.0
		origEdges := make([]int, len(localCycle))
		for i, le := range localCycle {
			origEdges[i] = origEdge[le]
			total += w(origEdge[le])
		}
		mean := total / float64(len(origEdges))

		if best == nil || mean < best.mean {
			startLocal := edgeSrc[localCycle[0]]
			startOrig := verts[startLocal]
			best = &Result{
				cycle: gpath.New(g, startOrig, startOrig, origEdges),
				mean:  mean,
			}
		}
	}

	return best, nil
}

// sccBlocks decomposes g into strongly connected components via Tarjan's
// index/lowlink algorithm, returning a per-vertex block assignment suitable
// for partition.New.
func sccBlocks(g *core.IndexGraph) []int {
	n := g.NumVertices()
	index := make([]int, n)
	low := make([]int, n)
	onStack := make([]bool, n)
	block := make([]int, n)
	for i := range index {
		index[i] = -1
	}
	var stack []int
	counter, sccCount := 0, 0

	var strongconnect func(v int)
	strongconnect = func(v int) {
		index[v] = counter
		low[v] = counter
		counter++
		stack = append(stack, v)
		onStack[v] = true

		out, _ := g.OutEdges(v)
		for _, e := range out {
			w, err := g.EdgeEndpoint(e, v)
			if err != nil {
				continue
			}
			if index[w] == -1 {
				strongconnect(w)
				if low[w] < low[v] {
					low[v] = low[w]
				}
			} else if onStack[w] {
				if index[w] < low[v] {
					low[v] = index[w]
				}
			}
		}

		if low[v] == index[v] {
			for {
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				onStack[top] = false
				block[top] = sccCount
				if top == v {
					break
				}
			}
			sccCount++
		}
	}

	for v := 0; v < n; v++ {
		if index[v] == -1 {
			strongconnect(v)
		}
	}

	return block
}
