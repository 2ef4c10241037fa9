package mdst

import (
	"sort"

	"github.com/katalvlaran/graphalgo/core"
)

// Tarjan computes a minimum-weight arborescence of g rooted at root,
// spanning every vertex reachable from root, via Edmonds' optimum-branching
// algorithm with cycle contraction (spec §4.6). g is only ever read: no
// artificial edge is ever added to g itself, so the "copies its input
// before augmenting" requirement holds trivially — augmentation lives
// entirely in a parallel (src, dst, weight) edge list local to this call.
func Tarjan(g *core.IndexGraph, w Weight, root int) (*Result, error) {
	if err := checkDirected(g); err != nil {
		return nil, err
	}
	if !g.HasVertex(root) {
		return nil, ErrNoSuchVertex
	}

	n := g.NumVertices()
	reachable, err := reachableFrom(g, root)
	if err != nil {
		return nil, err
	}

	var edgeSet []int
	for _, e := range g.Edges() {
		u, v, err := g.EdgeEndpoints(e)
		if err != nil {
			return nil, err
		}
		if u != v && reachable[u] && reachable[v] {
			edgeSet = append(edgeSet, e)
		}
	}

	adj := make([][]int, n)
	for _, e := range edgeSet {
		u, _, _ := g.EdgeEndpoints(e)
		adj[u] = append(adj[u], e)
	}
	sccs := tarjanSCC(n, adj, g, reachable)

	rootSCC := -1
	for i, comp := range sccs {
		for _, v := range comp {
			if v == root {
				rootSCC = i
			}
		}
	}

	maxW := 0.0
	for _, e := range edgeSet {
		if ww := w(e); ww > maxW {
			maxW = ww
		}
	}
	highWeight := maxW + 1

	type synthEdge struct {
		src, dst int
	}
	var synth []synthEdge
	for i, comp := range sccs {
		if i == rootSCC || len(comp) == 0 {
			continue
		}
		synth = append(synth, synthEdge{src: comp[0], dst: root})
	}

	total := len(edgeSet) + len(synth)
	edgeSrc := make([]int, total)
	edgeDst := make([]int, total)
	edgeW := make([]float64, total)
	origOf := make([]int, total)
	for i, e := range edgeSet {
		u, v, _ := g.EdgeEndpoints(e)
		edgeSrc[i], edgeDst[i], edgeW[i], origOf[i] = u, v, w(e), e
	}
	for i, s := range synth {
		idx := len(edgeSet) + i
		edgeSrc[idx], edgeDst[idx], edgeW[idx], origOf[idx] = s.src, s.dst, highWeight, -1
	}

	enter, cnt, superPar, cycleOf, err := runEdmonds(n, root, edgeSrc, edgeDst, edgeW)
	if err != nil {
		return nil, err
	}
	final := expandArborescence(n, root, cnt, superPar, cycleOf, enter, edgeDst)

	var edges []int
	totalWeight := 0.0
	for v := 0; v < n; v++ {
		if v == root || !reachable[v] {
			continue
		}
		e := final[v]
		if e == -1 || origOf[e] == -1 {
			return nil, ErrNoArborescence
		}
		edges = append(edges, origOf[e])
		totalWeight += edgeW[e]
	}
	sort.Ints(edges)

	return &Result{root: root, edges: edges, totalWeight: totalWeight}, nil
}

// reachableFrom returns, for every vertex of g, whether it is reachable
// from root by following out-edges.
func reachableFrom(g *core.IndexGraph, root int) ([]bool, error) {
	n := g.NumVertices()
	visited := make([]bool, n)
	visited[root] = true
	stack := []int{root}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		out, err := g.OutEdges(v)
		if err != nil {
			return nil, err
		}
		for _, e := range out {
			u, err := g.EdgeEndpoint(e, v)
			if err != nil {
				return nil, err
			}
			if !visited[u] {
				visited[u] = true
				stack = append(stack, u)
			}
		}
	}

	return visited, nil
}

// tarjanSCC decomposes the subgraph induced by reachable vertices and adj's
// edges into strongly connected components, via the classic index/lowlink
// recursive algorithm.
func tarjanSCC(n int, adj [][]int, g *core.IndexGraph, reachable []bool) [][]int {
	index := make([]int, n)
	low := make([]int, n)
	onStack := make([]bool, n)
	for i := range index {
		index[i] = -1
	}
	var stack []int
	counter := 0
	var sccs [][]int

	var strongconnect func(v int)
	strongconnect = func(v int) {
		index[v] = counter
		low[v] = counter
		counter++
		stack = append(stack, v)
		onStack[v] = true

		for _, e := range adj[v] {
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
			var comp []int
			for {
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				onStack[top] = false
				comp = append(comp, top)
				if top == v {
					break
				}
			}
			sccs = append(sccs, comp)
		}
	}

	for v := 0; v < n; v++ {
		if reachable[v] && index[v] == -1 {
			strongconnect(v)
		}
	}

	return sccs
}

// runEdmonds runs the core contraction loop: for every vertex in turn,
// follow minimum incoming edges backward until reaching root, a vertex
// already settled by an earlier walk, or closing a cycle, contracting
// cycles as they are found. An edge whose endpoints both lie inside the
// same contracted super-vertex is discarded when popped. It returns, for
// every vertex id ever created (original 0..n-1 plus every contracted
// super-vertex), the edge chosen to enter it (enter), the final id count
// (cnt), the union-find-style parent array (superPar), and, for every
// contracted id, the ordered list of member ids merged into it (cycleOf).
func runEdmonds(n, root int, edgeSrc, edgeDst []int, edgeW []float64) (enter []int, cnt int, superPar []int, cycleOf [][]int, err error) {
	maxNodes := 2 * n
	if maxNodes < n+1 {
		maxNodes = n + 1
	}

	heaps := make([]*skewNode, maxNodes)
	hasIn := make([]bool, n)
	for e, d := range edgeDst {
		if d == root {
			continue
		}
		heaps[d] = insert(heaps[d], e, edgeW[e])
		hasIn[d] = true
	}

	superPar = make([]int, maxNodes)
	for i := range superPar {
		superPar[i] = i
	}
	find := func(x int) int {
		for superPar[x] != x {
			x = superPar[x]
		}

		return x
	}

	enter = make([]int, maxNodes)
	for i := range enter {
		enter[i] = -1
	}
	cycleOf = make([][]int, maxNodes)
	vis := make([]int, maxNodes)
	for i := range vis {
		vis[i] = -1
	}

	cnt = n
	for s := 0; s < n; s++ {
		// A vertex with no incoming edge is unreachable from root (the edge
		// list holds only edges among reachable vertices) and is left out.
		if s == root || !hasIn[s] {
			continue
		}
		cur := find(s)
		var path []int
		for find(cur) != find(root) && (vis[cur] == -1 || vis[cur] == s) {
			if vis[cur] == s {
				idx := -1
				for i, p := range path {
					if p == cur {
						idx = i

						break
					}
				}
				cycle := append([]int(nil), path[idx:]...)
				newV := cnt
				cnt++
				var merged *skewNode
				for _, m := range cycle {
					superPar[m] = newV
					merged = meld(merged, heaps[m])
					heaps[m] = nil
				}
				heaps[newV] = merged
				cycleOf[newV] = cycle
				path = path[:idx]
				cur = newV

				continue
			}
			if heaps[cur] == nil {
				return nil, 0, nil, nil, ErrNoArborescence
			}
			e, wgt, rest := popMin(heaps[cur])
			heaps[cur] = rest
			if find(edgeSrc[e]) == cur {
				continue
			}
			vis[cur] = s
			path = append(path, cur)
			enter[cur] = e
			if heaps[cur] != nil {
				heaps[cur] = push(heaps[cur], -wgt)
			}
			cur = find(edgeSrc[e])
		}
	}

	return enter, cnt, superPar, cycleOf, nil
}

// expandArborescence breaks every contracted cycle open at the point its
// surrounding supervertex was entered, recursively, to recover the single
// incoming edge each original vertex keeps in the final arborescence.
func expandArborescence(n, root, cnt int, superPar []int, cycleOf [][]int, enter, edgeDst []int) []int {
	find := func(x int) int {
		for superPar[x] != x {
			x = superPar[x]
		}

		return x
	}

	originalMembers := make([][]int, cnt)
	for v := 0; v < n; v++ {
		originalMembers[v] = []int{v}
	}
	childOfOriginal := make([]map[int]int, cnt)

	for newV := n; newV < cnt; newV++ {
		cycle := cycleOf[newV]
		if cycle == nil {
			continue
		}
		belongsTo := make(map[int]int)
		var all []int
		for _, m := range cycle {
			for _, d := range originalMembers[m] {
				belongsTo[d] = m
			}
			all = append(all, originalMembers[m]...)
		}
		originalMembers[newV] = all
		childOfOriginal[newV] = belongsTo
	}

	final := make([]int, n)
	for i := range final {
		final[i] = -1
	}

	var expand func(sv, incoming int)
	expand = func(sv, incoming int) {
		if sv < n {
			final[sv] = incoming

			return
		}
		d := edgeDst[incoming]
		broken := childOfOriginal[sv][d]
		for _, m := range cycleOf[sv] {
			if m == broken {
				expand(m, incoming)
			} else {
				expand(m, enter[m])
			}
		}
	}

	for v := 0; v < cnt; v++ {
		if v == root || find(v) != v || enter[v] == -1 {
			continue
		}
		expand(v, enter[v])
	}

	return final
}
