package mdst

// skewNode is a node of a skew heap (a self-adjusting meldable heap) with a
// lazily-propagated additive tag, the one piece of machinery Tarjan's
// algorithm needs that containers.Heap does not provide: O(log n) amortized
// meld of two heaps, and O(1) "add delta to every element" so that a
// vertex's pool of candidate incoming edges can be cheaply re-weighted as
// cycles contract around it (spec §4.6 step 4's "cumulative vertex-offset").
// Kept private to this package: it is a narrower, lazier tool than the
// general-purpose containers.Heap used everywhere else in this module.
type skewNode struct {
	edge int
	w    float64
	lazy float64
	l, r *skewNode
}

// push adds delta to t's own weight and stores it to propagate to t's
// children the next time they are touched.
func push(t *skewNode, delta float64) *skewNode {
	if t == nil {
		return nil
	}
	t.w += delta
	t.lazy += delta

	return t
}

// settle propagates t's lazy tag one level down and clears it.
func settle(t *skewNode) {
	if t == nil || t.lazy == 0 {
		return
	}
	t.l = push(t.l, t.lazy)
	t.r = push(t.r, t.lazy)
	t.lazy = 0
}

// meld merges two skew heaps into one, honoring any unsettled lazy tags.
func meld(a, b *skewNode) *skewNode {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	if b.w < a.w {
		a, b = b, a
	}
	settle(a)
	a.r = meld(a.r, b)
	a.l, a.r = a.r, a.l

	return a
}

// insert melds a freshly allocated single-element heap into t.
func insert(t *skewNode, edge int, w float64) *skewNode {
	return meld(t, &skewNode{edge: edge, w: w})
}

// popMin removes and returns the minimum element's edge and current
// (lazily-adjusted) weight, along with the resulting heap.
func popMin(t *skewNode) (edge int, w float64, rest *skewNode) {
	settle(t)

	return t.edge, t.w, meld(t.l, t.r)
}
