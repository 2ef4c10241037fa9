package weights

// Numeric is the set of value types a weight container can sum over
// (spec §6: "numeric containers expose weightSum(edges)").
type Numeric interface {
	~int | ~int64 | ~float64
}

// Sum adds up c.Get(i) for every i in idxs — the weightSum(edges) operation
// of spec §6, generalized over any Numeric container.
func Sum[T Numeric](c Container[T], idxs []int) T {
	var total T
	for _, i := range idxs {
		total += c.Get(i)
	}

	return total
}

// Func adapts a plain function into a read-only Container, letting
// algorithms that only need a weight lookup (not the full container API)
// accept "any w func(e int) float64" style callers directly.
type Func[T any] func(idx int) T

// Get implements Container.
func (f Func[T]) Get(idx int) T { return f(idx) }

// Set implements Container but always panics: a Func is read-only by
// construction, since it has no backing store to write into.
func (f Func[T]) Set(int, T) { panic("weights: Func is read-only") }

// Len implements Container but always panics: a Func has no declared size.
func (f Func[T]) Len() int { panic("weights: Func has no declared length") }
