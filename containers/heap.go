package containers

// Heap is a binary min-heap over int payloads, ordered by an externally
// supplied weight function rather than a fixed comparator — the same shape
// Dijkstra, Prim, and Fredman-Tarjan all need, each with its own notion of
// "current best weight" for an item.
type Heap struct {
	items  []int
	weight func(item int) float64
	pos    map[int]int // item -> index in items, for Fix/Remove
}

// NewHeap builds an empty heap that orders items by weight(item) ascending.
func NewHeap(weight func(item int) float64) *Heap {
	return &Heap{weight: weight, pos: make(map[int]int)}
}

// Len returns the number of items in the heap.
func (h *Heap) Len() int { return len(h.items) }

// Empty reports whether the heap has no items.
func (h *Heap) Empty() bool { return len(h.items) == 0 }

// Contains reports whether item is currently in the heap.
func (h *Heap) Contains(item int) bool {
	_, ok := h.pos[item]

	return ok
}

// Push inserts item, positioning it by the current value of weight(item).
func (h *Heap) Push(item int) {
	h.items = append(h.items, item)
	i := len(h.items) - 1
	h.pos[item] = i
	h.siftUp(i)
}

// Pop removes and returns the item with minimum weight. Panics if empty.
func (h *Heap) Pop() int {
	top := h.items[0]
	last := len(h.items) - 1
	h.swap(0, last)
	delete(h.pos, top)
	h.items = h.items[:last]
	if last > 0 {
		h.siftDown(0)
	}

	return top
}

// Peek returns the minimum item without removing it. Panics if empty.
func (h *Heap) Peek() int { return h.items[0] }

// Fix re-establishes heap order for item after its weight changed
// externally (decrease or increase key).
func (h *Heap) Fix(item int) {
	i, ok := h.pos[item]
	if !ok {
		return
	}
	if !h.siftUp(i) {
		h.siftDown(i)
	}
}

// Remove deletes item from the heap if present.
func (h *Heap) Remove(item int) {
	i, ok := h.pos[item]
	if !ok {
		return
	}
	last := len(h.items) - 1
	h.swap(i, last)
	delete(h.pos, item)
	h.items = h.items[:last]
	if i < last {
		if !h.siftUp(i) {
			h.siftDown(i)
		}
	}
}

func (h *Heap) swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
	h.pos[h.items[i]] = i
	h.pos[h.items[j]] = j
}

func (h *Heap) less(i, j int) bool { return h.weight(h.items[i]) < h.weight(h.items[j]) }

func (h *Heap) siftUp(i int) bool {
	moved := false
	for i > 0 {
		parent := (i - 1) / 2
		if !h.less(i, parent) {
			break
		}
		h.swap(i, parent)
		i = parent
		moved = true
	}

	return moved
}

func (h *Heap) siftDown(i int) {
	n := len(h.items)
	for {
		l, r := 2*i+1, 2*i+2
		smallest := i
		if l < n && h.less(l, smallest) {
			smallest = l
		}
		if r < n && h.less(r, smallest) {
			smallest = r
		}
		if smallest == i {
			return
		}
		h.swap(i, smallest)
		i = smallest
	}
}
