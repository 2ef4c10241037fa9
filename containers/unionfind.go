package containers

// UnionFind is a disjoint-set structure with path compression and union by
// rank over the dense index space {0, ..., n-1}, grounded on
// gonum.org/v1/gonum/graph/topo/disjoint.go's map-of-pointers design,
// flattened to parallel int slices since the caller always has a dense
// index space available (core.IndexGraph vertices or super-vertices).
type UnionFind struct {
	parent []int
	rank   []int
}

// NewUnionFind builds n singleton sets {0}, {1}, ..., {n-1}.
func NewUnionFind(n int) *UnionFind {
	uf := &UnionFind{parent: make([]int, n), rank: make([]int, n)}
	for i := range uf.parent {
		uf.parent[i] = i
	}

	return uf
}

// Find returns the representative of x's set, compressing the path walked.
func (uf *UnionFind) Find(x int) int {
	root := x
	for uf.parent[root] != root {
		root = uf.parent[root]
	}
	for uf.parent[x] != root {
		uf.parent[x], x = root, uf.parent[x]
	}

	return root
}

// Union merges the sets containing x and y, returning false if they were
// already in the same set.
func (uf *UnionFind) Union(x, y int) bool {
	rx, ry := uf.Find(x), uf.Find(y)
	if rx == ry {
		return false
	}
	switch {
	case uf.rank[rx] < uf.rank[ry]:
		uf.parent[rx] = ry
	case uf.rank[rx] > uf.rank[ry]:
		uf.parent[ry] = rx
	default:
		uf.parent[ry] = rx
		uf.rank[rx]++
	}

	return true
}

// Connected reports whether x and y are in the same set.
func (uf *UnionFind) Connected(x, y int) bool { return uf.Find(x) == uf.Find(y) }

// Add grows the union-find by one fresh singleton set and returns its index.
func (uf *UnionFind) Add() int {
	i := len(uf.parent)
	uf.parent = append(uf.parent, i)
	uf.rank = append(uf.rank, 0)

	return i
}

// ValueUnionFind is a union-find where every set carries a reference-counted
// payload value, such as the cumulative edge-weight offset a super-vertex's
// set accumulates as cycles are contracted. Package mdst keeps those offsets
// in its own skew heap and does not use this type.
type ValueUnionFind struct {
	uf    *UnionFind
	value []float64 // value[root] is meaningful only when parent[root] == root
	refs  []int     // refs[root] counts how many live members share this value
}

// NewValueUnionFind builds n singleton sets, each initialized to zero value
// with a reference count of one.
func NewValueUnionFind(n int) *ValueUnionFind {
	v := &ValueUnionFind{uf: NewUnionFind(n), value: make([]float64, n), refs: make([]int, n)}
	for i := range v.refs {
		v.refs[i] = 1
	}

	return v
}

// Find returns the representative of x's set.
func (v *ValueUnionFind) Find(x int) int { return v.uf.Find(x) }

// Get returns the value accumulated on x's set.
func (v *ValueUnionFind) Get(x int) float64 { return v.value[v.Find(x)] }

// AddToSet adds delta to the value of every current and future member of
// x's set (a lazy, O(1) "add to all" via the set's shared value slot).
func (v *ValueUnionFind) AddToSet(x int, delta float64) {
	v.value[v.Find(x)] += delta
}

// Union merges x's and y's sets, summing their accumulated values into the
// surviving root and summing their reference counts.
func (v *ValueUnionFind) Union(x, y int) {
	rx, ry := v.uf.Find(x), v.uf.Find(y)
	if rx == ry {
		return
	}
	sum := v.value[rx] + v.value[ry]
	refs := v.refs[rx] + v.refs[ry]
	v.uf.Union(rx, ry)
	newRoot := v.uf.Find(rx)
	v.value[newRoot] = sum
	v.refs[newRoot] = refs
}

// Add grows the structure by one fresh singleton set valued at init.
func (v *ValueUnionFind) Add(init float64) int {
	i := v.uf.Add()
	v.value = append(v.value, init)
	v.refs = append(v.refs, 1)

	return i
}
