package partition

import (
	"errors"
	"sync"

	"golang.org/x/exp/slices"

	"github.com/katalvlaran/graphalgo/core"
)

// ErrBlockMismatch indicates the block slice passed to New does not cover
// exactly g.NumVertices() vertices, or contains a negative index.
var ErrBlockMismatch = errors.New("partition: block assignment does not match graph")

// bitmapThreshold-style switch point for cross-edge storage (spec §4.4): a
// dense k x k table costs O(k²) cells; a hash table costs O(m) entries.
// Below the crossover the dense table wins on both memory and lookup cost.

// VertexPartition records a block index per vertex and lazily materializes
// block-vertex sets, in-block edge sets, and cross-block edge sets
// (spec §4.4).
type VertexPartition struct {
	g     *core.IndexGraph
	block []int
	k     int

	once sync.Once

	blockVerts [][]int
	inBlock    [][]int // inBlock[b] = edges with both endpoints in block b

	dense    bool
	crossArr [][][]int      // crossArr[b1][b2], only when dense
	crossMap map[uint64][]int // keyed by packed(b1,b2), only when !dense
}

// New builds a VertexPartition over g from a per-vertex block assignment.
// block must have exactly g.NumVertices() entries, each in {0, ..., k-1}
// for some k (k is inferred as max(block)+1).
func New(g *core.IndexGraph, block []int) (*VertexPartition, error) {
	n := g.NumVertices()
	if len(block) != n {
		return nil, ErrBlockMismatch
	}
	k := 0
	for _, b := range block {
		if b < 0 {
			return nil, ErrBlockMismatch
		}
		if b+1 > k {
			k = b + 1
		}
	}

	return &VertexPartition{
		g:     g,
		block: append([]int(nil), block...),
		k:     k,
	}, nil
}

// NumberOfBlocks returns k.
func (p *VertexPartition) NumberOfBlocks() int { return p.k }

// VertexBlock returns the block index of v.
func (p *VertexPartition) VertexBlock(v int) int { return p.block[v] }

func packKey(b1, b2 int, directed bool) uint64 {
	if !directed && b1 > b2 {
		b1, b2 = b2, b1
	}

	return uint64(uint32(b1))<<32 | uint64(uint32(b2))
}

// materialize builds blockVerts, inBlock, and the cross-edge storage in one
// O(n+m) pass, choosing a dense k x k table when k² < 4m and a hash table
// otherwise (spec §4.4).
func (p *VertexPartition) materialize() {
	p.once.Do(func() {
		n := p.g.NumVertices()
		m := p.g.NumEdges()
		k := p.k

		p.blockVerts = make([][]int, k)
		counts := make([]int, k)
		for v := 0; v < n; v++ {
			counts[p.block[v]]++
		}
		for b := 0; b < k; b++ {
			p.blockVerts[b] = make([]int, 0, counts[b])
		}
		for v := 0; v < n; v++ {
			b := p.block[v]
			p.blockVerts[b] = append(p.blockVerts[b], v)
		}
		for b := range p.blockVerts {
			slices.Sort(p.blockVerts[b])
		}

		p.inBlock = make([][]int, k)

		p.dense = int64(k)*int64(k) < 4*int64(m)
		if p.dense {
			p.crossArr = make([][][]int, k)
			for i := range p.crossArr {
				p.crossArr[i] = make([][]int, k)
			}
		} else {
			p.crossMap = make(map[uint64][]int)
		}

		directed := p.g.Directed()
		for _, e := range p.g.Edges() {
			src, dst, err := p.g.EdgeEndpoints(e)
			if err != nil {
				continue
			}
			b1, b2 := p.block[src], p.block[dst]
			if b1 == b2 {
				p.inBlock[b1] = append(p.inBlock[b1], e)

				continue
			}
			if p.dense {
				lo, hi := b1, b2
				if !directed && lo > hi {
					lo, hi = hi, lo
				}
				p.crossArr[lo][hi] = append(p.crossArr[lo][hi], e)
			} else {
				key := packKey(b1, b2, directed)
				p.crossMap[key] = append(p.crossMap[key], e)
			}
		}
	})
}

// BlockVertices returns the vertices assigned to block b, ascending.
func (p *VertexPartition) BlockVertices(b int) []int {
	p.materialize()

	return p.blockVerts[b]
}

// BlockEdges returns the edges whose both endpoints lie in block b.
func (p *VertexPartition) BlockEdges(b int) []int {
	p.materialize()

	return p.inBlock[b]
}

// CrossEdges returns the edges between block b1 and block b2 (b1 != b2).
func (p *VertexPartition) CrossEdges(b1, b2 int) []int {
	p.materialize()
	if b1 == b2 {
		return p.inBlock[b1]
	}
	directed := p.g.Directed()
	if p.dense {
		lo, hi := b1, b2
		if !directed && lo > hi {
			lo, hi = hi, lo
		}

		return p.crossArr[lo][hi]
	}

	return p.crossMap[packKey(b1, b2, directed)]
}

// BlocksGraph builds the quotient graph over p's k blocks. If parallel is
// true, every inter-block edge of g becomes a distinct edge of the
// quotient graph; otherwise inter-block pairs are deduplicated to at most
// one quotient edge each. If self is true, in-block edges of g become
// self-loops of the corresponding quotient vertex (the quotient graph must
// then be built WithSelfLoops).
func (p *VertexPartition) BlocksGraph(parallel, self bool) (*core.IndexGraph, error) {
	p.materialize()

	opts := []core.GraphOption{core.WithParallelEdges(), core.WithExpectedVertices(p.k)}
	if self {
		opts = append(opts, core.WithSelfLoops())
	}
	var q *core.IndexGraph
	if p.g.Directed() {
		q = core.NewDirected(opts...)
	} else {
		q = core.NewUndirected(opts...)
	}
	q.AddVertices(p.k)

	if self {
		for b := 0; b < p.k; b++ {
			count := len(p.inBlock[b])
			if count == 0 {
				continue
			}
			if !parallel {
				count = 1
			}
			for i := 0; i < count; i++ {
				if _, err := q.AddEdge(b, b); err != nil {
					return nil, err
				}
			}
		}
	}

	seen := make(map[[2]int]bool)
	for _, e := range p.g.Edges() {
		src, dst, err := p.g.EdgeEndpoints(e)
		if err != nil {
			continue
		}
		b1, b2 := p.block[src], p.block[dst]
		if b1 == b2 {
			continue
		}
		if !parallel {
			lo, hi := b1, b2
			if !p.g.Directed() && lo > hi {
				lo, hi = hi, lo
			}
			key := [2]int{lo, hi}
			if seen[key] {
				continue
			}
			seen[key] = true
		}
		if _, err := q.AddEdge(b1, b2); err != nil {
			return nil, err
		}
	}

	return q, nil
}
