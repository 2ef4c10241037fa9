package cycles

import (
	"errors"

	"github.com/katalvlaran/graphalgo/core"
	"github.com/katalvlaran/graphalgo/gpath"
)

// ErrParallelEdgesRejected indicates the input graph has more than one
// edge between some ordered pair (u, v); both enumeration algorithms
// forbid parallel edges (spec §4.7).
var ErrParallelEdgesRejected = errors.New("cycles: parallel edges rejected")

func checkNoParallelEdges(g *core.IndexGraph) error {
	seen := make(map[[2]int]bool, g.NumEdges())
	for _, e := range g.Edges() {
		u, v, err := g.EdgeEndpoints(e)
		if err != nil {
			return err
		}
		key := [2]int{u, v}
		if seen[key] {
			return ErrParallelEdgesRejected
		}
		seen[key] = true
	}

	return nil
}

// Iterator yields one elementary cycle at a time via Next. Both Tarjan and
// Johnson enumerators share this shape (spec §4.7); their constructors
// populate the internal queue using their respective search disciplines.
type Iterator struct {
	queue []*gpath.Path
	pos   int
}

// Next returns the next elementary cycle as a gpath.Path, or (nil, false)
// once every cycle has been emitted.
func (it *Iterator) Next() (*gpath.Path, bool) {
	if it.pos >= len(it.queue) {
		return nil, false
	}
	p := it.queue[it.pos]
	it.pos++

	return p, true
}

// All drains the iterator into a slice.
func (it *Iterator) All() []*gpath.Path {
	rest := it.queue[it.pos:]
	it.pos = len(it.queue)

	return rest
}
