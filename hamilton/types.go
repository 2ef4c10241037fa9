package hamilton

import (
	"errors"

	"github.com/katalvlaran/graphalgo/core"
	"github.com/katalvlaran/graphalgo/gpath"
)

// ErrNoSuchVertex indicates the requested origin is not a vertex of g.
var ErrNoSuchVertex = errors.New("hamilton: no such vertex")

func checkOrigin(g *core.IndexGraph, origin int) error {
	if !g.HasVertex(origin) {
		return ErrNoSuchVertex
	}

	return nil
}

// Iterator yields one Hamiltonian path or cycle at a time via Next. Both
// NewPathIterator and NewCycleIterator populate the internal queue eagerly
// at construction time, the same simplification cycles.Iterator uses (see
// DESIGN.md): the search's recursion is single-return per frame (a branch
// either completes the path at its leaf or it doesn't), so eager
// precomputation followed by draining is observationally identical to a
// step-by-step resumable search.
type Iterator struct {
	queue []*gpath.Path
	pos   int
}

// Next returns the next Hamiltonian path/cycle as a gpath.Path, or (nil,
// false) once every solution found has been emitted.
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
