// Package idmap implements the bijection between caller-supplied identifiers
// of arbitrary hashable type and the dense indices a core.IndexGraph uses
// internally (spec §3-4.2). It has no teacher analog — the teacher's own
// core.Graph is identity-keyed throughout — so the swap-remove discipline
// here is new, grounded on core.IndexGraph.RemoveVertex's swap-remove of the
// adjacency tables applied instead to a second, index-keyed identifier table.
package idmap

import "errors"

// ErrDuplicateIdentifier indicates Add was called with an id already present.
var ErrDuplicateIdentifier = errors.New("idmap: duplicate identifier")

// absent is the sentinel index returned by IndexOf when the identifier is unknown.
const absent = -1

// Mapping is a bijection between values of type Id and dense indices
// {0, ..., n-1}, kept in lockstep with a core.IndexGraph's vertex or edge
// range via swap-remove on Remove.
type Mapping[Id comparable] struct {
	idToIndex map[Id]int
	indexToId []Id
}

// New builds an empty Mapping.
func New[Id comparable]() *Mapping[Id] {
	return &Mapping[Id]{idToIndex: make(map[Id]int)}
}

// Len returns the number of mapped identifiers, equal to the dense index
// range's current size.
func (m *Mapping[Id]) Len() int { return len(m.indexToId) }

// Add appends id, assigning it the next index (len before the call).
// Returns ErrDuplicateIdentifier if id is already mapped.
func (m *Mapping[Id]) Add(id Id) (int, error) {
	if _, ok := m.idToIndex[id]; ok {
		return absent, ErrDuplicateIdentifier
	}
	idx := len(m.indexToId)
	m.indexToId = append(m.indexToId, id)
	m.idToIndex[id] = idx

	return idx, nil
}

// IndexOf returns the index for id, or (-1, false) if id is unknown —
// the "absence sentinel" form of spec §4.2's idToIndexIfExist.
func (m *Mapping[Id]) IndexOf(id Id) (int, bool) {
	idx, ok := m.idToIndex[id]
	if !ok {
		return absent, false
	}

	return idx, true
}

// MustIndexOf returns the index for id, or -1 if id is unknown — the
// sentinel form spec §4.2 names idToIndexIfExist.
func (m *Mapping[Id]) MustIndexOf(id Id) int {
	if idx, ok := m.idToIndex[id]; ok {
		return idx
	}

	return absent
}

// IdOf returns the identifier stored at idx. Panics if idx is out of range,
// mirroring a slice index operation — callers validate against Len() first
// (the index always originates from a core.IndexGraph that is already
// range-checked).
func (m *Mapping[Id]) IdOf(idx int) Id { return m.indexToId[idx] }

// Remove swap-removes idx: the identifier previously at the last index
// (Len()-1) now occupies idx, and idToIndex is updated for that identifier.
// Returns the identifier that was removed.
func (m *Mapping[Id]) Remove(idx int) Id {
	removed := m.indexToId[idx]
	last := len(m.indexToId) - 1
	delete(m.idToIndex, removed)
	if idx != last {
		moved := m.indexToId[last]
		m.indexToId[idx] = moved
		m.idToIndex[moved] = idx
	}
	m.indexToId = m.indexToId[:last]

	return removed
}
