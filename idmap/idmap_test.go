package idmap_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphalgo/idmap"
)

func TestBijection(t *testing.T) {
	r := require.New(t)
	m := idmap.New[string]()
	ia, err := m.Add("A")
	r.NoError(err)
	ib, err := m.Add("B")
	r.NoError(err)
	ic, err := m.Add("C")
	r.NoError(err)

	r.Equal("A", m.IdOf(ia))
	r.Equal("B", m.IdOf(ib))
	r.Equal("C", m.IdOf(ic))

	idx, ok := m.IndexOf("B")
	r.True(ok)
	r.Equal(ib, idx)

	_, err = m.Add("A")
	r.ErrorIs(err, idmap.ErrDuplicateIdentifier)
}

func TestRemoveSwap(t *testing.T) {
	r := require.New(t)
	m := idmap.New[string]()
	_, _ = m.Add("A")
	ib, _ := m.Add("B")
	_, _ = m.Add("C") // last, index 2

	removed := m.Remove(ib)
	r.Equal("B", removed)
	r.Equal(2, m.Len())
	// C (formerly last) now occupies B's old slot.
	r.Equal("C", m.IdOf(ib))
	idx, ok := m.IndexOf("C")
	r.True(ok)
	r.Equal(ib, idx)

	_, ok = m.IndexOf("B")
	r.False(ok)
	r.Equal(-1, m.MustIndexOf("B"))
}
