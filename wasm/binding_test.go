package wasm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBindingHashLookupFirstInserted(t *testing.T) {
	h := NewBindingHash()
	h.Insert("$f", Location{Line: 1}, 0)
	h.Insert("$f", Location{Line: 2}, 1)

	b, ok := h.Lookup("$f")
	require.True(t, ok)
	assert.EqualValues(t, 0, b.Index)
	assert.EqualValues(t, 1, b.Loc.Line)
}

func TestBindingHashEmptyNameNeverInserted(t *testing.T) {
	h := NewBindingHash()
	h.Insert("", Location{}, 0)
	assert.Equal(t, 0, h.Len())
	_, ok := h.Lookup("")
	assert.False(t, ok)
}

func TestBindingHashHasDuplicates(t *testing.T) {
	h := NewBindingHash()
	h.Insert("$f", Location{}, 0)
	assert.False(t, h.HasDuplicates("$f"))
	h.Insert("$f", Location{}, 1)
	assert.True(t, h.HasDuplicates("$f"))
}

func TestBindingHashDuplicates(t *testing.T) {
	h := NewBindingHash()
	h.Insert("$f", Location{}, 0)
	h.Insert("$f", Location{}, 1)
	h.Insert("$g", Location{}, 2)

	dups := h.Duplicates()
	require.Len(t, dups, 1)
	require.Len(t, dups["$f"], 2)
}

func TestBindingHashAllReturnsInsertionOrder(t *testing.T) {
	h := NewBindingHash()
	h.Insert("$f", Location{}, 0)
	h.Insert("$f", Location{}, 5)
	h.Insert("$f", Location{}, 2)

	all := h.All("$f")
	require.Len(t, all, 3)
	assert.EqualValues(t, 0, all[0].Index)
	assert.EqualValues(t, 5, all[1].Index)
	assert.EqualValues(t, 2, all[2].Index)
}

func TestMakeTypeBindingReverseMapping(t *testing.T) {
	h := NewBindingHash()
	h.Insert("$b", Location{}, 1)
	h.Insert("$a", Location{}, 1) // later binding, lexicographically smaller
	h.Insert("$c", Location{}, 0)

	out := MakeTypeBindingReverseMapping(3, h)
	require.Len(t, out, 3)
	assert.Equal(t, "$c", out[0])
	assert.Equal(t, "$a", out[1])
	assert.Equal(t, "", out[2])
}

func TestMakeTypeBindingReverseMappingIgnoresOutOfRange(t *testing.T) {
	h := NewBindingHash()
	h.Insert("$x", Location{}, 10)
	out := MakeTypeBindingReverseMapping(2, h)
	assert.Equal(t, []string{"", ""}, out)
}
