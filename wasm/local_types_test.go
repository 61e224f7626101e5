package wasm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalTypesSetCoalesces(t *testing.T) {
	var l LocalTypes
	l.Set(TypeVector{I32, I32, I64, I64, I64})
	assert.Equal(t, 2, l.DeclCount())
	assert.EqualValues(t, 5, l.Size())

	ty, count := l.Decl(0)
	assert.Equal(t, I32, ty)
	assert.EqualValues(t, 2, count)

	ty, count = l.Decl(1)
	assert.Equal(t, I64, ty)
	assert.EqualValues(t, 3, count)
}

func TestLocalTypesAppendDeclDoesNotCoalesce(t *testing.T) {
	var l LocalTypes
	l.AppendDecl(I32, 2)
	l.AppendDecl(I32, 3)

	assert.Equal(t, 2, l.DeclCount())
	assert.EqualValues(t, 5, l.Size())
}

func TestLocalTypesAppendDeclSkipsZero(t *testing.T) {
	var l LocalTypes
	l.AppendDecl(I32, 0)
	assert.Equal(t, 0, l.DeclCount())
}

func TestLocalTypesIndex(t *testing.T) {
	var l LocalTypes
	l.Set(TypeVector{I32, I32, F64})

	ty, err := l.Index(0)
	require.NoError(t, err)
	assert.Equal(t, I32, ty)

	ty, err = l.Index(2)
	require.NoError(t, err)
	assert.Equal(t, F64, ty)

	_, err = l.Index(3)
	require.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestLocalTypesIteratorDrainsInOrder(t *testing.T) {
	var l LocalTypes
	l.Set(TypeVector{I32, I32, F64})

	it := l.Iterator()
	var got TypeVector
	for {
		ty, ok := it.Next()
		if !ok {
			break
		}
		got = append(got, ty)
	}
	assert.Equal(t, TypeVector{I32, I32, F64}, got)
}

func TestLocalTypesAll(t *testing.T) {
	var l LocalTypes
	l.Set(TypeVector{I32, I64})
	assert.Equal(t, TypeVector{I32, I64}, l.All())
}
