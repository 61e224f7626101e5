package wasm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExprListAppendOrder(t *testing.T) {
	var l ExprList
	a := NewNopExpr(Location{})
	b := NewDropExpr(Location{})
	l.Append(a)
	l.Append(b)

	assert.Equal(t, 2, l.Len())
	assert.Same(t, a, l.First())
	assert.Same(t, b, l.Last())
	assert.Same(t, b, a.Next())
	assert.Same(t, a, b.Prev())
}

func TestExprListPrepend(t *testing.T) {
	var l ExprList
	a := NewNopExpr(Location{})
	b := NewDropExpr(Location{})
	l.Append(a)
	l.Prepend(b)

	assert.Same(t, b, l.First())
	assert.Same(t, a, l.Last())
}

func TestExprListInsertAfter(t *testing.T) {
	var l ExprList
	a := NewNopExpr(Location{})
	c := NewDropExpr(Location{})
	l.Append(a)
	l.Append(c)

	b := NewSelectExpr(Location{})
	l.InsertAfter(a, b)

	assert.Equal(t, 3, l.Len())
	assert.Same(t, b, a.Next())
	assert.Same(t, c, b.Next())
}

func TestExprListRemove(t *testing.T) {
	var l ExprList
	a := NewNopExpr(Location{})
	b := NewDropExpr(Location{})
	c := NewSelectExpr(Location{})
	l.Append(a)
	l.Append(b)
	l.Append(c)

	l.Remove(b)
	require.Equal(t, 2, l.Len())
	assert.Same(t, c, a.Next())
	assert.Same(t, a, c.Prev())
}

func TestExprListRemoveHeadAndTail(t *testing.T) {
	var l ExprList
	a := NewNopExpr(Location{})
	l.Append(a)
	l.Remove(a)
	assert.True(t, l.Empty())
	assert.Nil(t, l.First())
	assert.Nil(t, l.Last())
}

func TestExprListSplice(t *testing.T) {
	var l, other ExprList
	a := NewNopExpr(Location{})
	l.Append(a)

	b := NewDropExpr(Location{})
	c := NewSelectExpr(Location{})
	other.Append(b)
	other.Append(c)

	l.Splice(&other)

	assert.Equal(t, 3, l.Len())
	assert.True(t, other.Empty())
	assert.Same(t, c, l.Last())
	assert.Same(t, a, b.Prev())
}

func TestExprListSlice(t *testing.T) {
	var l ExprList
	a := NewNopExpr(Location{})
	b := NewDropExpr(Location{})
	l.Append(a)
	l.Append(b)

	s := l.Slice()
	require.Len(t, s, 2)
	assert.Same(t, a, s[0])
	assert.Same(t, b, s[1])
}
