package wasm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFunc() *Func {
	decl := FuncDeclaration{Sig: FuncSignature{Params: TypeVector{I32, I64}}}
	f := NewFunc("$f", decl, Location{})
	f.Locals.Set(TypeVector{F32, F64})
	f.Binding.Insert("$p0", Location{}, 0)
	f.Binding.Insert("$p1", Location{}, 1)
	f.Binding.Insert("$l0", Location{}, 2)
	return f
}

func TestFuncNumParamsAndLocals(t *testing.T) {
	f := newTestFunc()
	assert.EqualValues(t, 2, f.NumParams())
	assert.EqualValues(t, 2, f.NumLocals())
}

func TestFuncGetLocalIndexNumeric(t *testing.T) {
	f := newTestFunc()
	idx, err := f.GetLocalIndex(NewVarIndex(3, Location{}))
	require.NoError(t, err)
	assert.EqualValues(t, 3, idx)
}

func TestFuncGetLocalIndexNamed(t *testing.T) {
	f := newTestFunc()
	idx, err := f.GetLocalIndex(NewVarName("$l0", Location{}))
	require.NoError(t, err)
	assert.EqualValues(t, 2, idx)
}

func TestFuncGetLocalIndexUnknownName(t *testing.T) {
	f := newTestFunc()
	_, err := f.GetLocalIndex(NewVarName("$nope", Location{}))
	require.ErrorIs(t, err, ErrUnknownName)
}

func TestFuncGetLocalType(t *testing.T) {
	f := newTestFunc()

	ty, err := f.GetLocalType(0)
	require.NoError(t, err)
	assert.Equal(t, I32, ty)

	ty, err = f.GetLocalType(1)
	require.NoError(t, err)
	assert.Equal(t, I64, ty)

	ty, err = f.GetLocalType(2)
	require.NoError(t, err)
	assert.Equal(t, F32, ty)

	ty, err = f.GetLocalType(3)
	require.NoError(t, err)
	assert.Equal(t, F64, ty)

	_, err = f.GetLocalType(4)
	require.ErrorIs(t, err, ErrIndexOutOfRange)
}
