package wasm

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValueTypeString(t *testing.T) {
	for i, c := range []struct {
		t   ValueType
		exp string
	}{
		{I32, "i32"},
		{I64, "i64"},
		{F32, "f32"},
		{F64, "f64"},
		{V128, "v128"},
		{Funcref, "funcref"},
		{Anyref, "anyref"},
		{Void, "void"},
		{Any, "any"},
	} {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			assert.Equal(t, c.exp, c.t.String())
		})
	}
}

func TestValueTypeIsRef(t *testing.T) {
	assert.True(t, Funcref.IsRef())
	assert.True(t, Anyref.IsRef())
	assert.False(t, I32.IsRef())
}

func TestValueTypeIsNumeric(t *testing.T) {
	for _, vt := range []ValueType{I32, I64, F32, F64} {
		assert.True(t, vt.IsNumeric())
	}
	assert.False(t, V128.IsNumeric())
	assert.False(t, Funcref.IsNumeric())
}

func TestTypeVectorEqual(t *testing.T) {
	a := TypeVector{I32, I64}
	b := TypeVector{I32, I64}
	c := TypeVector{I64, I32}
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(TypeVector{I32}))
}

func TestFuncSignatureEqual(t *testing.T) {
	a := FuncSignature{Params: TypeVector{I32}, Results: TypeVector{I64}}
	b := FuncSignature{Params: TypeVector{I32}, Results: TypeVector{I64}}
	c := FuncSignature{Params: TypeVector{I32}, Results: TypeVector{F32}}
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestLimitsValid(t *testing.T) {
	assert.True(t, Limits{Initial: 1}.Valid())
	assert.True(t, Limits{Initial: 1, HasMax: true, Max: 2}.Valid())
	assert.False(t, Limits{Initial: 3, HasMax: true, Max: 2}.Valid())
}
