package wasm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVarIndexForm(t *testing.T) {
	v := NewVarIndex(7, Location{})
	assert.True(t, v.IsIndex())
	assert.False(t, v.IsName())
	assert.EqualValues(t, 7, v.Index())
	assert.Equal(t, "7", v.String())
}

func TestVarNameForm(t *testing.T) {
	v := NewVarName("$foo", Location{})
	assert.True(t, v.IsName())
	assert.False(t, v.IsIndex())
	assert.Equal(t, "$foo", v.Name())
	assert.Equal(t, "$foo", v.String())
}

func TestVarSetIndexDiscardsName(t *testing.T) {
	v := NewVarName("$foo", Location{})
	v.SetIndex(3)
	assert.True(t, v.IsIndex())
	assert.EqualValues(t, 3, v.Index())
	assert.Equal(t, "", v.Name())
}

func TestVarSetNameDiscardsIndex(t *testing.T) {
	v := NewVarIndex(3, Location{})
	v.SetName("$bar")
	assert.True(t, v.IsName())
	assert.Equal(t, "$bar", v.Name())
	assert.EqualValues(t, 0, v.Index())
}

func TestVarResolutionInvariant(t *testing.T) {
	// Once resolved, a Var must never report IsName again.
	v := NewVarName("$f", Location{})
	v.SetIndex(5)
	assert.True(t, v.IsIndex())
	assert.False(t, v.IsName())
}
