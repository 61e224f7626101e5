package wasm

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstNanPayloadsRoundTrip(t *testing.T) {
	for i, bits := range []uint32{0x7FC00001, 0x7F800001, 0xFFC00000} {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			c := NewConstF32Bits(bits, Location{})
			assert.Equal(t, bits, c.F32Bits())
			assert.Equal(t, F32, c.Type())
		})
	}
}

func TestConstEqualComparesBitsNotFloatValue(t *testing.T) {
	a := NewConstF32Bits(0x7FC00001, Location{})
	b := NewConstF32Bits(0x7FC00001, Location{})
	c := NewConstF32Bits(0x7F800001, Location{})
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestConstEqualRejectsKindMismatch(t *testing.T) {
	i32 := NewConstI32(1, Location{})
	i64 := NewConstI64(1, Location{})
	assert.False(t, i32.Equal(i64))
}

func TestConstRefNullType(t *testing.T) {
	c := NewConstRefNull(Funcref, Location{})
	assert.Equal(t, ConstRefNull, c.ConstKindOf())
	assert.Equal(t, Funcref, c.Type())
	assert.Equal(t, Funcref, c.RefNullType())
}

func TestConstRefFunc(t *testing.T) {
	v := NewVarIndex(3, Location{})
	c := NewConstRefFunc(v, Location{})
	assert.Equal(t, Funcref, c.Type())
	assert.Equal(t, v, c.RefFunc())
}

func TestConstV128LanesLittleEndian(t *testing.T) {
	var raw [16]byte
	raw[0] = 0x01
	raw[4] = 0x02
	raw[8] = 0x03
	raw[12] = 0x04
	c := NewConstV128(raw, Location{})
	lanes := c.V128Lanes()
	assert.Equal(t, [4]uint32{1, 2, 3, 4}, lanes)
}

func TestConstI64(t *testing.T) {
	c := NewConstI64(0xDEADBEEFCAFEBABE, Location{})
	assert.Equal(t, I64, c.Type())
	assert.EqualValues(t, 0xDEADBEEFCAFEBABE, c.I64())
}
