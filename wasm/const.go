package wasm

// ConstKind discriminates the Const tagged union.
type ConstKind byte

const (
	ConstI32 ConstKind = iota
	ConstI64
	ConstF32
	ConstF64
	ConstV128
	ConstRefNull
	ConstRefFunc
)

// Const is a typed constant. Float payloads are stored bitwise rather
// than as native float32/float64, so construction and comparison never
// lose bits — including NaN payloads, which a native float round-trip
// would not preserve.
type Const struct {
	kind ConstKind
	loc  Location

	i32Val uint32
	i64Val uint64
	// f32Bits/f64Bits hold the IEEE-754 bit pattern. They are read back
	// only as bits (F32Bits/F64Bits); there is no native-float accessor,
	// so the bits always round-trip exactly, including distinct NaN
	// payloads.
	f32Bits uint32
	f64Bits uint64

	// v128 stores the 128-bit immediate as a 16-byte array, also viewable
	// as 4 little-endian uint32 lanes via V128Lanes.
	v128 [16]byte

	// refFunc is the referenced function for ConstRefFunc.
	refFunc Var
	// refType is the declared type of a ConstRefNull (Funcref or Anyref).
	refType ValueType
}

// NewConstI32 builds an i32 constant.
func NewConstI32(v uint32, loc Location) Const { return Const{kind: ConstI32, loc: loc, i32Val: v} }

// NewConstI64 builds an i64 constant.
func NewConstI64(v uint64, loc Location) Const { return Const{kind: ConstI64, loc: loc, i64Val: v} }

// NewConstF32Bits builds an f32 constant from a raw IEEE-754 bit pattern,
// preserving NaN payloads exactly.
func NewConstF32Bits(bits uint32, loc Location) Const {
	return Const{kind: ConstF32, loc: loc, f32Bits: bits}
}

// NewConstF64Bits builds an f64 constant from a raw IEEE-754 bit pattern.
func NewConstF64Bits(bits uint64, loc Location) Const {
	return Const{kind: ConstF64, loc: loc, f64Bits: bits}
}

// NewConstV128 builds a v128 constant from its 16 raw bytes.
func NewConstV128(bytes [16]byte, loc Location) Const {
	return Const{kind: ConstV128, loc: loc, v128: bytes}
}

// NewConstRefNull builds a typed null reference constant. t must be
// Funcref or Anyref.
func NewConstRefNull(t ValueType, loc Location) Const {
	return Const{kind: ConstRefNull, loc: loc, refType: t}
}

// NewConstRefFunc builds a function-reference constant.
func NewConstRefFunc(fn Var, loc Location) Const {
	return Const{kind: ConstRefFunc, loc: loc, refFunc: fn}
}

// ConstKindOf reports the discriminator.
func (c Const) ConstKindOf() ConstKind { return c.kind }

// Location returns c's source position.
func (c Const) Location() Location { return c.loc }

// Type returns the value type this constant carries.
func (c Const) Type() ValueType {
	switch c.kind {
	case ConstI32:
		return I32
	case ConstI64:
		return I64
	case ConstF32:
		return F32
	case ConstF64:
		return F64
	case ConstV128:
		return V128
	case ConstRefNull:
		return c.refType
	case ConstRefFunc:
		return Funcref
	default:
		return Void
	}
}

// I32 returns the i32 payload. Only meaningful when ConstKindOf is ConstI32.
func (c Const) I32() uint32 { return c.i32Val }

// I64 returns the i64 payload. Only meaningful when ConstKindOf is ConstI64.
func (c Const) I64() uint64 { return c.i64Val }

// F32Bits returns the raw f32 bit pattern. Only meaningful when
// ConstKindOf is ConstF32.
func (c Const) F32Bits() uint32 { return c.f32Bits }

// F64Bits returns the raw f64 bit pattern. Only meaningful when
// ConstKindOf is ConstF64.
func (c Const) F64Bits() uint64 { return c.f64Bits }

// V128Bytes returns the 16 raw bytes. Only meaningful when ConstKindOf is
// ConstV128.
func (c Const) V128Bytes() [16]byte { return c.v128 }

// V128Lanes views the v128 payload as 4 little-endian u32 lanes.
func (c Const) V128Lanes() [4]uint32 {
	var lanes [4]uint32
	for i := 0; i < 4; i++ {
		b := c.v128[i*4 : i*4+4]
		lanes[i] = uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
	}
	return lanes
}

// RefFunc returns the referenced function. Only meaningful when
// ConstKindOf is ConstRefFunc.
func (c Const) RefFunc() Var { return c.refFunc }

// RefNullType returns the declared null-reference type. Only meaningful
// when ConstKindOf is ConstRefNull.
func (c Const) RefNullType() ValueType { return c.refType }

// Equal compares type and bitwise payload, so e.g. two NaN constants with
// matching bit patterns compare equal.
func (c Const) Equal(o Const) bool {
	if c.kind != o.kind {
		return false
	}
	switch c.kind {
	case ConstI32:
		return c.i32Val == o.i32Val
	case ConstI64:
		return c.i64Val == o.i64Val
	case ConstF32:
		return c.f32Bits == o.f32Bits
	case ConstF64:
		return c.f64Bits == o.f64Bits
	case ConstV128:
		return c.v128 == o.v128
	case ConstRefNull:
		return c.refType == o.refType
	case ConstRefFunc:
		// Compare the reference only; a Var's Location is not part of the
		// constant's value.
		f, g := c.refFunc, o.refFunc
		return f.isName == g.isName && f.index == g.index && f.name == g.name
	default:
		return true
	}
}
