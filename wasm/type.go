package wasm

import "fmt"

// ValueType is the closed enumeration of WebAssembly value types plus the
// two structural markers Void ("no type") and Any (a validation-only
// wildcard). Equality is identity.
type ValueType byte

const (
	I32 ValueType = iota
	I64
	F32
	F64
	V128
	Funcref
	Anyref
	// Void denotes the absence of a type, e.g. an instruction with no
	// result or an empty block signature.
	Void
	// Any is a wildcard usable only as a validation bound; it is never a
	// legal operand or result type in a well-formed instruction.
	Any
)

// String returns the canonical textual mnemonic for t.
func (t ValueType) String() string {
	switch t {
	case I32:
		return "i32"
	case I64:
		return "i64"
	case F32:
		return "f32"
	case F64:
		return "f64"
	case V128:
		return "v128"
	case Funcref:
		return "funcref"
	case Anyref:
		return "anyref"
	case Void:
		return "void"
	case Any:
		return "any"
	default:
		return fmt.Sprintf("ValueType(%d)", byte(t))
	}
}

// IsRef reports whether t is one of the reference types.
func (t ValueType) IsRef() bool { return t == Funcref || t == Anyref }

// IsNumeric reports whether t is one of the four numeric types.
func (t ValueType) IsNumeric() bool { return t == I32 || t == I64 || t == F32 || t == F64 }

// TypeVector is an ordered sequence of value types, used for parameter
// lists, result lists, and anywhere else a flat list of types is needed.
type TypeVector []ValueType

// Equal reports structural, element-wise equality.
func (v TypeVector) Equal(o TypeVector) bool {
	if len(v) != len(o) {
		return false
	}
	for i := range v {
		if v[i] != o[i] {
			return false
		}
	}
	return true
}

// FuncSignature is an ordered parameter-type sequence and an ordered
// result-type sequence. Equality is structural.
type FuncSignature struct {
	Params  TypeVector
	Results TypeVector
}

// Equal reports whether s and o declare the same parameter and result
// types in the same order.
func (s FuncSignature) Equal(o FuncSignature) bool {
	return s.Params.Equal(o.Params) && s.Results.Equal(o.Results)
}

// FuncType is a named FuncSignature, addressable from the module's
// function-type index space.
type FuncType struct {
	Name string
	Sig  FuncSignature
	Loc  Location
}

// FuncDeclaration either references a named signature by Var or inlines
// one; HasTypeVar records which. After resolution both forms must agree
// when both are present.
type FuncDeclaration struct {
	// TypeVar references a FuncType in the module's type index space.
	// Only meaningful when HasTypeVar is true.
	TypeVar Var
	// HasTypeVar is true when the declaration was written as a reference
	// to a named/indexed signature rather than (or in addition to) an
	// inline one.
	HasTypeVar bool
	// Sig is the (possibly inlined) signature. When HasTypeVar is true
	// and the module has been resolved, Sig is filled in from the
	// referenced FuncType so that callers never need to chase the Var
	// themselves.
	Sig FuncSignature
}

// Limits describes the bounds of a table or memory.
// Invariant: if HasMax, Initial <= Max.
type Limits struct {
	Initial  uint32
	HasMax   bool
	Max      uint32
	IsShared bool
	Is64     bool
}

// Valid reports whether the limits satisfy the initial<=max invariant
// when a maximum is present.
func (l Limits) Valid() bool {
	return !l.HasMax || l.Initial <= l.Max
}
