package wasm

import "strconv"

// Var is a reference that is either a numeric Index or a symbolic Name.
// The parser always produces a Var; a separate resolution pass rewrites
// every Var to Index form once binding tables are built. Only one of the
// two payloads is ever observable at a time.
type Var struct {
	loc Location

	isName bool
	index  uint32
	name   string
}

// NewVarIndex builds a Var in numeric form.
func NewVarIndex(index uint32, loc Location) Var {
	return Var{loc: loc, index: index}
}

// NewVarName builds a Var in symbolic form. name must begin with "$";
// callers resolving user input are responsible for that invariant,
// NewVarName itself does not validate it.
func NewVarName(name string, loc Location) Var {
	return Var{loc: loc, isName: true, name: name}
}

// IsIndex reports whether v currently holds a numeric index.
func (v Var) IsIndex() bool { return !v.isName }

// IsName reports whether v currently holds a symbolic name.
func (v Var) IsName() bool { return v.isName }

// Index returns the numeric payload. Only meaningful when IsIndex is true.
func (v Var) Index() uint32 { return v.index }

// Name returns the symbolic payload. Only meaningful when IsName is true.
func (v Var) Name() string { return v.name }

// Location returns v's source position.
func (v Var) Location() Location { return v.loc }

// SetIndex rewrites v into numeric form, discarding any name. Used by the
// resolution pass.
func (v *Var) SetIndex(index uint32) {
	v.isName = false
	v.index = index
	v.name = ""
}

// SetName rewrites v into symbolic form, discarding any index.
func (v *Var) SetName(name string) {
	v.isName = true
	v.name = name
	v.index = 0
}

// String renders v the way a diagnostic would reference it.
func (v Var) String() string {
	if v.isName {
		return v.name
	}
	return strconv.FormatUint(uint64(v.index), 10)
}
