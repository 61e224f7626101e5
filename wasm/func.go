package wasm

// Func is a function definition: name, declaration (signature, by
// reference or inline), locals, body, and a binding table mapping local
// names to their positional index within parameters-then-locals.
type Func struct {
	Name    string
	Decl    FuncDeclaration
	Locals  LocalTypes
	Body    ExprList
	Binding *BindingHash
	Loc     Location
}

// NewFunc returns a Func ready for its caller to populate Locals/Body and
// Insert local/param bindings.
func NewFunc(name string, decl FuncDeclaration, loc Location) *Func {
	return &Func{Name: name, Decl: decl, Binding: NewBindingHash(), Loc: loc}
}

// NumParams returns the number of declared parameters.
func (f *Func) NumParams() uint32 { return uint32(len(f.Decl.Sig.Params)) }

// NumLocals returns the number of declared locals (excluding parameters).
func (f *Func) NumLocals() uint32 { return f.Locals.Size() }

// GetLocalIndex resolves v against the combined parameter+local index
// space: parameters occupy [0, NumParams), locals occupy
// [NumParams, NumParams+NumLocals). A numeric Var is returned
// verbatim — bounds-checking is a validator's job, not this lookup's. A
// named Var that misses the binding table yields ErrIndexOutOfRange's
// sibling ErrUnknownName via the wrapped error.
func (f *Func) GetLocalIndex(v Var) (uint32, error) {
	if v.IsIndex() {
		return v.Index(), nil
	}
	idx, ok := f.Binding.LookupIndex(v.Name())
	if !ok {
		return invalidIndex, errUnknownNamef(v.Name())
	}
	return idx, nil
}

// GetLocalType returns the type of the i'th entry in the combined
// parameter+local index space.
func (f *Func) GetLocalType(i uint32) (ValueType, error) {
	if i < f.NumParams() {
		return f.Decl.Sig.Params[i], nil
	}
	return f.Locals.Index(i - f.NumParams())
}

// invalidIndex is the out-of-range sentinel returned by lookups that
// miss.
const invalidIndex uint32 = 0xFFFFFFFF

func errUnknownNamef(name string) error {
	return &unknownNameError{name: name}
}

type unknownNameError struct{ name string }

func (e *unknownNameError) Error() string { return "wasm: unknown name " + e.name }
func (e *unknownNameError) Unwrap() error { return ErrUnknownName }
