package wasm

// Global is a global variable definition: a value type, a mutability
// flag, and an initializer ExprList.
type Global struct {
	Name    string
	Type    ValueType
	Mutable bool
	Init    ExprList
	Loc     Location
}

// Event describes a payload signature for try/catch/throw.
type Event struct {
	Name string
	Decl FuncDeclaration
	Loc  Location
}
