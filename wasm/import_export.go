package wasm

// ExternKind classifies an Import or Export payload.
type ExternKind byte

const (
	ExternKindFunc ExternKind = iota
	ExternKindTable
	ExternKindMemory
	ExternKindGlobal
	ExternKindEvent
)

// String returns the WebAssembly text-format field name for k.
func (k ExternKind) String() string {
	switch k {
	case ExternKindFunc:
		return "func"
	case ExternKindTable:
		return "table"
	case ExternKindMemory:
		return "memory"
	case ExternKindGlobal:
		return "global"
	case ExternKindEvent:
		return "event"
	default:
		return "unknown"
	}
}

// Import names a two-level (module, field) pair and wraps one of
// {Func, Table, Memory, Global, Event}.
type Import struct {
	Module string
	Field  string
	Kind   ExternKind

	// Exactly one of the following is populated, selected by Kind.
	// FuncName is the local binding name for a func import (e.g. the $f in
	// `(import "m" "f" (func $f))`); FuncDeclaration carries no name of
	// its own since it is also used, unnamed, for inline call_indirect
	// signatures.
	FuncName string
	FuncDecl FuncDeclaration
	Table    Table
	Memory   Memory
	Global   Global
	Event    Event

	Loc Location
}

// AsFuncDecl returns the function declaration payload, erroring if Kind
// is not ExternKindFunc.
func (i *Import) AsFuncDecl() (FuncDeclaration, error) {
	if i.Kind != ExternKindFunc {
		return FuncDeclaration{}, ErrWrongVariant
	}
	return i.FuncDecl, nil
}

// AsTable returns the table payload, erroring if Kind is not ExternKindTable.
func (i *Import) AsTable() (Table, error) {
	if i.Kind != ExternKindTable {
		return Table{}, ErrWrongVariant
	}
	return i.Table, nil
}

// AsMemory returns the memory payload, erroring if Kind is not ExternKindMemory.
func (i *Import) AsMemory() (Memory, error) {
	if i.Kind != ExternKindMemory {
		return Memory{}, ErrWrongVariant
	}
	return i.Memory, nil
}

// AsGlobal returns the global payload, erroring if Kind is not ExternKindGlobal.
func (i *Import) AsGlobal() (Global, error) {
	if i.Kind != ExternKindGlobal {
		return Global{}, ErrWrongVariant
	}
	return i.Global, nil
}

// AsEvent returns the event payload, erroring if Kind is not ExternKindEvent.
func (i *Import) AsEvent() (Event, error) {
	if i.Kind != ExternKindEvent {
		return Event{}, ErrWrongVariant
	}
	return i.Event, nil
}

// Export records a local name, an external kind, and the Var of the
// exported entity.
type Export struct {
	Name string
	Kind ExternKind
	Var  Var
	Loc  Location
}
