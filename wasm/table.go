package wasm

// Table is a table definition: limits plus the element type, which must
// be Funcref or Anyref.
type Table struct {
	Name     string
	Limits   Limits
	ElemType ValueType
	Loc      Location
}
