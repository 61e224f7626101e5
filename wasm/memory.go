package wasm

// Memory is a linear-memory definition: just a Limits.
type Memory struct {
	Name   string
	Limits Limits
	Loc    Location
}
