package wasm

import "fmt"

// Location is a source position attached to every IR node. It is purely
// informational: never compared for equality by IR operations, and never
// affects resolution or validation outcomes.
type Location struct {
	Filename    string
	Line        uint32
	FirstColumn uint32
	LastColumn  uint32
}

// String renders a Location the way a diagnostic would reference it.
func (l Location) String() string {
	if l.Filename == "" && l.Line == 0 {
		return "<unknown>"
	}
	return fmt.Sprintf("%s:%d:%d", l.Filename, l.Line, l.FirstColumn)
}
