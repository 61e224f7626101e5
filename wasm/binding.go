package wasm

// Binding is one entry of a BindingHash: the source location and index
// recorded for one occurrence of a name.
type Binding struct {
	Name  string
	Loc   Location
	Index uint32
}

// BindingHash is a multi-map from name to (location, index), scoped to
// one namespace of one module (GLOSSARY). Storage permits duplicates —
// they denote source-level duplicate declarations — and iteration over a
// duplicated name yields first-insertion order.
type BindingHash struct {
	order []Binding
	index map[string][]int // name -> positions into order, insertion order
}

// NewBindingHash returns an empty BindingHash ready for use.
func NewBindingHash() *BindingHash {
	return &BindingHash{index: make(map[string][]int)}
}

// Insert adds a binding for name at the given location and index. Empty
// names denote "no name" and are never inserted.
func (b *BindingHash) Insert(name string, loc Location, idx uint32) {
	if name == "" {
		return
	}
	pos := len(b.order)
	b.order = append(b.order, Binding{Name: name, Loc: loc, Index: idx})
	b.index[name] = append(b.index[name], pos)
}

// Lookup returns the first-inserted binding for name, and whether one
// exists.
func (b *BindingHash) Lookup(name string) (Binding, bool) {
	positions, ok := b.index[name]
	if !ok || len(positions) == 0 {
		return Binding{}, false
	}
	return b.order[positions[0]], true
}

// LookupIndex is a convenience wrapper around Lookup returning just the
// index, with ok mirroring Lookup's.
func (b *BindingHash) LookupIndex(name string) (uint32, bool) {
	bind, ok := b.Lookup(name)
	if !ok {
		return 0, false
	}
	return bind.Index, true
}

// All returns every binding for name, in first-insertion order. Used by
// duplicate-binding validators, which report every location sharing a
// name.
func (b *BindingHash) All(name string) []Binding {
	positions := b.index[name]
	if len(positions) == 0 {
		return nil
	}
	out := make([]Binding, len(positions))
	for i, p := range positions {
		out[i] = b.order[p]
	}
	return out
}

// HasDuplicates reports whether name was inserted more than once.
func (b *BindingHash) HasDuplicates(name string) bool {
	return len(b.index[name]) > 1
}

// Duplicates returns every name that was inserted more than once, each
// paired with all of its bindings. Used by a validation pass scanning for
// ErrDuplicateBinding.
func (b *BindingHash) Duplicates() map[string][]Binding {
	out := make(map[string][]Binding)
	for name, positions := range b.index {
		if len(positions) > 1 {
			out[name] = b.All(name)
		}
	}
	return out
}

// Len returns the number of distinct names bound, not the number of
// bindings (duplicates count once here).
func (b *BindingHash) Len() int { return len(b.index) }

// MakeTypeBindingReverseMapping produces out[i] = the name bound to index
// i, or "" if no name is bound there. Ties — multiple names bound to the
// same index — resolve to the lexicographically first binding
// encountered. Used by text formatters to pick a canonical name for a
// function type when printing re-exported signatures.
func MakeTypeBindingReverseMapping(count uint32, b *BindingHash) []string {
	out := make([]string, count)
	// Walk every binding in first-insertion order so that, among ties,
	// later bindings are only adopted when lexicographically earlier.
	for _, bind := range b.order {
		if bind.Index >= count {
			continue
		}
		if out[bind.Index] == "" || bind.Name < out[bind.Index] {
			out[bind.Index] = bind.Name
		}
	}
	return out
}
