package wasm

// localDecl is one run-length entry: count consecutive occurrences of
// Type. Invariant: Count > 0.
type localDecl struct {
	Type  ValueType
	Count uint32
}

// LocalTypes is a run-length-compressed sequence of value types: stored
// as (Type, count) declarations but presenting an iterator and
// indexed-access interface over the expanded sequence.
type LocalTypes struct {
	decls []localDecl
}

// Set replaces the declarations with a run-length compression of v,
// coalescing consecutive equal types.
func (l *LocalTypes) Set(v TypeVector) {
	l.decls = l.decls[:0]
	for _, t := range v {
		if n := len(l.decls); n > 0 && l.decls[n-1].Type == t {
			l.decls[n-1].Count++
			continue
		}
		l.decls = append(l.decls, localDecl{Type: t, Count: 1})
	}
}

// AppendDecl appends a (type, count) declaration, skipping zero counts.
// Unlike Set, consecutive equal types are NOT coalesced.
func (l *LocalTypes) AppendDecl(t ValueType, count uint32) {
	if count == 0 {
		return
	}
	l.decls = append(l.decls, localDecl{Type: t, Count: count})
}

// Size returns the sum of all declared counts.
func (l *LocalTypes) Size() uint32 {
	var n uint32
	for _, d := range l.decls {
		n += d.Count
	}
	return n
}

// Index returns the i'th type in the expanded sequence via an O(decls)
// linear scan; it fails for an out-of-range i.
func (l *LocalTypes) Index(i uint32) (ValueType, error) {
	var base uint32
	for _, d := range l.decls {
		if i < base+d.Count {
			return d.Type, nil
		}
		base += d.Count
	}
	return Void, ErrIndexOutOfRange
}

// DeclCount returns the number of (type, count) declarations, distinct
// from Size (the expanded element count).
func (l *LocalTypes) DeclCount() int { return len(l.decls) }

// Decl returns the i'th raw declaration (type, count) for callers that
// want to walk the compressed form directly (e.g. a binary encoder).
func (l *LocalTypes) Decl(i int) (ValueType, uint32) {
	d := l.decls[i]
	return d.Type, d.Count
}

// LocalTypesIterator is a forward, restartable iterator over the expanded
// sequence, with internal (decl cursor, intra-decl offset) state.
type LocalTypesIterator struct {
	decls       []localDecl
	declCursor  int
	intraOffset uint32
}

// Iterator returns a fresh iterator positioned at the start of l.
func (l *LocalTypes) Iterator() *LocalTypesIterator {
	return &LocalTypesIterator{decls: l.decls}
}

// Next returns the next type in iteration order, and false once
// exhausted.
func (it *LocalTypesIterator) Next() (ValueType, bool) {
	for it.declCursor < len(it.decls) {
		d := it.decls[it.declCursor]
		if it.intraOffset < d.Count {
			it.intraOffset++
			return d.Type, true
		}
		it.declCursor++
		it.intraOffset = 0
	}
	return Void, false
}

// All expands l into a plain TypeVector, in declaration order. Equivalent
// to draining an Iterator, provided as a convenience for tests and small
// lists.
func (l *LocalTypes) All() TypeVector {
	out := make(TypeVector, 0, l.Size())
	it := l.Iterator()
	for {
		t, ok := it.Next()
		if !ok {
			break
		}
		out = append(out, t)
	}
	return out
}
