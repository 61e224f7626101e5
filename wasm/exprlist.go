package wasm

// ExprList is an owning, doubly-linked, intrusive sequence of Expr nodes.
// It supports O(1) append, prepend, and splice, but is not randomly
// indexable — callers that need random access walk the list rather than
// index into it.
type ExprList struct {
	first *Expr
	last  *Expr
	size  int
}

// Empty reports whether the list has no nodes.
func (l *ExprList) Empty() bool { return l.first == nil }

// Len returns the number of nodes. O(1): maintained incrementally rather
// than counted by walking.
func (l *ExprList) Len() int { return l.size }

// First returns the first node, or nil if the list is empty.
func (l *ExprList) First() *Expr { return l.first }

// Last returns the last node, or nil if the list is empty.
func (l *ExprList) Last() *Expr { return l.last }

// Append adds e to the end of the list in O(1). e must not already
// belong to a list.
func (l *ExprList) Append(e *Expr) {
	e.prev = l.last
	e.next = nil
	if l.last != nil {
		l.last.next = e
	} else {
		l.first = e
	}
	l.last = e
	l.size++
}

// Prepend adds e to the front of the list in O(1). e must not already
// belong to a list.
func (l *ExprList) Prepend(e *Expr) {
	e.next = l.first
	e.prev = nil
	if l.first != nil {
		l.first.prev = e
	} else {
		l.last = e
	}
	l.first = e
	l.size++
}

// InsertAfter splices e immediately after at, which must be a node
// currently in l.
func (l *ExprList) InsertAfter(at, e *Expr) {
	e.prev = at
	e.next = at.next
	if at.next != nil {
		at.next.prev = e
	} else {
		l.last = e
	}
	at.next = e
	l.size++
}

// Remove detaches e from l in O(1). e must currently belong to l.
func (l *ExprList) Remove(e *Expr) {
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		l.first = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		l.last = e.prev
	}
	e.prev, e.next = nil, nil
	l.size--
}

// Splice moves every node out of other and appends them to the end of l,
// in O(1), leaving other empty. This is how a parse pass re-homes a
// sub-sequence into its enclosing scope without per-node copies.
func (l *ExprList) Splice(other *ExprList) {
	if other.first == nil {
		return
	}
	if l.last != nil {
		l.last.next = other.first
		other.first.prev = l.last
	} else {
		l.first = other.first
	}
	l.last = other.last
	l.size += other.size
	other.first, other.last, other.size = nil, nil, 0
}

// Each walks the list front-to-back, calling fn for every node. fn may
// not mutate the list (remove/splice nodes) during the walk.
func (l *ExprList) Each(fn func(*Expr)) {
	for e := l.first; e != nil; e = e.next {
		fn(e)
	}
}

// Slice materializes the list into a plain slice, for callers (such as
// tests) that want random access at the cost of an O(n) copy.
func (l *ExprList) Slice() []*Expr {
	out := make([]*Expr, 0, l.size)
	l.Each(func(e *Expr) { out = append(out, e) })
	return out
}
