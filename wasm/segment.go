package wasm

// Segment flags bits, shared by element and data segments.
const (
	SegmentFlagPassive        byte = 1 << 0
	SegmentFlagHasIndex       byte = 1 << 1
	SegmentFlagUseElemExprs   byte = 1 << 2 // element segments only
	segmentFlagReservedMask   byte = ^(SegmentFlagPassive | SegmentFlagHasIndex | SegmentFlagUseElemExprs)
)

// ElemExprKind discriminates one entry of an ElemSegment's element-expr
// vector.
type ElemExprKind byte

const (
	ElemExprRefNull ElemExprKind = iota
	ElemExprRefFunc
)

// ElemExpr is one (kind, var) pair of an ElemSegment's element-expr
// vector.
type ElemExpr struct {
	Kind ElemExprKind
	Var  Var
}

// ElemSegment is an element segment: a flags byte, an owning
// table Var, an element type, an offset ExprList (active segments only),
// and a vector of element exprs.
type ElemSegment struct {
	Name     string
	Flags    byte
	Table    Var
	ElemType ValueType
	Offset   ExprList
	Elems    []ElemExpr
	Loc      Location
}

// IsPassive reports whether the passive bit is set. Invariant:
// IsPassive() iff Flags&SegmentFlagPassive != 0.
func (s *ElemSegment) IsPassive() bool { return s.Flags&SegmentFlagPassive != 0 }

// HasExplicitIndex reports whether the segment carries an explicit table
// index rather than implicitly addressing table 0.
func (s *ElemSegment) HasExplicitIndex() bool { return s.Flags&SegmentFlagHasIndex != 0 }

// UsesElemExprs reports whether Elems holds (kind, var) pairs rather than
// a bare function-index vector.
func (s *ElemSegment) UsesElemExprs() bool { return s.Flags&SegmentFlagUseElemExprs != 0 }

// ValidFlags reports whether Flags sets only the three defined bits; all
// other bits must be zero.
func (s *ElemSegment) ValidFlags() bool { return s.Flags&segmentFlagReservedMask == 0 }

// DataSegment is a data segment: flags, an owning memory Var,
// an offset ExprList, and raw bytes.
type DataSegment struct {
	Name   string
	Flags  byte
	Memory Var
	Offset ExprList
	Data   []byte
	Loc    Location
}

// IsPassive reports whether the passive bit is set.
func (s *DataSegment) IsPassive() bool { return s.Flags&SegmentFlagPassive != 0 }

// HasExplicitIndex reports whether the segment carries an explicit
// memory index.
func (s *DataSegment) HasExplicitIndex() bool { return s.Flags&SegmentFlagHasIndex != 0 }
