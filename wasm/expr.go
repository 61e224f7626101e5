package wasm

import "fmt"

// ExprType is the discriminator of the Expr tagged union. Each
// value names one of the ~60 instruction variants the IR carries.
type ExprType int

const (
	ExprUnreachable ExprType = iota
	ExprNop
	ExprDrop
	ExprSelect
	ExprReturn

	ExprBlock
	ExprLoop
	ExprIf
	ExprTry
	ExprBr
	ExprBrIf
	ExprBrTable
	ExprBrOnExn

	ExprCall
	ExprCallIndirect
	ExprReturnCall
	ExprReturnCallIndirect

	ExprLocalGet
	ExprLocalSet
	ExprLocalTee
	ExprGlobalGet
	ExprGlobalSet

	ExprConst

	ExprBinary
	ExprCompare
	ExprConvert
	ExprUnary
	ExprTernary

	ExprLoad
	ExprStore
	ExprMemorySize
	ExprMemoryGrow
	ExprMemoryInit
	ExprMemoryCopy
	ExprMemoryFill
	ExprDataDrop

	ExprTableGet
	ExprTableSet
	ExprTableGrow
	ExprTableSize
	ExprTableInit
	ExprTableCopy
	ExprElemDrop

	ExprRefNull
	ExprRefIsNull
	ExprRefFunc

	ExprThrow
	ExprRethrow

	ExprAtomicLoad
	ExprAtomicStore
	ExprAtomicRmw
	ExprAtomicRmwCmpxchg
	ExprAtomicWait
	ExprAtomicNotify

	ExprLoadSplat
	ExprSimdLaneOp
	ExprSimdShuffleOp
)

// String names the discriminator for diagnostics.
func (t ExprType) String() string {
	if n, ok := exprTypeNames[t]; ok {
		return n
	}
	return fmt.Sprintf("ExprType(%d)", int(t))
}

var exprTypeNames = map[ExprType]string{
	ExprUnreachable: "unreachable", ExprNop: "nop", ExprDrop: "drop",
	ExprSelect: "select", ExprReturn: "return", ExprBlock: "block",
	ExprLoop: "loop", ExprIf: "if", ExprTry: "try", ExprBr: "br",
	ExprBrIf: "br_if", ExprBrTable: "br_table", ExprBrOnExn: "br_on_exn",
	ExprCall: "call", ExprCallIndirect: "call_indirect",
	ExprReturnCall: "return_call", ExprReturnCallIndirect: "return_call_indirect",
	ExprLocalGet: "local.get", ExprLocalSet: "local.set", ExprLocalTee: "local.tee",
	ExprGlobalGet: "global.get", ExprGlobalSet: "global.set", ExprConst: "const",
	ExprBinary: "binary", ExprCompare: "compare", ExprConvert: "convert",
	ExprUnary: "unary", ExprTernary: "ternary", ExprLoad: "load", ExprStore: "store",
	ExprMemorySize: "memory.size", ExprMemoryGrow: "memory.grow",
	ExprMemoryInit: "memory.init", ExprMemoryCopy: "memory.copy",
	ExprMemoryFill: "memory.fill", ExprDataDrop: "data.drop",
	ExprTableGet: "table.get", ExprTableSet: "table.set", ExprTableGrow: "table.grow",
	ExprTableSize: "table.size", ExprTableInit: "table.init", ExprTableCopy: "table.copy",
	ExprElemDrop: "elem.drop", ExprRefNull: "ref.null", ExprRefIsNull: "ref.is_null",
	ExprRefFunc: "ref.func", ExprThrow: "throw", ExprRethrow: "rethrow",
	ExprAtomicLoad: "atomic.load", ExprAtomicStore: "atomic.store",
	ExprAtomicRmw: "atomic.rmw", ExprAtomicRmwCmpxchg: "atomic.rmw.cmpxchg",
	ExprAtomicWait: "atomic.wait", ExprAtomicNotify: "atomic.notify",
	ExprLoadSplat: "load_splat", ExprSimdLaneOp: "simd_lane_op",
	ExprSimdShuffleOp: "simd_shuffle_op",
}

// Block bundles an optional label, a signature, an owned ExprList, and an
// end location. Reused by Block/Loop expressions and by
// the then-arm of If and the body of Try.
type Block struct {
	Label    string
	HasLabel bool
	Decl     BlockDeclaration
	Body     ExprList
	EndLoc   Location
}

// BlockDeclaration mirrors FuncDeclaration's reference-or-inline duality
// for a block's signature.
type BlockDeclaration struct {
	TypeVar    Var
	HasTypeVar bool
	Sig        FuncSignature
}

// varPayload backs every single-Var-carrying variant.
type varPayload struct{ v Var }

// twoVarPayload backs TableInit ([segment, table]), TableCopy ([dst, src]).
type twoVarPayload struct{ a, b Var }

// opcodePayload backs Binary/Compare/Convert/Unary/Ternary.
type opcodePayload struct{ op Opcode }

// loadStorePayload backs Load/Store/AtomicLoad/AtomicStore/AtomicRmw/
// AtomicRmwCmpxchg/AtomicWait/AtomicNotify/LoadSplat.
type loadStorePayload struct {
	op     Opcode
	align  uint32
	offset uint32
}

// constPayload backs Const.
type constPayload struct{ c Const }

// ifPayload backs If: a then-arm Block and a bare else-arm ExprList.
// The then-arm's Decl applies to the whole If.
type ifPayload struct {
	then       *Block
	els        ExprList
	elseEndLoc Location
}

// tryPayload backs Try: a body Block plus a catch ExprList.
type tryPayload struct {
	body  *Block
	catch ExprList
}

// callIndirectPayload backs CallIndirect/ReturnCallIndirect.
type callIndirectPayload struct {
	decl  FuncDeclaration
	table Var
}

// brTablePayload backs BrTable: N targets plus a default.
type brTablePayload struct {
	targets []Var
	deflt   Var
}

// brOnExnPayload backs BrOnExn: a label and an event reference.
type brOnExnPayload struct {
	label Var
	event Var
}

// refNullPayload backs RefNull, which needs to know which reference type
// (Funcref or Anyref) it constructs.
type refNullPayload struct{ t ValueType }

// simdLaneOpPayload backs SimdLaneOp: opcode plus a 64-bit lane index.
type simdLaneOpPayload struct {
	op   Opcode
	lane uint64
}

// simdShuffleOpPayload backs SimdShuffleOp: opcode plus a 128-bit
// lane-selector immediate.
type simdShuffleOpPayload struct {
	op       Opcode
	selector [16]byte
}

// Expr is one node of the instruction tree: a type tag, a
// Location, and variant-specific payload. It is also a node in the
// intrusive doubly-linked ExprList its enclosing scope owns. Downcasting
// to the wrong variant via the payload accessors below returns
// ErrWrongVariant rather than panicking.
type Expr struct {
	typ ExprType
	loc Location

	prev, next *Expr

	payload any
}

// Type returns e's discriminator.
func (e *Expr) Type() ExprType { return e.typ }

// Location returns e's source position.
func (e *Expr) Location() Location { return e.loc }

// Next returns the following node in e's owning ExprList, or nil.
func (e *Expr) Next() *Expr { return e.next }

// Prev returns the preceding node in e's owning ExprList, or nil.
func (e *Expr) Prev() *Expr { return e.prev }

func newExpr(typ ExprType, loc Location, payload any) *Expr {
	return &Expr{typ: typ, loc: loc, payload: payload}
}

func wrongVariant(e *Expr, want ExprType) error {
	return fmt.Errorf("downcast %s as %s: %w", e.typ, want, ErrWrongVariant)
}

// --- Nullary constructors ---

func NewUnreachableExpr(loc Location) *Expr { return newExpr(ExprUnreachable, loc, nil) }
func NewNopExpr(loc Location) *Expr         { return newExpr(ExprNop, loc, nil) }
func NewDropExpr(loc Location) *Expr        { return newExpr(ExprDrop, loc, nil) }
func NewSelectExpr(loc Location) *Expr      { return newExpr(ExprSelect, loc, nil) }
func NewReturnExpr(loc Location) *Expr      { return newExpr(ExprReturn, loc, nil) }
func NewMemorySizeExpr(loc Location) *Expr  { return newExpr(ExprMemorySize, loc, nil) }
func NewMemoryGrowExpr(loc Location) *Expr  { return newExpr(ExprMemoryGrow, loc, nil) }
func NewMemoryCopyExpr(loc Location) *Expr  { return newExpr(ExprMemoryCopy, loc, nil) }
func NewMemoryFillExpr(loc Location) *Expr  { return newExpr(ExprMemoryFill, loc, nil) }
func NewRethrowExpr(loc Location) *Expr     { return newExpr(ExprRethrow, loc, nil) }
func NewRefIsNullExpr(loc Location) *Expr   { return newExpr(ExprRefIsNull, loc, nil) }

// NewRefNullExpr builds a typed null-reference constructor. t must be
// Funcref or Anyref.
func NewRefNullExpr(t ValueType, loc Location) *Expr {
	return newExpr(ExprRefNull, loc, refNullPayload{t: t})
}

// RefNullType returns the declared reference type. Only valid for
// ExprRefNull.
func (e *Expr) RefNullType() (ValueType, error) {
	p, ok := e.payload.(refNullPayload)
	if !ok {
		return Void, wrongVariant(e, ExprRefNull)
	}
	return p.t, nil
}

// --- Opcode-carrying constructors ---

func NewBinaryExpr(op Opcode, loc Location) *Expr  { return newExpr(ExprBinary, loc, opcodePayload{op}) }
func NewCompareExpr(op Opcode, loc Location) *Expr { return newExpr(ExprCompare, loc, opcodePayload{op}) }
func NewConvertExpr(op Opcode, loc Location) *Expr { return newExpr(ExprConvert, loc, opcodePayload{op}) }
func NewUnaryExpr(op Opcode, loc Location) *Expr   { return newExpr(ExprUnary, loc, opcodePayload{op}) }
func NewTernaryExpr(op Opcode, loc Location) *Expr { return newExpr(ExprTernary, loc, opcodePayload{op}) }

// Opcode returns the carried catalogue entry. Valid for Binary, Compare,
// Convert, Unary, Ternary.
func (e *Expr) Opcode() (Opcode, error) {
	p, ok := e.payload.(opcodePayload)
	if !ok {
		return Opcode{}, wrongVariant(e, e.typ)
	}
	return p.op, nil
}

// --- Var-carrying constructors ---

func newVarExpr(typ ExprType, v Var, loc Location) *Expr { return newExpr(typ, loc, varPayload{v}) }

func NewBrExpr(label Var, loc Location) *Expr        { return newVarExpr(ExprBr, label, loc) }
func NewBrIfExpr(label Var, loc Location) *Expr      { return newVarExpr(ExprBrIf, label, loc) }
func NewCallExpr(fn Var, loc Location) *Expr         { return newVarExpr(ExprCall, fn, loc) }
func NewReturnCallExpr(fn Var, loc Location) *Expr   { return newVarExpr(ExprReturnCall, fn, loc) }
func NewGlobalGetExpr(g Var, loc Location) *Expr     { return newVarExpr(ExprGlobalGet, g, loc) }
func NewGlobalSetExpr(g Var, loc Location) *Expr     { return newVarExpr(ExprGlobalSet, g, loc) }
func NewLocalGetExpr(l Var, loc Location) *Expr      { return newVarExpr(ExprLocalGet, l, loc) }
func NewLocalSetExpr(l Var, loc Location) *Expr      { return newVarExpr(ExprLocalSet, l, loc) }
func NewLocalTeeExpr(l Var, loc Location) *Expr      { return newVarExpr(ExprLocalTee, l, loc) }
func NewThrowExpr(event Var, loc Location) *Expr     { return newVarExpr(ExprThrow, event, loc) }
func NewRefFuncExpr(fn Var, loc Location) *Expr      { return newVarExpr(ExprRefFunc, fn, loc) }
func NewMemoryInitExpr(seg Var, loc Location) *Expr  { return newVarExpr(ExprMemoryInit, seg, loc) }
func NewDataDropExpr(seg Var, loc Location) *Expr    { return newVarExpr(ExprDataDrop, seg, loc) }
func NewElemDropExpr(seg Var, loc Location) *Expr    { return newVarExpr(ExprElemDrop, seg, loc) }
func NewTableGetExpr(t Var, loc Location) *Expr      { return newVarExpr(ExprTableGet, t, loc) }
func NewTableSetExpr(t Var, loc Location) *Expr      { return newVarExpr(ExprTableSet, t, loc) }
func NewTableGrowExpr(t Var, loc Location) *Expr     { return newVarExpr(ExprTableGrow, t, loc) }
func NewTableSizeExpr(t Var, loc Location) *Expr     { return newVarExpr(ExprTableSize, t, loc) }

// Var returns the carried reference. Valid for every Var-carrying
// variant listed above.
func (e *Expr) Var() (Var, error) {
	p, ok := e.payload.(varPayload)
	if !ok {
		return Var{}, wrongVariant(e, e.typ)
	}
	return p.v, nil
}

// --- Two-var constructors ---

func NewTableInitExpr(seg, table Var, loc Location) *Expr {
	return newExpr(ExprTableInit, loc, twoVarPayload{seg, table})
}

func NewTableCopyExpr(dst, src Var, loc Location) *Expr {
	return newExpr(ExprTableCopy, loc, twoVarPayload{dst, src})
}

// TwoVars returns the pair carried by TableInit ([segment, table]) or
// TableCopy ([dst, src]).
func (e *Expr) TwoVars() (a, b Var, err error) {
	p, ok := e.payload.(twoVarPayload)
	if !ok {
		return Var{}, Var{}, wrongVariant(e, e.typ)
	}
	return p.a, p.b, nil
}

// --- Load/Store-shaped constructors ---

func newLoadStoreExpr(typ ExprType, op Opcode, align, offset uint32, loc Location) *Expr {
	return newExpr(typ, loc, loadStorePayload{op: op, align: align, offset: offset})
}

func NewLoadExpr(op Opcode, align, offset uint32, loc Location) *Expr {
	return newLoadStoreExpr(ExprLoad, op, align, offset, loc)
}
func NewStoreExpr(op Opcode, align, offset uint32, loc Location) *Expr {
	return newLoadStoreExpr(ExprStore, op, align, offset, loc)
}
func NewAtomicLoadExpr(op Opcode, align, offset uint32, loc Location) *Expr {
	return newLoadStoreExpr(ExprAtomicLoad, op, align, offset, loc)
}
func NewAtomicStoreExpr(op Opcode, align, offset uint32, loc Location) *Expr {
	return newLoadStoreExpr(ExprAtomicStore, op, align, offset, loc)
}
func NewAtomicRmwExpr(op Opcode, align, offset uint32, loc Location) *Expr {
	return newLoadStoreExpr(ExprAtomicRmw, op, align, offset, loc)
}
func NewAtomicRmwCmpxchgExpr(op Opcode, align, offset uint32, loc Location) *Expr {
	return newLoadStoreExpr(ExprAtomicRmwCmpxchg, op, align, offset, loc)
}
func NewAtomicWaitExpr(op Opcode, align, offset uint32, loc Location) *Expr {
	return newLoadStoreExpr(ExprAtomicWait, op, align, offset, loc)
}
func NewAtomicNotifyExpr(op Opcode, align, offset uint32, loc Location) *Expr {
	return newLoadStoreExpr(ExprAtomicNotify, op, align, offset, loc)
}
func NewLoadSplatExpr(op Opcode, align, offset uint32, loc Location) *Expr {
	return newLoadStoreExpr(ExprLoadSplat, op, align, offset, loc)
}

// LoadStore returns the opcode, alignment (bytes), and offset carried by
// any Load/Store-shaped variant.
func (e *Expr) LoadStore() (op Opcode, align, offset uint32, err error) {
	p, ok := e.payload.(loadStorePayload)
	if !ok {
		return Opcode{}, 0, 0, wrongVariant(e, e.typ)
	}
	return p.op, p.align, p.offset, nil
}

// --- Constant constructor ---

func NewConstExpr(c Const, loc Location) *Expr { return newExpr(ExprConst, loc, constPayload{c}) }

// ConstValue returns the carried Const. Valid for ExprConst.
func (e *Expr) ConstValue() (Const, error) {
	p, ok := e.payload.(constPayload)
	if !ok {
		return Const{}, wrongVariant(e, ExprConst)
	}
	return p.c, nil
}

// --- Block-shaped constructors ---

func NewBlockExpr(b *Block, loc Location) *Expr { return newExpr(ExprBlock, loc, b) }
func NewLoopExpr(b *Block, loc Location) *Expr  { return newExpr(ExprLoop, loc, b) }

// BlockValue returns the carried *Block. Valid for ExprBlock and ExprLoop.
func (e *Expr) BlockValue() (*Block, error) {
	b, ok := e.payload.(*Block)
	if !ok {
		return nil, wrongVariant(e, e.typ)
	}
	return b, nil
}

// NewIfExpr builds an If node: a then-arm Block and a bare else-arm
// ExprList (possibly empty). The then-arm's Decl applies to the whole If.
func NewIfExpr(then *Block, els ExprList, elseEndLoc, loc Location) *Expr {
	return newExpr(ExprIf, loc, &ifPayload{then: then, els: els, elseEndLoc: elseEndLoc})
}

// IfValue returns the then-Block, the else-ExprList, and the else-end
// location. Valid for ExprIf.
func (e *Expr) IfValue() (then *Block, els *ExprList, elseEndLoc Location, err error) {
	p, ok := e.payload.(*ifPayload)
	if !ok {
		return nil, nil, Location{}, wrongVariant(e, ExprIf)
	}
	return p.then, &p.els, p.elseEndLoc, nil
}

// NewTryExpr builds a Try node: a body Block plus a catch ExprList.
func NewTryExpr(body *Block, catch ExprList, loc Location) *Expr {
	return newExpr(ExprTry, loc, &tryPayload{body: body, catch: catch})
}

// TryValue returns the body Block and the catch ExprList. Valid for ExprTry.
func (e *Expr) TryValue() (body *Block, catch *ExprList, err error) {
	p, ok := e.payload.(*tryPayload)
	if !ok {
		return nil, nil, wrongVariant(e, ExprTry)
	}
	return p.body, &p.catch, nil
}

// --- Call-indirect family ---

func newCallIndirectExpr(typ ExprType, decl FuncDeclaration, table Var, loc Location) *Expr {
	return newExpr(typ, loc, callIndirectPayload{decl: decl, table: table})
}

func NewCallIndirectExpr(decl FuncDeclaration, table Var, loc Location) *Expr {
	return newCallIndirectExpr(ExprCallIndirect, decl, table, loc)
}
func NewReturnCallIndirectExpr(decl FuncDeclaration, table Var, loc Location) *Expr {
	return newCallIndirectExpr(ExprReturnCallIndirect, decl, table, loc)
}

// CallIndirectValue returns the FuncDeclaration and table Var. Valid for
// ExprCallIndirect and ExprReturnCallIndirect.
func (e *Expr) CallIndirectValue() (FuncDeclaration, Var, error) {
	p, ok := e.payload.(callIndirectPayload)
	if !ok {
		return FuncDeclaration{}, Var{}, wrongVariant(e, e.typ)
	}
	return p.decl, p.table, nil
}

// --- BrTable ---

// NewBrTableExpr builds a br_table node from its ordered target labels
// plus a default.
func NewBrTableExpr(targets []Var, deflt Var, loc Location) *Expr {
	return newExpr(ExprBrTable, loc, brTablePayload{targets: append([]Var(nil), targets...), deflt: deflt})
}

// BrTableValue returns the target labels and the default target.
func (e *Expr) BrTableValue() (targets []Var, deflt Var, err error) {
	p, ok := e.payload.(brTablePayload)
	if !ok {
		return nil, Var{}, wrongVariant(e, ExprBrTable)
	}
	return append([]Var(nil), p.targets...), p.deflt, nil
}

// --- BrOnExn ---

// NewBrOnExnExpr builds a br_on_exn node from its label and event Vars.
func NewBrOnExnExpr(label, event Var, loc Location) *Expr {
	return newExpr(ExprBrOnExn, loc, brOnExnPayload{label: label, event: event})
}

// BrOnExnValue returns the label and event Vars.
func (e *Expr) BrOnExnValue() (label, event Var, err error) {
	p, ok := e.payload.(brOnExnPayload)
	if !ok {
		return Var{}, Var{}, wrongVariant(e, ExprBrOnExn)
	}
	return p.label, p.event, nil
}

// --- SIMD lane/shuffle ---

// NewSimdLaneOpExpr builds a lane-indexed SIMD op (e.g. extract_lane).
func NewSimdLaneOpExpr(op Opcode, lane uint64, loc Location) *Expr {
	return newExpr(ExprSimdLaneOp, loc, simdLaneOpPayload{op: op, lane: lane})
}

// SimdLaneOpValue returns the opcode and the 64-bit lane immediate.
func (e *Expr) SimdLaneOpValue() (op Opcode, lane uint64, err error) {
	p, ok := e.payload.(simdLaneOpPayload)
	if !ok {
		return Opcode{}, 0, wrongVariant(e, ExprSimdLaneOp)
	}
	return p.op, p.lane, nil
}

// NewSimdShuffleOpExpr builds a 16-lane shuffle op from its 128-bit
// lane-selector immediate.
func NewSimdShuffleOpExpr(op Opcode, selector [16]byte, loc Location) *Expr {
	return newExpr(ExprSimdShuffleOp, loc, simdShuffleOpPayload{op: op, selector: selector})
}

// SimdShuffleOpValue returns the opcode and the 128-bit selector.
func (e *Expr) SimdShuffleOpValue() (op Opcode, selector [16]byte, err error) {
	p, ok := e.payload.(simdShuffleOpPayload)
	if !ok {
		return Opcode{}, [16]byte{}, wrongVariant(e, ExprSimdShuffleOp)
	}
	return p.op, p.selector, nil
}
