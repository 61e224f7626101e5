package wasm

// This file is the single declarative source of truth for the opcode
// catalogue: one row per instruction, consumed at init time by
// FromCode, FromName, and friends. New opcodes are added only by
// extending opcodeTable.

// OpcodeName values. Interpreter-only entries (Alloca, BrUnless, CallHost,
// InterpData, DropKeep) occupy the reserved 0xE0-0xE4 range and are never
// emitted to a serialised .wasm binary.
const (
	OpUnreachable OpcodeName = iota
	OpNop
	OpBlock
	OpLoop
	OpIf
	OpElse
	OpTry
	OpCatch
	OpThrow
	OpRethrow
	OpBrOnExn
	OpEnd
	OpBr
	OpBrIf
	OpBrTable
	OpReturn
	OpCall
	OpCallIndirect
	OpReturnCall
	OpReturnCallIndirect

	OpDrop
	OpSelect

	OpLocalGet
	OpLocalSet
	OpLocalTee
	OpGlobalGet
	OpGlobalSet

	OpI32Load
	OpI64Load
	OpF32Load
	OpF64Load
	OpI32Load8S
	OpI32Load8U
	OpI32Load16S
	OpI32Load16U
	OpI64Load8S
	OpI64Load8U
	OpI64Load16S
	OpI64Load16U
	OpI64Load32S
	OpI64Load32U
	OpI32Store
	OpI64Store
	OpF32Store
	OpF64Store
	OpI32Store8
	OpI32Store16
	OpI64Store8
	OpI64Store16
	OpI64Store32
	OpMemorySize
	OpMemoryGrow

	OpI32Const
	OpI64Const
	OpF32Const
	OpF64Const

	OpI32Eqz
	OpI32Eq
	OpI32Ne
	OpI32LtS
	OpI32LtU
	OpI32GtS
	OpI32GtU
	OpI32LeS
	OpI32LeU
	OpI32GeS
	OpI32GeU

	OpI64Eqz
	OpI64Eq
	OpI64Ne
	OpI64LtS
	OpI64LtU
	OpI64GtS
	OpI64GtU
	OpI64LeS
	OpI64LeU
	OpI64GeS
	OpI64GeU

	OpF32Eq
	OpF32Ne
	OpF32Lt
	OpF32Gt
	OpF32Le
	OpF32Ge

	OpF64Eq
	OpF64Ne
	OpF64Lt
	OpF64Gt
	OpF64Le
	OpF64Ge

	OpI32Clz
	OpI32Ctz
	OpI32Popcnt
	OpI32Add
	OpI32Sub
	OpI32Mul
	OpI32DivS
	OpI32DivU
	OpI32RemS
	OpI32RemU
	OpI32And
	OpI32Or
	OpI32Xor
	OpI32Shl
	OpI32ShrS
	OpI32ShrU
	OpI32Rotl
	OpI32Rotr

	OpI64Clz
	OpI64Ctz
	OpI64Popcnt
	OpI64Add
	OpI64Sub
	OpI64Mul
	OpI64DivS
	OpI64DivU
	OpI64RemS
	OpI64RemU
	OpI64And
	OpI64Or
	OpI64Xor
	OpI64Shl
	OpI64ShrS
	OpI64ShrU
	OpI64Rotl
	OpI64Rotr

	OpF32Abs
	OpF32Neg
	OpF32Ceil
	OpF32Floor
	OpF32Trunc
	OpF32Nearest
	OpF32Sqrt
	OpF32Add
	OpF32Sub
	OpF32Mul
	OpF32Div
	OpF32Min
	OpF32Max
	OpF32Copysign

	OpF64Abs
	OpF64Neg
	OpF64Ceil
	OpF64Floor
	OpF64Trunc
	OpF64Nearest
	OpF64Sqrt
	OpF64Add
	OpF64Sub
	OpF64Mul
	OpF64Div
	OpF64Min
	OpF64Max
	OpF64Copysign

	OpI32WrapI64
	OpI32TruncF32S
	OpI32TruncF32U
	OpI32TruncF64S
	OpI32TruncF64U
	OpI64ExtendI32S
	OpI64ExtendI32U
	OpI64TruncF32S
	OpI64TruncF32U
	OpI64TruncF64S
	OpI64TruncF64U
	OpF32ConvertI32S
	OpF32ConvertI32U
	OpF32ConvertI64S
	OpF32ConvertI64U
	OpF32DemoteF64
	OpF64ConvertI32S
	OpF64ConvertI32U
	OpF64ConvertI64S
	OpF64ConvertI64U
	OpF64PromoteF32
	OpI32ReinterpretF32
	OpI64ReinterpretF64
	OpF32ReinterpretI32
	OpF64ReinterpretI64

	OpI32Extend8S
	OpI32Extend16S
	OpI64Extend8S
	OpI64Extend16S
	OpI64Extend32S

	OpRefNull
	OpRefIsNull
	OpRefFunc

	OpI32TruncSatF32S
	OpI32TruncSatF32U
	OpI32TruncSatF64S
	OpI32TruncSatF64U
	OpI64TruncSatF32S
	OpI64TruncSatF32U
	OpI64TruncSatF64S
	OpI64TruncSatF64U
	OpMemoryInit
	OpDataDrop
	OpMemoryCopy
	OpMemoryFill
	OpTableInit
	OpElemDrop
	OpTableCopy
	OpTableGrow
	OpTableSize
	OpTableGet
	OpTableSet
	OpTableFill

	OpV128Load
	OpV128Load8Splat
	OpV128Load16Splat
	OpV128Load32Splat
	OpV128Load64Splat
	OpV128Store
	OpV128Const
	OpI8x16Shuffle
	OpI8x16Swizzle
	OpI8x16Splat
	OpI16x8Splat
	OpI32x4Splat
	OpI64x2Splat
	OpF32x4Splat
	OpF64x2Splat
	OpV128Not
	OpV128And
	OpV128Or
	OpV128Xor
	OpV128Bitselect
	OpV128AnyTrue
	OpI8x16Add
	OpI16x8Add
	OpI32x4Add
	OpI64x2Add
	OpI8x16Sub
	OpI16x8Sub
	OpI32x4Sub
	OpI64x2Sub
	OpI16x8Mul
	OpI32x4Mul
	OpI64x2Mul
	OpF32x4Add
	OpF32x4Sub
	OpF32x4Mul
	OpF32x4Div
	OpF64x2Add
	OpF64x2Sub
	OpF64x2Mul
	OpF64x2Div

	OpAtomicNotify
	OpI32AtomicWait
	OpI64AtomicWait
	OpI32AtomicLoad
	OpI64AtomicLoad
	OpI32AtomicLoad8U
	OpI32AtomicLoad16U
	OpI64AtomicLoad8U
	OpI64AtomicLoad16U
	OpI64AtomicLoad32U
	OpI32AtomicStore
	OpI64AtomicStore
	OpI32AtomicStore8
	OpI32AtomicStore16
	OpI64AtomicStore8
	OpI64AtomicStore16
	OpI64AtomicStore32
	OpI32AtomicRmwAdd
	OpI64AtomicRmwAdd
	OpI32AtomicRmwSub
	OpI64AtomicRmwSub
	OpI32AtomicRmwAnd
	OpI64AtomicRmwAnd
	OpI32AtomicRmwOr
	OpI64AtomicRmwOr
	OpI32AtomicRmwXor
	OpI64AtomicRmwXor
	OpI32AtomicRmwXchg
	OpI64AtomicRmwXchg
	OpI32AtomicRmwCmpxchg
	OpI64AtomicRmwCmpxchg

	// Interpreter-only; reserved range 0xE0-0xE4, unprefixed. Never
	// emitted to a serialised .wasm binary.
	OpAlloca
	OpBrUnless
	OpCallHost
	OpInterpData
	OpDropKeep
)

func mkop(name OpcodeName, prefix, code byte, result ValueType, operands []ValueType, memSize uint32, mnemonic, short string) Opcode {
	var ops [3]ValueType
	for i := range ops {
		ops[i] = Void
	}
	copy(ops[:], operands)
	return Opcode{
		Name:          name,
		Prefix:        prefix,
		Code:          code,
		Result:        result,
		Operands:      ops,
		MemorySize:    memSize,
		Mnemonic:      mnemonic,
		ShortMnemonic: short,
	}
}

// opcodeTable is declared in source order for readability; init() in
// opcode.go sorts a copy by (prefix, code) for binary search.
var opcodeTable = []Opcode{
	mkop(OpUnreachable, PrefixNone, 0x00, Void, nil, 0, "unreachable", ""),
	mkop(OpNop, PrefixNone, 0x01, Void, nil, 0, "nop", ""),
	mkop(OpBlock, PrefixNone, 0x02, Void, nil, 0, "block", ""),
	mkop(OpLoop, PrefixNone, 0x03, Void, nil, 0, "loop", ""),
	mkop(OpIf, PrefixNone, 0x04, Void, []ValueType{I32}, 0, "if", ""),
	mkop(OpElse, PrefixNone, 0x05, Void, nil, 0, "else", ""),
	mkop(OpTry, PrefixNone, 0x06, Void, nil, 0, "try", ""),
	mkop(OpCatch, PrefixNone, 0x07, Void, nil, 0, "catch", ""),
	mkop(OpThrow, PrefixNone, 0x08, Void, nil, 0, "throw", ""),
	mkop(OpRethrow, PrefixNone, 0x09, Void, nil, 0, "rethrow", ""),
	mkop(OpBrOnExn, PrefixNone, 0x0A, Void, nil, 0, "br_on_exn", ""),
	mkop(OpEnd, PrefixNone, 0x0B, Void, nil, 0, "end", ""),
	mkop(OpBr, PrefixNone, 0x0C, Void, nil, 0, "br", ""),
	mkop(OpBrIf, PrefixNone, 0x0D, Void, []ValueType{I32}, 0, "br_if", ""),
	mkop(OpBrTable, PrefixNone, 0x0E, Void, []ValueType{I32}, 0, "br_table", ""),
	mkop(OpReturn, PrefixNone, 0x0F, Void, nil, 0, "return", ""),
	mkop(OpCall, PrefixNone, 0x10, Void, nil, 0, "call", ""),
	mkop(OpCallIndirect, PrefixNone, 0x11, Void, []ValueType{I32}, 0, "call_indirect", ""),
	mkop(OpReturnCall, PrefixNone, 0x12, Void, nil, 0, "return_call", ""),
	mkop(OpReturnCallIndirect, PrefixNone, 0x13, Void, []ValueType{I32}, 0, "return_call_indirect", ""),

	mkop(OpDrop, PrefixNone, 0x1A, Void, nil, 0, "drop", ""),
	mkop(OpSelect, PrefixNone, 0x1B, Void, nil, 0, "select", ""),

	mkop(OpLocalGet, PrefixNone, 0x20, Void, nil, 0, "local.get", ""),
	mkop(OpLocalSet, PrefixNone, 0x21, Void, nil, 0, "local.set", ""),
	mkop(OpLocalTee, PrefixNone, 0x22, Void, nil, 0, "local.tee", ""),
	mkop(OpGlobalGet, PrefixNone, 0x23, Void, nil, 0, "global.get", ""),
	mkop(OpGlobalSet, PrefixNone, 0x24, Void, nil, 0, "global.set", ""),

	mkop(OpI32Load, PrefixNone, 0x28, I32, []ValueType{I32}, 4, "i32.load", ""),
	mkop(OpI64Load, PrefixNone, 0x29, I64, []ValueType{I32}, 8, "i64.load", ""),
	mkop(OpF32Load, PrefixNone, 0x2A, F32, []ValueType{I32}, 4, "f32.load", ""),
	mkop(OpF64Load, PrefixNone, 0x2B, F64, []ValueType{I32}, 8, "f64.load", ""),
	mkop(OpI32Load8S, PrefixNone, 0x2C, I32, []ValueType{I32}, 1, "i32.load8_s", ""),
	mkop(OpI32Load8U, PrefixNone, 0x2D, I32, []ValueType{I32}, 1, "i32.load8_u", ""),
	mkop(OpI32Load16S, PrefixNone, 0x2E, I32, []ValueType{I32}, 2, "i32.load16_s", ""),
	mkop(OpI32Load16U, PrefixNone, 0x2F, I32, []ValueType{I32}, 2, "i32.load16_u", ""),
	mkop(OpI64Load8S, PrefixNone, 0x30, I64, []ValueType{I32}, 1, "i64.load8_s", ""),
	mkop(OpI64Load8U, PrefixNone, 0x31, I64, []ValueType{I32}, 1, "i64.load8_u", ""),
	mkop(OpI64Load16S, PrefixNone, 0x32, I64, []ValueType{I32}, 2, "i64.load16_s", ""),
	mkop(OpI64Load16U, PrefixNone, 0x33, I64, []ValueType{I32}, 2, "i64.load16_u", ""),
	mkop(OpI64Load32S, PrefixNone, 0x34, I64, []ValueType{I32}, 4, "i64.load32_s", ""),
	mkop(OpI64Load32U, PrefixNone, 0x35, I64, []ValueType{I32}, 4, "i64.load32_u", ""),
	mkop(OpI32Store, PrefixNone, 0x36, Void, []ValueType{I32, I32}, 4, "i32.store", ""),
	mkop(OpI64Store, PrefixNone, 0x37, Void, []ValueType{I32, I64}, 8, "i64.store", ""),
	mkop(OpF32Store, PrefixNone, 0x38, Void, []ValueType{I32, F32}, 4, "f32.store", ""),
	mkop(OpF64Store, PrefixNone, 0x39, Void, []ValueType{I32, F64}, 8, "f64.store", ""),
	mkop(OpI32Store8, PrefixNone, 0x3A, Void, []ValueType{I32, I32}, 1, "i32.store8", ""),
	mkop(OpI32Store16, PrefixNone, 0x3B, Void, []ValueType{I32, I32}, 2, "i32.store16", ""),
	mkop(OpI64Store8, PrefixNone, 0x3C, Void, []ValueType{I32, I64}, 1, "i64.store8", ""),
	mkop(OpI64Store16, PrefixNone, 0x3D, Void, []ValueType{I32, I64}, 2, "i64.store16", ""),
	mkop(OpI64Store32, PrefixNone, 0x3E, Void, []ValueType{I32, I64}, 4, "i64.store32", ""),
	mkop(OpMemorySize, PrefixNone, 0x3F, I32, nil, 0, "memory.size", ""),
	mkop(OpMemoryGrow, PrefixNone, 0x40, I32, []ValueType{I32}, 0, "memory.grow", ""),

	mkop(OpI32Const, PrefixNone, 0x41, I32, nil, 0, "i32.const", ""),
	mkop(OpI64Const, PrefixNone, 0x42, I64, nil, 0, "i64.const", ""),
	mkop(OpF32Const, PrefixNone, 0x43, F32, nil, 0, "f32.const", ""),
	mkop(OpF64Const, PrefixNone, 0x44, F64, nil, 0, "f64.const", ""),

	mkop(OpI32Eqz, PrefixNone, 0x45, I32, []ValueType{I32}, 0, "i32.eqz", ""),
	mkop(OpI32Eq, PrefixNone, 0x46, I32, []ValueType{I32, I32}, 0, "i32.eq", "=="),
	mkop(OpI32Ne, PrefixNone, 0x47, I32, []ValueType{I32, I32}, 0, "i32.ne", "!="),
	mkop(OpI32LtS, PrefixNone, 0x48, I32, []ValueType{I32, I32}, 0, "i32.lt_s", "<"),
	mkop(OpI32LtU, PrefixNone, 0x49, I32, []ValueType{I32, I32}, 0, "i32.lt_u", "<"),
	mkop(OpI32GtS, PrefixNone, 0x4A, I32, []ValueType{I32, I32}, 0, "i32.gt_s", ">"),
	mkop(OpI32GtU, PrefixNone, 0x4B, I32, []ValueType{I32, I32}, 0, "i32.gt_u", ">"),
	mkop(OpI32LeS, PrefixNone, 0x4C, I32, []ValueType{I32, I32}, 0, "i32.le_s", "<="),
	mkop(OpI32LeU, PrefixNone, 0x4D, I32, []ValueType{I32, I32}, 0, "i32.le_u", "<="),
	mkop(OpI32GeS, PrefixNone, 0x4E, I32, []ValueType{I32, I32}, 0, "i32.ge_s", ">="),
	mkop(OpI32GeU, PrefixNone, 0x4F, I32, []ValueType{I32, I32}, 0, "i32.ge_u", ">="),

	mkop(OpI64Eqz, PrefixNone, 0x50, I32, []ValueType{I64}, 0, "i64.eqz", ""),
	mkop(OpI64Eq, PrefixNone, 0x51, I32, []ValueType{I64, I64}, 0, "i64.eq", "=="),
	mkop(OpI64Ne, PrefixNone, 0x52, I32, []ValueType{I64, I64}, 0, "i64.ne", "!="),
	mkop(OpI64LtS, PrefixNone, 0x53, I32, []ValueType{I64, I64}, 0, "i64.lt_s", "<"),
	mkop(OpI64LtU, PrefixNone, 0x54, I32, []ValueType{I64, I64}, 0, "i64.lt_u", "<"),
	mkop(OpI64GtS, PrefixNone, 0x55, I32, []ValueType{I64, I64}, 0, "i64.gt_s", ">"),
	mkop(OpI64GtU, PrefixNone, 0x56, I32, []ValueType{I64, I64}, 0, "i64.gt_u", ">"),
	mkop(OpI64LeS, PrefixNone, 0x57, I32, []ValueType{I64, I64}, 0, "i64.le_s", "<="),
	mkop(OpI64LeU, PrefixNone, 0x58, I32, []ValueType{I64, I64}, 0, "i64.le_u", "<="),
	mkop(OpI64GeS, PrefixNone, 0x59, I32, []ValueType{I64, I64}, 0, "i64.ge_s", ">="),
	mkop(OpI64GeU, PrefixNone, 0x5A, I32, []ValueType{I64, I64}, 0, "i64.ge_u", ">="),

	mkop(OpF32Eq, PrefixNone, 0x5B, I32, []ValueType{F32, F32}, 0, "f32.eq", "=="),
	mkop(OpF32Ne, PrefixNone, 0x5C, I32, []ValueType{F32, F32}, 0, "f32.ne", "!="),
	mkop(OpF32Lt, PrefixNone, 0x5D, I32, []ValueType{F32, F32}, 0, "f32.lt", "<"),
	mkop(OpF32Gt, PrefixNone, 0x5E, I32, []ValueType{F32, F32}, 0, "f32.gt", ">"),
	mkop(OpF32Le, PrefixNone, 0x5F, I32, []ValueType{F32, F32}, 0, "f32.le", "<="),
	mkop(OpF32Ge, PrefixNone, 0x60, I32, []ValueType{F32, F32}, 0, "f32.ge", ">="),

	mkop(OpF64Eq, PrefixNone, 0x61, I32, []ValueType{F64, F64}, 0, "f64.eq", "=="),
	mkop(OpF64Ne, PrefixNone, 0x62, I32, []ValueType{F64, F64}, 0, "f64.ne", "!="),
	mkop(OpF64Lt, PrefixNone, 0x63, I32, []ValueType{F64, F64}, 0, "f64.lt", "<"),
	mkop(OpF64Gt, PrefixNone, 0x64, I32, []ValueType{F64, F64}, 0, "f64.gt", ">"),
	mkop(OpF64Le, PrefixNone, 0x65, I32, []ValueType{F64, F64}, 0, "f64.le", "<="),
	mkop(OpF64Ge, PrefixNone, 0x66, I32, []ValueType{F64, F64}, 0, "f64.ge", ">="),

	mkop(OpI32Clz, PrefixNone, 0x67, I32, []ValueType{I32}, 0, "i32.clz", "clz"),
	mkop(OpI32Ctz, PrefixNone, 0x68, I32, []ValueType{I32}, 0, "i32.ctz", "ctz"),
	mkop(OpI32Popcnt, PrefixNone, 0x69, I32, []ValueType{I32}, 0, "i32.popcnt", "popcnt"),
	mkop(OpI32Add, PrefixNone, 0x6A, I32, []ValueType{I32, I32}, 0, "i32.add", "+"),
	mkop(OpI32Sub, PrefixNone, 0x6B, I32, []ValueType{I32, I32}, 0, "i32.sub", "-"),
	mkop(OpI32Mul, PrefixNone, 0x6C, I32, []ValueType{I32, I32}, 0, "i32.mul", "*"),
	mkop(OpI32DivS, PrefixNone, 0x6D, I32, []ValueType{I32, I32}, 0, "i32.div_s", "/"),
	mkop(OpI32DivU, PrefixNone, 0x6E, I32, []ValueType{I32, I32}, 0, "i32.div_u", "/"),
	mkop(OpI32RemS, PrefixNone, 0x6F, I32, []ValueType{I32, I32}, 0, "i32.rem_s", "%"),
	mkop(OpI32RemU, PrefixNone, 0x70, I32, []ValueType{I32, I32}, 0, "i32.rem_u", "%"),
	mkop(OpI32And, PrefixNone, 0x71, I32, []ValueType{I32, I32}, 0, "i32.and", "&"),
	mkop(OpI32Or, PrefixNone, 0x72, I32, []ValueType{I32, I32}, 0, "i32.or", "|"),
	mkop(OpI32Xor, PrefixNone, 0x73, I32, []ValueType{I32, I32}, 0, "i32.xor", "^"),
	mkop(OpI32Shl, PrefixNone, 0x74, I32, []ValueType{I32, I32}, 0, "i32.shl", "<<"),
	mkop(OpI32ShrS, PrefixNone, 0x75, I32, []ValueType{I32, I32}, 0, "i32.shr_s", ">>"),
	mkop(OpI32ShrU, PrefixNone, 0x76, I32, []ValueType{I32, I32}, 0, "i32.shr_u", ">>"),
	mkop(OpI32Rotl, PrefixNone, 0x77, I32, []ValueType{I32, I32}, 0, "i32.rotl", ""),
	mkop(OpI32Rotr, PrefixNone, 0x78, I32, []ValueType{I32, I32}, 0, "i32.rotr", ""),

	mkop(OpI64Clz, PrefixNone, 0x79, I64, []ValueType{I64}, 0, "i64.clz", "clz"),
	mkop(OpI64Ctz, PrefixNone, 0x7A, I64, []ValueType{I64}, 0, "i64.ctz", "ctz"),
	mkop(OpI64Popcnt, PrefixNone, 0x7B, I64, []ValueType{I64}, 0, "i64.popcnt", "popcnt"),
	mkop(OpI64Add, PrefixNone, 0x7C, I64, []ValueType{I64, I64}, 0, "i64.add", "+"),
	mkop(OpI64Sub, PrefixNone, 0x7D, I64, []ValueType{I64, I64}, 0, "i64.sub", "-"),
	mkop(OpI64Mul, PrefixNone, 0x7E, I64, []ValueType{I64, I64}, 0, "i64.mul", "*"),
	mkop(OpI64DivS, PrefixNone, 0x7F, I64, []ValueType{I64, I64}, 0, "i64.div_s", "/"),
	mkop(OpI64DivU, PrefixNone, 0x80, I64, []ValueType{I64, I64}, 0, "i64.div_u", "/"),
	mkop(OpI64RemS, PrefixNone, 0x81, I64, []ValueType{I64, I64}, 0, "i64.rem_s", "%"),
	mkop(OpI64RemU, PrefixNone, 0x82, I64, []ValueType{I64, I64}, 0, "i64.rem_u", "%"),
	mkop(OpI64And, PrefixNone, 0x83, I64, []ValueType{I64, I64}, 0, "i64.and", "&"),
	mkop(OpI64Or, PrefixNone, 0x84, I64, []ValueType{I64, I64}, 0, "i64.or", "|"),
	mkop(OpI64Xor, PrefixNone, 0x85, I64, []ValueType{I64, I64}, 0, "i64.xor", "^"),
	mkop(OpI64Shl, PrefixNone, 0x86, I64, []ValueType{I64, I64}, 0, "i64.shl", "<<"),
	mkop(OpI64ShrS, PrefixNone, 0x87, I64, []ValueType{I64, I64}, 0, "i64.shr_s", ">>"),
	mkop(OpI64ShrU, PrefixNone, 0x88, I64, []ValueType{I64, I64}, 0, "i64.shr_u", ">>"),
	mkop(OpI64Rotl, PrefixNone, 0x89, I64, []ValueType{I64, I64}, 0, "i64.rotl", ""),
	mkop(OpI64Rotr, PrefixNone, 0x8A, I64, []ValueType{I64, I64}, 0, "i64.rotr", ""),

	mkop(OpF32Abs, PrefixNone, 0x8B, F32, []ValueType{F32}, 0, "f32.abs", ""),
	mkop(OpF32Neg, PrefixNone, 0x8C, F32, []ValueType{F32}, 0, "f32.neg", "-"),
	mkop(OpF32Ceil, PrefixNone, 0x8D, F32, []ValueType{F32}, 0, "f32.ceil", ""),
	mkop(OpF32Floor, PrefixNone, 0x8E, F32, []ValueType{F32}, 0, "f32.floor", ""),
	mkop(OpF32Trunc, PrefixNone, 0x8F, F32, []ValueType{F32}, 0, "f32.trunc", ""),
	mkop(OpF32Nearest, PrefixNone, 0x90, F32, []ValueType{F32}, 0, "f32.nearest", ""),
	mkop(OpF32Sqrt, PrefixNone, 0x91, F32, []ValueType{F32}, 0, "f32.sqrt", ""),
	mkop(OpF32Add, PrefixNone, 0x92, F32, []ValueType{F32, F32}, 0, "f32.add", "+"),
	mkop(OpF32Sub, PrefixNone, 0x93, F32, []ValueType{F32, F32}, 0, "f32.sub", "-"),
	mkop(OpF32Mul, PrefixNone, 0x94, F32, []ValueType{F32, F32}, 0, "f32.mul", "*"),
	mkop(OpF32Div, PrefixNone, 0x95, F32, []ValueType{F32, F32}, 0, "f32.div", "/"),
	mkop(OpF32Min, PrefixNone, 0x96, F32, []ValueType{F32, F32}, 0, "f32.min", ""),
	mkop(OpF32Max, PrefixNone, 0x97, F32, []ValueType{F32, F32}, 0, "f32.max", ""),
	mkop(OpF32Copysign, PrefixNone, 0x98, F32, []ValueType{F32, F32}, 0, "f32.copysign", ""),

	mkop(OpF64Abs, PrefixNone, 0x99, F64, []ValueType{F64}, 0, "f64.abs", ""),
	mkop(OpF64Neg, PrefixNone, 0x9A, F64, []ValueType{F64}, 0, "f64.neg", "-"),
	mkop(OpF64Ceil, PrefixNone, 0x9B, F64, []ValueType{F64}, 0, "f64.ceil", ""),
	mkop(OpF64Floor, PrefixNone, 0x9C, F64, []ValueType{F64}, 0, "f64.floor", ""),
	mkop(OpF64Trunc, PrefixNone, 0x9D, F64, []ValueType{F64}, 0, "f64.trunc", ""),
	mkop(OpF64Nearest, PrefixNone, 0x9E, F64, []ValueType{F64}, 0, "f64.nearest", ""),
	mkop(OpF64Sqrt, PrefixNone, 0x9F, F64, []ValueType{F64}, 0, "f64.sqrt", ""),
	mkop(OpF64Add, PrefixNone, 0xA0, F64, []ValueType{F64, F64}, 0, "f64.add", "+"),
	mkop(OpF64Sub, PrefixNone, 0xA1, F64, []ValueType{F64, F64}, 0, "f64.sub", "-"),
	mkop(OpF64Mul, PrefixNone, 0xA2, F64, []ValueType{F64, F64}, 0, "f64.mul", "*"),
	mkop(OpF64Div, PrefixNone, 0xA3, F64, []ValueType{F64, F64}, 0, "f64.div", "/"),
	mkop(OpF64Min, PrefixNone, 0xA4, F64, []ValueType{F64, F64}, 0, "f64.min", ""),
	mkop(OpF64Max, PrefixNone, 0xA5, F64, []ValueType{F64, F64}, 0, "f64.max", ""),
	mkop(OpF64Copysign, PrefixNone, 0xA6, F64, []ValueType{F64, F64}, 0, "f64.copysign", ""),

	mkop(OpI32WrapI64, PrefixNone, 0xA7, I32, []ValueType{I64}, 0, "i32.wrap_i64", ""),
	mkop(OpI32TruncF32S, PrefixNone, 0xA8, I32, []ValueType{F32}, 0, "i32.trunc_f32_s", ""),
	mkop(OpI32TruncF32U, PrefixNone, 0xA9, I32, []ValueType{F32}, 0, "i32.trunc_f32_u", ""),
	mkop(OpI32TruncF64S, PrefixNone, 0xAA, I32, []ValueType{F64}, 0, "i32.trunc_f64_s", ""),
	mkop(OpI32TruncF64U, PrefixNone, 0xAB, I32, []ValueType{F64}, 0, "i32.trunc_f64_u", ""),
	mkop(OpI64ExtendI32S, PrefixNone, 0xAC, I64, []ValueType{I32}, 0, "i64.extend_i32_s", ""),
	mkop(OpI64ExtendI32U, PrefixNone, 0xAD, I64, []ValueType{I32}, 0, "i64.extend_i32_u", ""),
	mkop(OpI64TruncF32S, PrefixNone, 0xAE, I64, []ValueType{F32}, 0, "i64.trunc_f32_s", ""),
	mkop(OpI64TruncF32U, PrefixNone, 0xAF, I64, []ValueType{F32}, 0, "i64.trunc_f32_u", ""),
	mkop(OpI64TruncF64S, PrefixNone, 0xB0, I64, []ValueType{F64}, 0, "i64.trunc_f64_s", ""),
	mkop(OpI64TruncF64U, PrefixNone, 0xB1, I64, []ValueType{F64}, 0, "i64.trunc_f64_u", ""),
	mkop(OpF32ConvertI32S, PrefixNone, 0xB2, F32, []ValueType{I32}, 0, "f32.convert_i32_s", ""),
	mkop(OpF32ConvertI32U, PrefixNone, 0xB3, F32, []ValueType{I32}, 0, "f32.convert_i32_u", ""),
	mkop(OpF32ConvertI64S, PrefixNone, 0xB4, F32, []ValueType{I64}, 0, "f32.convert_i64_s", ""),
	mkop(OpF32ConvertI64U, PrefixNone, 0xB5, F32, []ValueType{I64}, 0, "f32.convert_i64_u", ""),
	mkop(OpF32DemoteF64, PrefixNone, 0xB6, F32, []ValueType{F64}, 0, "f32.demote_f64", ""),
	mkop(OpF64ConvertI32S, PrefixNone, 0xB7, F64, []ValueType{I32}, 0, "f64.convert_i32_s", ""),
	mkop(OpF64ConvertI32U, PrefixNone, 0xB8, F64, []ValueType{I32}, 0, "f64.convert_i32_u", ""),
	mkop(OpF64ConvertI64S, PrefixNone, 0xB9, F64, []ValueType{I64}, 0, "f64.convert_i64_s", ""),
	mkop(OpF64ConvertI64U, PrefixNone, 0xBA, F64, []ValueType{I64}, 0, "f64.convert_i64_u", ""),
	mkop(OpF64PromoteF32, PrefixNone, 0xBB, F64, []ValueType{F32}, 0, "f64.promote_f32", ""),
	mkop(OpI32ReinterpretF32, PrefixNone, 0xBC, I32, []ValueType{F32}, 0, "i32.reinterpret_f32", ""),
	mkop(OpI64ReinterpretF64, PrefixNone, 0xBD, I64, []ValueType{F64}, 0, "i64.reinterpret_f64", ""),
	mkop(OpF32ReinterpretI32, PrefixNone, 0xBE, F32, []ValueType{I32}, 0, "f32.reinterpret_i32", ""),
	mkop(OpF64ReinterpretI64, PrefixNone, 0xBF, F64, []ValueType{I64}, 0, "f64.reinterpret_i64", ""),

	mkop(OpI32Extend8S, PrefixNone, 0xC0, I32, []ValueType{I32}, 0, "i32.extend8_s", ""),
	mkop(OpI32Extend16S, PrefixNone, 0xC1, I32, []ValueType{I32}, 0, "i32.extend16_s", ""),
	mkop(OpI64Extend8S, PrefixNone, 0xC2, I64, []ValueType{I64}, 0, "i64.extend8_s", ""),
	mkop(OpI64Extend16S, PrefixNone, 0xC3, I64, []ValueType{I64}, 0, "i64.extend16_s", ""),
	mkop(OpI64Extend32S, PrefixNone, 0xC4, I64, []ValueType{I64}, 0, "i64.extend32_s", ""),

	mkop(OpRefNull, PrefixNone, 0xD0, Funcref, nil, 0, "ref.null", ""),
	mkop(OpRefIsNull, PrefixNone, 0xD1, I32, []ValueType{Funcref}, 0, "ref.is_null", ""),
	mkop(OpRefFunc, PrefixNone, 0xD2, Funcref, nil, 0, "ref.func", ""),

	// 0xFC: non-trapping float-to-int conversions, bulk memory, table ops.
	mkop(OpI32TruncSatF32S, PrefixNumeric, 0x00, I32, []ValueType{F32}, 0, "i32.trunc_sat_f32_s", ""),
	mkop(OpI32TruncSatF32U, PrefixNumeric, 0x01, I32, []ValueType{F32}, 0, "i32.trunc_sat_f32_u", ""),
	mkop(OpI32TruncSatF64S, PrefixNumeric, 0x02, I32, []ValueType{F64}, 0, "i32.trunc_sat_f64_s", ""),
	mkop(OpI32TruncSatF64U, PrefixNumeric, 0x03, I32, []ValueType{F64}, 0, "i32.trunc_sat_f64_u", ""),
	mkop(OpI64TruncSatF32S, PrefixNumeric, 0x04, I64, []ValueType{F32}, 0, "i64.trunc_sat_f32_s", ""),
	mkop(OpI64TruncSatF32U, PrefixNumeric, 0x05, I64, []ValueType{F32}, 0, "i64.trunc_sat_f32_u", ""),
	mkop(OpI64TruncSatF64S, PrefixNumeric, 0x06, I64, []ValueType{F64}, 0, "i64.trunc_sat_f64_s", ""),
	mkop(OpI64TruncSatF64U, PrefixNumeric, 0x07, I64, []ValueType{F64}, 0, "i64.trunc_sat_f64_u", ""),
	mkop(OpMemoryInit, PrefixNumeric, 0x08, Void, []ValueType{I32, I32, I32}, 0, "memory.init", ""),
	mkop(OpDataDrop, PrefixNumeric, 0x09, Void, nil, 0, "data.drop", ""),
	mkop(OpMemoryCopy, PrefixNumeric, 0x0A, Void, []ValueType{I32, I32, I32}, 0, "memory.copy", ""),
	mkop(OpMemoryFill, PrefixNumeric, 0x0B, Void, []ValueType{I32, I32, I32}, 0, "memory.fill", ""),
	mkop(OpTableInit, PrefixNumeric, 0x0C, Void, []ValueType{I32, I32, I32}, 0, "table.init", ""),
	mkop(OpElemDrop, PrefixNumeric, 0x0D, Void, nil, 0, "elem.drop", ""),
	mkop(OpTableCopy, PrefixNumeric, 0x0E, Void, []ValueType{I32, I32, I32}, 0, "table.copy", ""),
	mkop(OpTableGrow, PrefixNumeric, 0x0F, I32, []ValueType{Funcref, I32}, 0, "table.grow", ""),
	mkop(OpTableSize, PrefixNumeric, 0x10, I32, nil, 0, "table.size", ""),
	mkop(OpTableFill, PrefixNumeric, 0x11, Void, []ValueType{I32, Funcref, I32}, 0, "table.fill", ""),
	// table.get/table.set are part of the reference-types proposal; kept
	// under the same 0xFC prefix block as the rest of the table-ops row
	// family for catalogue locality.
	mkop(OpTableGet, PrefixNumeric, 0x12, Anyref, []ValueType{I32}, 0, "table.get", ""),
	mkop(OpTableSet, PrefixNumeric, 0x13, Void, []ValueType{I32, Anyref}, 0, "table.set", ""),

	// 0xFD: SIMD. The full proposal defines close to 236 opcodes (every
	// arithmetic/comparison/conversion op repeated per lane shape). This
	// table budgets for the load/store family, the splat/shuffle/swizzle
	// lane-construction family, the bitwise family, and add/sub/mul/div
	// per lane shape. The per-lane-shape comparisons, min/max, saturating
	// arithmetic, and conversions are not included.
	mkop(OpV128Load, PrefixSIMD, 0x00, V128, []ValueType{I32}, 16, "v128.load", ""),
	mkop(OpV128Load8Splat, PrefixSIMD, 0x07, V128, []ValueType{I32}, 1, "v128.load8_splat", ""),
	mkop(OpV128Load16Splat, PrefixSIMD, 0x08, V128, []ValueType{I32}, 2, "v128.load16_splat", ""),
	mkop(OpV128Load32Splat, PrefixSIMD, 0x09, V128, []ValueType{I32}, 4, "v128.load32_splat", ""),
	mkop(OpV128Load64Splat, PrefixSIMD, 0x0A, V128, []ValueType{I32}, 8, "v128.load64_splat", ""),
	mkop(OpV128Store, PrefixSIMD, 0x0B, Void, []ValueType{I32, V128}, 16, "v128.store", ""),
	mkop(OpV128Const, PrefixSIMD, 0x0C, V128, nil, 0, "v128.const", ""),
	mkop(OpI8x16Shuffle, PrefixSIMD, 0x0D, V128, []ValueType{V128, V128}, 0, "i8x16.shuffle", ""),
	mkop(OpI8x16Swizzle, PrefixSIMD, 0x0E, V128, []ValueType{V128, V128}, 0, "i8x16.swizzle", ""),
	mkop(OpI8x16Splat, PrefixSIMD, 0x0F, V128, []ValueType{I32}, 0, "i8x16.splat", ""),
	mkop(OpI16x8Splat, PrefixSIMD, 0x10, V128, []ValueType{I32}, 0, "i16x8.splat", ""),
	mkop(OpI32x4Splat, PrefixSIMD, 0x11, V128, []ValueType{I32}, 0, "i32x4.splat", ""),
	mkop(OpI64x2Splat, PrefixSIMD, 0x12, V128, []ValueType{I64}, 0, "i64x2.splat", ""),
	mkop(OpF32x4Splat, PrefixSIMD, 0x13, V128, []ValueType{F32}, 0, "f32x4.splat", ""),
	mkop(OpF64x2Splat, PrefixSIMD, 0x14, V128, []ValueType{F64}, 0, "f64x2.splat", ""),
	mkop(OpV128Not, PrefixSIMD, 0x4D, V128, []ValueType{V128}, 0, "v128.not", ""),
	mkop(OpV128And, PrefixSIMD, 0x4E, V128, []ValueType{V128, V128}, 0, "v128.and", ""),
	mkop(OpV128Or, PrefixSIMD, 0x50, V128, []ValueType{V128, V128}, 0, "v128.or", ""),
	mkop(OpV128Xor, PrefixSIMD, 0x51, V128, []ValueType{V128, V128}, 0, "v128.xor", ""),
	mkop(OpV128Bitselect, PrefixSIMD, 0x52, V128, []ValueType{V128, V128, V128}, 0, "v128.bitselect", ""),
	mkop(OpV128AnyTrue, PrefixSIMD, 0x53, I32, []ValueType{V128}, 0, "v128.any_true", ""),
	mkop(OpI8x16Add, PrefixSIMD, 0x6E, V128, []ValueType{V128, V128}, 0, "i8x16.add", "+"),
	mkop(OpI16x8Add, PrefixSIMD, 0x8E, V128, []ValueType{V128, V128}, 0, "i16x8.add", "+"),
	mkop(OpI32x4Add, PrefixSIMD, 0xAE, V128, []ValueType{V128, V128}, 0, "i32x4.add", "+"),
	mkop(OpI64x2Add, PrefixSIMD, 0xCE, V128, []ValueType{V128, V128}, 0, "i64x2.add", "+"),
	mkop(OpI8x16Sub, PrefixSIMD, 0x71, V128, []ValueType{V128, V128}, 0, "i8x16.sub", "-"),
	mkop(OpI16x8Sub, PrefixSIMD, 0x91, V128, []ValueType{V128, V128}, 0, "i16x8.sub", "-"),
	mkop(OpI32x4Sub, PrefixSIMD, 0xB1, V128, []ValueType{V128, V128}, 0, "i32x4.sub", "-"),
	mkop(OpI64x2Sub, PrefixSIMD, 0xD1, V128, []ValueType{V128, V128}, 0, "i64x2.sub", "-"),
	mkop(OpI16x8Mul, PrefixSIMD, 0x95, V128, []ValueType{V128, V128}, 0, "i16x8.mul", "*"),
	mkop(OpI32x4Mul, PrefixSIMD, 0xB5, V128, []ValueType{V128, V128}, 0, "i32x4.mul", "*"),
	mkop(OpI64x2Mul, PrefixSIMD, 0xD5, V128, []ValueType{V128, V128}, 0, "i64x2.mul", "*"),
	mkop(OpF32x4Add, PrefixSIMD, 0xE4, V128, []ValueType{V128, V128}, 0, "f32x4.add", "+"),
	mkop(OpF32x4Sub, PrefixSIMD, 0xE5, V128, []ValueType{V128, V128}, 0, "f32x4.sub", "-"),
	mkop(OpF32x4Mul, PrefixSIMD, 0xE6, V128, []ValueType{V128, V128}, 0, "f32x4.mul", "*"),
	mkop(OpF32x4Div, PrefixSIMD, 0xE7, V128, []ValueType{V128, V128}, 0, "f32x4.div", "/"),
	mkop(OpF64x2Add, PrefixSIMD, 0xF0, V128, []ValueType{V128, V128}, 0, "f64x2.add", "+"),
	mkop(OpF64x2Sub, PrefixSIMD, 0xF1, V128, []ValueType{V128, V128}, 0, "f64x2.sub", "-"),
	mkop(OpF64x2Mul, PrefixSIMD, 0xF2, V128, []ValueType{V128, V128}, 0, "f64x2.mul", "*"),
	mkop(OpF64x2Div, PrefixSIMD, 0xF3, V128, []ValueType{V128, V128}, 0, "f64x2.div", "/"),

	// 0xFE: threads/atomics. Budgeted the same way as SIMD above: the
	// wait/notify pair, load/store for every integer width including the
	// narrow zero-extending forms, and the read-modify-write family for
	// i32/i64 (add/sub/and/or/xor/xchg/cmpxchg) — not every narrow-width
	// rmw.* variant the full proposal also defines.
	mkop(OpAtomicNotify, PrefixThread, 0x00, I32, []ValueType{I32, I32}, 4, "atomic.notify", ""),
	mkop(OpI32AtomicWait, PrefixThread, 0x01, I32, []ValueType{I32, I32, I64}, 4, "i32.atomic.wait", ""),
	mkop(OpI64AtomicWait, PrefixThread, 0x02, I32, []ValueType{I32, I64, I64}, 8, "i64.atomic.wait", ""),
	mkop(OpI32AtomicLoad, PrefixThread, 0x10, I32, []ValueType{I32}, 4, "i32.atomic.load", ""),
	mkop(OpI64AtomicLoad, PrefixThread, 0x11, I64, []ValueType{I32}, 8, "i64.atomic.load", ""),
	mkop(OpI32AtomicLoad8U, PrefixThread, 0x12, I32, []ValueType{I32}, 1, "i32.atomic.load8_u", ""),
	mkop(OpI32AtomicLoad16U, PrefixThread, 0x13, I32, []ValueType{I32}, 2, "i32.atomic.load16_u", ""),
	mkop(OpI64AtomicLoad8U, PrefixThread, 0x14, I64, []ValueType{I32}, 1, "i64.atomic.load8_u", ""),
	mkop(OpI64AtomicLoad16U, PrefixThread, 0x15, I64, []ValueType{I32}, 2, "i64.atomic.load16_u", ""),
	mkop(OpI64AtomicLoad32U, PrefixThread, 0x16, I64, []ValueType{I32}, 4, "i64.atomic.load32_u", ""),
	mkop(OpI32AtomicStore, PrefixThread, 0x17, Void, []ValueType{I32, I32}, 4, "i32.atomic.store", ""),
	mkop(OpI64AtomicStore, PrefixThread, 0x18, Void, []ValueType{I32, I64}, 8, "i64.atomic.store", ""),
	mkop(OpI32AtomicStore8, PrefixThread, 0x19, Void, []ValueType{I32, I32}, 1, "i32.atomic.store8", ""),
	mkop(OpI32AtomicStore16, PrefixThread, 0x1A, Void, []ValueType{I32, I32}, 2, "i32.atomic.store16", ""),
	mkop(OpI64AtomicStore8, PrefixThread, 0x1B, Void, []ValueType{I32, I64}, 1, "i64.atomic.store8", ""),
	mkop(OpI64AtomicStore16, PrefixThread, 0x1C, Void, []ValueType{I32, I64}, 2, "i64.atomic.store16", ""),
	mkop(OpI64AtomicStore32, PrefixThread, 0x1D, Void, []ValueType{I32, I64}, 4, "i64.atomic.store32", ""),
	mkop(OpI32AtomicRmwAdd, PrefixThread, 0x1E, I32, []ValueType{I32, I32}, 4, "i32.atomic.rmw.add", ""),
	mkop(OpI64AtomicRmwAdd, PrefixThread, 0x1F, I64, []ValueType{I32, I64}, 8, "i64.atomic.rmw.add", ""),
	mkop(OpI32AtomicRmwSub, PrefixThread, 0x25, I32, []ValueType{I32, I32}, 4, "i32.atomic.rmw.sub", ""),
	mkop(OpI64AtomicRmwSub, PrefixThread, 0x26, I64, []ValueType{I32, I64}, 8, "i64.atomic.rmw.sub", ""),
	mkop(OpI32AtomicRmwAnd, PrefixThread, 0x2C, I32, []ValueType{I32, I32}, 4, "i32.atomic.rmw.and", ""),
	mkop(OpI64AtomicRmwAnd, PrefixThread, 0x2D, I64, []ValueType{I32, I64}, 8, "i64.atomic.rmw.and", ""),
	mkop(OpI32AtomicRmwOr, PrefixThread, 0x33, I32, []ValueType{I32, I32}, 4, "i32.atomic.rmw.or", ""),
	mkop(OpI64AtomicRmwOr, PrefixThread, 0x34, I64, []ValueType{I32, I64}, 8, "i64.atomic.rmw.or", ""),
	mkop(OpI32AtomicRmwXor, PrefixThread, 0x3A, I32, []ValueType{I32, I32}, 4, "i32.atomic.rmw.xor", ""),
	mkop(OpI64AtomicRmwXor, PrefixThread, 0x3B, I64, []ValueType{I32, I64}, 8, "i64.atomic.rmw.xor", ""),
	mkop(OpI32AtomicRmwXchg, PrefixThread, 0x41, I32, []ValueType{I32, I32}, 4, "i32.atomic.rmw.xchg", ""),
	mkop(OpI64AtomicRmwXchg, PrefixThread, 0x42, I64, []ValueType{I32, I64}, 8, "i64.atomic.rmw.xchg", ""),
	mkop(OpI32AtomicRmwCmpxchg, PrefixThread, 0x48, I32, []ValueType{I32, I32, I32}, 4, "i32.atomic.rmw.cmpxchg", ""),
	mkop(OpI64AtomicRmwCmpxchg, PrefixThread, 0x49, I64, []ValueType{I32, I64, I64}, 8, "i64.atomic.rmw.cmpxchg", ""),

	// Interpreter-only, reserved range 0xE0-0xE4.
	mkop(OpAlloca, PrefixNone, 0xE0, Void, nil, 0, "alloca", ""),
	mkop(OpBrUnless, PrefixNone, 0xE1, Void, []ValueType{I32}, 0, "br_unless", ""),
	mkop(OpCallHost, PrefixNone, 0xE2, Void, nil, 0, "call_host", ""),
	mkop(OpInterpData, PrefixNone, 0xE3, Void, nil, 0, "data", ""),
	mkop(OpDropKeep, PrefixNone, 0xE4, Void, nil, 0, "drop_keep", ""),
}
