package wasm

import (
	"encoding/binary"
	"fmt"
	"sort"
)

// OpcodeName is the stable enumeration identifier for a catalogue entry,
// e.g. OpI32Add. It is the value callers switch on; Opcode itself carries
// the rest of the row.
type OpcodeName uint16

// Prefix bytes partitioning the opcode space.
const (
	PrefixNone    byte = 0x00
	PrefixNumeric byte = 0xFC // bulk-memory, non-trapping conversions, reference-types
	PrefixSIMD    byte = 0xFD
	PrefixThread  byte = 0xFE
	signExtLow    byte = 0xC0
	signExtHigh   byte = 0xC4
	interpLow     byte = 0xE0
	interpHigh    byte = 0xE4
)

// Opcode is one row of the catalogue: the instruction's binary encoding,
// its operand/result typing, and its human-readable names.
type Opcode struct {
	Name OpcodeName

	Prefix byte
	Code   byte

	Result   ValueType
	Operands [3]ValueType // unused slots are Void

	// MemorySize is the natural operand size in bytes for memory-touching
	// opcodes, 0 otherwise. NaturalAlignmentLog2 derives the default
	// alignment immediate from it.
	MemorySize uint32

	// Mnemonic is the canonical textual form, e.g. "i32.add".
	Mnemonic string
	// ShortMnemonic is an optional "decompilation" form, e.g. "+", "<=",
	// "clz". Empty when the instruction has no natural short form.
	ShortMnemonic string
}

// OperandCount returns the number of non-Void operand slots, i.e. the
// instruction's documented arity.
func (o Opcode) OperandCount() int {
	n := 0
	for _, t := range o.Operands {
		if t != Void {
			n++
		}
	}
	return n
}

// HasResult reports whether the instruction produces a value.
func (o Opcode) HasResult() bool { return o.Result != Void }

// Signature returns the result type and the (possibly empty) operand
// types for op, in catalogue order.
func (o Opcode) Signature() (result ValueType, operands []ValueType) {
	n := o.OperandCount()
	return o.Result, append([]ValueType(nil), o.Operands[:n]...)
}

// key is the sort/search key: (prefix, code), which together uniquely
// identify a catalogue row.
type opcodeKey struct {
	prefix byte
	code   byte
}

func (o Opcode) key() opcodeKey { return opcodeKey{o.Prefix, o.Code} }

// sortedTable and nameIndex are built once at init from opcodeTable
// (opcode_table.go), which is the single declarative source of truth for
// every instruction's encoding, typing, and name.
var (
	sortedTable []Opcode
	nameIndex   map[string]int // mnemonic -> index into sortedTable
)

func init() {
	sortedTable = append([]Opcode(nil), opcodeTable...)
	sort.Slice(sortedTable, func(i, j int) bool {
		ki, kj := sortedTable[i].key(), sortedTable[j].key()
		if ki.prefix != kj.prefix {
			return ki.prefix < kj.prefix
		}
		return ki.code < kj.code
	})

	nameIndex = make(map[string]int, len(sortedTable))
	for i, op := range sortedTable {
		nameIndex[op.Mnemonic] = i
	}
}

// FromCode looks up the catalogue entry for a (prefix, code) pair via
// binary search over the sorted table.
func FromCode(prefix, code byte) (Opcode, error) {
	key := opcodeKey{prefix, code}
	i := sort.Search(len(sortedTable), func(i int) bool {
		k := sortedTable[i].key()
		if k.prefix != key.prefix {
			return k.prefix >= key.prefix
		}
		return k.code >= key.code
	})
	if i < len(sortedTable) && sortedTable[i].key() == key {
		return sortedTable[i], nil
	}
	return Opcode{}, fmt.Errorf("opcode prefix=%#x code=%#x: %w", prefix, code, ErrUnknownOpcode)
}

// FromName looks up the catalogue entry for a textual mnemonic. The
// lookup is case-sensitive and exact.
func FromName(text string) (Opcode, error) {
	i, ok := nameIndex[text]
	if !ok {
		return Opcode{}, fmt.Errorf("mnemonic %q: %w", text, ErrUnknownMnemonic)
	}
	return sortedTable[i], nil
}

// FromCodeWithFeatures is FromCode filtered by features: a row whose
// Features() are not a subset of features is not returned; the error
// then wraps ErrFeatureDisabled rather than ErrUnknownOpcode.
func FromCodeWithFeatures(prefix, code byte, features Features) (Opcode, error) {
	op, err := FromCode(prefix, code)
	if err != nil {
		return Opcode{}, err
	}
	if !features.Enabled(op.Features()) {
		return Opcode{}, fmt.Errorf("%s: %w", op.Mnemonic, ErrFeatureDisabled)
	}
	return op, nil
}

// FromNameWithFeatures is FromName filtered by features; see
// FromCodeWithFeatures.
func FromNameWithFeatures(text string, features Features) (Opcode, error) {
	op, err := FromName(text)
	if err != nil {
		return Opcode{}, err
	}
	if !features.Enabled(op.Features()) {
		return Opcode{}, fmt.Errorf("%s: %w", text, ErrFeatureDisabled)
	}
	return op, nil
}

// Signature is the free-function form of Opcode.Signature.
func Signature(op Opcode) (result ValueType, operands []ValueType) { return op.Signature() }

// BinaryEncoding emits the bytes that identify op in a binary module:
// [prefix,] code, where a prefixed code is ULEB128-encoded.
// Go's encoding/binary.PutUvarint implements the same unsigned LEB128
// algorithm WebAssembly specifies, so it is used directly rather than a
// hand-rolled variant encoder.
func (o Opcode) BinaryEncoding() []byte {
	if o.Prefix == PrefixNone {
		return []byte{o.Code}
	}
	buf := make([]byte, binary.MaxVarintLen64)
	n := binary.PutUvarint(buf, uint64(o.Code))
	out := make([]byte, 0, n+1)
	out = append(out, o.Prefix)
	out = append(out, buf[:n]...)
	return out
}

// NaturalAlignmentLog2 returns floor(log2(MemorySize)), the default
// alignment immediate for a memory-touching opcode. It fails for
// instructions that do not address memory.
func (o Opcode) NaturalAlignmentLog2() (uint32, error) {
	if o.MemorySize == 0 {
		return 0, fmt.Errorf("%s: %w", o.Mnemonic, ErrNotMemoryOp)
	}
	log2 := uint32(0)
	for sz := o.MemorySize; sz > 1; sz >>= 1 {
		log2++
	}
	return log2, nil
}

// IsInterpreterOnly reports whether op occupies the reserved
// interpreter-only range (0xE0-0xE4) that must never appear in a
// serialised .wasm binary.
func (o Opcode) IsInterpreterOnly() bool {
	return o.Prefix == PrefixNone && o.Code >= interpLow && o.Code <= interpHigh
}

// Features reports the extension set an opcode requires, derived from its
// prefix byte, for the sign-extension range from its unprefixed code, and
// for try/throw/rethrow/br_on_exn from its name.
func (o Opcode) Features() Feature {
	switch o.Prefix {
	case PrefixNumeric:
		return FeatureBulkMemory | FeatureNonTrappingFloatToInt | FeatureReferenceTypes
	case PrefixSIMD:
		return FeatureSIMD
	case PrefixThread:
		return FeatureThreads
	}
	if o.Prefix == PrefixNone && o.Code >= signExtLow && o.Code <= signExtHigh {
		return FeatureSignExtension
	}
	if o.Name == OpThrow || o.Name == OpRethrow || o.Name == OpBrOnExn || o.Name == OpTry {
		return FeatureExceptionHandling
	}
	return featureNone
}
