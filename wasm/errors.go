package wasm

import "errors"

// Sentinel errors for the core IR's error taxonomy. Callers
// compare with errors.Is. Lookups never panic: on a miss they return a
// zero value (or the invalid-index sentinel) together with an error
// wrapping one of these. ErrDuplicateBinding is not returned by this
// package; it is for validation passes layered above it.
var (
	// ErrUnknownOpcode is returned when FromCode finds no catalogue entry
	// for a (prefix, code) pair.
	ErrUnknownOpcode = errors.New("wasm: unknown opcode")

	// ErrUnknownMnemonic is returned when FromName finds no catalogue
	// entry for a textual mnemonic.
	ErrUnknownMnemonic = errors.New("wasm: unknown mnemonic")

	// ErrUnknownName is returned when a Var in Name form fails to resolve
	// against a BindingHash.
	ErrUnknownName = errors.New("wasm: unknown name")

	// ErrIndexOutOfRange is returned when a numeric Var exceeds the
	// length of the relevant handle array.
	ErrIndexOutOfRange = errors.New("wasm: index out of range")

	// ErrWrongVariant is returned by a checked downcast whose target
	// variant does not match the value's discriminator.
	ErrWrongVariant = errors.New("wasm: wrong variant")

	// ErrDuplicateBinding is returned by a validator scanning a
	// BindingHash that finds more than one entry for a name.
	ErrDuplicateBinding = errors.New("wasm: duplicate binding")

	// ErrNotMemoryOp is returned by NaturalAlignmentLog2 for an opcode
	// that does not touch memory.
	ErrNotMemoryOp = errors.New("wasm: opcode does not address memory")

	// ErrFeatureDisabled is returned by FromCodeWithFeatures/
	// FromNameWithFeatures for a catalogue entry whose required
	// extension is not enabled in the caller's Features set.
	ErrFeatureDisabled = errors.New("wasm: opcode requires a disabled feature")
)
