package wasm

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromCodeI32Add(t *testing.T) {
	op, err := FromCode(PrefixNone, 0x6A)
	require.NoError(t, err)
	assert.Equal(t, "i32.add", op.Mnemonic)
	assert.Equal(t, I32, op.Result)
	assert.Equal(t, I32, op.Operands[0])
	assert.Equal(t, I32, op.Operands[1])
}

func TestFromCodeUnknown(t *testing.T) {
	_, err := FromCode(PrefixNone, 0xFF)
	require.ErrorIs(t, err, ErrUnknownOpcode)
}

func TestFromNameUnknown(t *testing.T) {
	_, err := FromName("not.a.real.mnemonic")
	require.ErrorIs(t, err, ErrUnknownMnemonic)
}

func TestFromNameRoundTrip(t *testing.T) {
	op, err := FromCode(PrefixNone, 0x6A)
	require.NoError(t, err)
	byName, err := FromName(op.Mnemonic)
	require.NoError(t, err)
	assert.Equal(t, op.key(), byName.key())
}

func TestV128LoadMemoryAlignment(t *testing.T) {
	op, err := FromCode(PrefixSIMD, 0x00)
	require.NoError(t, err)
	assert.Equal(t, V128, op.Result)
	assert.Equal(t, I32, op.Operands[0])
	assert.EqualValues(t, 16, op.MemorySize)
	log2, err := op.NaturalAlignmentLog2()
	require.NoError(t, err)
	assert.EqualValues(t, 4, log2)
}

func TestOperandCountMatchesDeclaredOperands(t *testing.T) {
	for i, op := range sortedTable {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			n := op.OperandCount()
			_, operands := op.Signature()
			assert.Len(t, operands, n)
			assert.NotContains(t, operands, Void)
		})
	}
}

func TestHasResultReflectsResultType(t *testing.T) {
	op, err := FromCode(PrefixNone, 0x6A) // i32.add
	require.NoError(t, err)
	assert.True(t, op.HasResult())

	op, err = FromCode(PrefixNone, 0x1A) // drop
	require.NoError(t, err)
	assert.False(t, op.HasResult())
}

func TestEveryCatalogueEntryHasUniqueKey(t *testing.T) {
	seen := make(map[opcodeKey]bool)
	for _, op := range sortedTable {
		k := op.key()
		assert.False(t, seen[k], "duplicate key %+v", k)
		seen[k] = true
	}
}

func TestInterpreterOnlyRangeNeverBinaryEncoded(t *testing.T) {
	for i, mnemonic := range []string{"alloca", "br_unless", "call_host", "data", "drop_keep"} {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			op, err := FromName(mnemonic)
			require.NoError(t, err)
			assert.True(t, op.IsInterpreterOnly())
		})
	}
}

func TestBinaryEncodingPrefixedOpcodeUsesULEB128(t *testing.T) {
	op, err := FromCode(PrefixNumeric, 0x08) // memory.init
	require.NoError(t, err)
	enc := op.BinaryEncoding()
	require.NotEmpty(t, enc)
	assert.Equal(t, byte(PrefixNumeric), enc[0])
	assert.Equal(t, []byte{PrefixNumeric, 0x08}, enc)

	op, err = FromCode(PrefixSIMD, 0xAE) // i32x4.add: subcode needs two LEB128 bytes
	require.NoError(t, err)
	assert.Equal(t, []byte{PrefixSIMD, 0xAE, 0x01}, op.BinaryEncoding())
}

func TestFromCodeWithFeaturesRejectsDisabledExtension(t *testing.T) {
	base := NewFeatures()
	_, err := FromCodeWithFeatures(PrefixSIMD, 0x00, base) // v128.load
	require.ErrorIs(t, err, ErrFeatureDisabled)

	withSIMD := NewFeatures(WithFeature(FeatureSIMD))
	op, err := FromCodeWithFeatures(PrefixSIMD, 0x00, withSIMD)
	require.NoError(t, err)
	assert.Equal(t, "v128.load", op.Mnemonic)
}

func TestFromNameWithFeaturesRejectsDisabledExtension(t *testing.T) {
	base := NewFeatures()
	_, err := FromNameWithFeatures("i32.atomic.load", base)
	require.ErrorIs(t, err, ErrFeatureDisabled)

	withThreads := NewFeatures(WithFeature(FeatureThreads))
	op, err := FromNameWithFeatures("i32.atomic.load", withThreads)
	require.NoError(t, err)
	assert.Equal(t, OpI32AtomicLoad, op.Name)
}

func TestFromCodeWithFeaturesBaseOpcodeNeedsNoExtension(t *testing.T) {
	op, err := FromCodeWithFeatures(PrefixNone, 0x6A, NewFeatures()) // i32.add
	require.NoError(t, err)
	assert.Equal(t, "i32.add", op.Mnemonic)
}

func TestAllFeaturesEnablesEveryExtension(t *testing.T) {
	all := AllFeatures()
	for _, f := range []Feature{
		FeatureSignExtension, FeatureNonTrappingFloatToInt, FeatureBulkMemory,
		FeatureReferenceTypes, FeatureSIMD, FeatureThreads, FeatureExceptionHandling,
	} {
		assert.True(t, all.Enabled(f))
	}
}
