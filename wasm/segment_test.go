package wasm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestElemSegmentFlagAccessors(t *testing.T) {
	s := &ElemSegment{Flags: SegmentFlagPassive}
	assert.True(t, s.IsPassive())
	assert.False(t, s.HasExplicitIndex())
	assert.False(t, s.UsesElemExprs())
}

func TestElemSegmentPassiveWithElemExprsFlags(t *testing.T) {
	// A passive table segment using explicit element expressions: flags
	// byte 0x05 (bit 0 passive, bit 2 use-elem-exprs).
	s := &ElemSegment{Flags: SegmentFlagPassive | SegmentFlagUseElemExprs}
	assert.EqualValues(t, 0x05, s.Flags)
	assert.True(t, s.IsPassive())
	assert.True(t, s.UsesElemExprs())
	assert.False(t, s.HasExplicitIndex())
}

func TestElemSegmentValidFlagsRejectsReservedBits(t *testing.T) {
	s := &ElemSegment{Flags: 0x08}
	assert.False(t, s.ValidFlags())
	s.Flags = SegmentFlagPassive | SegmentFlagHasIndex | SegmentFlagUseElemExprs
	assert.True(t, s.ValidFlags())
}

func TestDataSegmentFlagAccessors(t *testing.T) {
	s := &DataSegment{Flags: SegmentFlagHasIndex}
	assert.False(t, s.IsPassive())
	assert.True(t, s.HasExplicitIndex())
}
