package wasm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModuleAppendFuncUpdatesCacheAndBinding(t *testing.T) {
	m := NewModule("$m")
	f := NewFunc("$f", FuncDeclaration{}, Location{})
	m.AppendFunc(f)

	require.Len(t, m.Funcs, 1)
	require.Len(t, m.Fields, 1)
	assert.Equal(t, FieldFunc, m.Fields[0].Kind)

	idx, err := m.GetFuncIndex(NewVarName("$f", Location{}))
	require.NoError(t, err)
	assert.EqualValues(t, 0, idx)
}

func TestModuleGetFuncIndexNumericPassesThrough(t *testing.T) {
	m := NewModule("$m")
	idx, err := m.GetFuncIndex(NewVarIndex(42, Location{}))
	require.NoError(t, err)
	assert.EqualValues(t, 42, idx)
}

func TestModuleGetFuncIndexUnknownName(t *testing.T) {
	m := NewModule("$m")
	_, err := m.GetFuncIndex(NewVarName("$nope", Location{}))
	require.ErrorIs(t, err, ErrUnknownName)
}

func TestModuleGetFuncOutOfRange(t *testing.T) {
	m := NewModule("$m")
	_, err := m.GetFunc(NewVarIndex(0, Location{}))
	require.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestModuleAppendImportFuncPrecedesDefinition(t *testing.T) {
	m := NewModule("$m")
	im := &Import{
		Module:   "env",
		Field:    "f",
		Kind:     ExternKindFunc,
		FuncName: "$imported",
		FuncDecl: FuncDeclaration{Sig: FuncSignature{Params: TypeVector{I32}}},
	}
	m.AppendImport(im)

	f := NewFunc("$local", FuncDeclaration{}, Location{})
	m.AppendFunc(f)

	require.EqualValues(t, 1, m.NumFuncImports)
	require.Len(t, m.Funcs, 2)

	importedIdx, err := m.GetFuncIndex(NewVarName("$imported", Location{}))
	require.NoError(t, err)
	assert.EqualValues(t, 0, importedIdx)

	localIdx, err := m.GetFuncIndex(NewVarName("$local", Location{}))
	require.NoError(t, err)
	assert.EqualValues(t, 1, localIdx)
}

func TestModuleIsImport(t *testing.T) {
	m := NewModule("$m")
	im := &Import{Kind: ExternKindFunc, FuncName: "$imported"}
	m.AppendImport(im)
	m.AppendFunc(NewFunc("$local", FuncDeclaration{}, Location{}))

	isImport, err := m.IsImport(ExternKindFunc, NewVarName("$imported", Location{}))
	require.NoError(t, err)
	assert.True(t, isImport)

	isImport, err = m.IsImport(ExternKindFunc, NewVarName("$local", Location{}))
	require.NoError(t, err)
	assert.False(t, isImport)
}

func TestModuleAppendImportTableUsesDeclaredLocalName(t *testing.T) {
	m := NewModule("$m")
	im := &Import{
		Kind:  ExternKindTable,
		Table: Table{Name: "$t", Limits: Limits{Initial: 1}, ElemType: Anyref},
	}
	m.AppendImport(im)

	require.EqualValues(t, 1, m.NumTableImports)
	tbl, err := m.GetTable(NewVarName("$t", Location{}))
	require.NoError(t, err)
	assert.Equal(t, Anyref, tbl.ElemType)
}

func TestModuleAppendStartOverwrites(t *testing.T) {
	m := NewModule("$m")
	m.AppendStart(NewVarIndex(1, Location{}), Location{})
	m.AppendStart(NewVarIndex(2, Location{}), Location{})

	assert.True(t, m.HasStart)
	assert.EqualValues(t, 2, m.StartVar.Index())
}

func TestModuleAppendElemAndDataSegments(t *testing.T) {
	m := NewModule("$m")
	m.AppendElemSegment(&ElemSegment{Name: "$e0", Flags: SegmentFlagPassive})
	m.AppendDataSegment(&DataSegment{Name: "$d0", Flags: SegmentFlagPassive})

	idx, err := m.GetElemSegmentIndex(NewVarName("$e0", Location{}))
	require.NoError(t, err)
	assert.EqualValues(t, 0, idx)

	idx, err = m.GetDataSegmentIndex(NewVarName("$d0", Location{}))
	require.NoError(t, err)
	assert.EqualValues(t, 0, idx)
}

func TestModuleAppendFuncTypeAndBindingReverseMapping(t *testing.T) {
	m := NewModule("$m")
	m.AppendFuncType(&FuncType{Name: "$t0", Sig: FuncSignature{}})
	m.AppendFuncType(&FuncType{Name: "", Sig: FuncSignature{Params: TypeVector{I32}}})

	names := MakeTypeBindingReverseMapping(uint32(len(m.FuncTypes)), m.FuncTypeBindings)
	require.Len(t, names, 2)
	assert.Equal(t, "$t0", names[0])
	assert.Equal(t, "", names[1])
}
