package wasm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScriptAppendCommandBindsModuleName(t *testing.T) {
	s := NewScript()
	m := NewModule("$m")
	s.AppendCommand(NewModuleCommand(m, Location{}))

	got, err := s.GetModule(NewVarName("$m", Location{}))
	require.NoError(t, err)
	assert.Same(t, m, got)
}

func TestScriptGetFirstModuleSkipsLeadingNonModuleCommands(t *testing.T) {
	s := NewScript()
	s.AppendCommand(NewRegisterCommand("env", NewVarIndex(0, Location{}), Location{}))
	s.AppendCommand(NewAssertTrapCommand(Action{Kind: ActionInvoke, Field: "f"}, "unreachable", Location{}))

	m := NewModule("")
	modCmd := NewModuleCommand(m, Location{})
	s.AppendCommand(modCmd)

	got := s.GetFirstModule()
	assert.Same(t, m, got)
}

func TestScriptGetFirstModuleEmptyScript(t *testing.T) {
	s := NewScript()
	assert.Nil(t, s.GetFirstModule())
}

func TestScriptGetModuleByPosition(t *testing.T) {
	s := NewScript()
	m0 := NewModule("")
	m1 := NewModule("")
	s.AppendCommand(NewModuleCommand(m0, Location{}))
	s.AppendCommand(NewModuleCommand(m1, Location{}))

	got, err := s.GetModule(NewVarIndex(1, Location{}))
	require.NoError(t, err)
	assert.Same(t, m1, got)
}

func TestScriptGetModuleUnknownName(t *testing.T) {
	s := NewScript()
	_, err := s.GetModule(NewVarName("$missing", Location{}))
	require.ErrorIs(t, err, ErrUnknownName)
}

func TestCommandAsModuleWrongVariant(t *testing.T) {
	cmd := NewRegisterCommand("env", NewVarIndex(0, Location{}), Location{})
	_, err := cmd.AsModule()
	require.ErrorIs(t, err, ErrWrongVariant)
}

func TestCommandAssertReturn(t *testing.T) {
	action := Action{Kind: ActionInvoke, Field: "add", InvokeArgs: []Const{NewConstI32(1, Location{})}}
	results := []Const{NewConstI32(2, Location{})}
	cmd := NewAssertReturnCommand(action, results, Location{})

	gotAction, gotResults, err := cmd.AsAssertReturn()
	require.NoError(t, err)
	assert.Equal(t, "add", gotAction.Field)
	require.Len(t, gotResults, 1)
	assert.True(t, gotResults[0].Equal(results[0]))
}

func TestCommandAssertReturnNanKind(t *testing.T) {
	action := Action{Kind: ActionInvoke, Field: "sqrt"}
	cmd := NewAssertReturnNanCommand(action, NanCanonical, Location{})

	_, kind, err := cmd.AsAssertReturnNan()
	require.NoError(t, err)
	assert.Equal(t, NanCanonical, kind)
	assert.Equal(t, CommandAssertReturnCanonicalNan, cmd.Kind)
}

func TestCommandAssertMalformedVariants(t *testing.T) {
	mod := ScriptModule{Raw: []byte("(module")}
	for i, c := range []*Command{
		NewAssertMalformedCommand(mod, "unexpected EOF", Location{}),
		NewAssertInvalidCommand(mod, "type mismatch", Location{}),
		NewAssertUnlinkableCommand(mod, "unknown import", Location{}),
		NewAssertUninstantiableCommand(mod, "out of bounds", Location{}),
	} {
		_ = i
		switch c.Kind {
		case CommandAssertMalformed:
			_, msg, err := c.AsAssertMalformed()
			require.NoError(t, err)
			assert.Equal(t, "unexpected EOF", msg)
		case CommandAssertInvalid:
			_, msg, err := c.AsAssertInvalid()
			require.NoError(t, err)
			assert.Equal(t, "type mismatch", msg)
		case CommandAssertUnlinkable:
			_, msg, err := c.AsAssertUnlinkable()
			require.NoError(t, err)
			assert.Equal(t, "unknown import", msg)
		case CommandAssertUninstantiable:
			_, msg, err := c.AsAssertUninstantiable()
			require.NoError(t, err)
			assert.Equal(t, "out of bounds", msg)
		}
	}
}

func TestCommandAssertExhaustion(t *testing.T) {
	action := Action{Kind: ActionInvoke, Field: "recurse"}
	cmd := NewAssertExhaustionCommand(action, "call stack exhausted", Location{})

	gotAction, msg, err := cmd.AsAssertExhaustion()
	require.NoError(t, err)
	assert.Equal(t, "recurse", gotAction.Field)
	assert.Equal(t, "call stack exhausted", msg)

	_, _, err = cmd.AsAssertTrap()
	require.ErrorIs(t, err, ErrWrongVariant)
}

func TestActionAsInvokeWrongVariant(t *testing.T) {
	a := Action{Kind: ActionGet, Field: "g"}
	_, err := a.AsInvoke()
	require.ErrorIs(t, err, ErrWrongVariant)
}
