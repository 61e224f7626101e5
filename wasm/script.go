package wasm

import "fmt"

// CommandKind discriminates the Command tagged union: a Module
// definition, an Action, a Register directive, or one of the ten
// assertion forms used by conformance scripts.
type CommandKind int

const (
	CommandModule CommandKind = iota
	CommandAction
	CommandRegister
	CommandAssertMalformed
	CommandAssertInvalid
	CommandAssertUnlinkable
	CommandAssertUninstantiable
	CommandAssertReturn
	CommandAssertReturnFunc
	CommandAssertReturnCanonicalNan
	CommandAssertReturnArithmeticNan
	CommandAssertTrap
	CommandAssertExhaustion
)

func (k CommandKind) String() string {
	switch k {
	case CommandModule:
		return "module"
	case CommandAction:
		return "action"
	case CommandRegister:
		return "register"
	case CommandAssertMalformed:
		return "assert_malformed"
	case CommandAssertInvalid:
		return "assert_invalid"
	case CommandAssertUnlinkable:
		return "assert_unlinkable"
	case CommandAssertUninstantiable:
		return "assert_uninstantiable"
	case CommandAssertReturn:
		return "assert_return"
	case CommandAssertReturnFunc:
		return "assert_return_func"
	case CommandAssertReturnCanonicalNan:
		return "assert_return_canonical_nan"
	case CommandAssertReturnArithmeticNan:
		return "assert_return_arithmetic_nan"
	case CommandAssertTrap:
		return "assert_trap"
	case CommandAssertExhaustion:
		return "assert_exhaustion"
	default:
		return "unknown"
	}
}

// ActionKind discriminates the two forms of Action: invoking an exported
// function, or reading an exported global.
type ActionKind int

const (
	ActionInvoke ActionKind = iota
	ActionGet
)

// Action names a module (by Var, empty name meaning "the most recently
// defined module") and an exported field, plus the arguments to pass if
// this is an invocation.
type Action struct {
	Kind       ActionKind
	ModuleVar  Var
	Field      string
	InvokeArgs []Const
	Loc        Location
}

// AsInvoke returns the invocation argument list, erroring if Kind is not
// ActionInvoke.
func (a *Action) AsInvoke() ([]Const, error) {
	if a.Kind != ActionInvoke {
		return nil, ErrWrongVariant
	}
	return a.InvokeArgs, nil
}

// ScriptModule is a module whose source text or binary is held verbatim
// rather than fully parsed, for use by AssertMalformed and AssertInvalid
// commands that exercise a parser/validator this core does not implement
// itself.
type ScriptModule struct {
	Parsed *Module // set when the module parses successfully
	Raw    []byte  // verbatim source bytes, always set
	Loc    Location
}

// NanKind distinguishes the two flavors of unspecified NaN result that
// AssertReturnCanonicalNan/AssertReturnArithmeticNan accept, since the
// exact bit pattern of a NaN produced by those operations is
// implementation-defined.
type NanKind int

const (
	NanCanonical NanKind = iota
	NanArithmetic
)

// modulePayload, registerPayload, and the assertion payload structs back
// the corresponding Command variants; each is reachable only through its
// matching As* accessor.
type modulePayload struct {
	module *Module
}

type registerPayload struct {
	name      string
	moduleVar Var
}

type assertMalformedPayload struct {
	module  ScriptModule
	message string
}

type assertReturnPayload struct {
	action  Action
	results []Const
}

type assertReturnNanPayload struct {
	action Action
	kind   NanKind
}

type assertTrapPayload struct {
	action  Action
	message string
}

// Command is one node of a Script's command sequence: a type tag plus a
// payload selected by Kind. Downcasting to the wrong variant returns
// ErrWrongVariant rather than panicking.
type Command struct {
	Kind    CommandKind
	Loc     Location
	payload any
}

func newCommand(kind CommandKind, loc Location, payload any) *Command {
	return &Command{Kind: kind, Loc: loc, payload: payload}
}

func (c *Command) wrongVariant(want CommandKind) error {
	return fmt.Errorf("command is %s, not %s: %w", c.Kind, want, ErrWrongVariant)
}

// NewModuleCommand wraps a parsed Module as a Command.
func NewModuleCommand(m *Module, loc Location) *Command {
	return newCommand(CommandModule, loc, modulePayload{module: m})
}

// AsModule returns the wrapped Module, erroring if Kind is not CommandModule.
func (c *Command) AsModule() (*Module, error) {
	p, ok := c.payload.(modulePayload)
	if !ok {
		return nil, c.wrongVariant(CommandModule)
	}
	return p.module, nil
}

// NewActionCommand wraps a bare Action (a top-level invoke/get with no
// return-value assertion) as a Command.
func NewActionCommand(a Action, loc Location) *Command {
	return newCommand(CommandAction, loc, a)
}

// AsAction returns the wrapped Action, erroring if Kind is not CommandAction.
func (c *Command) AsAction() (Action, error) {
	p, ok := c.payload.(Action)
	if !ok {
		return Action{}, c.wrongVariant(CommandAction)
	}
	return p, nil
}

// NewRegisterCommand registers moduleVar under an external name, for the
// conformance runner's linking namespace.
func NewRegisterCommand(name string, moduleVar Var, loc Location) *Command {
	return newCommand(CommandRegister, loc, registerPayload{name: name, moduleVar: moduleVar})
}

// AsRegister returns the (name, moduleVar) pair, erroring if Kind is not
// CommandRegister.
func (c *Command) AsRegister() (string, Var, error) {
	p, ok := c.payload.(registerPayload)
	if !ok {
		return "", Var{}, c.wrongVariant(CommandRegister)
	}
	return p.name, p.moduleVar, nil
}

// NewAssertMalformedCommand asserts that module fails to parse with
// message.
func NewAssertMalformedCommand(module ScriptModule, message string, loc Location) *Command {
	return newCommand(CommandAssertMalformed, loc, assertMalformedPayload{module: module, message: message})
}

// NewAssertInvalidCommand asserts that module parses but fails
// validation with message.
func NewAssertInvalidCommand(module ScriptModule, message string, loc Location) *Command {
	return newCommand(CommandAssertInvalid, loc, assertMalformedPayload{module: module, message: message})
}

// NewAssertUnlinkableCommand asserts that module fails to link with message.
func NewAssertUnlinkableCommand(module ScriptModule, message string, loc Location) *Command {
	return newCommand(CommandAssertUnlinkable, loc, assertMalformedPayload{module: module, message: message})
}

// NewAssertUninstantiableCommand asserts that module links but traps
// during instantiation (e.g. a failing start function), with message.
func NewAssertUninstantiableCommand(module ScriptModule, message string, loc Location) *Command {
	return newCommand(CommandAssertUninstantiable, loc, assertMalformedPayload{module: module, message: message})
}

// asMalformedLike backs the four ScriptModule+message assertion variants.
func (c *Command) asMalformedLike(want CommandKind) (ScriptModule, string, error) {
	p, ok := c.payload.(assertMalformedPayload)
	if !ok || c.Kind != want {
		return ScriptModule{}, "", c.wrongVariant(want)
	}
	return p.module, p.message, nil
}

// AsAssertMalformed returns (module, message), erroring if Kind is not
// CommandAssertMalformed.
func (c *Command) AsAssertMalformed() (ScriptModule, string, error) {
	return c.asMalformedLike(CommandAssertMalformed)
}

// AsAssertInvalid returns (module, message), erroring if Kind is not
// CommandAssertInvalid.
func (c *Command) AsAssertInvalid() (ScriptModule, string, error) {
	return c.asMalformedLike(CommandAssertInvalid)
}

// AsAssertUnlinkable returns (module, message), erroring if Kind is not
// CommandAssertUnlinkable.
func (c *Command) AsAssertUnlinkable() (ScriptModule, string, error) {
	return c.asMalformedLike(CommandAssertUnlinkable)
}

// AsAssertUninstantiable returns (module, message), erroring if Kind is
// not CommandAssertUninstantiable.
func (c *Command) AsAssertUninstantiable() (ScriptModule, string, error) {
	return c.asMalformedLike(CommandAssertUninstantiable)
}

// NewAssertReturnCommand asserts that action, once run, yields results.
func NewAssertReturnCommand(action Action, results []Const, loc Location) *Command {
	return newCommand(CommandAssertReturn, loc, assertReturnPayload{action: action, results: results})
}

// NewAssertReturnFuncCommand asserts that action yields a funcref result,
// without constraining which function it refers to.
func NewAssertReturnFuncCommand(action Action, loc Location) *Command {
	return newCommand(CommandAssertReturnFunc, loc, assertReturnPayload{action: action})
}

// AsAssertReturn returns (action, expected results), erroring if Kind is
// not CommandAssertReturn.
func (c *Command) AsAssertReturn() (Action, []Const, error) {
	p, ok := c.payload.(assertReturnPayload)
	if !ok || c.Kind != CommandAssertReturn {
		return Action{}, nil, c.wrongVariant(CommandAssertReturn)
	}
	return p.action, p.results, nil
}

// AsAssertReturnFunc returns the action, erroring if Kind is not
// CommandAssertReturnFunc.
func (c *Command) AsAssertReturnFunc() (Action, error) {
	p, ok := c.payload.(assertReturnPayload)
	if !ok || c.Kind != CommandAssertReturnFunc {
		return Action{}, c.wrongVariant(CommandAssertReturnFunc)
	}
	return p.action, nil
}

// NewAssertReturnNanCommand asserts that action yields a float result
// that is some NaN of the given kind, without constraining its exact bit
// pattern.
func NewAssertReturnNanCommand(action Action, kind NanKind, loc Location) *Command {
	k := CommandAssertReturnCanonicalNan
	if kind == NanArithmetic {
		k = CommandAssertReturnArithmeticNan
	}
	return newCommand(k, loc, assertReturnNanPayload{action: action, kind: kind})
}

// AsAssertReturnNan returns (action, nan kind), erroring if Kind is
// neither CommandAssertReturnCanonicalNan nor CommandAssertReturnArithmeticNan.
func (c *Command) AsAssertReturnNan() (Action, NanKind, error) {
	p, ok := c.payload.(assertReturnNanPayload)
	if !ok {
		return Action{}, 0, fmt.Errorf("command is %s, not an assert-return-nan variant: %w", c.Kind, ErrWrongVariant)
	}
	return p.action, p.kind, nil
}

// NewAssertTrapCommand asserts that action traps with message.
func NewAssertTrapCommand(action Action, message string, loc Location) *Command {
	return newCommand(CommandAssertTrap, loc, assertTrapPayload{action: action, message: message})
}

// NewAssertExhaustionCommand asserts that action exhausts a resource
// (typically the call stack) with message.
func NewAssertExhaustionCommand(action Action, message string, loc Location) *Command {
	return newCommand(CommandAssertExhaustion, loc, assertTrapPayload{action: action, message: message})
}

// asTrapLike backs AssertTrap and AssertExhaustion, which share a payload
// shape.
func (c *Command) asTrapLike(want CommandKind) (Action, string, error) {
	p, ok := c.payload.(assertTrapPayload)
	if !ok || c.Kind != want {
		return Action{}, "", c.wrongVariant(want)
	}
	return p.action, p.message, nil
}

// AsAssertTrap returns (action, message), erroring if Kind is not
// CommandAssertTrap.
func (c *Command) AsAssertTrap() (Action, string, error) {
	return c.asTrapLike(CommandAssertTrap)
}

// AsAssertExhaustion returns (action, message), erroring if Kind is not
// CommandAssertExhaustion.
func (c *Command) AsAssertExhaustion() (Action, string, error) {
	return c.asTrapLike(CommandAssertExhaustion)
}

// Script is an ordered sequence of Commands plus a binding table from
// module name to the position of the ModuleCommand that defined it.
// Commands are owned in declaration order; a Script has no execution
// semantics of its own, those belong to the external conformance runner
// that walks the command list.
type Script struct {
	Commands       []*Command
	ModuleBindings *BindingHash
}

// NewScript returns an empty Script ready for AppendCommand calls.
func NewScript() *Script {
	return &Script{ModuleBindings: NewBindingHash()}
}

// AppendCommand appends cmd to the command list, and, if cmd is a
// ModuleCommand whose module has a name, binds that name to the
// command's position.
func (s *Script) AppendCommand(cmd *Command) {
	idx := uint32(len(s.Commands))
	s.Commands = append(s.Commands, cmd)
	if cmd.Kind != CommandModule {
		return
	}
	if m, err := cmd.AsModule(); err == nil && m.Name != "" {
		s.ModuleBindings.Insert(m.Name, cmd.Loc, idx)
	}
}

// GetFirstModule returns the first ModuleCommand's Module, scanning
// forward past any leading non-module commands, or nil if the script
// defines no module.
func (s *Script) GetFirstModule() *Module {
	for _, cmd := range s.Commands {
		if cmd.Kind != CommandModule {
			continue
		}
		if m, err := cmd.AsModule(); err == nil {
			return m
		}
	}
	return nil
}

// GetModule resolves v against ModuleBindings (for a named Var) or
// treats it as a direct command-list position (for a numeric Var), then
// returns that command's Module.
func (s *Script) GetModule(v Var) (*Module, error) {
	var idx uint32
	if v.IsIndex() {
		idx = v.Index()
	} else {
		var ok bool
		idx, ok = s.ModuleBindings.LookupIndex(v.Name())
		if !ok {
			return nil, fmt.Errorf("%s: %w", v.Name(), ErrUnknownName)
		}
	}
	if idx >= uint32(len(s.Commands)) {
		return nil, fmt.Errorf("command index %d: %w", idx, ErrIndexOutOfRange)
	}
	return s.Commands[idx].AsModule()
}
