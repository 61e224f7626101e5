package wasm

import "fmt"

// ModuleFieldKind discriminates one entry of a Module's field list.
type ModuleFieldKind int

const (
	FieldFunc ModuleFieldKind = iota
	FieldTable
	FieldMemory
	FieldGlobal
	FieldEvent
	FieldElemSegment
	FieldDataSegment
	FieldImport
	FieldExport
	FieldStart
	FieldFuncType
)

// ModuleField is one entry of a Module's ModuleFieldList, tagged by Kind.
// Source order is preserved, which matters for index assignment and
// round-tripping.
type ModuleField struct {
	Kind    ModuleFieldKind
	Loc     Location
	payload any
}

func newField(kind ModuleFieldKind, loc Location, payload any) *ModuleField {
	return &ModuleField{Kind: kind, Loc: loc, payload: payload}
}

// ModuleFieldList is the ordered, owning sequence of a Module's fields,
// in source order.
type ModuleFieldList []*ModuleField

// Module aggregates definitions addressable by index or name. Per-kind arrays and BindingHashes are non-owning caches into
// Fields; AppendXxx keeps both in sync, so caches are never invalidated
// by anything short of a direct mutation of Fields itself.
type Module struct {
	Name   string
	Fields ModuleFieldList

	Funcs        []*Func
	Tables       []*Table
	Memories     []*Memory
	Globals      []*Global
	Events       []*Event
	FuncTypes    []*FuncType
	ElemSegments []*ElemSegment
	DataSegments []*DataSegment
	Imports      []*Import
	Exports      []*Export

	// StartVar is the start function reference, if any.
	StartVar Var
	HasStart bool
	startLoc Location

	NumFuncImports   uint32
	NumTableImports  uint32
	NumMemoryImports uint32
	NumGlobalImports uint32
	NumEventImports  uint32

	FuncBindings        *BindingHash
	TableBindings       *BindingHash
	MemoryBindings      *BindingHash
	GlobalBindings      *BindingHash
	EventBindings       *BindingHash
	FuncTypeBindings    *BindingHash
	ElemSegmentBindings *BindingHash
	DataSegmentBindings *BindingHash
}

// NewModule returns an empty, ready-to-populate Module.
func NewModule(name string) *Module {
	return &Module{
		Name:                name,
		FuncBindings:        NewBindingHash(),
		TableBindings:       NewBindingHash(),
		MemoryBindings:      NewBindingHash(),
		GlobalBindings:      NewBindingHash(),
		EventBindings:       NewBindingHash(),
		FuncTypeBindings:    NewBindingHash(),
		ElemSegmentBindings: NewBindingHash(),
		DataSegmentBindings: NewBindingHash(),
	}
}

func (m *Module) insertBinding(h *BindingHash, name string, loc Location, idx uint32) {
	if name == "" {
		return
	}
	if _, dup := h.Lookup(name); dup {
		Logger().Sugar().Debugf("binding %q collides with an existing entry at index %d", name, idx)
	}
	h.Insert(name, loc, idx)
}

// AppendFunc appends a function definition, updating the function cache
// and binding table.
func (m *Module) AppendFunc(f *Func) {
	idx := uint32(len(m.Funcs))
	m.Funcs = append(m.Funcs, f)
	m.insertBinding(m.FuncBindings, f.Name, f.Loc, idx)
	m.Fields = append(m.Fields, newField(FieldFunc, f.Loc, f))
}

// AppendTable appends a table definition.
func (m *Module) AppendTable(t *Table) {
	idx := uint32(len(m.Tables))
	m.Tables = append(m.Tables, t)
	m.insertBinding(m.TableBindings, t.Name, t.Loc, idx)
	m.Fields = append(m.Fields, newField(FieldTable, t.Loc, t))
}

// AppendMemory appends a memory definition.
func (m *Module) AppendMemory(mem *Memory) {
	idx := uint32(len(m.Memories))
	m.Memories = append(m.Memories, mem)
	m.insertBinding(m.MemoryBindings, mem.Name, mem.Loc, idx)
	m.Fields = append(m.Fields, newField(FieldMemory, mem.Loc, mem))
}

// AppendGlobal appends a global definition.
func (m *Module) AppendGlobal(g *Global) {
	idx := uint32(len(m.Globals))
	m.Globals = append(m.Globals, g)
	m.insertBinding(m.GlobalBindings, g.Name, g.Loc, idx)
	m.Fields = append(m.Fields, newField(FieldGlobal, g.Loc, g))
}

// AppendEvent appends an event definition.
func (m *Module) AppendEvent(e *Event) {
	idx := uint32(len(m.Events))
	m.Events = append(m.Events, e)
	m.insertBinding(m.EventBindings, e.Name, e.Loc, idx)
	m.Fields = append(m.Fields, newField(FieldEvent, e.Loc, e))
}

// AppendFuncType appends a named function signature.
func (m *Module) AppendFuncType(t *FuncType) {
	idx := uint32(len(m.FuncTypes))
	m.FuncTypes = append(m.FuncTypes, t)
	m.insertBinding(m.FuncTypeBindings, t.Name, t.Loc, idx)
	m.Fields = append(m.Fields, newField(FieldFuncType, t.Loc, t))
}

// AppendElemSegment appends an element segment.
func (m *Module) AppendElemSegment(s *ElemSegment) {
	idx := uint32(len(m.ElemSegments))
	m.ElemSegments = append(m.ElemSegments, s)
	m.insertBinding(m.ElemSegmentBindings, s.Name, s.Loc, idx)
	m.Fields = append(m.Fields, newField(FieldElemSegment, s.Loc, s))
}

// AppendDataSegment appends a data segment.
func (m *Module) AppendDataSegment(s *DataSegment) {
	idx := uint32(len(m.DataSegments))
	m.DataSegments = append(m.DataSegments, s)
	m.insertBinding(m.DataSegmentBindings, s.Name, s.Loc, idx)
	m.Fields = append(m.Fields, newField(FieldDataSegment, s.Loc, s))
}

// AppendExport appends an export record. Exports have no index space of
// their own to cache into beyond Exports itself.
func (m *Module) AppendExport(e *Export) {
	m.Exports = append(m.Exports, e)
	m.Fields = append(m.Fields, newField(FieldExport, e.Loc, e))
}

// AppendStart sets the module's start function. A module has at most one;
// a later call overwrites an earlier one. Rejecting a second start
// function is a validator's job, not this method's — construction stays
// separate from validation.
func (m *Module) AppendStart(v Var, loc Location) {
	m.StartVar, m.HasStart, m.startLoc = v, true, loc
	m.Fields = append(m.Fields, newField(FieldStart, loc, v))
}

// AppendImport appends an import, dispatching on its Kind to update the
// matching per-kind cache, binding table, and import counter — imports
// must precede non-import fields of the same kind for index assignment
// to match the binary format; that ordering invariant is the parser's
// responsibility, not AppendImport's.
func (m *Module) AppendImport(im *Import) {
	switch im.Kind {
	case ExternKindFunc:
		f := NewFunc(im.FuncName, im.FuncDecl, im.Loc)
		idx := uint32(len(m.Funcs))
		m.Funcs = append(m.Funcs, f)
		m.insertBinding(m.FuncBindings, f.Name, im.Loc, idx)
		m.NumFuncImports++
	case ExternKindTable:
		t := &Table{Name: moduleLocalName(im), Limits: im.Table.Limits, ElemType: im.Table.ElemType, Loc: im.Loc}
		idx := uint32(len(m.Tables))
		m.Tables = append(m.Tables, t)
		m.insertBinding(m.TableBindings, t.Name, im.Loc, idx)
		m.NumTableImports++
	case ExternKindMemory:
		mem := &Memory{Name: moduleLocalName(im), Limits: im.Memory.Limits, Loc: im.Loc}
		idx := uint32(len(m.Memories))
		m.Memories = append(m.Memories, mem)
		m.insertBinding(m.MemoryBindings, mem.Name, im.Loc, idx)
		m.NumMemoryImports++
	case ExternKindGlobal:
		g := &Global{Name: moduleLocalName(im), Type: im.Global.Type, Mutable: im.Global.Mutable, Loc: im.Loc}
		idx := uint32(len(m.Globals))
		m.Globals = append(m.Globals, g)
		m.insertBinding(m.GlobalBindings, g.Name, im.Loc, idx)
		m.NumGlobalImports++
	case ExternKindEvent:
		e := &Event{Name: moduleLocalName(im), Decl: im.Event.Decl, Loc: im.Loc}
		idx := uint32(len(m.Events))
		m.Events = append(m.Events, e)
		m.insertBinding(m.EventBindings, e.Name, im.Loc, idx)
		m.NumEventImports++
	}
	m.Imports = append(m.Imports, im)
	m.Fields = append(m.Fields, newField(FieldImport, im.Loc, im))
}

// moduleLocalName returns an import's declared local binding name, the
// name a module-local reference (e.g. `(call $f)`) would use.
func moduleLocalName(im *Import) string {
	switch im.Kind {
	case ExternKindFunc:
		return im.FuncName
	case ExternKindTable:
		return im.Table.Name
	case ExternKindMemory:
		return im.Memory.Name
	case ExternKindGlobal:
		return im.Global.Name
	case ExternKindEvent:
		return im.Event.Name
	default:
		return ""
	}
}

// resolveIndex resolves a Var against an index space: if v is already
// numeric, it is returned verbatim; else it is looked up in h, returning
// ErrUnknownName on miss.
func resolveIndex(h *BindingHash, v Var) (uint32, error) {
	if v.IsIndex() {
		return v.Index(), nil
	}
	idx, ok := h.LookupIndex(v.Name())
	if !ok {
		return invalidIndex, fmt.Errorf("%s: %w", v.Name(), ErrUnknownName)
	}
	return idx, nil
}

// GetFuncIndex resolves v against the function index space.
func (m *Module) GetFuncIndex(v Var) (uint32, error) { return resolveIndex(m.FuncBindings, v) }

// GetTableIndex resolves v against the table index space.
func (m *Module) GetTableIndex(v Var) (uint32, error) { return resolveIndex(m.TableBindings, v) }

// GetMemoryIndex resolves v against the memory index space.
func (m *Module) GetMemoryIndex(v Var) (uint32, error) { return resolveIndex(m.MemoryBindings, v) }

// GetGlobalIndex resolves v against the global index space.
func (m *Module) GetGlobalIndex(v Var) (uint32, error) { return resolveIndex(m.GlobalBindings, v) }

// GetEventIndex resolves v against the event index space.
func (m *Module) GetEventIndex(v Var) (uint32, error) { return resolveIndex(m.EventBindings, v) }

// GetFuncTypeIndex resolves v against the function-type index space.
func (m *Module) GetFuncTypeIndex(v Var) (uint32, error) { return resolveIndex(m.FuncTypeBindings, v) }

// GetElemSegmentIndex resolves v against the element-segment index space.
func (m *Module) GetElemSegmentIndex(v Var) (uint32, error) {
	return resolveIndex(m.ElemSegmentBindings, v)
}

// GetDataSegmentIndex resolves v against the data-segment index space.
func (m *Module) GetDataSegmentIndex(v Var) (uint32, error) {
	return resolveIndex(m.DataSegmentBindings, v)
}

// GetFunc resolves v and dereferences the function cache, or returns nil
// if the resolved index is out of range.
func (m *Module) GetFunc(v Var) (*Func, error) {
	idx, err := m.GetFuncIndex(v)
	if err != nil {
		return nil, err
	}
	if idx >= uint32(len(m.Funcs)) {
		return nil, fmt.Errorf("func index %d: %w", idx, ErrIndexOutOfRange)
	}
	return m.Funcs[idx], nil
}

// GetTable resolves v and dereferences the table cache.
func (m *Module) GetTable(v Var) (*Table, error) {
	idx, err := m.GetTableIndex(v)
	if err != nil {
		return nil, err
	}
	if idx >= uint32(len(m.Tables)) {
		return nil, fmt.Errorf("table index %d: %w", idx, ErrIndexOutOfRange)
	}
	return m.Tables[idx], nil
}

// GetMemory resolves v and dereferences the memory cache.
func (m *Module) GetMemory(v Var) (*Memory, error) {
	idx, err := m.GetMemoryIndex(v)
	if err != nil {
		return nil, err
	}
	if idx >= uint32(len(m.Memories)) {
		return nil, fmt.Errorf("memory index %d: %w", idx, ErrIndexOutOfRange)
	}
	return m.Memories[idx], nil
}

// GetGlobal resolves v and dereferences the global cache.
func (m *Module) GetGlobal(v Var) (*Global, error) {
	idx, err := m.GetGlobalIndex(v)
	if err != nil {
		return nil, err
	}
	if idx >= uint32(len(m.Globals)) {
		return nil, fmt.Errorf("global index %d: %w", idx, ErrIndexOutOfRange)
	}
	return m.Globals[idx], nil
}

// GetEvent resolves v and dereferences the event cache.
func (m *Module) GetEvent(v Var) (*Event, error) {
	idx, err := m.GetEventIndex(v)
	if err != nil {
		return nil, err
	}
	if idx >= uint32(len(m.Events)) {
		return nil, fmt.Errorf("event index %d: %w", idx, ErrIndexOutOfRange)
	}
	return m.Events[idx], nil
}

// GetFuncType resolves v and dereferences the function-type cache.
func (m *Module) GetFuncType(v Var) (*FuncType, error) {
	idx, err := m.GetFuncTypeIndex(v)
	if err != nil {
		return nil, err
	}
	if idx >= uint32(len(m.FuncTypes)) {
		return nil, fmt.Errorf("type index %d: %w", idx, ErrIndexOutOfRange)
	}
	return m.FuncTypes[idx], nil
}

// GetElemSegment resolves v and dereferences the element-segment cache.
func (m *Module) GetElemSegment(v Var) (*ElemSegment, error) {
	idx, err := m.GetElemSegmentIndex(v)
	if err != nil {
		return nil, err
	}
	if idx >= uint32(len(m.ElemSegments)) {
		return nil, fmt.Errorf("elem segment index %d: %w", idx, ErrIndexOutOfRange)
	}
	return m.ElemSegments[idx], nil
}

// GetDataSegment resolves v and dereferences the data-segment cache.
func (m *Module) GetDataSegment(v Var) (*DataSegment, error) {
	idx, err := m.GetDataSegmentIndex(v)
	if err != nil {
		return nil, err
	}
	if idx >= uint32(len(m.DataSegments)) {
		return nil, fmt.Errorf("data segment index %d: %w", idx, ErrIndexOutOfRange)
	}
	return m.DataSegments[idx], nil
}

// IsImport reports whether the entity kind/var resolves to an index
// within the leading run of imports for that kind.
func (m *Module) IsImport(kind ExternKind, v Var) (bool, error) {
	switch kind {
	case ExternKindFunc:
		idx, err := m.GetFuncIndex(v)
		return err == nil && idx < m.NumFuncImports, err
	case ExternKindTable:
		idx, err := m.GetTableIndex(v)
		return err == nil && idx < m.NumTableImports, err
	case ExternKindMemory:
		idx, err := m.GetMemoryIndex(v)
		return err == nil && idx < m.NumMemoryImports, err
	case ExternKindGlobal:
		idx, err := m.GetGlobalIndex(v)
		return err == nil && idx < m.NumGlobalImports, err
	case ExternKindEvent:
		idx, err := m.GetEventIndex(v)
		return err == nil && idx < m.NumEventImports, err
	default:
		return false, fmt.Errorf("extern kind %v: %w", kind, ErrWrongVariant)
	}
}
