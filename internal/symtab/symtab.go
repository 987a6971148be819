// Package symtab provides the symbol table used during code
// generation: a flat list of variables with scope-based visibility and
// stack-frame offsets.
package symtab

// Type identifies the declared type of a symbol.
type Type int

const (
	Int Type = iota
	Float
	Char
	Bool
	Void
)

var typeNames = [...]string{
	Int:   "int",
	Float: "float",
	Char:  "char",
	Bool:  "bool",
	Void:  "void",
}

func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return "unknown"
	}
	return typeNames[t]
}

// Symbol is one declared variable.
//
// Offset is the variable's stack slot relative to the frame pointer,
// always negative: the first declaration gets -8, the second -16, and
// so on. Scope records the nesting depth at declaration time and drives
// eviction on scope exit.
type Symbol struct {
	Name        string
	Type        Type
	Offset      int
	Initialized bool
	Scope       int
}

// Table is a flat symbol table.
//
// DESIGN:
// Symbols live in a single slice rather than per-scope maps. Names are
// unique across the whole table while their scopes are live, so lookup
// order does not matter; scope exit truncates the slice, after which
// the evicted names may be declared again. Offsets are assigned once
// per declaration and never reused, which keeps every live variable at
// a distinct frame slot even across sibling scopes.
type Table struct {
	symbols []Symbol
	scope   int
	next    int // next offset to hand out, grows by -8 per declaration
}

// New creates an empty table at scope depth zero.
func New() *Table {
	return &Table{
		symbols: make([]Symbol, 0),
		next:    -8,
	}
}

// Add declares name with the given type in the current scope and
// assigns it the next stack slot. It returns false, without modifying
// the table, when name is already declared anywhere in the table. An
// inner scope may not redeclare an outer name while the outer one is
// still live.
func (t *Table) Add(name string, typ Type) bool {
	for i := range t.symbols {
		if t.symbols[i].Name == name {
			return false
		}
	}

	t.symbols = append(t.symbols, Symbol{
		Name:   name,
		Type:   typ,
		Offset: t.next,
		Scope:  t.scope,
	})
	t.next -= 8
	return true
}

// Find returns the innermost visible symbol with the given name, or nil
// when name is not declared.
func (t *Table) Find(name string) *Symbol {
	for i := len(t.symbols) - 1; i >= 0; i-- {
		if t.symbols[i].Name == name {
			return &t.symbols[i]
		}
	}
	return nil
}

// MarkInitialized flags the innermost symbol with the given name as
// having been assigned. Unknown names are ignored.
func (t *Table) MarkInitialized(name string) {
	if sym := t.Find(name); sym != nil {
		sym.Initialized = true
	}
}

// EnterScope increases the nesting depth. Declarations made until the
// matching ExitScope belong to the new scope.
func (t *Table) EnterScope() {
	t.scope++
}

// ExitScope decreases the nesting depth and evicts every symbol
// declared at or below the abandoned depth. Their stack slots are not
// reclaimed. Calling ExitScope at depth zero is a no-op.
func (t *Table) ExitScope() {
	if t.scope == 0 {
		return
	}

	i := len(t.symbols)
	for i > 0 && t.symbols[i-1].Scope >= t.scope {
		i--
	}
	t.symbols = t.symbols[:i]
	t.scope--
}

// Depth returns the current scope nesting depth.
func (t *Table) Depth() int {
	return t.scope
}

// Len returns the number of currently visible symbols.
func (t *Table) Len() int {
	return len(t.symbols)
}

// FrameSize returns the number of bytes of stack the declared variables
// occupy so far, including evicted ones whose slots are not reused.
func (t *Table) FrameSize() int {
	return -(t.next + 8)
}

// Clear resets the table to its initial empty state.
func (t *Table) Clear() {
	t.symbols = t.symbols[:0]
	t.scope = 0
	t.next = -8
}
