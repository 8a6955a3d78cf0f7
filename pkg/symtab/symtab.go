// Package symtab provides the flat set of declared identifiers used by the
// checker. There is one namespace per table and no nested scopes.
package symtab

// Table is a deduplicating set of identifiers. The zero value is not usable;
// create tables with New.
type Table struct {
	names map[string]struct{}
	order []string // first-declaration order
}

// New creates an empty table.
func New() *Table {
	return &Table{names: make(map[string]struct{})}
}

// Declare adds name to the table. Declaring a name twice is a no-op.
func (t *Table) Declare(name string) {
	if _, ok := t.names[name]; ok {
		return
	}
	t.names[name] = struct{}{}
	t.order = append(t.order, name)
}

// IsDeclared reports whether name was declared. Matching is exact.
func (t *Table) IsDeclared(name string) bool {
	_, ok := t.names[name]
	return ok
}

// Len returns the number of distinct names.
func (t *Table) Len() int {
	return len(t.order)
}

// Names returns the declared names in the order they were first declared.
func (t *Table) Names() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}
