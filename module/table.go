package module

// Table is an ordered mapping from module name to a list of entries.
// Multiple entries per name are legal: several definitions may contribute
// to one logical module. The pending table holds *Module; the cache of
// evaluated modules holds *abstract.Environment.
//
// Name order is insertion order and is observable: the loader processes
// same-named candidates in the order they were added.
type Table[X any] struct {
	order   []string
	entries map[string][]X
}

// NewTable returns an empty table.
func NewTable[X any]() *Table[X] {
	return &Table[X]{entries: map[string][]X{}}
}

// Add appends x to the entry list for name.
func (t *Table[X]) Add(name string, x X) {
	if _, ok := t.entries[name]; !ok {
		t.order = append(t.order, name)
	}
	t.entries[name] = append(t.entries[name], x)
}

// Set replaces the entry list for name with exactly x.
func (t *Table[X]) Set(name string, x X) {
	if _, ok := t.entries[name]; !ok {
		t.order = append(t.order, name)
	}
	t.entries[name] = []X{x}
}

// Lookup returns the entry list for name.
func (t *Table[X]) Lookup(name string) ([]X, bool) {
	xs, ok := t.entries[name]
	return xs, ok
}

// First returns the first entry for name.
func (t *Table[X]) First(name string) (X, bool) {
	if xs, ok := t.entries[name]; ok && len(xs) > 0 {
		return xs[0], true
	}
	var zero X
	return zero, false
}

// Names returns the table's names in insertion order.
func (t *Table[X]) Names() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}

// Len returns the number of distinct names.
func (t *Table[X]) Len() int { return len(t.order) }

// Copy returns a table with the same names and entry lists. Entry values
// are shared; the tables' structure is independent.
func (t *Table[X]) Copy() *Table[X] {
	out := NewTable[X]()
	out.order = make([]string, len(t.order))
	copy(out.order, t.order)
	for name, xs := range t.entries {
		dup := make([]X, len(xs))
		copy(dup, xs)
		out.entries[name] = dup
	}
	return out
}
