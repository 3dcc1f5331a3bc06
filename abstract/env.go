package abstract

import "sort"

// ---------------------------------------------------------------------------
// Environment: persistent name -> address mapping with scoped overrides
// ---------------------------------------------------------------------------

// Environment maps variable names to store addresses. Environments are
// persistent: Bind, Push, Merge and Overwrite return new environments and
// never mutate their operands, so a prior scope remains valid after a
// nested scope ends.
//
// An Environment is a chain of frames. Lookup walks the chain innermost
// first, so a nested frame shadows outer bindings without destroying them.
type Environment struct {
	parent *Environment
	binds  map[string]Address
}

// Binding is one name-to-address pair.
type Binding struct {
	Name string
	Addr Address
}

// Rename is one entry of an alias set: bindings of From become visible
// under To.
type Rename struct {
	From string
	To   string
}

// MergeOrder controls who wins when both operands of a merge bind the same
// name.
type MergeOrder int

const (
	// LastWins lets the argument environment overwrite the receiver.
	LastWins MergeOrder = iota
	// FirstWins keeps the receiver's binding on collision.
	FirstWins
)

// NewEnvironment returns an empty environment with no parent.
func NewEnvironment() *Environment {
	return &Environment{}
}

// Bind returns an environment additionally binding name to addr in the
// innermost frame. The receiver is unchanged.
func (e *Environment) Bind(name string, addr Address) *Environment {
	binds := make(map[string]Address, len(e.binds)+1)
	for k, v := range e.binds {
		binds[k] = v
	}
	binds[name] = addr
	return &Environment{parent: e.parent, binds: binds}
}

// Lookup resolves name through the frame chain, innermost first.
func (e *Environment) Lookup(name string) (Address, bool) {
	for env := e; env != nil; env = env.parent {
		if addr, ok := env.binds[name]; ok {
			return addr, true
		}
	}
	return "", false
}

// Push returns an environment with a fresh empty frame whose parent is the
// receiver.
func (e *Environment) Push() *Environment {
	return &Environment{parent: e}
}

// Pop returns the parent scope, or the receiver if it is the outermost
// frame.
func (e *Environment) Pop() *Environment {
	if e.parent == nil {
		return e
	}
	return e.parent
}

// Merge returns the union of both environments flattened into a single
// frame. Collisions resolve per order. Neither operand is mutated.
func (e *Environment) Merge(o *Environment, order MergeOrder) *Environment {
	binds := make(map[string]Address)
	for _, b := range e.Pairs() {
		binds[b.Name] = b.Addr
	}
	for _, b := range o.Pairs() {
		if _, taken := binds[b.Name]; taken && order == FirstWins {
			continue
		}
		binds[b.Name] = b.Addr
	}
	return &Environment{binds: binds}
}

// Overwrite applies an alias set: the result binds each To name to the
// address the receiver holds for the matching From name. Names outside the
// alias set are dropped. The receiver is unchanged.
func (e *Environment) Overwrite(renames []Rename) *Environment {
	binds := make(map[string]Address, len(renames))
	for _, r := range renames {
		if addr, ok := e.Lookup(r.From); ok {
			binds[r.To] = addr
		}
	}
	return &Environment{binds: binds}
}

// Pairs returns every visible binding, shadowing resolved, sorted by name.
func (e *Environment) Pairs() []Binding {
	seen := make(map[string]struct{})
	var out []Binding
	for env := e; env != nil; env = env.parent {
		for name, addr := range env.binds {
			if _, shadowed := seen[name]; shadowed {
				continue
			}
			seen[name] = struct{}{}
			out = append(out, Binding{Name: name, Addr: addr})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Names returns every visible name, sorted.
func (e *Environment) Names() []string {
	pairs := e.Pairs()
	names := make([]string, len(pairs))
	for i, b := range pairs {
		names[i] = b.Name
	}
	return names
}

// Len returns the number of visible bindings.
func (e *Environment) Len() int { return len(e.Pairs()) }

// Equal reports whether both environments expose the same visible bindings.
func (e *Environment) Equal(o *Environment) bool {
	a, b := e.Pairs(), o.Pairs()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
