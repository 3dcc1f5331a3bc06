package module

import "github.com/semafold/semafold/abstract"

// ExportPolicy decides what an empty export set exposes. The correct
// behavior varies across source languages, so the engine keeps it
// caller-configurable rather than fixing one answer.
type ExportPolicy int

const (
	// ExportAll passes the whole environment through when no exports are
	// declared.
	ExportAll ExportPolicy = iota
	// ExportNone hides everything when no exports are declared.
	ExportNone
)

// Entry is one exported name, possibly aliased to a different external
// name, possibly carrying its own address (an export that defines rather
// than re-exposes a binding).
type Entry struct {
	// Name is the internal name being exported.
	Name string
	// Alias is the externally visible name; empty means Name.
	Alias string
	// Addr, when non-empty, binds the alias directly instead of resolving
	// Name through the module's environment.
	Addr abstract.Address
}

// External returns the name importers see.
func (e Entry) External() string {
	if e.Alias != "" {
		return e.Alias
	}
	return e.Name
}

// Exports is a module's export surface, in declaration order.
type Exports []Entry

// IsEmpty reports whether no exports are declared.
func (x Exports) IsEmpty() bool { return len(x) == 0 }

// Add returns an export surface additionally containing the entry. The
// receiver is unchanged.
func (x Exports) Add(name, alias string, addr abstract.Address) Exports {
	out := make(Exports, len(x), len(x)+1)
	copy(out, x)
	return append(out, Entry{Name: name, Alias: alias, Addr: addr})
}

// Aliases returns the export set as a rename list for
// Environment.Overwrite.
func (x Exports) Aliases() []abstract.Rename {
	out := make([]abstract.Rename, len(x))
	for i, e := range x {
		out[i] = abstract.Rename{From: e.Name, To: e.External()}
	}
	return out
}

// Filter restricts env to the exported surface. With declared exports the
// result holds exactly the exported (possibly renamed) names: entries
// carrying their own address bind it directly, and the remaining entries
// resolve through env, dropping names env does not define. With no
// declared exports the policy decides.
func (x Exports) Filter(env *abstract.Environment, policy ExportPolicy) *abstract.Environment {
	if x.IsEmpty() {
		if policy == ExportAll {
			return env
		}
		return abstract.NewEnvironment()
	}
	out := env.Overwrite(x.Aliases())
	for _, e := range x {
		if e.Addr != "" {
			out = out.Bind(e.External(), e.Addr)
		}
	}
	return out
}
