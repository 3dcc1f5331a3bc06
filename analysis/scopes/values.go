package scopes

import "github.com/semafold/semafold/abstract"

// The scope domain is deliberately small: the analysis exists to populate
// environments, stores and export sets, and downstream tooling reads those
// rather than the values themselves.

// Unit is the value of terms evaluated for their binding effect.
type Unit struct{}

func (Unit) Kind() string { return "unit" }

func (Unit) Equal(o abstract.Value) bool {
	_, ok := o.(Unit)
	return ok
}

func (Unit) String() string { return "()" }

// Atom is the value of a literal leaf.
type Atom struct {
	Text string
}

func (a Atom) Kind() string { return "atom" }

func (a Atom) Equal(o abstract.Value) bool {
	b, ok := o.(Atom)
	return ok && a.Text == b.Text
}

func (a Atom) String() string { return a.Text }

// Undefined is the value of a reference that resolves to no binding. The
// analysis keeps going on free variables: symbol extraction wants the rest
// of the unit even when a name is unresolved.
type Undefined struct {
	Name string
}

func (u Undefined) Kind() string { return "undefined" }

func (u Undefined) Equal(o abstract.Value) bool {
	v, ok := o.(Undefined)
	return ok && u.Name == v.Name
}

func (u Undefined) String() string { return "undefined:" + u.Name }
