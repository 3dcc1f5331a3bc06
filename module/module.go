// Package module defines the named units the engine resolves and caches: a
// Module wraps one parsed term with identifying metadata, a Table keeps the
// ordered name-keyed entries for pending and evaluated modules, and Exports
// describes a module's visible surface.
package module

import "github.com/semafold/semafold/term"

// Module is a named unit of source wrapping a parsed term. A Module is
// created once per parsed unit and is immutable thereafter; it lives in
// the pending table for the duration of one analysis run.
type Module struct {
	// Name is the module's import name.
	Name string
	// Path locates the source unit, for diagnostics only.
	Path string
	// Body is the module's top-level term.
	Body term.Term
	// Exports is the module's declared export surface; analyses may add
	// further exports at evaluation time through the export capability.
	Exports Exports
}

// New creates a module with no declared exports.
func New(name string, body term.Term) *Module {
	return &Module{Name: name, Body: body}
}
