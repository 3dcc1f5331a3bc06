// Package scopes is the reference analysis: it computes the binding
// surface (declarations, references, exports and imports) that symbol
// tables and stack graphs are projected from. Term kinds are the small
// language-neutral vocabulary front ends lower into:
//
//	decl    bind Text in the global environment; child 0 is the initializer
//	ref     resolve Text through local then global scope
//	export  export Text, optionally renamed by an "alias" child
//	import  require the module named Text and merge its surface
//	block   evaluate children under a fresh local frame
//	lit     literal leaf
//
// Any other kind evaluates its children in order.
package scopes

import (
	"github.com/semafold/semafold/abstract"
	"github.com/semafold/semafold/eval"
	"github.com/semafold/semafold/module"
	"github.com/semafold/semafold/term"
)

// Analysis computes bindings, scopes and module surfaces over the generic
// term shape.
type Analysis struct{}

// New returns the scope analysis.
func New() *Analysis { return &Analysis{} }

// AnalyzeTerm is the per-node algebra.
func (a *Analysis) AnalyzeTerm(ev *eval.Evaluator, n term.Node) (abstract.Value, error) {
	st := ev.State()
	switch n.Term.Kind() {
	case "decl":
		return a.declare(ev, n)

	case "ref":
		name := n.Term.Text()
		addr, ok := st.CurrentEnv().Lookup(name)
		if !ok {
			addr, ok = st.GlobalEnv().Lookup(name)
		}
		if !ok {
			return Undefined{Name: name}, nil
		}
		if set, ok := st.Store().Read(addr); ok && set.Len() > 0 {
			return set[0], nil
		}
		return Undefined{Name: name}, nil

	case "export":
		name := n.Term.Text()
		var alias string
		for _, kid := range n.Term.Children() {
			if kid.Kind() == "alias" {
				alias = kid.Text()
			}
		}
		st.AddExport(name, alias, "")
		return Unit{}, nil

	case "import":
		name := n.Term.Text()
		var imported *abstract.Environment
		if err := ev.Isolate(func() error {
			env, err := ev.Require(name)
			imported = env
			return err
		}); err != nil {
			return nil, err
		}
		st.ModifyGlobalEnv(func(g *abstract.Environment) *abstract.Environment {
			return g.Merge(imported, st.MergeOrder())
		})
		return Unit{}, nil

	case "block":
		var out abstract.Value = Unit{}
		err := st.Locally(pushFrame, func() error {
			v, err := sequence(n)
			if err != nil {
				return err
			}
			out = v
			return nil
		})
		return out, err

	case "lit":
		return Atom{Text: n.Term.Text()}, nil

	default:
		return sequence(n)
	}
}

// AnalyzeModule evaluates a module body under a fresh top-level local
// frame. Exports accumulate in the state as export terms are reached; the
// loader filters the resulting surface.
func (a *Analysis) AnalyzeModule(ev *eval.Evaluator, m *module.Module, body *term.Subterm) (abstract.Value, error) {
	var out abstract.Value = Unit{}
	err := ev.State().Locally(pushFrame, func() error {
		v, err := body.Force()
		if err != nil {
			return err
		}
		if v != nil {
			out = v
		}
		return nil
	})
	return out, err
}

// declare binds the node's name in the global environment and writes the
// initializer's value (child 0, when present) into its cell.
func (a *Analysis) declare(ev *eval.Evaluator, n term.Node) (abstract.Value, error) {
	st := ev.State()
	name := n.Term.Text()
	addr := st.Alloc(name)
	st.ModifyGlobalEnv(func(g *abstract.Environment) *abstract.Environment {
		return g.Bind(name, addr)
	})

	var bound abstract.Value = Unit{}
	if init := n.Child(0); init != nil {
		v, err := init.Force()
		if err != nil {
			return nil, err
		}
		bound = v
	}
	st.ModifyStore(func(s *abstract.Store) *abstract.Store {
		return s.Write(addr, bound)
	})
	return bound, nil
}

func pushFrame(env *abstract.Environment) *abstract.Environment { return env.Push() }

// sequence forces every child in order and yields the last value.
func sequence(n term.Node) (abstract.Value, error) {
	var out abstract.Value = Unit{}
	for _, sub := range n.Children {
		v, err := sub.Force()
		if err != nil {
			return nil, err
		}
		if v != nil {
			out = v
		}
	}
	return out, nil
}
