// Package analysis provides the composition machinery for layering
// evaluation strategies: Lift adapts an inner analysis into a composite
// without duplicating its logic, and Tracing is the shipped example
// decorator. An analysis itself is anything implementing eval.Analysis.
package analysis

import (
	"github.com/semafold/semafold/abstract"
	"github.com/semafold/semafold/eval"
	"github.com/semafold/semafold/module"
	"github.com/semafold/semafold/term"
)

// Hooks translate between an inner analysis's node and result shapes and
// the composite's. Nil hooks are identity. Lift is the only seam through
// which nested analyses compose: a composite routes "the inner analysis's
// algebra" through these adapters rather than recursing into its own.
type Hooks struct {
	// MapNode rewrites the node before the inner algebra sees it.
	MapNode func(term.Node) term.Node
	// MapValue rewrites the inner algebra's result into the composite's
	// domain.
	MapValue func(abstract.Value) abstract.Value
	// BeforeTerm runs before the inner per-node algebra.
	BeforeTerm func(term.Node)
	// AfterTerm runs after the inner per-node algebra with its outcome.
	AfterTerm func(term.Node, abstract.Value, error)
	// BeforeModule runs before the inner whole-module algebra.
	BeforeModule func(*module.Module)
	// AfterModule runs after the inner whole-module algebra.
	AfterModule func(*module.Module, abstract.Value, error)
}

// Lift wraps inner so a composite can delegate to it through the hooks.
// If inner overrides isolation, the lifted analysis preserves the
// override.
func Lift(inner eval.Analysis, hooks Hooks) eval.Analysis {
	l := lifted{inner: inner, hooks: hooks}
	if _, ok := inner.(eval.Isolator); ok {
		return &liftedIsolator{l}
	}
	return &l
}

type lifted struct {
	inner eval.Analysis
	hooks Hooks
}

func (l *lifted) AnalyzeTerm(ev *eval.Evaluator, n term.Node) (abstract.Value, error) {
	if l.hooks.MapNode != nil {
		n = l.hooks.MapNode(n)
	}
	if l.hooks.BeforeTerm != nil {
		l.hooks.BeforeTerm(n)
	}
	v, err := l.inner.AnalyzeTerm(ev, n)
	if l.hooks.AfterTerm != nil {
		l.hooks.AfterTerm(n, v, err)
	}
	if err == nil && l.hooks.MapValue != nil {
		v = l.hooks.MapValue(v)
	}
	return v, err
}

func (l *lifted) AnalyzeModule(ev *eval.Evaluator, m *module.Module, body *term.Subterm) (abstract.Value, error) {
	if l.hooks.BeforeModule != nil {
		l.hooks.BeforeModule(m)
	}
	v, err := l.inner.AnalyzeModule(ev, m, body)
	if l.hooks.AfterModule != nil {
		l.hooks.AfterModule(m, v, err)
	}
	if err == nil && l.hooks.MapValue != nil {
		v = l.hooks.MapValue(v)
	}
	return v, err
}

type liftedIsolator struct {
	lifted
}

func (l *liftedIsolator) Isolate(ev *eval.Evaluator, action func() error) error {
	return l.inner.(eval.Isolator).Isolate(ev, action)
}
