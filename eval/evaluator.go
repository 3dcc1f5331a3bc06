package eval

import (
	"github.com/tliron/commonlog"

	"github.com/semafold/semafold/abstract"
	"github.com/semafold/semafold/module"
	"github.com/semafold/semafold/term"
)

var log = commonlog.GetLogger("semafold.eval")

// Analysis is one evaluation strategy over the generic term shape. It
// supplies the per-node algebra and the whole-module algebra; the engine
// supplies the fold, the capability state and module resolution.
type Analysis interface {
	// AnalyzeTerm is applied to every decomposed node, bottom-up. It
	// forces exactly the children it needs.
	AnalyzeTerm(ev *Evaluator, n term.Node) (abstract.Value, error)
	// AnalyzeModule evaluates a whole module; the body is exposed as a
	// subterm so the algebra can act before and after forcing it.
	AnalyzeModule(ev *Evaluator, m *module.Module, body *term.Subterm) (abstract.Value, error)
}

// Isolator is an optional Analysis upgrade overriding how evaluation is
// sandboxed. Analyses that do not implement it get the engine default:
// global environment and export set reset to empty for the action and
// restored afterwards.
type Isolator interface {
	Isolate(ev *Evaluator, action func() error) error
}

// Evaluator executes one analysis over terms and modules. It owns the
// capability state and the module signal for the duration of a run.
type Evaluator struct {
	state    *State
	analysis Analysis
	signal   *ModuleSignal
}

// New assembles an evaluator for the analysis and installs the default
// module-evaluation handler on its signal.
func New(a Analysis, opts Options) *Evaluator {
	ev := &Evaluator{
		state:    NewState(opts),
		analysis: a,
		signal:   NewModuleSignal(),
	}
	ev.signal.Install(ev.analyzeModule)
	return ev
}

// State returns the capability state.
func (ev *Evaluator) State() *State { return ev.state }

// Analysis returns the analysis being run.
func (ev *Evaluator) Analysis() Analysis { return ev.analysis }

// Signal returns the module-evaluation signal, for installing
// interceptors.
func (ev *Evaluator) Signal() *ModuleSignal { return ev.signal }

// EvaluateTerm folds t into a value: it decomposes t into its immediate
// children, wraps each child as a subterm deferring its own evaluation,
// and applies the analysis algebra to the node. Forcing a child is
// memoized, so the algebra may force the same subterm repeatedly without
// recomputation.
func (ev *Evaluator) EvaluateTerm(t term.Term) (abstract.Value, error) {
	kids := t.Children()
	subs := make([]*term.Subterm, len(kids))
	for i, k := range kids {
		k := k
		subs[i] = term.Defer(k, func() (abstract.Value, error) {
			return ev.EvaluateTerm(k)
		})
	}
	return ev.analysis.AnalyzeTerm(ev, term.Node{Term: t, Children: subs})
}

// EvaluateModule raises the module-evaluation signal carrying m; the
// installed handler evaluates it and resumes with the resulting value.
func (ev *Evaluator) EvaluateModule(m *module.Module) (abstract.Value, error) {
	return ev.signal.Raise(m)
}

// analyzeModule is the default signal handler: seed the export set with
// the module's declared surface, then hand the body to the analysis.
func (ev *Evaluator) analyzeModule(m *module.Module) (abstract.Value, error) {
	log.Debugf("evaluating module %q", m.Name)
	ev.state.SetExports(m.Exports)
	body := term.Defer(m.Body, func() (abstract.Value, error) {
		return ev.EvaluateTerm(m.Body)
	})
	return ev.analysis.AnalyzeModule(ev, m, body)
}

// Isolate runs action with the global environment and export set reset to
// empty, restoring the caller's prior global environment and exports when
// action completes, whether it succeeds or fails. An imported module is
// evaluated under Isolate so only its explicitly exported names leak back
// to the importer. Analyses implementing Isolator override the sandboxing.
func (ev *Evaluator) Isolate(action func() error) error {
	if iso, ok := ev.analysis.(Isolator); ok {
		return iso.Isolate(ev, action)
	}
	return ev.isolate(action)
}

func (ev *Evaluator) isolate(action func() error) error {
	st := ev.state
	prevEnv, prevExports := st.GlobalEnv(), st.Exports()
	st.SetGlobalEnv(abstract.NewEnvironment())
	st.SetExports(nil)
	defer func() {
		st.SetGlobalEnv(prevEnv)
		st.SetExports(prevExports)
	}()
	return action()
}
