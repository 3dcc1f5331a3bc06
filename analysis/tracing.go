package analysis

import (
	"github.com/tliron/commonlog"

	"github.com/semafold/semafold/abstract"
	"github.com/semafold/semafold/eval"
	"github.com/semafold/semafold/module"
	"github.com/semafold/semafold/term"
)

// Tracing wraps inner with structured logging of every node and module it
// analyzes. It is a plain Lift composition and doubles as the reference
// for writing composite analyses.
func Tracing(inner eval.Analysis, log commonlog.Logger) eval.Analysis {
	return Lift(inner, Hooks{
		BeforeTerm: func(n term.Node) {
			log.Debugf("analyze %s (%d children)", n.Term.Kind(), len(n.Children))
		},
		AfterTerm: func(n term.Node, v abstract.Value, err error) {
			if err != nil {
				log.Errorf("analyze %s failed: %v", n.Term.Kind(), err)
				return
			}
			log.Debugf("analyze %s -> %s", n.Term.Kind(), v)
		},
		BeforeModule: func(m *module.Module) {
			log.Infof("analyze module %q", m.Name)
		},
		AfterModule: func(m *module.Module, v abstract.Value, err error) {
			if err != nil {
				log.Errorf("module %q failed: %v", m.Name, err)
			}
		},
	})
}
