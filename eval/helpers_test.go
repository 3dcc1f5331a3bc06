package eval_test

import (
	"github.com/semafold/semafold/analysis"
	"github.com/semafold/semafold/analysis/scopes"
	"github.com/semafold/semafold/eval"
	"github.com/semafold/semafold/frontend/jsonast"
	"github.com/semafold/semafold/module"
	"github.com/semafold/semafold/term"
)

// Term constructors for the scope analysis's vocabulary.

func prog(kids ...term.Term) term.Term { return jsonast.New("program", "", kids...) }

func decl(name string, init term.Term) term.Term {
	if init == nil {
		return jsonast.New("decl", name)
	}
	return jsonast.New("decl", name, init)
}

func lit(text string) term.Term { return jsonast.New("lit", text) }

func ref(name string) term.Term { return jsonast.New("ref", name) }

func imp(name string) term.Term { return jsonast.New("import", name) }

func export(name, alias string) term.Term {
	if alias == "" {
		return jsonast.New("export", name)
	}
	return jsonast.New("export", name, jsonast.New("alias", alias))
}

// counted wraps the scope analysis with a module-evaluation probe.
func counted(n *int) eval.Analysis {
	return analysis.Lift(scopes.New(), analysis.Hooks{
		BeforeModule: func(*module.Module) { *n++ },
	})
}

// pendingTable builds a pending table from modules in order.
func pendingTable(mods ...*module.Module) *module.Table[*module.Module] {
	tbl := module.NewTable[*module.Module]()
	for _, m := range mods {
		tbl.Add(m.Name, m)
	}
	return tbl
}
