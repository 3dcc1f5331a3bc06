package eval

import (
	"github.com/semafold/semafold/abstract"
	"github.com/semafold/semafold/module"
)

// Options configure one analysis run.
type Options struct {
	// ExportPolicy decides what an empty export set exposes.
	ExportPolicy module.ExportPolicy
	// MergeOrder decides who wins when merged environments collide.
	MergeOrder abstract.MergeOrder
	// Allocator maps names to store addresses; nil means monovariant
	// (one address per name).
	Allocator abstract.Allocator
}

// Final is the state of a run after the entry module's value has been
// computed. CachedModules is the module-table state that survives the run
// (the pending table is restored to its pre-run contents before Run
// returns) and is the authoritative name -> exported environment result
// that symbol and stack-graph tooling projects into its wire schema.
type Final struct {
	GlobalEnv     *abstract.Environment
	Store         *abstract.Store
	CachedModules *module.Table[*abstract.Environment]
	Exports       module.Exports
}

// Run executes the assembled analysis over the program's modules to
// completion: the head of mods is the entry point, the rest are
// importable. It yields the entry module's value together with the final
// environment, store and module-table state. This is the single entry
// point the surrounding system calls; failures propagate here unrecovered
// and are surfaced as the run's result.
func Run(a Analysis, mods []*module.Module, opts Options) (abstract.Value, Final, error) {
	ev := New(a, opts)
	value, err := ev.EvaluateModules(mods)
	st := ev.State()
	fin := Final{
		GlobalEnv:     st.GlobalEnv(),
		Store:         st.Store(),
		CachedModules: st.CachedModules(),
		Exports:       st.Exports(),
	}
	return value, fin, err
}
