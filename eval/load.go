package eval

import (
	"github.com/semafold/semafold/abstract"
	"github.com/semafold/semafold/module"
)

// Require resolves name to the environment it exports, evaluating at most
// once per name per run: the cached environment is returned if present,
// otherwise the module is loaded.
func (ev *Evaluator) Require(name string) (*abstract.Environment, error) {
	if env, ok := ev.state.CachedModule(name); ok {
		log.Debugf("require %q: cache hit", name)
		return env, nil
	}
	return ev.Load(name)
}

// Load evaluates every pending candidate for name and caches the combined
// exported environment.
//
// The cache entry is written before the first candidate is evaluated and
// updated after each one, not deferred until all candidates finish. A
// module that directly or transitively requires itself therefore sees
// whatever partial surface has been cached so far instead of recursing
// forever. Best effort for mutual recursion, not a guarantee of a
// complete surface.
func (ev *Evaluator) Load(name string) (*abstract.Environment, error) {
	st := ev.state
	candidates, ok := st.PendingModules().Lookup(name)
	if !ok {
		return nil, &ModuleNotFoundError{Name: name}
	}
	if len(candidates) == 0 {
		return abstract.NewEnvironment(), nil
	}

	log.Debugf("load %q: %d candidate(s)", name, len(candidates))
	acc := abstract.NewEnvironment()
	st.CacheModule(name, acc)
	for _, cand := range candidates {
		if _, err := ev.EvaluateModule(cand); err != nil {
			return nil, err
		}
		// The module evaluation left its global environment and export
		// set in place; the importer's Isolate restores them after Load
		// returns.
		filtered := st.Exports().Filter(st.GlobalEnv(), st.ExportPolicy())
		acc = acc.Merge(filtered, st.MergeOrder())
		st.CacheModule(name, acc)
	}
	return acc, nil
}

// EvaluateModules evaluates a program: the head module is the entry point
// and every module in the list is importable from the pending table for
// the duration. The pending table in force before the call is restored
// afterwards.
func (ev *Evaluator) EvaluateModules(mods []*module.Module) (abstract.Value, error) {
	if len(mods) == 0 {
		return nil, &EmptyModuleListError{}
	}
	table := module.NewTable[*module.Module]()
	for _, m := range mods {
		table.Add(m.Name, m)
	}
	var value abstract.Value
	err := ev.state.WithPending(table, func() error {
		v, err := ev.EvaluateModule(mods[0])
		value = v
		return err
	})
	return value, err
}
