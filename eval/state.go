// Package eval is the evaluation engine: the capability state an analysis
// runs against, the generic term fold, module resolution and caching, the
// resumable module-evaluation signal, and the driver that executes an
// assembled stack to completion.
package eval

import (
	"github.com/semafold/semafold/abstract"
	"github.com/semafold/semafold/module"
	"github.com/semafold/semafold/term"
)

// State carries every capability the engine exposes: global and local
// environments, the store, the current export set, and the pending/cached
// module tables. Execution is single-threaded and cooperative; all
// "mutation" replaces a persistent value, so no partial update is ever
// observable and no locking is needed.
type State struct {
	globalEnv *abstract.Environment
	localEnv  *abstract.Environment
	store     *abstract.Store
	exports   module.Exports

	pending *module.Table[*module.Module]
	cache   *module.Table[*abstract.Environment]

	alloc        abstract.Allocator
	rootsFn      func() abstract.Roots
	exportPolicy module.ExportPolicy
	mergeOrder   abstract.MergeOrder
}

// NewState returns a fresh state honoring the given options.
func NewState(opts Options) *State {
	alloc := opts.Allocator
	if alloc == nil {
		alloc = abstract.MonovariantAllocator{}
	}
	return &State{
		globalEnv:    abstract.NewEnvironment(),
		localEnv:     abstract.NewEnvironment(),
		store:        abstract.NewStore(),
		pending:      module.NewTable[*module.Module](),
		cache:        module.NewTable[*abstract.Environment](),
		alloc:        alloc,
		exportPolicy: opts.ExportPolicy,
		mergeOrder:   opts.MergeOrder,
	}
}

// --- global environment ---

// GlobalEnv returns the global environment.
func (s *State) GlobalEnv() *abstract.Environment { return s.globalEnv }

// SetGlobalEnv replaces the global environment.
func (s *State) SetGlobalEnv(env *abstract.Environment) { s.globalEnv = env }

// ModifyGlobalEnv applies f to the global environment. Get-then-set, not
// atomic; execution is single-threaded.
func (s *State) ModifyGlobalEnv(f func(*abstract.Environment) *abstract.Environment) {
	s.globalEnv = f(s.globalEnv)
}

// --- local environment ---

// CurrentEnv returns the local environment.
func (s *State) CurrentEnv() *abstract.Environment { return s.localEnv }

// Locally runs action under the transformed local environment, restoring
// the previous one on every exit path.
func (s *State) Locally(transform func(*abstract.Environment) *abstract.Environment, action func() error) error {
	prev := s.localEnv
	if transform != nil {
		s.localEnv = transform(prev)
	}
	defer func() { s.localEnv = prev }()
	return action()
}

// --- store ---

// Store returns the store.
func (s *State) Store() *abstract.Store { return s.store }

// SetStore replaces the store.
func (s *State) SetStore(store *abstract.Store) { s.store = store }

// ModifyStore applies f to the store. Get-then-set, not atomic.
func (s *State) ModifyStore(f func(*abstract.Store) *abstract.Store) {
	s.store = f(s.store)
}

// --- exports ---

// Exports returns the current export set.
func (s *State) Exports() module.Exports { return s.exports }

// SetExports replaces the current export set.
func (s *State) SetExports(x module.Exports) { s.exports = x }

// AddExport records one exported name. An empty alias exports under the
// internal name; a non-empty addr binds the alias directly.
func (s *State) AddExport(name, alias string, addr abstract.Address) {
	s.exports = s.exports.Add(name, alias, addr)
}

// --- module tables ---

// CachedModule returns the cached environment for name, if evaluated.
func (s *State) CachedModule(name string) (*abstract.Environment, bool) {
	return s.cache.First(name)
}

// CacheModule writes the cache entry for name.
func (s *State) CacheModule(name string, env *abstract.Environment) {
	s.cache.Set(name, env)
}

// CachedModules returns the evaluated-module table: the authoritative
// name -> exported-environment resolution result.
func (s *State) CachedModules() *module.Table[*abstract.Environment] { return s.cache }

// PendingModules returns the table of unevaluated modules available for
// import.
func (s *State) PendingModules() *module.Table[*module.Module] { return s.pending }

// WithPending runs action with table installed as the pending-module
// table, restoring the previous table on every exit path.
func (s *State) WithPending(table *module.Table[*module.Module], action func() error) error {
	prev := s.pending
	s.pending = table
	defer func() { s.pending = prev }()
	return action()
}

// --- roots, allocation, policies ---

// AskRoots returns the addresses live at the current point of evaluation.
// Defaults to empty; richer analyses override via SetRootsProvider.
func (s *State) AskRoots() abstract.Roots {
	if s.rootsFn == nil {
		return abstract.NoRoots()
	}
	return s.rootsFn()
}

// SetRootsProvider overrides AskRoots.
func (s *State) SetRootsProvider(f func() abstract.Roots) { s.rootsFn = f }

// Alloc maps a name to its store address using the configured allocator.
func (s *State) Alloc(name string) abstract.Address { return s.alloc.Alloc(name) }

// ExportPolicy returns the configured empty-export policy.
func (s *State) ExportPolicy() module.ExportPolicy { return s.exportPolicy }

// MergeOrder returns the configured collision policy for environment
// merges.
func (s *State) MergeOrder() abstract.MergeOrder { return s.mergeOrder }

// Configuration composes the complete description of the current
// evaluation state at t.
func (s *State) Configuration(t term.Term) Configuration {
	return Configuration{
		Term:  t,
		Roots: s.AskRoots(),
		Env:   s.localEnv,
		Store: s.store,
	}
}
