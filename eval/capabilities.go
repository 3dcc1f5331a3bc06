package eval

import (
	"github.com/semafold/semafold/abstract"
	"github.com/semafold/semafold/module"
)

// Capability interfaces let an analysis declare exactly the state access
// it needs: a helper that only reads the store can accept StoreCapability
// instead of the whole State. *State satisfies all of them.

// GlobalEnvCapability is scoped access to the global environment.
type GlobalEnvCapability interface {
	GlobalEnv() *abstract.Environment
	SetGlobalEnv(*abstract.Environment)
	ModifyGlobalEnv(func(*abstract.Environment) *abstract.Environment)
}

// LocalEnvCapability is scoped access to the local environment.
type LocalEnvCapability interface {
	CurrentEnv() *abstract.Environment
	Locally(transform func(*abstract.Environment) *abstract.Environment, action func() error) error
}

// StoreCapability is access to the heap of abstract values.
type StoreCapability interface {
	Store() *abstract.Store
	SetStore(*abstract.Store)
	ModifyStore(func(*abstract.Store) *abstract.Store)
}

// ExportCapability is access to the current export set.
type ExportCapability interface {
	Exports() module.Exports
	SetExports(module.Exports)
	AddExport(name, alias string, addr abstract.Address)
}

// ModuleTableCapability is access to the pending and cached module tables.
type ModuleTableCapability interface {
	CachedModule(name string) (*abstract.Environment, bool)
	CacheModule(name string, env *abstract.Environment)
	CachedModules() *module.Table[*abstract.Environment]
	PendingModules() *module.Table[*module.Module]
	WithPending(table *module.Table[*module.Module], action func() error) error
}

// RootsCapability reports the live addresses at the current point of
// evaluation.
type RootsCapability interface {
	AskRoots() abstract.Roots
}

// AllocCapability maps names to store addresses.
type AllocCapability interface {
	Alloc(name string) abstract.Address
}

// Capabilities is the full capability set the engine provides.
type Capabilities interface {
	GlobalEnvCapability
	LocalEnvCapability
	StoreCapability
	ExportCapability
	ModuleTableCapability
	RootsCapability
	AllocCapability
}

var _ Capabilities = (*State)(nil)
