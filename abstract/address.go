package abstract

// Address identifies one cell in the Store. The concrete shape is supplied
// by the analysis through its Allocator; the engine treats addresses as
// opaque keys.
type Address string

// Allocator maps a source-level name to the store address its bindings
// occupy. Richer analyses may allocate per call site or per context; the
// engine only requires that allocation be deterministic within one run.
type Allocator interface {
	Alloc(name string) Address
}

// MonovariantAllocator allocates one address per name. All bindings of a
// name share a cell, merging every program path that writes it. This is
// the coarsest useful allocation and the engine default.
type MonovariantAllocator struct{}

// Alloc returns the address for name.
func (MonovariantAllocator) Alloc(name string) Address { return Address(name) }
