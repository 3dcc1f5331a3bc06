package abstract

import "sort"

// ---------------------------------------------------------------------------
// Store: persistent address -> value-set heap
// ---------------------------------------------------------------------------

// Store maps addresses to sets of abstract values. Stores are persistent:
// Write returns a new store and never mutates the receiver, so no partial
// update is ever observable mid-step.
type Store struct {
	cells map[Address]ValueSet
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{cells: map[Address]ValueSet{}}
}

// Write returns a store in which v has been merged into the value set at
// addr. The receiver is unchanged.
func (s *Store) Write(addr Address, v Value) *Store {
	cells := make(map[Address]ValueSet, len(s.cells)+1)
	for a, set := range s.cells {
		cells[a] = set
	}
	cells[addr] = cells[addr].Insert(v)
	return &Store{cells: cells}
}

// Read returns the value set at addr.
func (s *Store) Read(addr Address) (ValueSet, bool) {
	set, ok := s.cells[addr]
	return set, ok
}

// Addresses returns every allocated address, sorted.
func (s *Store) Addresses() []Address {
	addrs := make([]Address, 0, len(s.cells))
	for a := range s.cells {
		addrs = append(addrs, a)
	}
	sort.Slice(addrs, func(i, j int) bool { return addrs[i] < addrs[j] })
	return addrs
}

// Len returns the number of allocated addresses.
func (s *Store) Len() int { return len(s.cells) }
