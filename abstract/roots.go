package abstract

import "sort"

// Roots is the set of addresses reachable from the current point of
// evaluation. The engine defaults to no roots; analyses that track
// reachability (for store GC or precision) override AskRoots.
type Roots map[Address]struct{}

// NoRoots returns the empty root set.
func NoRoots() Roots { return Roots{} }

// Insert returns a root set additionally containing addr. The receiver is
// unchanged.
func (r Roots) Insert(addr Address) Roots {
	out := make(Roots, len(r)+1)
	for a := range r {
		out[a] = struct{}{}
	}
	out[addr] = struct{}{}
	return out
}

// Contains reports whether addr is live.
func (r Roots) Contains(addr Address) bool {
	_, ok := r[addr]
	return ok
}

// Addresses returns the live addresses, sorted.
func (r Roots) Addresses() []Address {
	addrs := make([]Address, 0, len(r))
	for a := range r {
		addrs = append(addrs, a)
	}
	sort.Slice(addrs, func(i, j int) bool { return addrs[i] < addrs[j] })
	return addrs
}
