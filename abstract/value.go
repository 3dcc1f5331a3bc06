// Package abstract provides the value, environment and store primitives the
// evaluation engine threads through an analysis: persistent name-to-address
// environments with scoped overrides, an address-to-value-set heap, and
// canonical digests over them for state deduplication.
package abstract

// Value is the abstract domain an analysis computes. The engine is generic
// over it: it only compares values for equality (value-set membership) and
// renders them (fingerprints, diagnostics).
type Value interface {
	// Kind returns a short tag identifying the domain variant.
	Kind() string
	// Equal reports whether two abstract values are indistinguishable.
	Equal(other Value) bool
	// String renders the value for fingerprints and diagnostics.
	String() string
}

// ValueSet is a set of abstract values held at one address. Multiple values
// at one address represent merged program paths. ValueSets are persistent:
// Insert and Union return new sets and never mutate their operands.
type ValueSet []Value

// Contains reports whether the set holds a value equal to v.
func (s ValueSet) Contains(v Value) bool {
	for _, m := range s {
		if m.Equal(v) {
			return true
		}
	}
	return false
}

// Insert returns a set additionally containing v. The receiver is unchanged;
// inserting an already-present value returns the receiver.
func (s ValueSet) Insert(v Value) ValueSet {
	if s.Contains(v) {
		return s
	}
	out := make(ValueSet, len(s), len(s)+1)
	copy(out, s)
	return append(out, v)
}

// Union returns the union of both sets, preserving the receiver's order.
func (s ValueSet) Union(o ValueSet) ValueSet {
	out := s
	for _, v := range o {
		out = out.Insert(v)
	}
	return out
}

// Len returns the number of distinct values in the set.
func (s ValueSet) Len() int { return len(s) }
