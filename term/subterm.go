package term

import "github.com/semafold/semafold/abstract"

// Subterm pairs a term with the deferred computation of its value. The
// computation runs at most once: the first Force caches the outcome and
// every later Force returns it without recomputation, so forcing is
// idempotent whether it succeeded or failed.
type Subterm struct {
	Term  Term
	force func() (abstract.Value, error)

	done  bool
	value abstract.Value
	err   error
}

// Defer wraps t with its deferred evaluation.
func Defer(t Term, force func() (abstract.Value, error)) *Subterm {
	return &Subterm{Term: t, force: force}
}

// Resolved wraps t with an already-computed value; Force returns it
// directly.
func Resolved(t Term, v abstract.Value) *Subterm {
	return &Subterm{Term: t, done: true, value: v}
}

// Force computes the subterm's value, memoizing on first call.
func (s *Subterm) Force() (abstract.Value, error) {
	if !s.done {
		s.value, s.err = s.force()
		s.done = true
		s.force = nil
	}
	return s.value, s.err
}

// Forced reports whether the deferred computation has already run.
func (s *Subterm) Forced() bool { return s.done }
