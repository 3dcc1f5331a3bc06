package eval

import (
	"github.com/semafold/semafold/abstract"
	"github.com/semafold/semafold/term"
)

// Configuration is an immutable snapshot of one evaluation state: the term
// under evaluation, the live roots, the local environment and the store.
// It is the unit of comparison for state deduplication in higher-level
// fixpoint analyses; the engine itself never compares configurations.
type Configuration struct {
	Term  term.Term
	Roots abstract.Roots
	Env   *abstract.Environment
	Store *abstract.Store
}

// Fingerprint returns the SHA-256 hash of the configuration's canonical
// CBOR projection. Equal snapshots produce equal fingerprints across
// runs.
func (c Configuration) Fingerprint() ([32]byte, error) {
	td := term.Digest(c.Term)
	proj := struct {
		Term  []byte              `cbor:"term"`
		Roots []string            `cbor:"roots"`
		Env   map[string]string   `cbor:"env"`
		Store map[string][]string `cbor:"store"`
	}{
		Term:  td[:],
		Roots: c.Roots.Digestible(),
		Env:   c.Env.Digestible(),
		Store: c.Store.Digestible(),
	}
	return abstract.Digest(proj)
}
