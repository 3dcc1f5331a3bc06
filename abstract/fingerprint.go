package abstract

import (
	"crypto/sha256"
	"fmt"
	"sort"

	"github.com/fxamacker/cbor/v2"
)

// Canonical CBOR gives deterministic encodings, so equal states produce
// equal fingerprints across runs.
var cborEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("abstract: failed to create CBOR enc mode: %v", err))
	}
	cborEncMode = em
}

// MarshalCanonical serializes v to canonical CBOR bytes.
func MarshalCanonical(v any) ([]byte, error) {
	return cborEncMode.Marshal(v)
}

// Digest returns the SHA-256 hash of v's canonical CBOR encoding.
func Digest(v any) ([32]byte, error) {
	data, err := MarshalCanonical(v)
	if err != nil {
		return [32]byte{}, fmt.Errorf("abstract: digest: %w", err)
	}
	return sha256.Sum256(data), nil
}

// Digestible returns a stable projection of the environment's visible
// bindings, suitable for canonical encoding.
func (e *Environment) Digestible() map[string]string {
	out := make(map[string]string, e.Len())
	for _, b := range e.Pairs() {
		out[b.Name] = string(b.Addr)
	}
	return out
}

// Digestible returns a stable projection of the store: each cell's values
// rendered and sorted.
func (s *Store) Digestible() map[string][]string {
	out := make(map[string][]string, len(s.cells))
	for addr, set := range s.cells {
		rendered := make([]string, set.Len())
		for i, v := range set {
			rendered[i] = v.Kind() + ":" + v.String()
		}
		sort.Strings(rendered)
		out[string(addr)] = rendered
	}
	return out
}

// Digestible returns the sorted live addresses.
func (r Roots) Digestible() []string {
	addrs := r.Addresses()
	out := make([]string, len(addrs))
	for i, a := range addrs {
		out[i] = string(a)
	}
	return out
}
