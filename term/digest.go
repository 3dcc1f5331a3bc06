package term

import (
	"crypto/sha256"
	"encoding/binary"
)

// Digest computes the SHA-256 content hash of a term's structure: kind,
// token text and children, recursively. Spans are excluded, so the same
// fragment parsed at two locations hashes identically.
func Digest(t Term) [32]byte {
	h := sha256.New()
	writeTerm(h, t)
	var out [32]byte
	h.Sum(out[:0])
	return out
}

type hashWriter interface {
	Write(p []byte) (int, error)
}

func writeTerm(h hashWriter, t Term) {
	writeString(h, t.Kind())
	writeString(h, t.Text())
	kids := t.Children()
	var n [4]byte
	binary.BigEndian.PutUint32(n[:], uint32(len(kids)))
	h.Write(n[:])
	for _, k := range kids {
		writeTerm(h, k)
	}
}

func writeString(h hashWriter, s string) {
	var n [4]byte
	binary.BigEndian.PutUint32(n[:], uint32(len(s)))
	h.Write(n[:])
	h.Write([]byte(s))
}
