// Package term defines the generic term-evaluation protocol: an opaque
// recursive syntax node (Term), its structural decomposition into one level
// of children (Node), and the deferred child computation (Subterm) an
// analysis forces on demand. Front-end parsers supply Term implementations;
// the engine never inspects syntax beyond this interface.
package term

// Span locates a term in its source unit.
type Span struct {
	StartByte uint32
	EndByte   uint32
	StartLine uint32
	StartCol  uint32
	EndLine   uint32
	EndCol    uint32
}

// Term is one recursive node of parsed source syntax, independent of the
// front-end language that produced it.
type Term interface {
	// Kind returns the node's type tag (e.g. "decl", "ref", "block").
	Kind() string
	// Children returns the immediate children in source order.
	Children() []Term
	// Text returns the node's token text; empty for interior nodes.
	Text() string
	// Span returns the node's source location.
	Span() Span
}

// Node is one decomposed level of a term: the node itself plus every
// immediate child wrapped as a deferred Subterm. This is what an analysis
// algebra receives; it forces exactly the children it needs.
type Node struct {
	Term     Term
	Children []*Subterm
}

// Child returns the i'th child, or nil when out of range.
func (n Node) Child(i int) *Subterm {
	if i < 0 || i >= len(n.Children) {
		return nil
	}
	return n.Children[i]
}
