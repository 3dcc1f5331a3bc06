// Package treesitter adapts tree-sitter parse trees to engine terms. The
// surrounding system links whatever grammars it analyzes; this adapter
// only needs the tree and its source bytes. Decomposition follows named
// children, which is what symbol extraction cares about.
package treesitter

import (
	tree_sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/semafold/semafold/module"
	"github.com/semafold/semafold/term"
)

// Term wraps one tree-sitter node.
type Term struct {
	node   *tree_sitter.Node
	source []byte
}

var _ term.Term = (*Term)(nil)

// Wrap adapts a node and the source it was parsed from.
func Wrap(node *tree_sitter.Node, source []byte) *Term {
	return &Term{node: node, source: source}
}

// FromTree adapts a whole parse tree.
func FromTree(tree *tree_sitter.Tree, source []byte) *Term {
	return Wrap(tree.RootNode(), source)
}

// ModuleFromTree wraps a parse tree as a named module.
func ModuleFromTree(name string, tree *tree_sitter.Tree, source []byte) *module.Module {
	return module.New(name, FromTree(tree, source))
}

// Kind returns the grammar's node kind.
func (t *Term) Kind() string { return t.node.Kind() }

// Children returns the named children in source order.
func (t *Term) Children() []term.Term {
	n := t.node.NamedChildCount()
	out := make([]term.Term, 0, n)
	for i := uint(0); i < n; i++ {
		kid := t.node.NamedChild(i)
		if kid == nil {
			continue
		}
		out = append(out, &Term{node: kid, source: t.source})
	}
	return out
}

// Text returns the node's source text for leaves; interior nodes yield
// empty text, matching the engine convention that names live on leaves.
func (t *Term) Text() string {
	if t.node.NamedChildCount() > 0 {
		return ""
	}
	return t.node.Utf8Text(t.source)
}

// Span returns the node's byte and line/column extent.
func (t *Term) Span() term.Span {
	return spanOf(t.node.StartByte(), t.node.EndByte(), t.node.StartPosition(), t.node.EndPosition())
}

func spanOf(startByte, endByte uint, start, end tree_sitter.Point) term.Span {
	return term.Span{
		StartByte: uint32(startByte),
		EndByte:   uint32(endByte),
		StartLine: uint32(start.Row),
		StartCol:  uint32(start.Column),
		EndLine:   uint32(end.Row),
		EndCol:    uint32(end.Column),
	}
}
