// Package jsonast decodes JSON term documents into engine terms. It is the
// front end used by fixtures, tests and the CLI: any parser able to dump
// its tree as {"kind", "text", "span", "children"} objects can feed the
// engine without linking against it.
package jsonast

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/semafold/semafold/module"
	"github.com/semafold/semafold/term"
)

// Term is a decoded JSON syntax node.
type Term struct {
	kind     string
	text     string
	span     term.Span
	children []term.Term
}

var _ term.Term = (*Term)(nil)

// Kind returns the node's type tag.
func (t *Term) Kind() string { return t.kind }

// Children returns the immediate children in document order.
func (t *Term) Children() []term.Term { return t.children }

// Text returns the node's token text.
func (t *Term) Text() string { return t.text }

// Span returns the node's source location.
func (t *Term) Span() term.Span { return t.span }

// New builds a term directly, for tests and lowering code.
func New(kind, text string, children ...term.Term) *Term {
	return &Term{kind: kind, text: text, children: children}
}

type termDoc struct {
	Kind     string    `json:"kind"`
	Text     string    `json:"text"`
	Span     *spanDoc  `json:"span"`
	Children []termDoc `json:"children"`
}

type spanDoc struct {
	StartByte uint32 `json:"start_byte"`
	EndByte   uint32 `json:"end_byte"`
	StartLine uint32 `json:"start_line"`
	StartCol  uint32 `json:"start_col"`
	EndLine   uint32 `json:"end_line"`
	EndCol    uint32 `json:"end_col"`
}

type moduleDoc struct {
	Name    string      `json:"name"`
	Exports []exportDoc `json:"exports"`
	Body    *termDoc    `json:"body"`
}

type exportDoc struct {
	Name  string `json:"name"`
	Alias string `json:"alias"`
}

// Decode reads one term document.
func Decode(r io.Reader) (term.Term, error) {
	var doc termDoc
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("jsonast: decode term: %w", err)
	}
	return build(doc)
}

// DecodeModule reads a module document: a named body plus an optional
// declared export surface.
func DecodeModule(r io.Reader) (*module.Module, error) {
	var doc moduleDoc
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("jsonast: decode module: %w", err)
	}
	if doc.Name == "" {
		return nil, fmt.Errorf("jsonast: module document has no name")
	}
	if doc.Body == nil {
		return nil, fmt.Errorf("jsonast: module %q has no body", doc.Name)
	}
	body, err := build(*doc.Body)
	if err != nil {
		return nil, fmt.Errorf("jsonast: module %q: %w", doc.Name, err)
	}
	mod := module.New(doc.Name, body)
	for _, x := range doc.Exports {
		mod.Exports = mod.Exports.Add(x.Name, x.Alias, "")
	}
	return mod, nil
}

// LoadModule reads a module document from path.
func LoadModule(path string) (*module.Module, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("jsonast: %w", err)
	}
	defer f.Close()
	mod, err := DecodeModule(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	mod.Path = path
	return mod, nil
}

func build(doc termDoc) (*Term, error) {
	if doc.Kind == "" {
		return nil, fmt.Errorf("node has no kind")
	}
	t := &Term{kind: doc.Kind, text: doc.Text}
	if doc.Span != nil {
		t.span = term.Span{
			StartByte: doc.Span.StartByte,
			EndByte:   doc.Span.EndByte,
			StartLine: doc.Span.StartLine,
			StartCol:  doc.Span.StartCol,
			EndLine:   doc.Span.EndLine,
			EndCol:    doc.Span.EndCol,
		}
	}
	for i, kid := range doc.Children {
		built, err := build(kid)
		if err != nil {
			return nil, fmt.Errorf("child %d of %s: %w", i, doc.Kind, err)
		}
		t.children = append(t.children, built)
	}
	return t, nil
}
