package term

import "testing"

type node struct {
	kind string
	text string
	kids []Term
	span Span
}

func (n node) Kind() string     { return n.kind }
func (n node) Children() []Term { return n.kids }
func (n node) Text() string     { return n.text }
func (n node) Span() Span       { return n.span }

func TestDigestStructural(t *testing.T) {
	a := node{kind: "decl", text: "x", kids: []Term{node{kind: "lit", text: "1"}}}
	b := node{kind: "decl", text: "x", kids: []Term{node{kind: "lit", text: "1"}},
		span: Span{StartByte: 100, EndByte: 200}}

	if Digest(a) != Digest(b) {
		t.Error("span leaked into the term digest")
	}
}

func TestDigestDistinguishes(t *testing.T) {
	tests := []struct {
		name string
		a, b Term
	}{
		{
			name: "kind",
			a:    node{kind: "decl", text: "x"},
			b:    node{kind: "ref", text: "x"},
		},
		{
			name: "text",
			a:    node{kind: "lit", text: "1"},
			b:    node{kind: "lit", text: "2"},
		},
		{
			name: "children",
			a:    node{kind: "block"},
			b:    node{kind: "block", kids: []Term{node{kind: "lit"}}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if Digest(tt.a) == Digest(tt.b) {
				t.Error("different terms produced the same digest")
			}
		})
	}
}
