package jsonast

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDecodeTerm(t *testing.T) {
	doc := `{
		"kind": "program",
		"children": [
			{"kind": "decl", "text": "x", "children": [{"kind": "lit", "text": "1"}]},
			{"kind": "ref", "text": "x", "span": {"start_byte": 10, "end_byte": 11, "start_line": 2}}
		]
	}`

	tm, err := Decode(strings.NewReader(doc))
	if err != nil {
		t.Fatal(err)
	}
	if tm.Kind() != "program" || len(tm.Children()) != 2 {
		t.Fatalf("decoded %s with %d children; want program with 2", tm.Kind(), len(tm.Children()))
	}
	ref := tm.Children()[1]
	if ref.Text() != "x" {
		t.Errorf("ref text = %q; want x", ref.Text())
	}
	if sp := ref.Span(); sp.StartByte != 10 || sp.StartLine != 2 {
		t.Errorf("span = %+v; want start_byte 10, start_line 2", sp)
	}
}

func TestDecodeRejectsMissingKind(t *testing.T) {
	_, err := Decode(strings.NewReader(`{"text": "orphan"}`))
	if err == nil {
		t.Fatal("node without a kind accepted")
	}
}

func TestDecodeRejectsBadChild(t *testing.T) {
	_, err := Decode(strings.NewReader(`{"kind": "program", "children": [{"text": "nameless"}]}`))
	if err == nil || !strings.Contains(err.Error(), "child 0") {
		t.Fatalf("error = %v; want a child-position diagnostic", err)
	}
}

func TestDecodeModule(t *testing.T) {
	doc := `{
		"name": "lib",
		"exports": [{"name": "a", "alias": "x"}],
		"body": {"kind": "program", "children": [{"kind": "decl", "text": "a"}]}
	}`

	mod, err := DecodeModule(strings.NewReader(doc))
	if err != nil {
		t.Fatal(err)
	}
	if mod.Name != "lib" {
		t.Errorf("module name = %q; want lib", mod.Name)
	}
	if len(mod.Exports) != 1 || mod.Exports[0].External() != "x" {
		t.Errorf("exports = %v; want a as x", mod.Exports)
	}
	if mod.Body.Kind() != "program" {
		t.Errorf("body kind = %q; want program", mod.Body.Kind())
	}
}

func TestDecodeModuleRequiresNameAndBody(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{name: "no name", doc: `{"body": {"kind": "program"}}`},
		{name: "no body", doc: `{"name": "lib"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeModule(strings.NewReader(tt.doc)); err == nil {
				t.Fatal("malformed module document accepted")
			}
		})
	}
}

func TestLoadModule(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lib.json")
	content := `{"name": "lib", "body": {"kind": "program"}}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	mod, err := LoadModule(path)
	if err != nil {
		t.Fatal(err)
	}
	if mod.Path != path {
		t.Errorf("module path = %q; want %q", mod.Path, path)
	}

	if _, err := LoadModule(filepath.Join(dir, "missing.json")); err == nil {
		t.Fatal("missing file accepted")
	}
}
