package module

import (
	"testing"

	"github.com/semafold/semafold/abstract"
)

func TestFilterDeclaredExports(t *testing.T) {
	env := abstract.NewEnvironment().
		Bind("a", "addr-a").
		Bind("b", "addr-b").
		Bind("c", "addr-c")
	exports := Exports{}.Add("a", "x", "")

	out := exports.Filter(env, ExportAll)
	if out.Len() != 1 {
		t.Fatalf("filtered environment has %d names; want 1", out.Len())
	}
	if addr, ok := out.Lookup("x"); !ok || addr != "addr-a" {
		t.Fatalf("Lookup(x) = %q, %v; want addr-a", addr, ok)
	}
	if _, ok := out.Lookup("b"); ok {
		t.Fatal("unexported name leaked through the filter")
	}
}

func TestFilterEmptyExportsPolicy(t *testing.T) {
	env := abstract.NewEnvironment().Bind("a", "1").Bind("b", "2")

	tests := []struct {
		name   string
		policy ExportPolicy
		want   int
	}{
		{name: "all", policy: ExportAll, want: 2},
		{name: "none", policy: ExportNone, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Exports{}.Filter(env, tt.policy)
			if out.Len() != tt.want {
				t.Errorf("filtered environment has %d names; want %d", out.Len(), tt.want)
			}
		})
	}
}

func TestFilterExportWithOwnAddress(t *testing.T) {
	env := abstract.NewEnvironment().Bind("a", "addr-a")
	exports := Exports{}.
		Add("a", "", "").
		Add("extra", "", "addr-extra") // defined by the export itself

	out := exports.Filter(env, ExportNone)
	if addr, _ := out.Lookup("a"); addr != "addr-a" {
		t.Errorf("Lookup(a) = %q; want addr-a", addr)
	}
	if addr, _ := out.Lookup("extra"); addr != "addr-extra" {
		t.Errorf("Lookup(extra) = %q; want addr-extra", addr)
	}
}

func TestEntryExternal(t *testing.T) {
	if got := (Entry{Name: "a"}).External(); got != "a" {
		t.Errorf("External = %q; want a", got)
	}
	if got := (Entry{Name: "a", Alias: "x"}).External(); got != "x" {
		t.Errorf("External = %q; want x", got)
	}
}
