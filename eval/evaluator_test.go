package eval_test

import (
	"errors"
	"testing"

	"github.com/semafold/semafold/abstract"
	"github.com/semafold/semafold/analysis/scopes"
	"github.com/semafold/semafold/eval"
	"github.com/semafold/semafold/module"
	"github.com/semafold/semafold/term"
)

func TestIsolateRestores(t *testing.T) {
	tests := []struct {
		name string
		fail bool
	}{
		{name: "success"},
		{name: "failure", fail: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := eval.New(scopes.New(), eval.Options{})
			st := ev.State()
			st.SetGlobalEnv(abstract.NewEnvironment().Bind("keep", "addr-keep"))
			st.AddExport("keep", "", "")
			before := st.GlobalEnv()

			boom := errors.New("boom")
			err := ev.Isolate(func() error {
				if st.GlobalEnv().Len() != 0 {
					t.Error("global environment not reset inside isolate")
				}
				if len(st.Exports()) != 0 {
					t.Error("export set not reset inside isolate")
				}
				st.ModifyGlobalEnv(func(g *abstract.Environment) *abstract.Environment {
					return g.Bind("junk", "addr-junk")
				})
				st.AddExport("junk", "", "")
				if tt.fail {
					return boom
				}
				return nil
			})
			if tt.fail && !errors.Is(err, boom) {
				t.Fatalf("Isolate error = %v; want boom", err)
			}
			if !tt.fail && err != nil {
				t.Fatal(err)
			}

			if !st.GlobalEnv().Equal(before) {
				t.Error("global environment not restored after isolate")
			}
			if x := st.Exports(); len(x) != 1 || x[0].Name != "keep" {
				t.Errorf("export set = %v; want the caller's single export", x)
			}
		})
	}
}

// lazyProbe records which children the algebra forced.
type lazyProbe struct {
	forced []string
}

func (p *lazyProbe) AnalyzeTerm(ev *eval.Evaluator, n term.Node) (abstract.Value, error) {
	// Force only the first child; the rest must stay unevaluated.
	if len(n.Children) > 0 {
		if _, err := n.Children[0].Force(); err != nil {
			return nil, err
		}
	}
	p.forced = append(p.forced, n.Term.Kind()+":"+n.Term.Text())
	return scopes.Atom{Text: n.Term.Text()}, nil
}

func (p *lazyProbe) AnalyzeModule(ev *eval.Evaluator, m *module.Module, body *term.Subterm) (abstract.Value, error) {
	return body.Force()
}

func TestEvaluateTermForcesOnDemand(t *testing.T) {
	probe := &lazyProbe{}
	ev := eval.New(probe, eval.Options{})

	tree := prog(lit("first"), lit("second"), lit("third"))
	if _, err := ev.EvaluateTerm(tree); err != nil {
		t.Fatal(err)
	}

	want := []string{"lit:first", "program:"}
	if len(probe.forced) != len(want) {
		t.Fatalf("analyzed %v; want %v", probe.forced, want)
	}
	for i := range want {
		if probe.forced[i] != want[i] {
			t.Fatalf("analyzed %v; want %v", probe.forced, want)
		}
	}
}

func TestEvaluateTermMemoizesChildren(t *testing.T) {
	count := 0
	a := countingLeaves{hits: &count}
	ev := eval.New(a, eval.Options{})

	if _, err := ev.EvaluateTerm(prog(lit("x"))); err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Fatalf("leaf analyzed %d times despite repeated forcing; want 1", count)
	}
}

// countingLeaves forces its single child three times.
type countingLeaves struct {
	hits *int
}

func (c countingLeaves) AnalyzeTerm(ev *eval.Evaluator, n term.Node) (abstract.Value, error) {
	if n.Term.Kind() == "lit" {
		*c.hits++
		return scopes.Atom{Text: n.Term.Text()}, nil
	}
	for i := 0; i < 3; i++ {
		if _, err := n.Children[0].Force(); err != nil {
			return nil, err
		}
	}
	return scopes.Unit{}, nil
}

func (c countingLeaves) AnalyzeModule(ev *eval.Evaluator, m *module.Module, body *term.Subterm) (abstract.Value, error) {
	return body.Force()
}
