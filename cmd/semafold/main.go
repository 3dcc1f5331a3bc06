// Semafold CLI - runs the scope analysis over a project's term units and
// prints the evaluated module table.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"github.com/semafold/semafold/analysis"
	"github.com/semafold/semafold/analysis/scopes"
	"github.com/semafold/semafold/config"
	"github.com/semafold/semafold/eval"
	"github.com/semafold/semafold/frontend/jsonast"
	"github.com/semafold/semafold/module"
)

func main() {
	verbose := flag.Bool("v", false, "Verbose output")
	trace := flag.Bool("trace", false, "Trace every analyzed node (overrides semafold.toml)")
	dir := flag.String("C", ".", "Project directory (searched upward for semafold.toml)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: semafold [options]\n\n")
		fmt.Fprintf(os.Stderr, "Evaluates the term units listed in semafold.toml and prints each\n")
		fmt.Fprintf(os.Stderr, "module's exported bindings.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	verbosity := 0
	if *verbose {
		verbosity = 2
	}
	commonlog.Configure(verbosity, nil)

	if err := run(*dir, *trace); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(dir string, trace bool) error {
	cfg, err := config.FindAndLoad(dir)
	if err != nil {
		return err
	}
	if cfg == nil {
		return fmt.Errorf("no semafold.toml found from %s upward", dir)
	}
	if len(cfg.Modules.Units) == 0 {
		return fmt.Errorf("%s lists no modules", cfg.Dir)
	}

	mods, err := loadUnits(cfg)
	if err != nil {
		return err
	}

	exportPolicy, err := cfg.ExportPolicy()
	if err != nil {
		return err
	}
	mergeOrder, err := cfg.MergeOrder()
	if err != nil {
		return err
	}

	var a eval.Analysis = scopes.New()
	if trace || cfg.Trace.Enabled {
		a = analysis.Tracing(a, commonlog.GetLogger("semafold.analysis"))
	}

	value, final, err := eval.Run(a, mods, eval.Options{
		ExportPolicy: exportPolicy,
		MergeOrder:   mergeOrder,
	})
	if err != nil {
		return err
	}

	fmt.Printf("%s: %s\n", cfg.Project.Name, value)
	printModuleTable(final)
	return nil
}

// loadUnits reads every configured unit and places the entry module first.
func loadUnits(cfg *config.Config) ([]*module.Module, error) {
	var entry *module.Module
	var rest []*module.Module
	for _, u := range cfg.UnitPaths() {
		mod, err := jsonast.LoadModule(u.Path)
		if err != nil {
			return nil, err
		}
		if u.Name != "" {
			mod.Name = u.Name
		}
		if entry == nil && mod.Name == cfg.Modules.Entry {
			entry = mod
			continue
		}
		rest = append(rest, mod)
	}
	if entry == nil {
		return nil, fmt.Errorf("entry module %q not among the configured units", cfg.Modules.Entry)
	}
	return append([]*module.Module{entry}, rest...), nil
}

func printModuleTable(final eval.Final) {
	for _, name := range final.CachedModules.Names() {
		env, ok := final.CachedModules.First(name)
		if !ok {
			continue
		}
		fmt.Printf("module %s:\n", name)
		for _, b := range env.Pairs() {
			if set, ok := final.Store.Read(b.Addr); ok && set.Len() > 0 {
				fmt.Printf("  %s -> %s = %s\n", b.Name, b.Addr, set[0])
				continue
			}
			fmt.Printf("  %s -> %s\n", b.Name, b.Addr)
		}
	}
}
