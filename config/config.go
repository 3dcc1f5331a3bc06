// Package config handles semafold.toml project configuration: which term
// units make up the program and which engine policies apply.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/semafold/semafold/abstract"
	"github.com/semafold/semafold/module"
)

// Config represents a semafold.toml project configuration.
type Config struct {
	Project Project `toml:"project"`
	Modules Modules `toml:"modules"`
	Policy  Policy  `toml:"policy"`
	Trace   Trace   `toml:"trace"`

	// Dir is the directory containing the semafold.toml file (set at
	// load time).
	Dir string `toml:"-"`
}

// Project contains project metadata.
type Project struct {
	Name string `toml:"name"`
}

// Modules lists the program's term units.
type Modules struct {
	// Entry names the entry-point unit; defaults to the first unit.
	Entry string `toml:"entry"`
	Units []Unit `toml:"unit"`
}

// Unit is one named term document.
type Unit struct {
	Name string `toml:"name"`
	Path string `toml:"path"`
}

// Policy configures the engine's explicit ambiguity points.
type Policy struct {
	// Exports: "all" (empty export set exposes everything, the default)
	// or "none".
	Exports string `toml:"exports"`
	// Merge: "last-wins" (default) or "first-wins" for same-named
	// module candidates and environment merges.
	Merge string `toml:"merge"`
}

// Trace configures analysis tracing.
type Trace struct {
	Enabled bool `toml:"enabled"`
}

// Load parses a semafold.toml file from the given directory.
func Load(dir string) (*Config, error) {
	path := filepath.Join(dir, "semafold.toml")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	var c Config
	if err := toml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse error in %s: %w", path, err)
	}

	c.Dir, err = filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve path %s: %w", dir, err)
	}

	// Defaults
	if c.Policy.Exports == "" {
		c.Policy.Exports = "all"
	}
	if c.Policy.Merge == "" {
		c.Policy.Merge = "last-wins"
	}
	if c.Modules.Entry == "" && len(c.Modules.Units) > 0 {
		c.Modules.Entry = c.Modules.Units[0].Name
	}

	if _, err := c.ExportPolicy(); err != nil {
		return nil, err
	}
	if _, err := c.MergeOrder(); err != nil {
		return nil, err
	}
	return &c, nil
}

// FindAndLoad walks up from startDir to find a semafold.toml file, then
// loads and returns the config. Returns nil if none is found.
func FindAndLoad(startDir string) (*Config, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, err
	}

	for {
		path := filepath.Join(dir, "semafold.toml")
		if _, err := os.Stat(path); err == nil {
			return Load(dir)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root
			return nil, nil
		}
		dir = parent
	}
}

// ExportPolicy returns the configured empty-export policy.
func (c *Config) ExportPolicy() (module.ExportPolicy, error) {
	switch c.Policy.Exports {
	case "all":
		return module.ExportAll, nil
	case "none":
		return module.ExportNone, nil
	default:
		return 0, fmt.Errorf("unknown exports policy %q (want \"all\" or \"none\")", c.Policy.Exports)
	}
}

// MergeOrder returns the configured merge collision policy.
func (c *Config) MergeOrder() (abstract.MergeOrder, error) {
	switch c.Policy.Merge {
	case "last-wins":
		return abstract.LastWins, nil
	case "first-wins":
		return abstract.FirstWins, nil
	default:
		return 0, fmt.Errorf("unknown merge policy %q (want \"last-wins\" or \"first-wins\")", c.Policy.Merge)
	}
}

// UnitPaths returns absolute paths for the configured units, in order.
func (c *Config) UnitPaths() []Unit {
	out := make([]Unit, len(c.Modules.Units))
	for i, u := range c.Modules.Units {
		p := u.Path
		if !filepath.IsAbs(p) {
			p = filepath.Join(c.Dir, p)
		}
		out[i] = Unit{Name: u.Name, Path: p}
	}
	return out
}
