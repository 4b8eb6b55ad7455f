// Package config loads parsekit settings from YAML.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/dhamidi/parsekit/grammars/arith"
	"github.com/tliron/commonlog"
	"gopkg.in/yaml.v3"
)

// File names Find looks for, in order.
const (
	FileName       = "parsekit.yaml"
	HiddenFileName = ".parsekit.yaml"
)

// ErrNotFound is returned by Find when no configuration file exists.
var ErrNotFound = errors.New("config: no configuration file found")

var log = commonlog.GetLogger("parsekit.config")

type Config struct {
	Log      Log       `yaml:"log"`
	Color    string    `yaml:"color"`
	Trace    bool      `yaml:"trace"`
	Arith    Arith     `yaml:"arith"`
	Grammars []Grammar `yaml:"grammars"`

	// directory grammar files are relative to
	dir string
}

type Log struct {
	Verbosity int    `yaml:"verbosity"`
	File      string `yaml:"file"`
}

type Arith struct {
	MaxDepth int `yaml:"max_depth"`
}

// Grammar describes an EBNF grammar known to the CLI and language server.
type Grammar struct {
	Name  string `yaml:"name"`
	File  string `yaml:"file"`
	Start string `yaml:"start"`
	// Skip is a regular expression matched before tokens; empty means
	// whitespace.
	Skip       string   `yaml:"skip"`
	Extensions []string `yaml:"extensions"`
}

// Default returns the settings used when there is no configuration file.
func Default() *Config {
	return &Config{
		Color: "auto",
		Arith: Arith{MaxDepth: arith.DefaultMaxDepth},
		dir:   ".",
	}
}

// Parse decodes YAML on top of the defaults and validates the result.
// Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	c := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Load reads and parses the configuration file at path. Grammar files are
// resolved relative to the directory containing it.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	c.dir = filepath.Dir(path)

	log.Debugf("loaded configuration from %s", path)
	return c, nil
}

// Find looks for a configuration file in dir and its parents.
func Find(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	for {
		for _, name := range []string{FileName, HiddenFileName} {
			candidate := filepath.Join(dir, name)
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
				return candidate, nil
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrNotFound
		}
		dir = parent
	}
}

// Validate reports every problem with c.
func (c *Config) Validate() error {
	var errs []error

	switch c.Color {
	case "auto", "always", "never":
	default:
		errs = append(errs, fmt.Errorf("color must be auto, always or never, got %q", c.Color))
	}

	if c.Arith.MaxDepth <= 0 {
		errs = append(errs, fmt.Errorf("arith.max_depth must be positive, got %d", c.Arith.MaxDepth))
	}

	seen := make(map[string]bool)
	for i, g := range c.Grammars {
		switch {
		case g.Name == "":
			errs = append(errs, fmt.Errorf("grammars[%d]: name is required", i))
		case seen[g.Name]:
			errs = append(errs, fmt.Errorf("grammars[%d]: duplicate name %q", i, g.Name))
		}
		seen[g.Name] = true

		if g.File == "" {
			errs = append(errs, fmt.Errorf("grammars[%d]: file is required", i))
		}
		if g.Start == "" {
			errs = append(errs, fmt.Errorf("grammars[%d]: start is required", i))
		}
		for _, ext := range g.Extensions {
			if !strings.HasPrefix(ext, ".") {
				errs = append(errs, fmt.Errorf("grammars[%d]: extension %q must start with a dot", i, ext))
			}
		}
	}

	return errors.Join(errs...)
}

// Grammar returns the grammar with the given name.
func (c *Config) Grammar(name string) (Grammar, bool) {
	i := slices.IndexFunc(c.Grammars, func(g Grammar) bool { return g.Name == name })
	if i < 0 {
		return Grammar{}, false
	}
	return c.Grammars[i], true
}

// GrammarFor returns the first grammar registered for the extension of
// filename.
func (c *Config) GrammarFor(filename string) (Grammar, bool) {
	ext := filepath.Ext(filename)
	if ext == "" {
		return Grammar{}, false
	}
	for _, g := range c.Grammars {
		if slices.Contains(g.Extensions, ext) {
			return g, true
		}
	}
	return Grammar{}, false
}

// Path resolves the grammar file of g.
func (c *Config) Path(g Grammar) string {
	if filepath.IsAbs(g.File) {
		return g.File
	}
	return filepath.Join(c.dir, g.File)
}

// LogFile returns the configured log file, or nil for standard error.
func (c *Config) LogFile() *string {
	if c.Log.File == "" {
		return nil
	}
	return &c.Log.File
}
