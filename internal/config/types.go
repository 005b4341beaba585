package config

import (
	"os"
	"path/filepath"

	"github.com/tacogips/swift-precompiled/internal/debug"
	"github.com/tacogips/swift-precompiled/internal/template/model"
)

// Config represents a swift-precompiled configuration file.
type Config struct {
	// Dirs lists source roots to scan. When non-empty it replaces the
	// directory given on the command line.
	Dirs []string `toml:"dirs" yaml:"dirs"`
	// PathAliases maps literal tokens to replacement paths, in declaration order.
	PathAliases []model.AliasEntry `toml:"-" yaml:"-"`
	// Include selects candidate source files within each root (glob syntax).
	Include []string `toml:"include,omitempty" yaml:"include,omitempty"`
	// Exclude rejects candidate files selected by Include (glob syntax).
	Exclude []string `toml:"exclude,omitempty" yaml:"exclude,omitempty"`
	// Template is an optional path to a custom output template.
	Template string `toml:"template,omitempty" yaml:"template,omitempty"`
}

// IncludePatterns returns Include, or the default source pattern when unset.
func (c *Config) IncludePatterns() []string {
	if len(c.Include) == 0 {
		return []string{model.DefaultSourcePattern}
	}
	return c.Include
}

// Format identifies a configuration file syntax.
type Format int

const (
	// FormatTOML is the default configuration syntax.
	FormatTOML Format = iota
	// FormatYAML is selected by a .yaml or .yml extension.
	FormatYAML
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	default:
		return "toml"
	}
}

// RootDirs returns Dirs made absolute against cwd, keeping only entries
// that are existing directories.
func (c *Config) RootDirs(cwd string) []string {
	var roots []string
	for _, dir := range c.Dirs {
		abs := dir
		if !filepath.IsAbs(abs) {
			abs = filepath.Join(cwd, abs)
		}
		abs = filepath.Clean(abs)
		info, err := os.Stat(abs)
		if err != nil || !info.IsDir() {
			debug.Debug("[config] Skipping dirs entry %q: not a directory", dir)
			continue
		}
		roots = append(roots, abs)
	}
	return roots
}

// ResolveTemplate returns the template path made absolute against the
// directory holding the configuration file.
func (c *Config) ResolveTemplate(configPath string) string {
	if c.Template == "" || filepath.IsAbs(c.Template) {
		return c.Template
	}
	return filepath.Join(filepath.Dir(configPath), c.Template)
}
