package parser

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/tacogips/swift-precompiled/internal/debug"
	"github.com/tacogips/swift-precompiled/internal/template/model"
)

// AliasTable holds the configured alias tokens in declaration order.
type AliasTable struct {
	entries []model.AliasEntry
}

// NewAliasTable creates an AliasTable from configured entries.
func NewAliasTable(entries []model.AliasEntry) *AliasTable {
	return &AliasTable{entries: entries}
}

// Substitution replaces Token with the absolute path Path.
type Substitution struct {
	Token string
	Path  string
}

// Substitutions is an ordered list of alias replacements bound to one scan root.
type Substitutions []Substitution

// Bind resolves every alias target against baseDir.
// Absolute targets are cleaned; relative targets are joined to baseDir.
// Aliases whose target does not exist are dropped without error.
func (t *AliasTable) Bind(baseDir string) Substitutions {
	subs := make(Substitutions, 0, len(t.entries))
	for _, entry := range t.entries {
		target := entry.Target
		if filepath.IsAbs(target) {
			target = filepath.Clean(target)
		} else {
			target = filepath.Join(baseDir, target)
		}

		if _, err := os.Stat(target); err != nil {
			debug.Debug("[parser] Alias %s ignored: %s does not exist", entry.Token, target)
			continue
		}

		subs = append(subs, Substitution{Token: entry.Token, Path: target})
	}
	return subs
}

// Apply replaces every occurrence of each token in raw, one alias at a time
// in declaration order.
func (s Substitutions) Apply(raw string) string {
	for _, sub := range s {
		raw = strings.ReplaceAll(raw, sub.Token, sub.Path)
	}
	return raw
}
