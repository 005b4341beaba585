package provider

import (
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/tacogips/swift-precompiled/internal/debug"
)

// MatchesPattern reports whether a slash-separated relative path matches a
// doublestar glob. Patterns without a slash also match the base name, so
// "*.swift" selects files at any depth.
func MatchesPattern(relPath, pattern string) bool {
	relPath = filepath.ToSlash(relPath)
	pattern = filepath.ToSlash(pattern)

	if matched, err := doublestar.Match(pattern, relPath); err == nil && matched {
		return true
	}

	if !strings.Contains(pattern, "/") {
		if matched, err := doublestar.Match(pattern, filepath.Base(relPath)); err == nil && matched {
			return true
		}
	}

	return false
}

// MatchesAny reports whether relPath matches at least one pattern.
func MatchesAny(relPath string, patterns []string) bool {
	for _, pattern := range patterns {
		if MatchesPattern(relPath, pattern) {
			return true
		}
	}
	return false
}

// ShouldIncludeFile reports whether relPath is selected by include and not
// rejected by exclude.
func ShouldIncludeFile(relPath string, include, exclude []string) bool {
	if !MatchesAny(relPath, include) {
		return false
	}
	for _, pattern := range exclude {
		if MatchesPattern(relPath, pattern) {
			debug.Debug("[provider] Excluding file: %s (matched pattern: %s)", relPath, pattern)
			return false
		}
	}
	return true
}

// ValidatePatterns returns an error for the first malformed pattern.
func ValidatePatterns(provider string, patterns []string) error {
	for _, pattern := range patterns {
		if !doublestar.ValidatePattern(filepath.ToSlash(pattern)) {
			return NewInvalidPatternError(provider, pattern)
		}
	}
	return nil
}
