package parser

import (
	"iter"
	"regexp"
	"strings"

	"github.com/tacogips/swift-precompiled/internal/debug"
	"github.com/tacogips/swift-precompiled/internal/template/model"
)

var (
	// Pattern: precompileIncludeStr( "PATH" ) with single or double quotes.
	stringDirectivePattern = regexp.MustCompile(`precompileIncludeStr\s*\(\s*["']([^"']+)["']\s*\)`)

	// Pattern: precompileIncludeData( "PATH" ) with single or double quotes.
	binaryDirectivePattern = regexp.MustCompile(`precompileIncludeData\s*\(\s*["']([^"']+)["']\s*\)`)
)

// patternFor returns the compiled pattern for a directive kind.
func patternFor(kind model.DirectiveKind) *regexp.Regexp {
	switch kind {
	case model.KindString:
		return stringDirectivePattern
	case model.KindBinary:
		return binaryDirectivePattern
	default:
		return nil
	}
}

// Scanner extracts embed directives from source file content.
type Scanner interface {
	// Scan yields every directive in content. All string-kind matches come
	// first in textual order, followed by all binary-kind matches.
	Scan(path string, content []byte) iter.Seq[model.Directive]
}

// DirectiveScanner implements Scanner with the two fixed directive patterns.
type DirectiveScanner struct{}

// NewScanner creates a new DirectiveScanner.
func NewScanner() Scanner {
	return &DirectiveScanner{}
}

// Scan yields directives lazily, one kind pass at a time.
func (s *DirectiveScanner) Scan(path string, content []byte) iter.Seq[model.Directive] {
	return func(yield func(model.Directive) bool) {
		text := string(content)
		for _, kind := range model.Kinds {
			matches := patternFor(kind).FindAllStringSubmatchIndex(text, -1)
			debug.Debug("[parser] %s: %d %s directive(s)", path, len(matches), kind)

			for _, match := range matches {
				// match[0], match[1]: full match start, end
				// match[2], match[3]: quoted path start, end
				d := model.Directive{
					Kind:         kind,
					RawReference: text[match[2]:match[3]],
					SourceFile:   path,
					Line:         lineNumber(text, match[0]),
					Start:        match[0],
					End:          match[1],
				}
				if !yield(d) {
					return
				}
			}
		}
	}
}

// ScanAll collects every directive Scan yields.
func ScanAll(s Scanner, path string, content []byte) []model.Directive {
	var directives []model.Directive
	for d := range s.Scan(path, content) {
		directives = append(directives, d)
	}
	return directives
}

// lineNumber returns the 1-indexed line containing offset.
func lineNumber(text string, offset int) int {
	return strings.Count(text[:offset], "\n") + 1
}
