package model

// Default file names used by swift-precompiled.
const (
	// DefaultOutputFile is the generated Swift file written by precompile.
	DefaultOutputFile = "./Precompiled.swift"
	// DefaultConfigFile is the configuration file read by precompile and written by init.
	DefaultConfigFile = "./swift-precompiled.toml"
	// DefaultSourceDir is the scan root used when neither the CLI nor the config names one.
	DefaultSourceDir = "./"
	// DefaultSourcePattern selects candidate source files within a scan root.
	DefaultSourcePattern = "**/*.swift"
)

// DirectiveKind identifies which of the two embed directives was matched.
type DirectiveKind int

const (
	// KindString represents precompileIncludeStr("PATH").
	KindString DirectiveKind = iota
	// KindBinary represents precompileIncludeData("PATH").
	KindBinary
)

// Kinds lists every directive kind in scan order.
var Kinds = []DirectiveKind{KindString, KindBinary}

// String returns the string representation of the directive kind.
func (k DirectiveKind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindBinary:
		return "binary"
	default:
		return "unknown"
	}
}

// CallName returns the Swift function name that introduces the directive.
func (k DirectiveKind) CallName() string {
	switch k {
	case KindString:
		return "precompileIncludeStr"
	case KindBinary:
		return "precompileIncludeData"
	default:
		return ""
	}
}

// Marker returns the template line that anchors generated entries for the kind.
func (k DirectiveKind) Marker() string {
	switch k {
	case KindString:
		return "// <precompile-content-str>"
	case KindBinary:
		return "// <precompile-content-data>"
	default:
		return ""
	}
}

// Directive is one discovered embed request in a source file.
type Directive struct {
	// Kind is the directive form that matched.
	Kind DirectiveKind
	// RawReference is the quoted path text exactly as written in source.
	RawReference string
	// SourceFile is the absolute path of the file containing the directive.
	SourceFile string
	// Line is the 1-indexed line of the match start.
	Line int
	// Start is the byte offset of the match start in the file content.
	Start int
	// End is the byte offset of the match end (exclusive).
	End int
}

// AliasEntry maps an alias token to a target path.
// The target may be relative (to the scan root) or absolute.
type AliasEntry struct {
	// Token is the substring replaced in raw references.
	Token string
	// Target is the configured path the token stands for.
	Target string
}

// ResolvedReference is a directive together with the file it points at.
type ResolvedReference struct {
	// Directive is the directive the path was resolved from.
	Directive Directive
	// Path is the absolute, normalized path of the referenced file.
	Path string
}
