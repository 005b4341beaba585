package generator

import (
	"fmt"
	"strings"

	"github.com/tacogips/swift-precompiled/internal/debug"
	"github.com/tacogips/swift-precompiled/internal/template/model"
)

// RewriterState tracks the lifecycle of a generated buffer within one run.
type RewriterState int

const (
	// StateLoaded means the buffer holds the pristine template.
	StateLoaded RewriterState = iota
	// StateMutated means at least one entry has been inserted.
	StateMutated
	// StateFlushed means the buffer has been written to the output file.
	StateFlushed
	// StateDiscarded means the buffer was dropped without writing (dry run).
	StateDiscarded
)

// String returns the string representation of the state.
func (s RewriterState) String() string {
	switch s {
	case StateLoaded:
		return "loaded"
	case StateMutated:
		return "mutated"
	case StateFlushed:
		return "flushed"
	case StateDiscarded:
		return "discarded"
	default:
		return "unknown"
	}
}

// entryIndent is added to the marker indentation for the assignment line.
const entryIndent = "    "

// Entry is one generated switch case.
type Entry struct {
	// Kind is the kind of the directive that produced the entry.
	Kind model.DirectiveKind
	// Reference is the raw reference used as the case label.
	Reference string
	// Content is the encoded file content.
	Content string
}

// segment is either a run of literal template text or a single marker line.
type segment struct {
	text   string
	marker bool
	kind   model.DirectiveKind
	indent string
	eol    string
}

// Rewriter holds the output template split at its marker lines and the
// entries generated for each marker. Rendering always starts from the
// template, so the result depends only on the inserted entries.
type Rewriter struct {
	segments []segment
	entries  map[model.DirectiveKind][]Entry
	inserted int
	state    RewriterState
}

// NewRewriter parses template and checks that it holds exactly one marker
// line per directive kind.
func NewRewriter(template []byte) (*Rewriter, error) {
	r := &Rewriter{
		entries: make(map[model.DirectiveKind][]Entry),
		state:   StateLoaded,
	}

	counts := make(map[model.DirectiveKind]int)
	var literal strings.Builder
	flushLiteral := func() {
		if literal.Len() > 0 {
			r.segments = append(r.segments, segment{text: literal.String()})
			literal.Reset()
		}
	}

	for _, line := range strings.SplitAfter(string(template), "\n") {
		if line == "" {
			continue
		}
		body := strings.TrimRight(line, "\r\n")
		kind, ok := markerKind(strings.TrimSpace(body))
		if !ok {
			literal.WriteString(line)
			continue
		}

		flushLiteral()
		counts[kind]++
		r.segments = append(r.segments, segment{
			text:   body,
			marker: true,
			kind:   kind,
			indent: body[:len(body)-len(strings.TrimLeft(body, " \t"))],
			eol:    line[len(body):],
		})
	}
	flushLiteral()

	for _, kind := range model.Kinds {
		if counts[kind] != 1 {
			return nil, newGeneratorError(GeneratorTemplateInvalid,
				fmt.Sprintf("template must contain exactly one %q line, found %d", kind.Marker(), counts[kind]),
				"", nil)
		}
	}

	debug.Debug("[generator] Template loaded: %d segment(s)", len(r.segments))
	return r, nil
}

// markerKind reports which kind a trimmed template line anchors.
func markerKind(line string) (model.DirectiveKind, bool) {
	for _, kind := range model.Kinds {
		if line == kind.Marker() {
			return kind, true
		}
	}
	return 0, false
}

// Insert adds a case for reference under every marker. Entries accumulate
// in insertion order directly below each marker line.
func (r *Rewriter) Insert(kind model.DirectiveKind, reference, content string) error {
	if r.state == StateFlushed || r.state == StateDiscarded {
		return newGeneratorError(GeneratorStateInvalid,
			fmt.Sprintf("cannot insert %q into a %s buffer", reference, r.state), "", nil)
	}

	entry := Entry{Kind: kind, Reference: reference, Content: content}
	for _, markerKind := range model.Kinds {
		r.entries[markerKind] = append(r.entries[markerKind], entry)
	}
	r.inserted++
	r.state = StateMutated
	return nil
}

// Len returns the number of inserted entries.
func (r *Rewriter) Len() int {
	return r.inserted
}

// State returns the current buffer state.
func (r *Rewriter) State() RewriterState {
	return r.state
}

// Entries returns the entries rendered under the marker of kind.
func (r *Rewriter) Entries(kind model.DirectiveKind) []Entry {
	out := make([]Entry, len(r.entries[kind]))
	copy(out, r.entries[kind])
	return out
}

// Render returns the template with every marker followed by its entries.
// Marker lines are kept so the output can be read back as a template.
func (r *Rewriter) Render() []byte {
	var b strings.Builder
	for _, seg := range r.segments {
		if !seg.marker {
			b.WriteString(seg.text)
			continue
		}

		nl := seg.eol
		if nl == "" {
			nl = "\n"
		}
		b.WriteString(seg.text)
		for _, e := range r.entries[seg.kind] {
			b.WriteString(nl)
			b.WriteString(seg.indent + `case "` + e.Reference + `":`)
			b.WriteString(nl)
			b.WriteString(seg.indent + entryIndent + `content = "` + e.Content + `"`)
		}
		b.WriteString(seg.eol)
	}
	return []byte(b.String())
}

// Flush writes the rendered buffer to path through w.
func (r *Rewriter) Flush(w Writer, path string) error {
	if r.state == StateFlushed || r.state == StateDiscarded {
		return newGeneratorError(GeneratorStateInvalid,
			fmt.Sprintf("cannot flush a %s buffer", r.state), path, nil)
	}

	if err := w.WriteFile(path, r.Render(), 0644); err != nil {
		return err
	}
	r.state = StateFlushed
	debug.Debug("[generator] Flushed %d entr(ies) to %s", r.inserted, path)
	return nil
}

// Discard drops the buffer without writing it.
func (r *Rewriter) Discard() {
	r.state = StateDiscarded
}
