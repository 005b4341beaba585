package generator

import (
	"context"
	"fmt"

	"github.com/tacogips/swift-precompiled/internal/debug"
	"github.com/tacogips/swift-precompiled/internal/template/model"
)

// GenerateOptions configures a Generator.
type GenerateOptions struct {
	// Template is the output template. It must contain both marker lines.
	Template []byte

	// Codec encodes embedded file content. Defaults to Base64Codec.
	Codec Codec

	// DryRun skips reading referenced files. Entries are still counted.
	DryRun bool
}

// Generator accumulates embedded entries for one run.
type Generator struct {
	registry  *Registry
	rewriter  *Rewriter
	processor Processor
	dryRun    bool
}

// NewGenerator creates a Generator from opts.
func NewGenerator(opts GenerateOptions) (*Generator, error) {
	if len(opts.Template) == 0 {
		return nil, fmt.Errorf("template cannot be empty")
	}

	rewriter, err := NewRewriter(opts.Template)
	if err != nil {
		return nil, err
	}

	return &Generator{
		registry:  NewRegistry(),
		rewriter:  rewriter,
		processor: NewFileProcessor(opts.Codec),
		dryRun:    opts.DryRun,
	}, nil
}

// Embed records ref and, on its first occurrence, inserts its encoded content.
// It reports whether ref was novel. Repeated raw references are skipped
// without reading the file.
func (g *Generator) Embed(ctx context.Context, ref model.ResolvedReference) (bool, error) {
	raw := ref.Directive.RawReference
	if !g.registry.MarkAndCheck(raw) {
		debug.Debug("[generator] Skipping already embedded reference: %q (%s:%d)",
			raw, ref.Directive.SourceFile, ref.Directive.Line)
		return false, nil
	}

	if g.dryRun {
		debug.Debug("[generator] Dry run: would embed %q from %s", raw, ref.Path)
		return true, nil
	}

	encoded, err := g.processor.Process(ctx, ref)
	if err != nil {
		return true, err
	}

	if err := g.rewriter.Insert(ref.Directive.Kind, raw, encoded); err != nil {
		return true, err
	}
	debug.Debug("[generator] Embedded %q from %s", raw, ref.Path)
	return true, nil
}

// Count returns the number of distinct references embedded so far.
func (g *Generator) Count() int {
	return g.registry.Len()
}

// References returns embedded raw references in first-seen order.
func (g *Generator) References() []string {
	return g.registry.References()
}

// Render returns the current artifact content.
func (g *Generator) Render() []byte {
	return g.rewriter.Render()
}

// Flush writes the artifact to path through w. In dry-run mode the buffer is
// discarded instead.
func (g *Generator) Flush(w Writer, path string) error {
	if g.dryRun {
		g.rewriter.Discard()
		debug.Debug("[generator] Dry run mode: %s was not written", path)
		return nil
	}
	return g.rewriter.Flush(w, path)
}

// State returns the state of the underlying buffer.
func (g *Generator) State() RewriterState {
	return g.rewriter.State()
}

// Discard drops the artifact without writing it.
func (g *Generator) Discard() {
	g.rewriter.Discard()
}
