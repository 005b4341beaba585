package generator

import (
	"bytes"
	"context"
	"os"

	"github.com/tacogips/swift-precompiled/internal/debug"
	"github.com/tacogips/swift-precompiled/internal/template/model"
)

// Processor turns a resolved reference into the text embedded for it.
type Processor interface {
	// Process reads the referenced file and returns its encoded content.
	Process(ctx context.Context, ref model.ResolvedReference) (string, error)
}

// FileProcessor implements Processor for files on the local filesystem.
type FileProcessor struct {
	codec Codec
}

// NewFileProcessor creates a new FileProcessor.
// If codec is nil, Base64Codec is used.
func NewFileProcessor(codec Codec) Processor {
	if codec == nil {
		codec = Base64Codec{}
	}
	return &FileProcessor{codec: codec}
}

// isBinaryContent checks if content appears to be binary by looking for null bytes.
// Checks the first 512 bytes (or entire content if smaller).
func isBinaryContent(content []byte) bool {
	checkLen := len(content)
	if checkLen > 512 {
		checkLen = 512
	}

	return bytes.IndexByte(content[:checkLen], 0) != -1
}

// Process reads the referenced file as raw bytes and encodes it.
func (p *FileProcessor) Process(ctx context.Context, ref model.ResolvedReference) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	content, err := os.ReadFile(ref.Path)
	if err != nil {
		return "", newGeneratorError(GeneratorReadFailed,
			"failed to read referenced file",
			ref.Path,
			err)
	}

	if ref.Directive.Kind == model.KindString && isBinaryContent(content) {
		debug.Debug("[generator] %s at %s:%d references binary content: %s",
			ref.Directive.Kind.CallName(), ref.Directive.SourceFile, ref.Directive.Line, ref.Path)
	}

	encoded := p.codec.Encode(content)
	debug.Debug("[generator] Encoded %s with %s (input: %d bytes, output: %d bytes)",
		ref.Path, p.codec.Name(), len(content), len(encoded))
	return encoded, nil
}
