package parser

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/tacogips/swift-precompiled/internal/debug"
	"github.com/tacogips/swift-precompiled/internal/template/model"
)

// Resolver turns directives into existence-checked file references.
type Resolver struct {
	subs Substitutions
}

// NewResolver creates a Resolver applying subs before path resolution.
func NewResolver(subs Substitutions) *Resolver {
	return &Resolver{subs: subs}
}

// Resolve substitutes aliases in the directive's raw reference, resolves the
// result with ResolvePath and checks that it names an existing regular file.
func (r *Resolver) Resolve(d model.Directive) (model.ResolvedReference, error) {
	substituted := r.subs.Apply(d.RawReference)
	path := ResolvePath(substituted, d.SourceFile)
	debug.Debug("[parser] %s:%d: %q -> %s", d.SourceFile, d.Line, d.RawReference, path)

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return model.ResolvedReference{}, newReferenceError(ReferenceNotFound,
				d.SourceFile, d.Line, d.Kind.CallName(), path, nil)
		}
		return model.ResolvedReference{}, newReferenceError(ReferenceNotFound,
			d.SourceFile, d.Line, d.Kind.CallName(), path, err)
	}
	if info.IsDir() {
		return model.ResolvedReference{}, newReferenceError(ReferenceNotFile,
			d.SourceFile, d.Line, d.Kind.CallName(), path, nil)
	}

	return model.ResolvedReference{Directive: d, Path: path}, nil
}

// ResolvePath resolves ref against the directory of containingFile.
// Absolute references are only normalized. No filesystem access is made and
// symlinks are not evaluated.
func ResolvePath(ref, containingFile string) string {
	if filepath.IsAbs(ref) {
		return filepath.Clean(ref)
	}
	return filepath.Join(parentDir(containingFile), ref)
}

// parentDir returns the directory of path, or path itself when it has none.
func parentDir(path string) string {
	dir := filepath.Dir(path)
	if dir == path {
		// filesystem root
		return path
	}
	return dir
}
