package provider

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/tacogips/swift-precompiled/internal/debug"
	"github.com/tacogips/swift-precompiled/internal/template/model"
)

// LocalProvider implements Provider for the local filesystem.
type LocalProvider struct {
	// Include selects candidate files. Defaults to model.DefaultSourcePattern.
	Include []string
	// Exclude rejects files selected by Include.
	Exclude []string
	// Skip lists absolute paths that are never returned, such as the
	// generated artifact itself.
	Skip []string
}

// NewLocalProvider creates a new local filesystem provider.
func NewLocalProvider(include, exclude []string) *LocalProvider {
	return &LocalProvider{
		Include: include,
		Exclude: exclude,
	}
}

// Name returns the provider name.
func (p *LocalProvider) Name() string {
	return "local"
}

// List walks root depth-first in lexical order and returns the absolute
// paths of regular files selected by the include and exclude patterns.
// Symlinks to regular files are listed; symlinked directories are not
// descended into.
func (p *LocalProvider) List(ctx context.Context, root string) ([]string, error) {
	include := p.Include
	if len(include) == 0 {
		include = []string{model.DefaultSourcePattern}
	}
	if err := ValidatePatterns(p.Name(), include); err != nil {
		return nil, err
	}
	if err := ValidatePatterns(p.Name(), p.Exclude); err != nil {
		return nil, err
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, NewListError(p.Name(), root, fmt.Errorf("failed to resolve root: %w", err))
	}

	info, err := os.Stat(absRoot)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, NewNotFoundError(p.Name(), absRoot)
		}
		return nil, NewListError(p.Name(), absRoot, err)
	}
	if !info.IsDir() {
		return nil, NewNotFoundError(p.Name(), absRoot)
	}

	skip := make(map[string]struct{}, len(p.Skip))
	for _, s := range p.Skip {
		skip[filepath.Clean(s)] = struct{}{}
	}

	debug.Debug("[provider] Listing %s (include=%v, exclude=%v)", absRoot, include, p.Exclude)

	var files []string
	err = filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				debug.Debug("[provider] Skipping vanished entry: %s", path)
				return nil
			}
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		if d.Type()&fs.ModeSymlink != 0 {
			target, err := os.Stat(path)
			if err != nil {
				debug.Debug("[provider] Skipping broken symlink: %s", path)
				return nil
			}
			if !target.Mode().IsRegular() {
				debug.Debug("[provider] Skipping symlink to non-regular file: %s", path)
				return nil
			}
		} else if !d.Type().IsRegular() {
			debug.Debug("[provider] Skipping non-regular file: %s", path)
			return nil
		}

		if _, ok := skip[path]; ok {
			debug.Debug("[provider] Skipping generated file: %s", path)
			return nil
		}

		rel, err := filepath.Rel(absRoot, path)
		if err != nil {
			return fmt.Errorf("failed to get relative path: %w", err)
		}
		if !ShouldIncludeFile(rel, include, p.Exclude) {
			return nil
		}

		files = append(files, path)
		return nil
	})
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, NewListError(p.Name(), absRoot, err)
	}

	debug.Debug("[provider] Collected %d file(s) under %s", len(files), absRoot)
	return files, nil
}
