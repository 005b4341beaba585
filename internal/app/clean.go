package app

import (
	"errors"
	"io/fs"
	"os"

	"github.com/tacogips/swift-precompiled/internal/debug"
	"github.com/tacogips/swift-precompiled/internal/template/generator"
	"github.com/tacogips/swift-precompiled/internal/template/model"
)

// CleanOptions contains options for removing the generated artifact.
type CleanOptions struct {
	// Output is the generated artifact path.
	Output string
	// WorkingDir resolves a relative Output. Defaults to the process working directory.
	WorkingDir string
}

// CleanResult contains the outcome of a clean run.
type CleanResult struct {
	// OutputPath is the absolute artifact path.
	OutputPath string
	// OutputIsDir is set when OutputPath is a directory and nothing was removed.
	OutputIsDir bool
	// Removed is set when the artifact was deleted.
	Removed bool
}

// Clean deletes the generated artifact. A missing artifact is an error.
func Clean(opts CleanOptions) (*CleanResult, error) {
	cwd, err := workingDir(opts.WorkingDir)
	if err != nil {
		return nil, NewAppError(CleanFailed, "failed to determine working directory", err)
	}

	output := opts.Output
	if output == "" {
		output = model.DefaultOutputFile
	}
	result := &CleanResult{OutputPath: absolutize(cwd, output)}
	debug.DebugValue("[app] Clean target", result.OutputPath)

	info, err := os.Stat(result.OutputPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, newPathError(CleanTargetMissing, result.OutputPath,
				"precompiled file "+result.OutputPath+" does not exist", nil)
		}
		return nil, newPathError(CleanFailed, result.OutputPath, "failed to inspect output file", err)
	}
	if info.IsDir() {
		result.OutputIsDir = true
		return result, nil
	}

	if err := generator.NewFileWriter().Remove(result.OutputPath); err != nil {
		return nil, newPathError(CleanFailed, result.OutputPath, "failed to remove output file", err)
	}
	result.Removed = true
	debug.Debug("[app] Removed %s", result.OutputPath)
	return result, nil
}
