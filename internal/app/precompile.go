package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/tacogips/swift-precompiled/internal/config"
	"github.com/tacogips/swift-precompiled/internal/debug"
	"github.com/tacogips/swift-precompiled/internal/template/generator"
	"github.com/tacogips/swift-precompiled/internal/template/model"
	"github.com/tacogips/swift-precompiled/internal/template/parser"
	"github.com/tacogips/swift-precompiled/internal/template/provider"
)

// PrecompileOptions contains options for a precompile run.
type PrecompileOptions struct {
	// Dirs is an OS path list of source roots. Ignored when the
	// configuration names its own dirs.
	Dirs string
	// Output is the generated artifact path.
	Output string
	// ConfigPath is the configuration file path. A missing file means defaults.
	ConfigPath string
	// DryRun discovers and validates directives without writing the artifact.
	DryRun bool
	// Clean removes the existing artifact before the run.
	Clean bool
	// WorkingDir resolves relative paths. Defaults to the process working directory.
	WorkingDir string
}

// PrecompileResult contains the outcome of a precompile run.
type PrecompileResult struct {
	// Count is the number of distinct references embedded.
	Count int
	// Elapsed is the wall time of the run.
	Elapsed time.Duration
	// OutputPath is the absolute artifact path.
	OutputPath string
	// OutputIsDir is set when OutputPath is an existing directory and nothing ran.
	OutputIsDir bool
	// Roots lists the scanned source roots.
	Roots []string
	// FilesScanned is the number of candidate files read.
	FilesScanned int
	// References lists embedded raw references in first-seen order.
	References []string
	// Unchanged is set when the artifact already held the rendered content.
	Unchanged bool
	// Written is set when the artifact was written.
	Written bool
}

// Precompile scans every source root for embed directives, validates each
// referenced file and writes the generated artifact. The first unresolvable
// reference aborts the run before anything is written.
func Precompile(ctx context.Context, opts PrecompileOptions) (*PrecompileResult, error) {
	start := time.Now()

	debug.DebugSection("[app] Precompile workflow start")
	debug.DebugValue("[app] Dirs", opts.Dirs)
	debug.DebugValue("[app] Output", opts.Output)
	debug.DebugValue("[app] ConfigPath", opts.ConfigPath)
	debug.DebugValue("[app] DryRun", opts.DryRun)
	debug.DebugValue("[app] Clean", opts.Clean)

	cwd, err := workingDir(opts.WorkingDir)
	if err != nil {
		return nil, NewAppError(ScanFailed, "failed to determine working directory", err)
	}

	output := opts.Output
	if output == "" {
		output = model.DefaultOutputFile
	}
	result := &PrecompileResult{OutputPath: absolutize(cwd, output)}

	if info, err := os.Stat(result.OutputPath); err == nil && info.IsDir() {
		debug.Debug("[app] Output path is a directory, nothing to do: %s", result.OutputPath)
		result.OutputIsDir = true
		result.Elapsed = time.Since(start)
		return result, nil
	}

	configPath := opts.ConfigPath
	if configPath == "" {
		configPath = config.DefaultConfigPath()
	}
	configPath = absolutize(cwd, configPath)

	cfg, err := config.NewLoader().LoadOrDefault(configPath)
	if err != nil {
		return nil, newPathError(ConfigLoadFailed, configPath, "failed to load configuration", err)
	}

	template, err := generator.LoadTemplate(cfg.ResolveTemplate(configPath))
	if err != nil {
		return nil, newPathError(ConfigLoadFailed, cfg.Template, "failed to load template", err)
	}

	gen, err := generator.NewGenerator(generator.GenerateOptions{
		Template: template,
		DryRun:   opts.DryRun,
	})
	if err != nil {
		return nil, newPathError(ConfigLoadFailed, cfg.Template, "invalid template", err)
	}

	result.Roots = sourceRoots(cwd, opts.Dirs, cfg)
	debug.DebugValue("[app] Roots", result.Roots)

	writer := generator.NewFileWriter()
	if opts.Clean && !opts.DryRun {
		if err := writer.Remove(result.OutputPath); err != nil {
			return nil, newPathError(WriteFailed, result.OutputPath, "failed to clean output file", err)
		}
	}

	list := provider.NewLocalProvider(cfg.IncludePatterns(), cfg.Exclude)
	list.Skip = []string{result.OutputPath}
	scanner := parser.NewScanner()
	aliases := parser.NewAliasTable(cfg.PathAliases)

	for _, root := range result.Roots {
		scanned, err := scanRoot(ctx, root, list, scanner, aliases, gen)
		result.FilesScanned += scanned
		if err != nil {
			return nil, err
		}
	}

	result.Count = gen.Count()
	result.References = gen.References()

	switch {
	case opts.DryRun:
		if err := gen.Flush(writer, result.OutputPath); err != nil {
			return nil, newPathError(WriteFailed, result.OutputPath, "failed to finish dry run", err)
		}
	case sameContent(result.OutputPath, gen.Render()):
		debug.Debug("[app] Output unchanged, skipping write: %s", result.OutputPath)
		gen.Discard()
		result.Unchanged = true
	default:
		if err := gen.Flush(writer, result.OutputPath); err != nil {
			return nil, newPathError(WriteFailed, result.OutputPath, "failed to write output file", err)
		}
		result.Written = true
	}

	result.Elapsed = time.Since(start)
	debug.Debug("[app] Precompile complete: count=%d, files=%d, written=%v, elapsed=%s",
		result.Count, result.FilesScanned, result.Written, result.Elapsed)
	return result, nil
}

// scanRoot embeds every directive found in the files under root and returns
// the number of files read.
func scanRoot(ctx context.Context, root string, list provider.Provider, scanner parser.Scanner,
	aliases *parser.AliasTable, gen *generator.Generator) (int, error) {
	debug.Debug("[app] Scanning root: %s", root)

	resolver := parser.NewResolver(aliases.Bind(root))

	files, err := list.List(ctx, root)
	if err != nil {
		return 0, newPathError(ScanFailed, root, "failed to list source files", err)
	}

	scanned := 0
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return scanned, err
		}

		content, err := os.ReadFile(file)
		if err != nil {
			return scanned, newPathError(ScanFailed, file, "failed to read source file", err)
		}
		scanned++

		for directive := range scanner.Scan(file, content) {
			ref, err := resolver.Resolve(directive)
			if err != nil {
				return scanned, newPathError(ResolutionFailed, file,
					fmt.Sprintf("unresolvable %s reference %q", directive.Kind.CallName(), directive.RawReference), err)
			}

			if _, err := gen.Embed(ctx, ref); err != nil {
				return scanned, newPathError(EmbedFailed, ref.Path,
					fmt.Sprintf("failed to embed %q", directive.RawReference), err)
			}
		}
	}
	return scanned, nil
}

// sourceRoots returns the configured dirs when any are set, otherwise the
// existing directories named by the OS path list dirs.
func sourceRoots(cwd, dirs string, cfg *config.Config) []string {
	if len(cfg.Dirs) > 0 {
		return cfg.RootDirs(cwd)
	}

	if dirs == "" {
		dirs = model.DefaultSourceDir
	}

	var roots []string
	for _, dir := range filepath.SplitList(dirs) {
		if dir == "" {
			continue
		}
		abs := absolutize(cwd, dir)
		info, err := os.Stat(abs)
		if err != nil || !info.IsDir() {
			debug.Debug("[app] Skipping missing source root: %s", abs)
			continue
		}
		roots = append(roots, abs)
	}
	return roots
}

// workingDir returns dir, or the process working directory when dir is empty.
func workingDir(dir string) (string, error) {
	if dir != "" {
		return filepath.Abs(dir)
	}
	return os.Getwd()
}

// absolutize joins a relative path onto base and cleans the result.
func absolutize(base, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(base, path)
}
