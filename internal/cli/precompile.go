package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tacogips/swift-precompiled/internal/app"
	"github.com/tacogips/swift-precompiled/internal/template/model"
	"github.com/tacogips/swift-precompiled/internal/template/parser"
)

// precompileCmd represents the precompile command
var precompileCmd = &cobra.Command{
	Use:   "precompile [directory]",
	Short: "Precompile Swift source files",
	Long: `Scan Swift sources for precompileIncludeStr and precompileIncludeData calls
and generate a Swift file embedding every referenced file.

The directory argument is a path list (colon separated on Unix) of source
roots; missing roots are skipped. When the config file lists dirs, they are
used instead.

Examples:
  swift-precompiled precompile
  swift-precompiled precompile Sources -o Sources/Precompiled.swift
  swift-precompiled precompile --dry-run
  swift-precompiled precompile --xcode-script-renderer --clean`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPrecompile,
}

// Precompile command flags
var (
	precompileOut    string
	precompileDryRun bool
	precompileClean  bool
	precompileScript bool
	precompileConfig string
)

func init() {
	precompileCmd.Flags().StringVarP(&precompileOut, FlagOut, "o", model.DefaultOutputFile, DescOut)
	precompileCmd.Flags().BoolVar(&precompileDryRun, FlagDryRun, false, DescDryRun)
	precompileCmd.Flags().BoolVar(&precompileClean, FlagClean, false, DescClean)
	precompileCmd.Flags().BoolVar(&precompileScript, FlagScript, false, DescScript)
	precompileCmd.Flags().StringVar(&precompileConfig, FlagConfig, model.DefaultConfigFile, DescConfig)
}

func runPrecompile(cmd *cobra.Command, args []string) error {
	dirs := model.DefaultSourceDir
	if len(args) > 0 {
		dirs = args[0]
	}

	if err := ValidateOutputPath(precompileOut); err != nil {
		return err
	}
	if err := ValidateConfigPath(precompileConfig); err != nil {
		return err
	}

	result, err := app.Precompile(cmd.Context(), app.PrecompileOptions{
		Dirs:       dirs,
		Output:     precompileOut,
		ConfigPath: precompileConfig,
		DryRun:     precompileDryRun,
		Clean:      precompileClean,
	})
	if err != nil {
		return renderPrecompileError(err, precompileScript)
	}

	if result.OutputIsDir {
		printInfo(fmt.Sprintf("%s already exists as a directory", result.OutputPath))
		return nil
	}

	if len(result.Roots) == 0 {
		printWarning("no source directories found in " + dirs)
	}

	printSuccess(precompileSummary(result, precompileDryRun || precompileScript))
	return nil
}

// precompileSummary renders the success line body. The build phase hint is
// left out when hideHint is set.
func precompileSummary(result *app.PrecompileResult, hideHint bool) string {
	msg := fmt.Sprintf("Precompiled %d calls in %s", result.Count, bold(formatElapsed(result.Elapsed)))
	if !hideHint {
		msg += fmt.Sprintf(", add %s to your Xcode build phase", bold(result.OutputPath))
	}
	return msg
}

// renderPrecompileError prints resolution failures in the compiler style
// Xcode understands when scriptMode is set, and in a readable sentence
// otherwise. Other errors are returned unchanged for Execute to print.
func renderPrecompileError(err error, scriptMode bool) error {
	var parseErr *parser.ParseError
	if !errors.As(err, &parseErr) {
		return err
	}

	fmt.Fprintln(stderr, formatResolutionError(parseErr, scriptMode))
	return &reportedError{err: err}
}

// formatResolutionError formats a ParseError as a single line.
func formatResolutionError(parseErr *parser.ParseError, scriptMode bool) string {
	if scriptMode {
		return fmt.Sprintf("%s:%d: error : %s %s",
			parseErr.File, parseErr.Line, parseErr.Directive, parseErr.Message)
	}
	return fmt.Sprintf("%s %s call at line %d in %s %s",
		errorStyle.Sprint("Error:"), parseErr.Directive, parseErr.Line, parseErr.File,
		strings.TrimPrefix(parseErr.Message, "call "))
}
