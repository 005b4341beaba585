package cli

import (
	"fmt"
	"strings"
)

// Common flag names and descriptions
const (
	// Flag names
	FlagOut         = "out"
	FlagConfig      = "config"
	FlagDryRun      = "dry-run"
	FlagClean       = "clean"
	FlagScript      = "xcode-script-renderer"
	FlagInteractive = "interactive"
	FlagNoColor     = "no-color"
	FlagQuiet       = "quiet"
	FlagDebug       = "debug"

	// Flag descriptions
	DescOut         = "Output Swift file with precompiled code"
	DescConfig      = "Path to config file (.toml, .yaml or .yml)"
	DescDryRun      = "Precompile without generating output file"
	DescClean       = "Clean output file before precompiling"
	DescScript      = "Format errors for Xcode build phase scripts"
	DescInteractive = "Prompt for source directories and path aliases"
	DescNoColor     = "Disable colored output"
	DescQuiet       = "Suppress non-error output"
	DescDebug       = "Enable debug logging"
)

// ValidateOutputPath validates the generated file path.
func ValidateOutputPath(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("output path cannot be empty")
	}
	return nil
}

// ValidateConfigPath validates a configuration file path.
func ValidateConfigPath(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("config path cannot be empty")
	}
	return nil
}
