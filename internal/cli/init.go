package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tacogips/swift-precompiled/internal/app"
	"github.com/tacogips/swift-precompiled/internal/template/model"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a swift-precompiled config file",
	Long: `Write a default configuration file. An existing file is never overwritten.

The format follows the file extension: .toml (default), .yaml or .yml.

Examples:
  swift-precompiled init
  swift-precompiled init --config precompiled.yaml
  swift-precompiled init --interactive`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

// Init command flags
var (
	initConfig      string
	initInteractive bool
)

func init() {
	initCmd.Flags().StringVar(&initConfig, FlagConfig, model.DefaultConfigFile, DescConfig)
	initCmd.Flags().BoolVarP(&initInteractive, FlagInteractive, "i", false, DescInteractive)
}

func runInit(cmd *cobra.Command, args []string) error {
	if err := ValidateConfigPath(initConfig); err != nil {
		return err
	}

	opts := app.ConfigInitOptions{ConfigPath: initConfig}
	if initInteractive {
		dirs, aliases, err := PromptForConfig()
		if err != nil {
			return err
		}
		opts.Dirs = dirs
		opts.PathAliases = aliases
	}

	result, err := app.ConfigInit(opts)
	if err != nil {
		return err
	}

	printSuccess(fmt.Sprintf("Created config file at %s", bold(result.ConfigPath)))
	return nil
}
