package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tacogips/swift-precompiled/internal/app"
	"github.com/tacogips/swift-precompiled/internal/template/model"
)

// cleanCmd represents the clean command
var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Clean precompiled file",
	Long: `Remove the generated Swift file.

Examples:
  swift-precompiled clean
  swift-precompiled clean -o Sources/Precompiled.swift`,
	Args: cobra.NoArgs,
	RunE: runClean,
}

// Clean command flags
var cleanOut string

func init() {
	cleanCmd.Flags().StringVarP(&cleanOut, FlagOut, "o", model.DefaultOutputFile, DescOut)
}

func runClean(cmd *cobra.Command, args []string) error {
	if err := ValidateOutputPath(cleanOut); err != nil {
		return err
	}

	result, err := app.Clean(app.CleanOptions{Output: cleanOut})
	if err != nil {
		return err
	}

	if result.OutputIsDir {
		printInfo(fmt.Sprintf("%s already exists as a directory", result.OutputPath))
		return nil
	}

	printSuccess(fmt.Sprintf("Removed %s", bold(result.OutputPath)))
	return nil
}
