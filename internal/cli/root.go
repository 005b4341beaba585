package cli

import (
	"errors"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/tacogips/swift-precompiled/internal/build"
	"github.com/tacogips/swift-precompiled/internal/debug"
)

// Version information, overridable from main.
var (
	Version   = build.Version()
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Global flags
var (
	globalNoColor bool
	globalQuiet   bool
	globalDebug   bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "swift-precompiled",
	Short: "Embed file contents into Swift sources at build time",
	Long: `swift-precompiled scans Swift sources for precompileIncludeStr("PATH") and
precompileIncludeData("PATH") calls and generates a Swift file that returns the
referenced files' contents, so they ship inside the binary instead of the bundle.

Use "swift-precompiled init" to create swift-precompiled.toml, then run
"swift-precompiled precompile" from an Xcode build phase.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		configureColor(globalNoColor, isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()))
		debug.SetDebug(globalDebug)
		debug.SetNoColor(color.NoColor)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.Version = Version
	if err := rootCmd.Execute(); err != nil {
		var reported *reportedError
		if !errors.As(err, &reported) {
			printError(err)
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&globalNoColor, FlagNoColor, false, DescNoColor)
	rootCmd.PersistentFlags().BoolVarP(&globalQuiet, FlagQuiet, "q", false, DescQuiet)
	rootCmd.PersistentFlags().BoolVar(&globalDebug, FlagDebug, false, DescDebug)

	rootCmd.AddCommand(precompileCmd)
	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
}

// configureColor disables color when requested or when stdout is not a terminal.
func configureColor(noColor, terminal bool) {
	color.NoColor = noColor || !terminal
}

// reportedError marks an error whose message has already been printed.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string {
	return e.err.Error()
}

func (e *reportedError) Unwrap() error {
	return e.err
}
