package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
)

// Output streams, replaced in tests.
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

var (
	successStyle = color.New(color.FgGreen)
	errorStyle   = color.New(color.FgRed)
	warningStyle = color.New(color.FgYellow)
	boldStyle    = color.New(color.Bold)
)

// printInfo prints an informational message
func printInfo(msg string) {
	if globalQuiet {
		return
	}
	fmt.Fprintln(stdout, msg)
}

// printSuccess prints a "success:" line
func printSuccess(msg string) {
	if globalQuiet {
		return
	}
	fmt.Fprintf(stdout, "%s: %s\n", successStyle.Sprint("success"), msg)
}

// printWarning prints a "warning:" line
func printWarning(msg string) {
	if globalQuiet {
		return
	}
	fmt.Fprintf(stderr, "%s: %s\n", warningStyle.Sprint("warning"), msg)
}

// printError prints an "error:" line to stderr. Errors are never silenced.
func printError(err error) {
	printErrorMsg(err.Error())
}

// printErrorMsg prints an error message (different from printError which takes error type)
func printErrorMsg(msg string) {
	fmt.Fprintf(stderr, "%s %s\n", errorStyle.Sprint("error:"), msg)
}

// bold renders a path or figure in bold.
func bold(s string) string {
	return boldStyle.Sprint(s)
}

// formatElapsed renders milliseconds below one second and whole seconds otherwise.
func formatElapsed(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return fmt.Sprintf("%ds", int64(d/time.Second))
}
