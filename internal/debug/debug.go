package debug

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/log"
)

var (
	enabled   bool
	enabledMu sync.RWMutex

	logger   = newLogger(os.Stderr, false)
	loggerMu sync.RWMutex
)

const timeFormat = "15:04:05.000"

func newLogger(w io.Writer, noColor bool) *log.Logger {
	opts := log.Options{
		Level:           log.DebugLevel,
		ReportTimestamp: true,
		TimeFormat:      timeFormat,
		Formatter:       log.TextFormatter,
	}
	if noColor {
		opts.Formatter = log.LogfmtFormatter
	}
	return log.NewWithOptions(w, opts)
}

// SetDebug enables or disables debug mode
func SetDebug(enable bool) {
	enabledMu.Lock()
	defer enabledMu.Unlock()
	enabled = enable
}

// IsEnabled returns whether debug mode is enabled
func IsEnabled() bool {
	enabledMu.RLock()
	defer enabledMu.RUnlock()
	return enabled
}

// SetNoColor switches the debug logger to plain logfmt output.
func SetNoColor(disable bool) {
	SetOutput(os.Stderr, disable)
}

// SetOutput redirects debug output. Used by tests.
func SetOutput(w io.Writer, noColor bool) {
	loggerMu.Lock()
	defer loggerMu.Unlock()
	logger = newLogger(w, noColor)
}

func current() *log.Logger {
	loggerMu.RLock()
	defer loggerMu.RUnlock()
	return logger
}

// Debug prints a debug message with timestamp
func Debug(format string, args ...interface{}) {
	if !IsEnabled() {
		return
	}
	current().Debug(fmt.Sprintf(format, args...))
}

// Debugf is an alias for Debug
func Debugf(format string, args ...interface{}) {
	Debug(format, args...)
}

// DebugSection prints a section header for debug output
func DebugSection(section string) {
	if !IsEnabled() {
		return
	}
	current().Debug(fmt.Sprintf("=== %s ===", section))
}

// DebugValue prints key=value style debug info
func DebugValue(key string, value interface{}) {
	if !IsEnabled() {
		return
	}
	current().Debug(key, "value", value)
}

// DebugJSON prints structured data as JSON for debugging
func DebugJSON(key string, v interface{}) {
	if !IsEnabled() {
		return
	}

	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		Debug("Failed to marshal %s to JSON: %v", key, err)
		return
	}

	current().Debug(key + ":\n" + string(jsonBytes))
}
