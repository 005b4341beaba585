package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"github.com/tacogips/swift-precompiled/internal/app"
	"github.com/tacogips/swift-precompiled/internal/template/model"
	"github.com/tacogips/swift-precompiled/internal/template/parser"
)

// captureOutput redirects stdout and stderr into buffers and disables color.
func captureOutput(t *testing.T) (*bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var out, errOut bytes.Buffer
	savedOut, savedErr, savedNoColor, savedQuiet := stdout, stderr, color.NoColor, globalQuiet
	stdout, stderr = &out, &errOut
	color.NoColor = true
	globalQuiet = false
	t.Cleanup(func() {
		stdout, stderr, color.NoColor, globalQuiet = savedOut, savedErr, savedNoColor, savedQuiet
	})
	return &out, &errOut
}

func TestFormatElapsed(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0ms"},
		{42 * time.Millisecond, "42ms"},
		{999 * time.Millisecond, "999ms"},
		{time.Second, "1s"},
		{2500 * time.Millisecond, "2s"},
	}
	for _, tt := range tests {
		if got := formatElapsed(tt.d); got != tt.want {
			t.Errorf("formatElapsed(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestPrecompileSummary(t *testing.T) {
	captureOutput(t)
	result := &app.PrecompileResult{Count: 3, Elapsed: 12 * time.Millisecond, OutputPath: "/p/Precompiled.swift"}

	if got := precompileSummary(result, false); got != "Precompiled 3 calls in 12ms, add /p/Precompiled.swift to your Xcode build phase" {
		t.Errorf("summary = %q", got)
	}
	if got := precompileSummary(result, true); got != "Precompiled 3 calls in 12ms" {
		t.Errorf("summary without hint = %q", got)
	}
}

func TestFormatResolutionError(t *testing.T) {
	captureOutput(t)
	parseErr := &parser.ParseError{
		Type:      parser.ReferenceNotFound,
		Message:   "call references non-existent file /p/missing.txt",
		File:      "/p/A.swift",
		Line:      7,
		Directive: "precompileIncludeStr",
		Path:      "/p/missing.txt",
	}

	tests := []struct {
		name       string
		scriptMode bool
		want       string
	}{
		{
			name:       "script mode",
			scriptMode: true,
			want:       "/p/A.swift:7: error : precompileIncludeStr call references non-existent file /p/missing.txt",
		},
		{
			name: "normal mode",
			want: "Error: precompileIncludeStr call at line 7 in /p/A.swift references non-existent file /p/missing.txt",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatResolutionError(parseErr, tt.scriptMode); got != tt.want {
				t.Errorf("got  %q\nwant %q", got, tt.want)
			}
		})
	}
}

func TestRenderPrecompileError(t *testing.T) {
	_, errOut := captureOutput(t)

	plain := errors.New("boom")
	if got := renderPrecompileError(plain, false); got != plain {
		t.Errorf("non-resolution error should pass through, got %v", got)
	}
	if errOut.Len() != 0 {
		t.Errorf("unexpected stderr output: %q", errOut.String())
	}

	parseErr := &parser.ParseError{Message: "call references non-existent file x", File: "f", Line: 1, Directive: "precompileIncludeData"}
	wrapped := app.NewAppError(app.ResolutionFailed, "unresolvable", parseErr)
	got := renderPrecompileError(wrapped, true)

	var reported *reportedError
	if !errors.As(got, &reported) {
		t.Fatalf("expected reportedError, got %T", got)
	}
	if !errors.Is(got, parseErr) {
		t.Error("reportedError should unwrap to the ParseError")
	}
	if errOut.String() != "f:1: error : precompileIncludeData call references non-existent file x\n" {
		t.Errorf("stderr = %q", errOut.String())
	}
}

func TestPrintHelpers(t *testing.T) {
	out, errOut := captureOutput(t)

	printSuccess("done")
	printInfo("info")
	printWarning("careful")
	printError(errors.New("bad"))

	if out.String() != "success: done\ninfo\n" {
		t.Errorf("stdout = %q", out.String())
	}
	if errOut.String() != "warning: careful\nerror: bad\n" {
		t.Errorf("stderr = %q", errOut.String())
	}

	out.Reset()
	errOut.Reset()
	globalQuiet = true
	printSuccess("hidden")
	printInfo("hidden")
	printErrorMsg("shown")
	if out.Len() != 0 {
		t.Errorf("quiet mode printed %q", out.String())
	}
	if errOut.String() != "error: shown\n" {
		t.Errorf("stderr = %q", errOut.String())
	}
}

func TestConfigureColor(t *testing.T) {
	saved := color.NoColor
	t.Cleanup(func() { color.NoColor = saved })

	tests := []struct {
		noColor  bool
		terminal bool
		want     bool
	}{
		{false, true, false},
		{true, true, true},
		{false, false, true},
	}
	for _, tt := range tests {
		configureColor(tt.noColor, tt.terminal)
		if color.NoColor != tt.want {
			t.Errorf("configureColor(%v, %v): NoColor = %v, want %v", tt.noColor, tt.terminal, color.NoColor, tt.want)
		}
	}
}

func TestValidateAliasToken(t *testing.T) {
	existing := []model.AliasEntry{{Token: "$Assets", Target: "assets"}}
	tests := []struct {
		token   string
		wantErr bool
	}{
		{"$Images", false},
		{"", true},
		{"   ", true},
		{`$"q`, true},
		{"$Assets", true},
	}
	for _, tt := range tests {
		err := validateAliasToken(tt.token, existing)
		if (err != nil) != tt.wantErr {
			t.Errorf("validateAliasToken(%q) error = %v, wantErr %v", tt.token, err, tt.wantErr)
		}
	}

	validator := aliasTokenValidator(nil)
	if err := validator(42); err == nil {
		t.Error("validator should reject non-string values")
	}
}

func TestSplitDirList(t *testing.T) {
	sep := string(os.PathListSeparator)
	got := splitDirList("Sources" + sep + " " + sep + "Tests ")
	if strings.Join(got, ",") != "Sources,Tests" {
		t.Errorf("splitDirList() = %v", got)
	}
	if splitDirList("") != nil {
		t.Error("empty list should yield no dirs")
	}
}

func TestValidatePaths(t *testing.T) {
	if err := ValidateOutputPath(""); err == nil {
		t.Error("empty output path should fail")
	}
	if err := ValidateOutputPath("Precompiled.swift"); err != nil {
		t.Errorf("ValidateOutputPath() error = %v", err)
	}
	if err := ValidateConfigPath(" "); err == nil {
		t.Error("blank config path should fail")
	}
}

func TestCommands(t *testing.T) {
	out, _ := captureOutput(t)
	root := t.TempDir()
	src := filepath.Join(root, "Sources")
	if err := os.MkdirAll(src, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(src, "A.swift"), []byte(`precompileIncludeStr("a.txt")`), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(src, "a.txt"), []byte("hello"), 0644); err != nil {
		t.Fatal(err)
	}
	outFile := filepath.Join(root, "Precompiled.swift")
	configFile := filepath.Join(root, "swift-precompiled.toml")

	run := func(args ...string) error {
		rootCmd.SetArgs(args)
		return rootCmd.Execute()
	}

	if err := run("init", "--config", configFile); err != nil {
		t.Fatalf("init error = %v", err)
	}
	if !strings.Contains(out.String(), "success: Created config file at "+configFile) {
		t.Errorf("init output = %q", out.String())
	}
	if err := run("init", "--config", configFile); err == nil {
		t.Error("second init should fail")
	}

	out.Reset()
	if err := run("precompile", src, "-o", outFile, "--config", configFile); err != nil {
		t.Fatalf("precompile error = %v", err)
	}
	if !strings.HasPrefix(out.String(), "success: Precompiled 1 calls in ") ||
		!strings.Contains(out.String(), "add "+outFile+" to your Xcode build phase") {
		t.Errorf("precompile output = %q", out.String())
	}
	if _, err := os.Stat(outFile); err != nil {
		t.Errorf("output not written: %v", err)
	}

	out.Reset()
	if err := run("clean", "-o", outFile); err != nil {
		t.Fatalf("clean error = %v", err)
	}
	if _, err := os.Stat(outFile); !os.IsNotExist(err) {
		t.Error("clean did not remove the output")
	}
	err := run("clean", "-o", outFile)
	var appErr *app.AppError
	if !errors.As(err, &appErr) || appErr.Type != app.CleanTargetMissing {
		t.Errorf("clean of missing file error = %v", err)
	}
}
