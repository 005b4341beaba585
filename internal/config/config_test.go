package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tacogips/swift-precompiled/internal/template/model"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func aliasString(entries []model.AliasEntry) string {
	parts := make([]string, len(entries))
	for i, e := range entries {
		parts[i] = e.Token + "=" + e.Target
	}
	return strings.Join(parts, ",")
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg == nil {
		t.Fatal("DefaultConfig returned nil")
	}
	if cfg.Dirs == nil || len(cfg.Dirs) != 0 {
		t.Errorf("Dirs = %v, want empty", cfg.Dirs)
	}
	if len(cfg.PathAliases) != 0 {
		t.Errorf("PathAliases = %v, want empty", cfg.PathAliases)
	}
	if got := cfg.IncludePatterns(); len(got) != 1 || got[0] != model.DefaultSourcePattern {
		t.Errorf("IncludePatterns() = %v", got)
	}
	if DefaultConfigPath() != model.DefaultConfigFile {
		t.Errorf("DefaultConfigPath() = %q", DefaultConfigPath())
	}
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"swift-precompiled.toml", FormatTOML},
		{"config.yaml", FormatYAML},
		{"config.YML", FormatYAML},
		{"noext", FormatTOML},
	}
	for _, tt := range tests {
		if got := DetectFormat(tt.path); got != tt.want {
			t.Errorf("DetectFormat(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestLoadTOML(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		wantDirs    []string
		wantAliases string
		wantInclude []string
	}{
		{
			name:        "section aliases keep order",
			content:     "dirs = [\"Sources\"]\n\n[path_aliases]\n\"$Zeta\" = \"z\"\n\"$Alpha\" = \"a\"\n",
			wantDirs:    []string{"Sources"},
			wantAliases: "$Zeta=z,$Alpha=a",
		},
		{
			name:        "inline table aliases",
			content:     "path_aliases = { \"$B\" = \"b\", \"$A\" = \"a\" }\n",
			wantAliases: "$B=b,$A=a",
		},
		{
			name:        "dotted aliases",
			content:     "path_aliases.\"$X\" = \"x\"\n",
			wantAliases: "$X=x",
		},
		{
			name:        "non-string aliases ignored",
			content:     "[path_aliases]\n\"$N\" = 3\n\"$S\" = \"s\"\n\"$T\" = true\n",
			wantAliases: "$S=s",
		},
		{
			name:        "include and exclude",
			content:     "include = [\"Sources/**/*.swift\"]\nexclude = [\"**/Generated/**\"]\n",
			wantInclude: []string{"Sources/**/*.swift"},
		},
		{
			name:    "empty document",
			content: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, "swift-precompiled.toml", tt.content)
			cfg, err := NewLoader().Load(path)
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if strings.Join(cfg.Dirs, ",") != strings.Join(tt.wantDirs, ",") {
				t.Errorf("Dirs = %v, want %v", cfg.Dirs, tt.wantDirs)
			}
			if got := aliasString(cfg.PathAliases); got != tt.wantAliases {
				t.Errorf("PathAliases = %q, want %q", got, tt.wantAliases)
			}
			if strings.Join(cfg.Include, ",") != strings.Join(tt.wantInclude, ",") {
				t.Errorf("Include = %v, want %v", cfg.Include, tt.wantInclude)
			}
		})
	}
}

func TestLoadYAML(t *testing.T) {
	content := `dirs:
  - Sources
  - Tests
path_aliases:
  "$Second": second
  "$First": first
  "$Number": 12
exclude:
  - "**/Generated/**"
`
	path := writeConfig(t, "swift-precompiled.yaml", content)
	cfg, err := NewLoader().Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if strings.Join(cfg.Dirs, ",") != "Sources,Tests" {
		t.Errorf("Dirs = %v", cfg.Dirs)
	}
	if got := aliasString(cfg.PathAliases); got != "$Second=second,$First=first" {
		t.Errorf("PathAliases = %q", got)
	}
	if len(cfg.Exclude) != 1 || cfg.Exclude[0] != "**/Generated/**" {
		t.Errorf("Exclude = %v", cfg.Exclude)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		content  string
		wantType ConfigErrorType
		wantLine bool
	}{
		{"toml syntax", "c.toml", "dirs = [\n", ConfigInvalid, true},
		{"toml wrong type", "c.toml", "dirs = \"Sources\"\n", ConfigInvalid, false},
		{"yaml syntax", "c.yaml", "dirs: [\n", ConfigInvalid, false},
		{"empty dir entry", "c.toml", "dirs = [\"\"]\n", ConfigValidationFailed, false},
		{"empty alias token", "c.toml", "[path_aliases]\n\"\" = \"x\"\n", ConfigValidationFailed, false},
		{"bad include", "c.toml", "include = [\"[abc\"]\n", ConfigValidationFailed, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.file, tt.content)
			_, err := NewLoader().Load(path)
			var cfgErr *ConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("expected ConfigError, got %v", err)
			}
			if cfgErr.Type != tt.wantType {
				t.Errorf("Type = %v, want %v (%v)", cfgErr.Type, tt.wantType, err)
			}
			if tt.wantLine && cfgErr.Line == 0 {
				t.Errorf("expected a line number in %v", err)
			}
		})
	}
}

func TestLoadOrDefault(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "absent.toml")
	cfg, err := NewLoader().LoadOrDefault(missing)
	if err != nil {
		t.Fatalf("LoadOrDefault() error = %v", err)
	}
	if len(cfg.Dirs) != 0 || len(cfg.PathAliases) != 0 {
		t.Errorf("expected defaults, got %+v", cfg)
	}

	_, err = NewLoader().Load(missing)
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) || cfgErr.Type != ConfigNotFound {
		t.Errorf("Load() error = %v, want ConfigNotFound", err)
	}

	bad := writeConfig(t, "bad.toml", "= nope")
	if _, err := NewLoader().LoadOrDefault(bad); err == nil {
		t.Error("LoadOrDefault() should fail on invalid file")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	cfg := &Config{
		Dirs: []string{"Sources"},
		PathAliases: []model.AliasEntry{
			{Token: "$Zeta", Target: "z/path"},
			{Token: "$Alpha", Target: "a/path"},
		},
		Exclude: []string{"**/Generated/**"},
	}

	for _, name := range []string{"out.toml", "out.yaml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "nested", name)
			if err := Save(path, cfg); err != nil {
				t.Fatalf("Save() error = %v", err)
			}
			loaded, err := NewLoader().Load(path)
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if got := aliasString(loaded.PathAliases); got != "$Zeta=z/path,$Alpha=a/path" {
				t.Errorf("PathAliases = %q", got)
			}
			if strings.Join(loaded.Dirs, ",") != "Sources" {
				t.Errorf("Dirs = %v", loaded.Dirs)
			}
			if strings.Join(loaded.Exclude, ",") != "**/Generated/**" {
				t.Errorf("Exclude = %v", loaded.Exclude)
			}
		})
	}
}

func TestSaveDefaultTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "swift-precompiled.toml")
	if err := Save(path, DefaultConfig()); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if got := string(data); got != "dirs = []\n\n[path_aliases]\n" {
		t.Errorf("default config = %q", got)
	}
}

func TestRootDirs(t *testing.T) {
	cwd := t.TempDir()
	if err := os.Mkdir(filepath.Join(cwd, "Sources"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(cwd, "file.swift"), nil, 0644); err != nil {
		t.Fatal(err)
	}
	abs := t.TempDir()

	cfg := &Config{Dirs: []string{"Sources", "missing", "file.swift", abs, "./Sources/../Sources"}}
	got := cfg.RootDirs(cwd)
	want := []string{filepath.Join(cwd, "Sources"), abs, filepath.Join(cwd, "Sources")}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("RootDirs() = %v, want %v", got, want)
	}
}

func TestResolveTemplate(t *testing.T) {
	tests := []struct {
		template   string
		configPath string
		want       string
	}{
		{"", "/proj/swift-precompiled.toml", ""},
		{"/abs/T.swift", "/proj/swift-precompiled.toml", "/abs/T.swift"},
		{"tmpl/T.swift", "/proj/swift-precompiled.toml", "/proj/tmpl/T.swift"},
	}
	for _, tt := range tests {
		cfg := &Config{Template: tt.template}
		if got := cfg.ResolveTemplate(tt.configPath); got != filepath.FromSlash(tt.want) {
			t.Errorf("ResolveTemplate(%q) = %q, want %q", tt.template, got, tt.want)
		}
	}
}

func TestConfigErrorFormat(t *testing.T) {
	err := &ConfigError{Type: ConfigInvalid, File: "c.toml", Line: 2, Column: 5, Message: "bad"}
	if got := err.Error(); got != "configuration error in c.toml:2:5: bad" {
		t.Errorf("Error() = %q", got)
	}
	err = NewConfigErrorWithField(ConfigValidationFailed, "c.toml", "dirs[0]", "empty")
	if got := err.Error(); got != "configuration error in c.toml [field: dirs[0]]: empty" {
		t.Errorf("Error() = %q", got)
	}
	if ConfigValidationFailed.String() != "ValidationFailed" {
		t.Errorf("String() = %q", ConfigValidationFailed.String())
	}
}
