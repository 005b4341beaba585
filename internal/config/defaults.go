package config

import (
	"path/filepath"
	"strings"

	"github.com/tacogips/swift-precompiled/internal/template/model"
)

// DefaultConfig returns the configuration written by init and used when no
// configuration file exists.
func DefaultConfig() *Config {
	return &Config{
		Dirs:        []string{},
		PathAliases: []model.AliasEntry{},
	}
}

// DefaultConfigPath returns the default configuration file path.
func DefaultConfigPath() string {
	return model.DefaultConfigFile
}

// DetectFormat picks the configuration syntax from the file extension.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}
