package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Validate validates a configuration that did not come from a file.
func Validate(config *Config) error {
	return NewLoader().Validate(config)
}

// validateConfig checks values that parsed correctly but cannot be used.
func validateConfig(file string, config *Config) error {
	if config == nil {
		return NewConfigError(ConfigValidationFailed, file, "configuration cannot be nil")
	}

	for i, dir := range config.Dirs {
		if strings.TrimSpace(dir) == "" {
			return NewConfigErrorWithField(ConfigValidationFailed, file,
				fmt.Sprintf("dirs[%d]", i), "directory cannot be empty")
		}
	}

	for _, alias := range config.PathAliases {
		if alias.Token == "" {
			return NewConfigErrorWithField(ConfigValidationFailed, file,
				aliasesKey, "alias token cannot be empty")
		}
	}

	if err := validatePatterns(file, "include", config.Include); err != nil {
		return err
	}
	if err := validatePatterns(file, "exclude", config.Exclude); err != nil {
		return err
	}

	if config.Template != "" && strings.TrimSpace(config.Template) == "" {
		return NewConfigErrorWithField(ConfigValidationFailed, file, "template", "template path cannot be blank")
	}

	return nil
}

// validatePatterns rejects malformed glob patterns.
func validatePatterns(file, field string, patterns []string) error {
	for i, pattern := range patterns {
		if pattern == "" || !doublestar.ValidatePattern(filepath.ToSlash(pattern)) {
			return NewConfigErrorWithField(ConfigValidationFailed, file,
				fmt.Sprintf("%s[%d]", field, i),
				fmt.Sprintf("invalid glob pattern: %q", pattern))
		}
	}
	return nil
}
