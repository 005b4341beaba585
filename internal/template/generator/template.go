package generator

import (
	_ "embed"
	"os"
)

//go:embed assets/PrecompiledTemplate.swift
var defaultTemplate []byte

// DefaultTemplate returns the built-in Swift template.
func DefaultTemplate() []byte {
	out := make([]byte, len(defaultTemplate))
	copy(out, defaultTemplate)
	return out
}

// LoadTemplate returns the template at path, or the built-in one when path is empty.
func LoadTemplate(path string) ([]byte, error) {
	if path == "" {
		return DefaultTemplate(), nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, newGeneratorError(GeneratorReadFailed,
			"failed to read template",
			path,
			err)
	}
	return content, nil
}
