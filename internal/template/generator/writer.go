package generator

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/tacogips/swift-precompiled/internal/debug"
)

// Writer persists generated artifacts.
type Writer interface {
	// WriteFile replaces the file at path with content.
	WriteFile(path string, content []byte, mode os.FileMode) error

	// CreateDir creates a directory and any necessary parent directories.
	CreateDir(path string) error

	// Remove deletes the file at path.
	Remove(path string) error

	// Exists checks if a file or directory exists at the given path.
	Exists(path string) bool
}

// FileWriter implements Writer for filesystem operations.
type FileWriter struct{}

// NewFileWriter creates a new FileWriter.
func NewFileWriter() Writer {
	return &FileWriter{}
}

// WriteFile writes content to a file with the specified permissions.
// Creates parent directories if they don't exist.
// Writes atomically using a temporary file in the same directory and rename,
// so a failed run never leaves a truncated artifact behind.
func (w *FileWriter) WriteFile(path string, content []byte, mode os.FileMode) error {
	debug.Debug("[generator] Writing file: %s (size: %d bytes, mode: %o)", path, len(content), mode)

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := w.CreateDir(dir); err != nil {
			return newGeneratorError(GeneratorWriteFailed,
				"failed to create parent directory",
				path,
				err)
		}
	}

	f, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return newGeneratorError(GeneratorWriteFailed,
			"failed to create temporary file",
			path,
			err)
	}
	tempFile := f.Name()
	debug.Debug("[generator] Created temporary file: %s", tempFile)

	_, err = f.Write(content)
	closeErr := f.Close()

	if err != nil {
		_ = os.Remove(tempFile)
		return newGeneratorError(GeneratorWriteFailed,
			"failed to write file content",
			path,
			err)
	}

	if closeErr != nil {
		_ = os.Remove(tempFile)
		return newGeneratorError(GeneratorWriteFailed,
			"failed to close file",
			path,
			closeErr)
	}

	if err := os.Chmod(tempFile, mode.Perm()); err != nil {
		_ = os.Remove(tempFile)
		return newGeneratorError(GeneratorWriteFailed,
			"failed to set file permissions",
			path,
			err)
	}

	debug.Debug("[generator] Renaming temporary file: %s -> %s", tempFile, path)
	if err := os.Rename(tempFile, path); err != nil {
		_ = os.Remove(tempFile)
		return newGeneratorError(GeneratorWriteFailed,
			"failed to rename temporary file",
			path,
			err)
	}

	debug.Debug("[generator] File written successfully: %s", path)
	return nil
}

// CreateDir creates a directory and any necessary parent directories.
// Uses 0755 permissions for created directories.
func (w *FileWriter) CreateDir(path string) error {
	if err := os.MkdirAll(path, 0755); err != nil {
		return newGeneratorError(GeneratorWriteFailed,
			"failed to create directory",
			path,
			err)
	}
	return nil
}

// Remove deletes the file at path. A missing file is not an error.
func (w *FileWriter) Remove(path string) error {
	debug.Debug("[generator] Removing file: %s", path)
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return newGeneratorError(GeneratorWriteFailed,
			"failed to remove file",
			path,
			err)
	}
	return nil
}

// Exists checks if a file or directory exists at the given path.
func (w *FileWriter) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
