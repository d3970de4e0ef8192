// Package fileutil provides file and path utility functions.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// File and directory permissions of generated output.
const (
	DirPerm  os.FileMode = 0o750
	FilePerm os.FileMode = 0o644
)

// Sentinel errors for file utility operations.
var (
	ErrNotFound      = errors.New("no candidate path exists")
	ErrEmptyFileName = errors.New("file name cannot be empty")
	ErrUnsafeName    = errors.New("file name contains path separator or null byte")
)

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// DirExists returns true if the path exists and is a directory.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// FindDir returns the first candidate that is an existing directory.
// The error lists every candidate tried.
func FindDir(candidates ...string) (string, error) {
	for _, c := range candidates {
		if DirExists(c) {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrNotFound, strings.Join(candidates, ", "))
}

// FindFile returns the first candidate that is an existing regular file.
// The error lists every candidate tried.
func FindFile(candidates ...string) (string, error) {
	for _, c := range candidates {
		if FileExists(c) {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrNotFound, strings.Join(candidates, ", "))
}

// FirstExistingDir returns the first candidate that is an existing
// directory, or the last candidate when none exists.
func FirstExistingDir(candidates ...string) string {
	if len(candidates) == 0 {
		return ""
	}
	if dir, err := FindDir(candidates...); err == nil {
		return dir
	}
	return candidates[len(candidates)-1]
}

// EnsureDir creates dir and its parents when missing.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, DirPerm); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}
	return nil
}

// ValidateFileName checks that name is a plain file name.
func ValidateFileName(name string) error {
	if name == "" {
		return ErrEmptyFileName
	}
	if strings.ContainsAny(name, "/\\\x00") || name == "." || name == ".." {
		return fmt.Errorf("%w: %q", ErrUnsafeName, name)
	}
	return nil
}

// WriteFile writes content to dir/name through a temporary file renamed in
// place, so readers never observe a partial page.
// Returns the written path and its size in bytes.
func WriteFile(dir, name, content string) (path string, size int64, err error) {
	if err := ValidateFileName(name); err != nil {
		return "", 0, err
	}
	path = filepath.Join(dir, name)

	tmpFile, err := os.CreateTemp(dir, ".nbsite-*.tmp")
	if err != nil {
		return "", 0, fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	cleanup := func() { _ = os.Remove(tmpPath) }

	if _, writeErr := tmpFile.WriteString(content); writeErr != nil {
		_ = tmpFile.Close()
		cleanup()
		return "", 0, fmt.Errorf("writing temp file: %w", writeErr)
	}
	if closeErr := tmpFile.Close(); closeErr != nil {
		cleanup()
		return "", 0, fmt.Errorf("closing temp file: %w", closeErr)
	}
	if chmodErr := os.Chmod(tmpPath, FilePerm); chmodErr != nil {
		cleanup()
		return "", 0, fmt.Errorf("setting permissions: %w", chmodErr)
	}
	if renameErr := os.Rename(tmpPath, path); renameErr != nil {
		cleanup()
		return "", 0, fmt.Errorf("writing %s: %w", path, renameErr)
	}

	return path, int64(len(content)), nil
}

// IsFilePath returns true if the string looks like a file path rather than a name.
// A string containing path separators (/, \) is treated as a path.
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}
