// Package fileutil provides file and path utility functions.
package fileutil

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Sentinel errors for file utility operations.
var (
	ErrCreateDirectory = errors.New("cannot create output directory")
)

// File permission constants.
const (
	DirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	FilePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// markdownExtensions lists extensions recognized as Markdown sources.
var markdownExtensions = []string{".md", ".markdown"}

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

// PathExists returns true if anything exists at path.
func PathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// IsFilePath returns true if the string looks like a file path rather than a name.
// A string containing path separators (/, \) is treated as a path.
//
// Examples:
//   - "site" -> false (name)
//   - "./site.yaml" -> true (relative path)
//   - "/etc/md2html.yaml" -> true (absolute)
//   - "C:\md2html.yaml" -> true (Windows)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// IsMarkdown reports whether path has a Markdown extension (case-insensitive).
func IsMarkdown(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, m := range markdownExtensions {
		if ext == m {
			return true
		}
	}
	return false
}

// ReplaceExtension swaps the extension of path for ext (which includes the dot).
func ReplaceExtension(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}

// ReadText reads a whole text file. UTF-8 is assumed; a byte order mark
// selects UTF-8 or UTF-16 explicitly and is removed from the result.
// Input without a BOM that is not valid UTF-8 is rejected with
// encoding.ErrInvalidUTF8 rather than replaced.
func ReadText(path string) (string, error) {
	f, err := os.Open(path) // #nosec G304 -- path is user-provided input
	if err != nil {
		return "", err
	}
	defer func() { _ = f.Close() }()

	return DecodeText(f)
}

// DecodeText decodes r as described for ReadText.
func DecodeText(r io.Reader) (string, error) {
	decoder := unicode.BOMOverride(encoding.UTF8Validator)
	data, err := io.ReadAll(transform.NewReader(r, decoder))
	if err != nil {
		return "", fmt.Errorf("decoding text: %w", err)
	}
	return string(data), nil
}

// WriteFileAtomic writes content to path through a temporary file in the
// same directory, then renames it into place. A failed write leaves any
// existing file at path untouched and no partial file behind.
func WriteFileAtomic(path string, content []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, DirPermissions); err != nil {
		return fmt.Errorf("%w: %w", ErrCreateDirectory, err)
	}

	tmpFile, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	cleanup := func() { _ = os.Remove(tmpPath) }

	if _, writeErr := tmpFile.Write(content); writeErr != nil {
		_ = tmpFile.Close()
		cleanup()
		return fmt.Errorf("writing temp file: %w", writeErr)
	}

	if closeErr := tmpFile.Close(); closeErr != nil {
		cleanup()
		return fmt.Errorf("closing temp file: %w", closeErr)
	}

	// #nosec G302 -- HTML output is meant to be readable
	if err := os.Chmod(tmpPath, FilePermissions); err != nil {
		cleanup()
		return fmt.Errorf("setting permissions: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		cleanup()
		return fmt.Errorf("renaming temp file: %w", err)
	}

	return nil
}
