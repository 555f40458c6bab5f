package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/alnah/go-md2html/internal/config"
	"github.com/alnah/go-md2html/internal/fileutil"
	"github.com/alnah/go-md2html/internal/hints"
)

// Sentinel errors for file discovery.
var (
	ErrDirectoryOutput    = errors.New("directory input needs a directory output")
	ErrNoMarkdownFiles    = errors.New("no markdown files found")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
)

// htmlExt is the extension of every generated file.
const htmlExt = ".html"

// FileToConvert represents a single file to process.
type FileToConvert struct {
	InputPath  string
	OutputPath string
}

// discoverFiles lists the files to convert. A file input maps to outputPath
// itself, or to outputPath/<name>.html when outputPath is an existing
// directory. A directory input maps every Markdown file below it into
// outputPath, mirroring relative paths.
func discoverFiles(inputPath, outputPath string) ([]FileToConvert, error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		out := outputPath
		if fileutil.DirExists(outputPath) {
			out = filepath.Join(outputPath, fileutil.ReplaceExtension(filepath.Base(inputPath), htmlExt))
		}
		return []FileToConvert{{InputPath: inputPath, OutputPath: out}}, nil
	}

	if fileutil.FileExists(outputPath) {
		return nil, fmt.Errorf("%w: %s is a file%s", ErrDirectoryOutput, outputPath, hints.ForDirectoryOutput())
	}

	var files []FileToConvert
	err = filepath.WalkDir(inputPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() || !fileutil.IsMarkdown(path) {
			return nil
		}
		files = append(files, FileToConvert{
			InputPath:  path,
			OutputPath: resolveOutputPath(path, inputPath, outputPath),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoMarkdownFiles, inputPath)
	}
	return files, nil
}

// resolveOutputPath mirrors inputPath's location under baseInputDir into outputDir.
func resolveOutputPath(inputPath, baseInputDir, outputDir string) string {
	relPath, err := filepath.Rel(baseInputDir, inputPath)
	if err != nil {
		relPath = filepath.Base(inputPath)
	}
	return filepath.Join(outputDir, fileutil.ReplaceExtension(relPath, htmlExt))
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > config.MaxWorkers {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, config.MaxWorkers)
	}
	return nil
}
