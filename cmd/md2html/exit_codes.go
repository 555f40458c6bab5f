package main

import (
	"errors"
	"os"

	"github.com/alnah/go-md2html"
	"github.com/alnah/go-md2html/internal/config"
)

// Exit codes for md2html CLI.
// 0 and 1 keep the classic contract (success, usage or missing input);
// custom codes stay below 126.
const (
	ExitSuccess = 0 // Successful conversion
	ExitGeneral = 1 // Wrong argument count, missing input, unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // Read, write, or permission failure
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Argument errors (exit 1), checked first: a missing input is not an I/O failure
	if errors.Is(err, ErrMissingArgs) ||
		errors.Is(err, ErrMissingInput) {
		return ExitGeneral
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrInvalidFlag) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, ErrDirectoryOutput) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, md2html.ErrInvalidDigest) ||
		errors.Is(err, md2html.ErrInvalidMode) ||
		errors.Is(err, md2html.ErrInvalidEngine) ||
		errors.Is(err, md2html.ErrStyleNotFound) ||
		errors.Is(err, md2html.ErrInvalidStyle) ||
		errors.Is(err, md2html.ErrInvalidAssetPath) {
		return ExitUsage
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadMarkdown) ||
		errors.Is(err, ErrReadCSS) ||
		errors.Is(err, md2html.ErrReadStyle) ||
		errors.Is(err, ErrWriteHTML) {
		return ExitIO
	}

	return ExitGeneral
}
