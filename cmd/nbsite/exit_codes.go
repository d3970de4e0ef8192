package main

import (
	"errors"
	"os"

	nbsite "github.com/alnah/go-nbsite"
	"github.com/alnah/go-nbsite/internal/config"
	"github.com/alnah/go-nbsite/internal/fileutil"
)

// Exit codes for nbsite CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful build
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or site description
	ExitIO      = 3 // Input not found, output not writable
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, fileutil.ErrNotFound) ||
		errors.Is(err, ErrNoNotebooksDir) ||
		errors.Is(err, ErrNoReport) ||
		errors.Is(err, ErrReadReport) ||
		errors.Is(err, ErrOutputDir) ||
		errors.Is(err, ErrWritePage) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrUnknownCommand) ||
		errors.Is(err, ErrConfigExists) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrFieldRequired) ||
		errors.Is(err, nbsite.ErrEmptySite) ||
		errors.Is(err, nbsite.ErrInvalidNotebook) ||
		errors.Is(err, nbsite.ErrInvalidSection) ||
		errors.Is(err, nbsite.ErrDuplicatePageID) ||
		errors.Is(err, nbsite.ErrDuplicateSection) ||
		errors.Is(err, nbsite.ErrInvalidRightPanel) ||
		errors.Is(err, nbsite.ErrInvalidAssetPath) ||
		errors.Is(err, nbsite.ErrTemplateSetMissing) ||
		errors.Is(err, nbsite.ErrPageRender) {
		return ExitUsage
	}

	return ExitGeneral
}
