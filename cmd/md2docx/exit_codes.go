package main

import (
	"errors"
	"os"

	md2docx "github.com/MohtashamMurshid/md-to-docx"
	"github.com/MohtashamMurshid/md-to-docx/internal/config"
)

// Exit codes for md2docx CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful conversion
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied
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
		errors.Is(err, ErrReadMarkdown) ||
		errors.Is(err, ErrWriteDOCX) ||
		errors.Is(err, ErrNoInput) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, ErrInvalidDate) ||
		errors.Is(err, md2docx.ErrEmptyInput) ||
		errors.Is(err, md2docx.ErrInvalidDocumentType) ||
		errors.Is(err, md2docx.ErrInvalidAlignment) ||
		errors.Is(err, md2docx.ErrInvalidLineSpacing) ||
		errors.Is(err, md2docx.ErrInvalidPageSize) ||
		errors.Is(err, md2docx.ErrInvalidOrientation) ||
		errors.Is(err, md2docx.ErrInvalidMargin) ||
		errors.Is(err, md2docx.ErrInvalidBreakType) ||
		errors.Is(err, md2docx.ErrInvalidNumberFormat) ||
		errors.Is(err, md2docx.ErrTemplateNotFound) ||
		errors.Is(err, md2docx.ErrInvalidTemplatePath) ||
		errors.Is(err, md2docx.ErrTemplateParse) {
		return ExitUsage
	}

	return ExitGeneral
}
