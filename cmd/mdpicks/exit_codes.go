package main

import (
	"context"
	"errors"
	"os"

	mdpicks "github.com/alnah/go-mdpicks"
	"github.com/alnah/go-mdpicks/internal/assets"
	"github.com/alnah/go-mdpicks/internal/config"
	"github.com/alnah/go-mdpicks/internal/hints"
)

// Exit codes for the mdpicks CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful conversion
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, input documents or audit
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
		errors.Is(err, ErrReadCSS) ||
		errors.Is(err, ErrWriteHTML) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrNoMarkdownFiles) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrNoCommand) ||
		errors.Is(err, ErrUnknownCommand) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, ErrOutputNotDir) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, mdpicks.ErrEmptyMarkdown) ||
		errors.Is(err, mdpicks.ErrInvalidFrontmatter) ||
		errors.Is(err, mdpicks.ErrAudit) ||
		errors.Is(err, mdpicks.ErrStyleNotFound) ||
		errors.Is(err, mdpicks.ErrInvalidAssetPath) ||
		errors.Is(err, assets.ErrInvalidAssetName) {
		return ExitUsage
	}

	return ExitGeneral
}

// formatError renders err with an actionable hint when one applies.
// Batch errors carry none: each failed document was reported with its own.
func formatError(err error) string {
	var batchErr *BatchError
	if errors.As(err, &batchErr) {
		return err.Error()
	}
	return err.Error() + hintFor(err)
}

// hintFor returns the hint for err, or "" when none applies.
// Config-not-found hints are attached where the config name is known.
func hintFor(err error) string {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return hints.ForTimeout()
	case errors.Is(err, mdpicks.ErrInvalidFrontmatter):
		return hints.ForFrontmatter()
	case errors.Is(err, mdpicks.ErrAudit):
		return hints.ForAudit()
	case errors.Is(err, mdpicks.ErrStyleNotFound):
		return hints.ForStyleNotFound(assets.NewEmbeddedLoader().Styles())
	case errors.Is(err, ErrWriteHTML):
		return hints.ForOutputDirectory()
	}
	return ""
}
