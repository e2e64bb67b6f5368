package errors

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"os"
)

// CLIErrorAdapter handles error presentation and exit code determination for the CLI.
type CLIErrorAdapter struct {
	verbose bool
	logger  *slog.Logger
}

// NewCLIErrorAdapter creates a new CLI error adapter.
func NewCLIErrorAdapter(verbose bool, logger *slog.Logger) *CLIErrorAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CLIErrorAdapter{
		verbose: verbose,
		logger:  logger,
	}
}

// ExitCodeFor determines the appropriate exit code for an error.
func (a *CLIErrorAdapter) ExitCodeFor(err error) int {
	if err == nil {
		return 0
	}

	var pe *PetalError
	if stderrors.As(err, &pe) {
		return a.exitCodeFromPetal(pe)
	}

	return 1
}

// exitCodeFromPetal maps PetalError to exit codes.
func (a *CLIErrorAdapter) exitCodeFromPetal(err *PetalError) int {
	switch err.Category {
	case CategoryValidation:
		return 2 // Invalid usage
	case CategoryConfig:
		return 7 // Configuration error
	case CategoryContent, CategoryMetadata:
		return 4 // Missing or malformed source document
	case CategoryConvert, CategoryTemplate, CategoryRender, CategoryIndex, CategoryFileSystem:
		return 11 // Build error
	case CategoryInternal:
		return 10 // Internal error
	default:
		return 1 // General error
	}
}

// FormatError formats an error for user-friendly display.
func (a *CLIErrorAdapter) FormatError(err error) string {
	if err == nil {
		return ""
	}

	var pe *PetalError
	if stderrors.As(err, &pe) {
		return a.formatPetal(pe)
	}

	return fmt.Sprintf("Error: %v", err)
}

// formatPetal formats a PetalError for display. The resource context (path,
// name, kind) is appended so a fatal message names the missing resource.
func (a *CLIErrorAdapter) formatPetal(err *PetalError) string {
	if a.verbose {
		return err.Error()
	}

	message := err.Message
	for _, key := range []string{"path", "name", "kind", "key"} {
		if v, ok := err.Context[key]; ok {
			message = fmt.Sprintf("%s: %v", message, v)
		}
	}

	switch err.Category {
	case CategoryConfig, CategoryValidation:
		return message
	default:
		return fmt.Sprintf("%s: %s", err.Category, message)
	}
}

// HandleError processes an error and exits the program with appropriate code.
func (a *CLIErrorAdapter) HandleError(err error) {
	if err == nil {
		return
	}

	exitCode := a.ExitCodeFor(err)
	message := a.FormatError(err)

	if a.shouldLog(err) {
		a.logError(err)
	}

	fmt.Fprintf(os.Stderr, "%s\n", message)
	os.Exit(exitCode)
}

// shouldLog determines if an error should be logged.
func (a *CLIErrorAdapter) shouldLog(err error) bool {
	if a.verbose {
		return true
	}

	var pe *PetalError
	if stderrors.As(err, &pe) {
		return pe.Category == CategoryInternal || pe.Severity == SeverityFatal
	}

	return true
}

// logError logs an error with appropriate level and context.
func (a *CLIErrorAdapter) logError(err error) {
	var pe *PetalError
	if stderrors.As(err, &pe) {
		level := slog.LevelError
		if pe.Severity == SeverityWarning {
			level = slog.LevelWarn
		}
		attrs := []slog.Attr{
			slog.String("category", string(pe.Category)),
		}
		for k, v := range pe.Context {
			attrs = append(attrs, slog.Any(k, v))
		}

		a.logger.LogAttrs(nil, level, pe.Message, attrs...)
		return
	}

	a.logger.Error("Unclassified error", "error", err)
}
