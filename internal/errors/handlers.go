// Interface-specific error handling for the terminal frontend.
package errors

import (
	"fmt"
	"io"
	"os"
)

// CLIErrorHandler formats errors for terminal display and maps them to
// process exit codes.
type CLIErrorHandler struct {
	Out     io.Writer
	Verbose bool
}

// NewCLIErrorHandler creates a new CLI error handler writing to stderr
func NewCLIErrorHandler(verbose bool) *CLIErrorHandler {
	return &CLIErrorHandler{
		Out:     os.Stderr,
		Verbose: verbose,
	}
}

// Handle prints the error and returns the exit code the process should use.
// A user cancellation is silent and exits with the conventional 130.
func (h *CLIErrorHandler) Handle(err error) int {
	if err == nil {
		return 0
	}
	appErr := GetAppError(err)
	if appErr.Code == ErrCodeCanceled {
		fmt.Fprintln(h.Out, "Canceled.")
		return 130
	}

	fmt.Fprintln(h.Out, h.FormatError(appErr))
	if h.Verbose && appErr.Cause != nil {
		fmt.Fprintf(h.Out, "Caused by: %v\n", appErr.Cause)
	}
	return 1
}

// FormatError formats an error for CLI display
func (h *CLIErrorHandler) FormatError(err error) string {
	appErr := GetAppError(err)

	msg := appErr.Message
	if appErr.Details != "" {
		msg = fmt.Sprintf("%s (%s)", msg, appErr.Details)
	}

	switch appErr.Severity {
	case SeverityWarning:
		return fmt.Sprintf("Warning: %s", msg)
	case SeverityInfo:
		return msg
	default:
		return fmt.Sprintf("Error: %s", msg)
	}
}
