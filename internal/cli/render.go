package cli

import (
	"fmt"
	"io"

	"github.com/specdevagent/specdev/internal/lint"
)

// RenderReport writes the report in the line format consumed by CI:
// one "<severity>: <fieldPath> — <message>" line per issue, then a summary.
func RenderReport(w io.Writer, report *lint.Report) {
	for _, issue := range report.Issues {
		fmt.Fprintln(w, issue.String())
	}

	errors, warnings := report.ErrorCount(), report.WarningCount()
	switch {
	case len(report.Issues) == 0:
		fmt.Fprintln(w, "ok: no issues found")
	case report.Passed:
		fmt.Fprintf(w, "ok: %d warning(s), no errors\n", warnings)
	default:
		fmt.Fprintf(w, "failed: %d error(s), %d warning(s)\n", errors, warnings)
	}
}

// reportExit converts a report verdict into the command's return error.
func reportExit(report *lint.Report) error {
	if report.Passed {
		return nil
	}
	return NewExitError(ExitValidationFailed)
}
