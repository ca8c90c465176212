// Package lint implements the project validation engine: field-level checks
// of the metadata document, structural checks of the project tree, document
// reference resolution, and aggregation into a deterministic report.
package lint

import "fmt"

// Severity classifies how an issue affects the verdict. Only error-severity
// issues fail a report.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Code is a stable taxonomy tag carried by every issue so tooling can filter
// or suppress categories without matching message text.
type Code string

const (
	// Field validator codes.
	CodeMissingField          Code = "MISSING_FIELD"
	CodeFieldType             Code = "FIELD_TYPE"
	CodeFieldLength           Code = "FIELD_LENGTH"
	CodeVersionFormat         Code = "VERSION_FORMAT"
	CodeAgentIDPattern        Code = "AGENT_ID_PATTERN"
	CodeAgentRole             Code = "AGENT_ROLE"
	CodeAgentResponsibilities Code = "AGENT_RESPONSIBILITIES"
	CodeAgentDuplicateID      Code = "AGENT_DUPLICATE_ID"
	CodeDocumentKeyMissing    Code = "DOCUMENT_KEY_MISSING"
	CodeDocumentExtension     Code = "DOCUMENT_EXTENSION"
	CodeDocumentUnexpectedKey Code = "DOCUMENT_UNEXPECTED_KEY"

	// Structural checker codes.
	CodeMissingDirectory Code = "MISSING_DIRECTORY"
	CodeMissingFile      Code = "MISSING_FILE"
	CodeWrongEntryType   Code = "WRONG_ENTRY_TYPE"

	// Reference resolver codes.
	CodeDocumentNotFound Code = "DOCUMENT_NOT_FOUND"
)

// Issue is one reported defect.
type Issue struct {
	// FieldPath locates the offending field in the metadata document
	// (e.g. "agents[1].role"), or the offending relative path for
	// structural issues.
	FieldPath string   `json:"fieldPath"`
	Code      Code     `json:"code"`
	Message   string   `json:"message"`
	Severity  Severity `json:"severity"`
}

// String renders the issue in the report line format.
func (i Issue) String() string {
	return fmt.Sprintf("%s: %s — %s", i.Severity, i.FieldPath, i.Message)
}

// Report is the aggregated outcome of one validation run.
type Report struct {
	Issues []Issue `json:"issues"`
	// Passed is true iff no issue has error severity.
	Passed bool `json:"passed"`
}

// ErrorCount returns the number of error-severity issues.
func (r *Report) ErrorCount() int {
	n := 0
	for _, issue := range r.Issues {
		if issue.Severity == SeverityError {
			n++
		}
	}
	return n
}

// WarningCount returns the number of warning-severity issues.
func (r *Report) WarningCount() int {
	n := 0
	for _, issue := range r.Issues {
		if issue.Severity == SeverityWarning {
			n++
		}
	}
	return n
}

// FatalError is an unrecoverable condition encountered before or during a
// run: a missing project root or an unexpected I/O failure. It aborts the
// run without producing a report and maps to exit code 2.
type FatalError struct {
	Path string
	Err  error
}

func (e *FatalError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %v", e.Path, e.Err)
	}
	return e.Err.Error()
}

func (e *FatalError) Unwrap() error {
	return e.Err
}
