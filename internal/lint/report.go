package lint

// Aggregate merges the three checkers' issue lists into one report.
// Component order is fixed (field, structural, reference) and each list's
// internal ordering is preserved. Nothing is deduplicated across components:
// a missing documents.log entry is a field issue while the same missing file
// on disk is a separate structural issue, and both surface.
func Aggregate(fieldIssues, structuralIssues, referenceIssues []Issue) *Report {
	issues := make([]Issue, 0, len(fieldIssues)+len(structuralIssues)+len(referenceIssues))
	issues = append(issues, fieldIssues...)
	issues = append(issues, structuralIssues...)
	issues = append(issues, referenceIssues...)

	report := &Report{Issues: issues, Passed: true}
	for _, issue := range issues {
		if issue.Severity == SeverityError {
			report.Passed = false
			break
		}
	}
	return report
}
