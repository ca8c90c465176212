package lint

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/specdevagent/specdev/internal/metadata"
)

// ResolveDocuments verifies that each path in the documents mapping resolves
// to an existing regular file under the project root. The check is opt-in:
// when checkDocuments is false no filesystem access happens and no issues
// are returned, so schema-only runs stay environment independent.
//
// Symbolic links are followed; a dangling link is reported as missing.
// Entries that are not non-empty strings are skipped here, the field
// validator already reports them.
func ResolveDocuments(doc *metadata.Document, root string, schema metadata.Schema, checkDocuments bool) ([]Issue, error) {
	if !checkDocuments {
		return nil, nil
	}

	docs, _ := doc.Raw()["documents"].(map[string]any)
	refs := doc.Documents()

	var issues []Issue
	for _, key := range metadata.SortedDocumentKeys(docs, schema.RequiredDocuments) {
		rel, ok := refs[key]
		if !ok || rel == "" {
			continue
		}
		info, err := os.Stat(filepath.Join(root, rel))
		if err != nil {
			if os.IsNotExist(err) {
				issues = append(issues, Issue{
					FieldPath: "documents." + key,
					Code:      CodeDocumentNotFound,
					Message:   fmt.Sprintf("document '%s' references '%s', which does not exist", key, rel),
					Severity:  SeverityError,
				})
				continue
			}
			return nil, &FatalError{Path: rel, Err: err}
		}
		if !info.Mode().IsRegular() {
			issues = append(issues, Issue{
				FieldPath: "documents." + key,
				Code:      CodeDocumentNotFound,
				Message:   fmt.Sprintf("document '%s' references '%s', which is not a regular file", key, rel),
				Severity:  SeverityError,
			})
		}
	}
	return issues, nil
}
