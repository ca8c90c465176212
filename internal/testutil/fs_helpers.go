// Package testutil provides test utilities and helpers for specdev tests.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/specdevagent/specdev/internal/metadata"
	"github.com/specdevagent/specdev/internal/scaffold"
)

// WriteMetadata marshals meta into project.json under root and returns the
// file path.
func WriteMetadata(t *testing.T, root string, meta metadata.ProjectMetadata) string {
	t.Helper()

	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		t.Fatalf("failed to marshal metadata: %v", err)
	}
	return WriteRawMetadata(t, root, data)
}

// WriteRawMetadata writes raw bytes as project.json under root and returns
// the file path. Useful for malformed-document tests.
func WriteRawMetadata(t *testing.T, root string, data []byte) string {
	t.Helper()

	if err := os.MkdirAll(root, 0o755); err != nil {
		t.Fatalf("failed to create project root: %v", err)
	}
	path := filepath.Join(root, metadata.MetadataFileName)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("failed to write project.json: %v", err)
	}
	return path
}

// ValidMetadata returns a metadata document that passes every field check,
// referencing the standard base documents.
func ValidMetadata() metadata.ProjectMetadata {
	return metadata.ProjectMetadata{
		Name:        "Test Project",
		Description: "A project used by the test suite.",
		Version:     "0.1.0",
		Agents: []metadata.AgentSpec{
			{
				ID:               "primary",
				Role:             "orchestrator",
				Responsibilities: []string{"Coordinate the workflow"},
			},
		},
		Documents: map[string]string{
			"project": "project.md",
			"todo":    "todo.md",
			"log":     "development.log",
		},
	}
}

// WriteProject creates a complete initialized project under a temp dir:
// full base structure plus a valid project.json. Returns the project root.
func WriteProject(t *testing.T, meta metadata.ProjectMetadata) string {
	t.Helper()

	root := t.TempDir()
	if _, err := scaffold.Init(root, true); err != nil {
		t.Fatalf("failed to scaffold project: %v", err)
	}
	WriteMetadata(t, root, meta)
	return root
}
