// Package metadata defines the project metadata document (project.json),
// its parsing, and the schema registry of field-level constraints.
package metadata

// MetadataFileName is the name of the metadata document at the project root.
const MetadataFileName = "project.json"

// ProjectMetadata is the typed shape of a project.json document.
// It is used where a well-formed document is assumed (scaffolding templates,
// status summaries). Validation operates on the raw decoded document instead,
// so that type mismatches surface as issues rather than decode failures.
type ProjectMetadata struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Version     string            `json:"version"`
	Agents      []AgentSpec       `json:"agents"`
	Documents   map[string]string `json:"documents"`
}

// AgentSpec describes one agent registered in the metadata document.
type AgentSpec struct {
	ID               string   `json:"id"`
	Role             string   `json:"role"`
	Responsibilities []string `json:"responsibilities"`
}
