package metadata

import "regexp"

// Schema is the registry of field-level constraints applied to a metadata
// document. It is an immutable static value passed explicitly into the field
// validator so validation runs stay independent and testable in isolation.
type Schema struct {
	// RequiredFields are the top-level fields every document must declare,
	// in reporting order.
	RequiredFields []string

	// MinNameLen and MinDescriptionLen are minimum lengths after trimming
	// surrounding whitespace.
	MinNameLen        int
	MinDescriptionLen int

	// AgentIDPattern is the kebab-case pattern agent ids must match.
	AgentIDPattern *regexp.Regexp

	// AgentRoles is the closed set of allowed agent roles, sorted.
	AgentRoles []string

	// RequiredDocuments are the document keys every metadata document must
	// declare, in reporting order.
	RequiredDocuments []string

	// MarkdownDocuments are the document keys whose paths must carry a
	// markdown extension.
	MarkdownDocuments []string
}

var agentIDPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// DefaultSchema returns the canonical schema registry.
func DefaultSchema() Schema {
	return Schema{
		RequiredFields:    []string{"name", "description", "version", "agents", "documents"},
		MinNameLen:        3,
		MinDescriptionLen: 10,
		AgentIDPattern:    agentIDPattern,
		AgentRoles:        []string{"developer", "orchestrator", "qa", "researcher", "reviewer"},
		RequiredDocuments: []string{"project", "todo", "log"},
		MarkdownDocuments: []string{"project", "todo"},
	}
}

// AllowsRole reports whether role belongs to the schema's role enumeration.
func (s Schema) AllowsRole(role string) bool {
	for _, allowed := range s.AgentRoles {
		if role == allowed {
			return true
		}
	}
	return false
}

// RequiresMarkdown reports whether the document key must reference a
// markdown file.
func (s Schema) RequiresMarkdown(key string) bool {
	for _, k := range s.MarkdownDocuments {
		if key == k {
			return true
		}
	}
	return false
}
