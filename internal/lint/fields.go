package lint

import (
	"fmt"
	"strings"

	"github.com/specdevagent/specdev/internal/metadata"
)

// ValidateFields checks one metadata document against the schema registry.
// Every applicable check runs even when an earlier one fails, so a single
// invocation surfaces the complete defect list. Issues are emitted in schema
// declaration order (name, description, version, agents by index, documents)
// so identical input always yields identical report ordering.
func ValidateFields(doc *metadata.Document, schema metadata.Schema) []Issue {
	var issues []Issue
	raw := doc.Raw()

	issues = append(issues, checkName(raw, schema)...)
	issues = append(issues, checkDescription(raw, schema)...)
	issues = append(issues, checkVersion(raw)...)
	issues = append(issues, checkAgents(raw, schema)...)
	issues = append(issues, checkDocumentRefs(raw, schema)...)

	return issues
}

func checkName(raw map[string]any, schema metadata.Schema) []Issue {
	return checkBoundedString(raw, "name", schema.MinNameLen)
}

func checkDescription(raw map[string]any, schema metadata.Schema) []Issue {
	return checkBoundedString(raw, "description", schema.MinDescriptionLen)
}

// checkBoundedString verifies presence, string type, and minimum trimmed
// length of a top-level text field.
func checkBoundedString(raw map[string]any, field string, minLen int) []Issue {
	v, ok := raw[field]
	if !ok {
		return []Issue{missingField(field)}
	}
	s, ok := v.(string)
	if !ok {
		return []Issue{wrongType(field, "string")}
	}
	if len(strings.TrimSpace(s)) < minLen {
		return []Issue{{
			FieldPath: field,
			Code:      CodeFieldLength,
			Message:   fmt.Sprintf("field '%s' must be at least %d characters", field, minLen),
			Severity:  SeverityError,
		}}
	}
	return nil
}

func checkVersion(raw map[string]any) []Issue {
	v, ok := raw["version"]
	if !ok {
		return []Issue{missingField("version")}
	}
	s, ok := v.(string)
	if !ok {
		return []Issue{wrongType("version", "string")}
	}
	// Semantic-version shaped, not strictly parsed.
	if strings.Count(s, ".") != 2 || strings.TrimSpace(s) == "" {
		return []Issue{{
			FieldPath: "version",
			Code:      CodeVersionFormat,
			Message:   fmt.Sprintf("field 'version' should follow semantic versioning (e.g. 0.1.0), got '%s'", s),
			Severity:  SeverityWarning,
		}}
	}
	return nil
}

func checkAgents(raw map[string]any, schema metadata.Schema) []Issue {
	v, ok := raw["agents"]
	if !ok {
		return []Issue{missingField("agents")}
	}
	list, ok := v.([]any)
	if !ok {
		return []Issue{wrongType("agents", "array")}
	}
	if len(list) == 0 {
		return []Issue{{
			FieldPath: "agents",
			Code:      CodeFieldLength,
			Message:   "field 'agents' must declare at least one agent",
			Severity:  SeverityError,
		}}
	}

	var issues []Issue
	seenIDs := map[string]bool{}
	for i, entry := range list {
		path := fmt.Sprintf("agents[%d]", i)
		agent, ok := entry.(map[string]any)
		if !ok {
			issues = append(issues, wrongType(path, "object"))
			continue
		}
		issues = append(issues, checkAgentID(agent, path, schema, seenIDs)...)
		issues = append(issues, checkAgentRole(agent, path, schema)...)
		issues = append(issues, checkAgentResponsibilities(agent, path)...)
	}
	return issues
}

func checkAgentID(agent map[string]any, path string, schema metadata.Schema, seenIDs map[string]bool) []Issue {
	idPath := path + ".id"
	v, ok := agent["id"]
	if !ok {
		return []Issue{missingField(idPath)}
	}
	id, ok := v.(string)
	if !ok {
		return []Issue{wrongType(idPath, "string")}
	}

	var issues []Issue
	if !schema.AgentIDPattern.MatchString(strings.TrimSpace(id)) {
		issues = append(issues, Issue{
			FieldPath: idPath,
			Code:      CodeAgentIDPattern,
			Message:   fmt.Sprintf("agent id '%s' must be kebab-case (lowercase alphanumerics separated by single hyphens)", id),
			Severity:  SeverityError,
		})
	}
	if seenIDs[id] {
		issues = append(issues, Issue{
			FieldPath: idPath,
			Code:      CodeAgentDuplicateID,
			Message:   fmt.Sprintf("agent id '%s' is declared more than once", id),
			Severity:  SeverityError,
		})
	}
	seenIDs[id] = true
	return issues
}

func checkAgentRole(agent map[string]any, path string, schema metadata.Schema) []Issue {
	rolePath := path + ".role"
	v, ok := agent["role"]
	if !ok {
		return []Issue{missingField(rolePath)}
	}
	role, ok := v.(string)
	if !ok {
		return []Issue{wrongType(rolePath, "string")}
	}
	if !schema.AllowsRole(role) {
		return []Issue{{
			FieldPath: rolePath,
			Code:      CodeAgentRole,
			Message:   fmt.Sprintf("agent role '%s' must be one of: %s", role, strings.Join(schema.AgentRoles, ", ")),
			Severity:  SeverityError,
		}}
	}
	return nil
}

func checkAgentResponsibilities(agent map[string]any, path string) []Issue {
	respPath := path + ".responsibilities"
	v, ok := agent["responsibilities"]
	if !ok {
		return []Issue{missingField(respPath)}
	}
	list, ok := v.([]any)
	if !ok {
		return []Issue{wrongType(respPath, "array")}
	}
	if len(list) == 0 {
		return []Issue{{
			FieldPath: respPath,
			Code:      CodeAgentResponsibilities,
			Message:   fmt.Sprintf("field '%s' must declare at least one responsibility", respPath),
			Severity:  SeverityError,
		}}
	}

	var issues []Issue
	for j, entry := range list {
		s, ok := entry.(string)
		if !ok || strings.TrimSpace(s) == "" {
			issues = append(issues, Issue{
				FieldPath: fmt.Sprintf("%s[%d]", respPath, j),
				Code:      CodeAgentResponsibilities,
				Message:   "each responsibility must be a non-empty string",
				Severity:  SeverityError,
			})
		}
	}
	return issues
}

func checkDocumentRefs(raw map[string]any, schema metadata.Schema) []Issue {
	v, ok := raw["documents"]
	if !ok {
		return []Issue{missingField("documents")}
	}
	docs, ok := v.(map[string]any)
	if !ok {
		return []Issue{wrongType("documents", "object")}
	}

	// One pass in schema-declaration order: each required key is reported
	// as missing or checked in place, then extra keys follow sorted.
	var issues []Issue
	for _, key := range schema.RequiredDocuments {
		if _, ok := docs[key]; !ok {
			issues = append(issues, Issue{
				FieldPath: "documents." + key,
				Code:      CodeDocumentKeyMissing,
				Message:   fmt.Sprintf("documents mapping is missing required key '%s'", key),
				Severity:  SeverityError,
			})
			continue
		}
		issues = append(issues, checkDocumentValue(key, docs[key], schema)...)
	}
	for _, key := range metadata.SortedDocumentKeys(docs, schema.RequiredDocuments) {
		if isKnownDocumentKey(key, schema) {
			continue
		}
		issues = append(issues, checkDocumentValue(key, docs[key], schema)...)
	}
	return issues
}

func checkDocumentValue(key string, v any, schema metadata.Schema) []Issue {
	keyPath := "documents." + key
	value, ok := v.(string)
	if !ok || strings.TrimSpace(value) == "" {
		return []Issue{{
			FieldPath: keyPath,
			Code:      CodeFieldType,
			Message:   fmt.Sprintf("document reference '%s' must be a non-empty path string", key),
			Severity:  SeverityError,
		}}
	}

	var issues []Issue
	if schema.RequiresMarkdown(key) && !hasMarkdownExtension(value) {
		issues = append(issues, Issue{
			FieldPath: keyPath,
			Code:      CodeDocumentExtension,
			Message:   fmt.Sprintf("document '%s' must reference a markdown file, got '%s'", key, value),
			Severity:  SeverityError,
		})
	}
	if !isKnownDocumentKey(key, schema) {
		issues = append(issues, Issue{
			FieldPath: keyPath,
			Code:      CodeDocumentUnexpectedKey,
			Message:   fmt.Sprintf("documents mapping includes unexpected key '%s'", key),
			Severity:  SeverityWarning,
		})
	}
	return issues
}

func hasMarkdownExtension(path string) bool {
	return strings.HasSuffix(path, ".md") || strings.HasSuffix(path, ".markdown")
}

func isKnownDocumentKey(key string, schema metadata.Schema) bool {
	for _, k := range schema.RequiredDocuments {
		if key == k {
			return true
		}
	}
	return false
}

func missingField(path string) Issue {
	return Issue{
		FieldPath: path,
		Code:      CodeMissingField,
		Message:   fmt.Sprintf("missing required field '%s'", path),
		Severity:  SeverityError,
	}
}

func wrongType(path, expected string) Issue {
	return Issue{
		FieldPath: path,
		Code:      CodeFieldType,
		Message:   fmt.Sprintf("field '%s' must be a %s", path, expected),
		Severity:  SeverityError,
	}
}
