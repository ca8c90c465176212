package metadata

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// ParseError indicates the metadata document could not be read or decoded
// into a JSON object at all. It is a fatal condition: no validation report
// can be produced from an unparsable document.
type ParseError struct {
	Path string // source file, empty for in-memory parses
	Err  error
}

func (e *ParseError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %v", e.Path, e.Err)
	}
	return e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Document is a parsed metadata document. The underlying value is kept as a
// raw JSON object so that validators can report wrong-typed fields as issues
// instead of failing the decode.
type Document struct {
	// Path is the file the document was loaded from, empty for in-memory data.
	Path string

	raw map[string]any
}

// Load reads and parses the metadata document at path.
// A missing or unreadable file, malformed JSON, or a non-object document
// all return a *ParseError.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	doc, err := Parse(data)
	if err != nil {
		if pe, ok := err.(*ParseError); ok {
			pe.Path = path
		}
		return nil, err
	}
	doc.Path = path
	return doc, nil
}

// Parse decodes raw JSON into a Document. Returns a *ParseError if the data
// is not well-formed JSON or the top-level value is not an object.
func Parse(data []byte) (*Document, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &ParseError{Err: fmt.Errorf("invalid JSON: %w", err)}
	}
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, &ParseError{Err: fmt.Errorf("metadata document must be a JSON object")}
	}
	return &Document{raw: obj}, nil
}

// Raw returns the underlying decoded JSON object.
func (d *Document) Raw() map[string]any {
	return d.raw
}

// Field returns the raw value of a top-level field.
func (d *Document) Field(name string) (any, bool) {
	v, ok := d.raw[name]
	return v, ok
}

// StringField returns a top-level field as a string, or "" if the field is
// absent or not a string.
func (d *Document) StringField(name string) string {
	s, _ := d.raw[name].(string)
	return s
}

// Documents returns the string-valued entries of the documents mapping.
// Entries with non-string values are omitted; the field validator reports
// those separately.
func (d *Document) Documents() map[string]string {
	out := map[string]string{}
	m, _ := d.raw["documents"].(map[string]any)
	for key, v := range m {
		if s, ok := v.(string); ok {
			out[key] = s
		}
	}
	return out
}

// Agents returns a best-effort typed view of the agents sequence. Entries or
// fields of the wrong type are skipped or left zero valued.
func (d *Document) Agents() []AgentSpec {
	list, _ := d.raw["agents"].([]any)
	var agents []AgentSpec
	for _, entry := range list {
		m, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		spec := AgentSpec{}
		spec.ID, _ = m["id"].(string)
		spec.Role, _ = m["role"].(string)
		if resp, ok := m["responsibilities"].([]any); ok {
			for _, r := range resp {
				if s, ok := r.(string); ok {
					spec.Responsibilities = append(spec.Responsibilities, s)
				}
			}
		}
		agents = append(agents, spec)
	}
	return agents
}

// SortedDocumentKeys returns keys ordered for deterministic reporting: the
// given leading keys first (in their declared order, when present), then any
// remaining keys sorted lexically.
func SortedDocumentKeys(docs map[string]any, leading []string) []string {
	seen := map[string]bool{}
	var keys []string
	for _, key := range leading {
		if _, ok := docs[key]; ok {
			keys = append(keys, key)
			seen[key] = true
		}
	}
	var extra []string
	for key := range docs {
		if !seen[key] {
			extra = append(extra, key)
		}
	}
	sort.Strings(extra)
	return append(keys, extra...)
}
