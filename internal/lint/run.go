package lint

import (
	"path/filepath"

	"github.com/specdevagent/specdev/internal/metadata"
)

// Options configures one engine invocation.
type Options struct {
	// Root is the project root directory.
	Root string
	// MetadataPath overrides the metadata document location. Defaults to
	// project.json under Root.
	MetadataPath string
	// Schema is the constraint registry. Zero value means DefaultSchema.
	Schema *metadata.Schema
	// Stage selects the structural requirements to enforce.
	Stage Stage
	// SkipStructure disables the structural checker (metadata-only linting).
	SkipStructure bool
	// CheckDocuments enables filesystem resolution of document references.
	CheckDocuments bool
}

// Run executes one full engine invocation: load the metadata document, run
// the three checkers sequentially over the same inputs, and aggregate their
// findings. Fatal conditions (unreadable or unparsable document, missing
// project root, I/O failure) abort before a report is produced.
func Run(opts Options) (*Report, error) {
	schema := metadata.DefaultSchema()
	if opts.Schema != nil {
		schema = *opts.Schema
	}
	metadataPath := opts.MetadataPath
	if metadataPath == "" {
		metadataPath = filepath.Join(opts.Root, metadata.MetadataFileName)
	}

	// Structural check runs first so a missing project root surfaces as the
	// fatal condition rather than a metadata read failure. Aggregation order
	// is unaffected.
	var structuralIssues []Issue
	if !opts.SkipStructure {
		var err error
		structuralIssues, err = CheckStructure(opts.Root, opts.Stage)
		if err != nil {
			return nil, err
		}
	}

	doc, err := metadata.Load(metadataPath)
	if err != nil {
		return nil, err
	}

	fieldIssues := ValidateFields(doc, schema)

	referenceIssues, err := ResolveDocuments(doc, opts.Root, schema, opts.CheckDocuments)
	if err != nil {
		return nil, err
	}

	return Aggregate(fieldIssues, structuralIssues, referenceIssues), nil
}
