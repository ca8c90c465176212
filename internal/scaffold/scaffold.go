package scaffold

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/specdevagent/specdev/internal/metadata"
)

// Result reports which paths an operation created and which it left alone.
type Result struct {
	Created []string
	Skipped []string
}

// Init creates the base project structure under root: the directory
// skeleton, the starter documents, and the project.json metadata template.
// Existing files are skipped unless force is set.
func Init(root string, force bool) (*Result, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("creating project root: %w", err)
	}
	for _, dir := range BaseDirs {
		if err := os.MkdirAll(filepath.Join(root, dir), 0o755); err != nil {
			return nil, fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}

	result := &Result{}
	for _, f := range BaseFiles {
		written, err := writeFile(filepath.Join(root, f.Path), []byte(f.Content), force)
		if err != nil {
			return nil, err
		}
		result.record(f.Path, written)
	}

	data, err := json.MarshalIndent(DefaultMetadata(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding metadata template: %w", err)
	}
	written, err := writeFile(filepath.Join(root, metadata.MetadataFileName), append(data, '\n'), force)
	if err != nil {
		return nil, err
	}
	result.record(metadata.MetadataFileName, written)

	return result, nil
}

func (r *Result) record(path string, written bool) {
	if written {
		r.Created = append(r.Created, path)
	} else {
		r.Skipped = append(r.Skipped, path)
	}
}

// writeFile writes content to path, creating parent directories as needed.
// Returns false without writing when the file exists and force is unset.
func writeFile(path string, content []byte, force bool) (bool, error) {
	if _, err := os.Stat(path); err == nil && !force {
		return false, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, fmt.Errorf("creating parent directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return false, fmt.Errorf("writing %s: %w", path, err)
	}
	return true, nil
}
