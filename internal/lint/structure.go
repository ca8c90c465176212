package lint

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/specdevagent/specdev/internal/metadata"
	"github.com/specdevagent/specdev/internal/scaffold"
)

// Stage names a lifecycle checkpoint against which required directories and
// files are evaluated. The caller supplies the stage; it is never inferred.
type Stage string

const (
	// StageBootstrap is a bare project carrying only the metadata document.
	StageBootstrap Stage = "bootstrap"
	// StagePostInit is a freshly initialized project with the full base
	// directory skeleton and starter documents.
	StagePostInit Stage = "post-init"
	// StagePostScaffold is an initialized project with a code template
	// applied on top.
	StagePostScaffold Stage = "post-scaffold"
)

// Stages lists all known lifecycle stages.
func Stages() []Stage {
	return []Stage{StageBootstrap, StagePostInit, StagePostScaffold}
}

// ParseStage converts a stage name supplied on the command line.
func ParseStage(name string) (Stage, error) {
	for _, stage := range Stages() {
		if name == string(stage) {
			return stage, nil
		}
	}
	return "", fmt.Errorf("unknown lifecycle stage %q (known: bootstrap, post-init, post-scaffold)", name)
}

// requiredDirs returns the directories the stage expects, in reporting order.
func (s Stage) requiredDirs() []string {
	switch s {
	case StagePostInit, StagePostScaffold:
		return scaffold.BaseDirs
	default:
		return nil
	}
}

// requiredFiles returns the plain files the stage expects, in reporting order.
func (s Stage) requiredFiles() []string {
	files := []string{metadata.MetadataFileName}
	switch s {
	case StagePostInit, StagePostScaffold:
		for _, f := range scaffold.BaseFiles {
			files = append(files, f.Path)
		}
	}
	return files
}

// CheckStructure verifies the presence of the directories and files required
// at the given lifecycle stage. One issue is reported per missing or
// mistyped entry; nothing is created or repaired. A project root that does
// not exist is a fatal condition, since no further structural claim can be
// evaluated.
func CheckStructure(root string, stage Stage) ([]Issue, error) {
	info, err := os.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &FatalError{Path: root, Err: fmt.Errorf("project root does not exist")}
		}
		return nil, &FatalError{Path: root, Err: err}
	}
	if !info.IsDir() {
		return nil, &FatalError{Path: root, Err: fmt.Errorf("project root is not a directory")}
	}

	var issues []Issue
	for _, dir := range stage.requiredDirs() {
		issue, err := checkEntry(root, dir, true)
		if err != nil {
			return nil, err
		}
		if issue != nil {
			issues = append(issues, *issue)
		}
	}
	for _, file := range stage.requiredFiles() {
		issue, err := checkEntry(root, file, false)
		if err != nil {
			return nil, err
		}
		if issue != nil {
			issues = append(issues, *issue)
		}
	}
	return issues, nil
}

// checkEntry stats one required entry under root and reports a missing or
// mistyped entry. Unexpected I/O errors are fatal.
func checkEntry(root, rel string, wantDir bool) (*Issue, error) {
	info, err := os.Stat(filepath.Join(root, rel))
	if err != nil {
		if os.IsNotExist(err) {
			code, kind := CodeMissingFile, "file"
			if wantDir {
				code, kind = CodeMissingDirectory, "directory"
			}
			return &Issue{
				FieldPath: rel,
				Code:      code,
				Message:   fmt.Sprintf("required %s '%s' is missing", kind, rel),
				Severity:  SeverityError,
			}, nil
		}
		return nil, &FatalError{Path: rel, Err: err}
	}
	if info.IsDir() != wantDir {
		want, got := "directory", "file"
		if !wantDir {
			want, got = "file", "directory"
		}
		return &Issue{
			FieldPath: rel,
			Code:      CodeWrongEntryType,
			Message:   fmt.Sprintf("'%s' must be a %s, found a %s", rel, want, got),
			Severity:  SeverityError,
		}, nil
	}
	return nil, nil
}
