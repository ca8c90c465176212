package lint

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specdevagent/specdev/internal/metadata"
	"github.com/specdevagent/specdev/internal/testutil"
)

func TestRun_ConformingProjectPasses(t *testing.T) {
	root := testutil.WriteProject(t, testutil.ValidMetadata())

	report, err := Run(Options{Root: root, Stage: StagePostInit, CheckDocuments: true})
	require.NoError(t, err)
	assert.True(t, report.Passed)
	assert.Empty(t, report.Issues)
}

func TestRun_MissingRootIsFatal(t *testing.T) {
	_, err := Run(Options{Root: filepath.Join(t.TempDir(), "nope"), Stage: StagePostInit})

	require.Error(t, err)
	var fatal *FatalError
	assert.True(t, errors.As(err, &fatal))
}

func TestRun_UnparsableMetadataIsFatal(t *testing.T) {
	root := t.TempDir()
	testutil.WriteRawMetadata(t, root, []byte(`{"name": `))

	_, err := Run(Options{Root: root, Stage: StageBootstrap})

	require.Error(t, err)
	var parseErr *metadata.ParseError
	assert.True(t, errors.As(err, &parseErr))
}

func TestRun_CollectsAllCheckers(t *testing.T) {
	root := t.TempDir()
	meta := testutil.ValidMetadata()
	meta.Name = "ab" // field issue
	testutil.WriteMetadata(t, root, meta)
	// Bootstrap structure is satisfied, but docs/ and friends are absent at
	// post-init, and no referenced document exists on disk.

	report, err := Run(Options{Root: root, Stage: StagePostInit, CheckDocuments: true})
	require.NoError(t, err)

	assert.False(t, report.Passed)
	assert.NotNil(t, findIssue(report.Issues, CodeFieldLength, "name"))
	assert.NotNil(t, findIssue(report.Issues, CodeMissingDirectory, "docs"))
	assert.NotNil(t, findIssue(report.Issues, CodeDocumentNotFound, "documents.project"))

	// Field issues come first, then structural, then reference.
	assert.Equal(t, CodeFieldLength, report.Issues[0].Code)
	assert.Equal(t, CodeDocumentNotFound, report.Issues[len(report.Issues)-1].Code)
}

func TestRun_CheckDocumentsOptIn(t *testing.T) {
	root := t.TempDir()
	meta := testutil.ValidMetadata()
	meta.Documents["log"] = "missing.log"
	testutil.WriteMetadata(t, root, meta)

	withCheck, err := Run(Options{Root: root, Stage: StageBootstrap, CheckDocuments: true})
	require.NoError(t, err)
	assert.NotNil(t, findIssue(withCheck.Issues, CodeDocumentNotFound, "documents.log"))

	withoutCheck, err := Run(Options{Root: root, Stage: StageBootstrap, CheckDocuments: false})
	require.NoError(t, err)
	assert.Nil(t, findIssue(withoutCheck.Issues, CodeDocumentNotFound, "documents.log"))
}

func TestRun_SkipStructure(t *testing.T) {
	root := t.TempDir()
	testutil.WriteMetadata(t, root, testutil.ValidMetadata())

	report, err := Run(Options{Root: root, Stage: StagePostInit, SkipStructure: true})
	require.NoError(t, err)
	assert.True(t, report.Passed)
}

func TestRun_MetadataPathOverride(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "custom.json")
	require.NoError(t, os.WriteFile(path, []byte(`{}`), 0o644))

	report, err := Run(Options{Root: root, MetadataPath: path, SkipStructure: true})
	require.NoError(t, err)
	assert.False(t, report.Passed)
	assert.NotNil(t, findIssue(report.Issues, CodeMissingField, "name"))
}

func TestRun_Deterministic(t *testing.T) {
	root := t.TempDir()
	meta := testutil.ValidMetadata()
	meta.Agents = append(meta.Agents, metadata.AgentSpec{ID: "Dup Agent", Role: "builder"})
	testutil.WriteMetadata(t, root, meta)

	first, err := Run(Options{Root: root, Stage: StagePostInit, CheckDocuments: true})
	require.NoError(t, err)
	second, err := Run(Options{Root: root, Stage: StagePostInit, CheckDocuments: true})
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
